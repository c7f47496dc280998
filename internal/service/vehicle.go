package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/notify"
	"fleetrent-backend/internal/repository"
)

var ErrNotFound = errors.New("record not found")

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	rentalRepo  repository.RentalRepository
	hub         *notify.Hub
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, rentalRepo repository.RentalRepository, hub *notify.Hub) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		rentalRepo:  rentalRepo,
		hub:         hub,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	// A vehicle without prices is stored but cannot be booked.
	if !v.Rentable() {
		logger.Warn("Vehicle saved without any tier price", "vehicle_id", v.ID, "license_plate", v.LicensePlate)
	}
	s.hub.Publish("vehicles", notify.OpCreated, v.ID)
	return nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	if !v.Rentable() {
		logger.Warn("Vehicle saved without any tier price", "vehicle_id", v.ID, "license_plate", v.LicensePlate)
	}
	s.hub.Publish("vehicles", notify.OpUpdated, v.ID)
	return nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int64) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish("vehicles", notify.OpDeleted, id)
	return nil
}

func (s *vehicleService) AvailableVehicles(ctx context.Context, start, end time.Time) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return booking.AvailableVehicles(start, end, vehicles, rentals), nil
}

func (s *vehicleService) Quote(ctx context.Context, vehicleID int64, start time.Time, sel booking.Selector, days int) (booking.Quote, bool, error) {
	v, err := s.GetVehicle(ctx, vehicleID)
	if err != nil {
		return booking.Quote{}, false, err
	}
	quote, ok := booking.Compute(start, sel, days, v.Pricing)
	return quote, ok, nil
}
