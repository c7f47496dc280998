package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/notify"
	"fleetrent-backend/internal/repository"
)

var ErrInvalidStatus = errors.New("invalid rental status")

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	sessions     *booking.SessionStore
	emailSvc     EmailService
	hub          *notify.Hub
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	sessions *booking.SessionStore,
	emailSvc EmailService,
	hub *notify.Hub,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		sessions:     sessions,
		emailSvc:     emailSvc,
		hub:          hub,
	}
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	r, err := s.rentalRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) UpdateRentalStatus(ctx context.Context, id int64, status domain.RentalStatus) (*domain.Rental, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	rental, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}
	rental.Status = status
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	s.hub.Publish("rentals", notify.OpUpdated, id)
	return rental, nil
}

func (s *rentalService) AttachRentalSignature(ctx context.Context, id int64, party domain.SignatureParty, key string) (*domain.Rental, error) {
	rental, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}
	switch party {
	case domain.SignatureCustomer:
		rental.CustomerSignature = &key
	case domain.SignatureCompany:
		rental.CompanySignature = &key
	default:
		return nil, fmt.Errorf("unknown signature party: %s", party)
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	s.hub.Publish("rentals", notify.OpUpdated, id)
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int64) error {
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish("rentals", notify.OpDeleted, id)
	return nil
}

func (s *rentalService) StartWizard(ctx context.Context) (string, booking.Snapshot, error) {
	session := s.sessions.Create()
	return session.ID, session.Wizard.Snapshot(), nil
}

func (s *rentalService) WizardState(ctx context.Context, sessionID string) (booking.Snapshot, error) {
	return s.withSession(sessionID, func(w *booking.Wizard) error { return nil })
}

func (s *rentalService) WizardDates(ctx context.Context, sessionID string, d booking.DateSelection) (booking.Snapshot, error) {
	return s.withSession(sessionID, func(w *booking.Wizard) error {
		return w.SubmitDates(d)
	})
}

// WizardVehicles lists the vehicles free for the session's interval.
// The rentals snapshot is fetched fresh on every call; the wizard's
// ChooseVehicle guard re-checks it anyway, so a vehicle that was booked
// between the two calls is still rejected.
func (s *rentalService) WizardVehicles(ctx context.Context, sessionID string) ([]domain.Vehicle, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var available []domain.Vehicle
	err = session.Do(func(w *booking.Wizard) error {
		if w.State() != booking.StateVehicleSelection {
			return booking.ErrWrongState
		}
		start, end := w.Interval()
		vehicles, err := s.vehicleRepo.List(ctx)
		if err != nil {
			return err
		}
		rentals, err := s.rentalRepo.List(ctx)
		if err != nil {
			return err
		}
		available = booking.AvailableVehicles(start, end, vehicles, rentals)
		return nil
	})
	return available, err
}

func (s *rentalService) WizardChooseVehicle(ctx context.Context, sessionID string, vehicleID int64) (booking.Snapshot, error) {
	return s.withSession(sessionID, func(w *booking.Wizard) error {
		vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		rentals, err := s.rentalRepo.ListByVehicle(ctx, vehicleID)
		if err != nil {
			return err
		}
		return w.ChooseVehicle(*vehicle, rentals)
	})
}

func (s *rentalService) WizardChooseCustomer(ctx context.Context, sessionID string, customerID int64) (booking.Snapshot, error) {
	return s.withSession(sessionID, func(w *booking.Wizard) error {
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		return w.ChooseCustomer(*customer)
	})
}

func (s *rentalService) WizardSignature(ctx context.Context, sessionID string, party domain.SignatureParty, key string) (booking.Snapshot, error) {
	return s.withSession(sessionID, func(w *booking.Wizard) error {
		return w.AttachSignature(party, key)
	})
}

func (s *rentalService) WizardDraft(ctx context.Context, sessionID string) (*domain.Rental, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	var draft *domain.Rental
	err = session.Do(func(w *booking.Wizard) error {
		draft, err = w.Draft()
		return err
	})
	return draft, err
}

// WizardSubmit persists the reviewed contract. The contract email is
// dispatched asynchronously after the rental is stored; a failed email
// never rolls back the rental.
func (s *rentalService) WizardSubmit(ctx context.Context, sessionID string) (*domain.Rental, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var rental *domain.Rental
	err = session.Do(func(w *booking.Wizard) error {
		rental, err = w.Submit(ctx, s.rentalRepo.Create)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "vehicle_id", rental.VehicleID, "customer_id", rental.CustomerID, "total_price", rental.TotalPrice)
	s.hub.Publish("rentals", notify.OpCreated, rental.ID)

	go s.sendContract(*rental)

	return rental, nil
}

func (s *rentalService) WizardBack(ctx context.Context, sessionID string) (booking.Snapshot, error) {
	return s.withSession(sessionID, func(w *booking.Wizard) error {
		return w.Back()
	})
}

// withSession runs fn under the session lock and returns the snapshot
// reflecting the wizard after the transition.
func (s *rentalService) withSession(sessionID string, fn func(*booking.Wizard) error) (booking.Snapshot, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return booking.Snapshot{}, err
	}
	var snap booking.Snapshot
	err = session.Do(func(w *booking.Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		snap = w.Snapshot()
		return nil
	})
	return snap, err
}

func (s *rentalService) sendContract(rental domain.Rental) {
	ctx := context.Background()
	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		logger.Error("Failed to load vehicle for contract email", "rental_id", rental.ID, "error", err)
		return
	}
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil {
		logger.Error("Failed to load customer for contract email", "rental_id", rental.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendContract(ctx, &rental, vehicle, customer); err != nil {
		logger.Error("Failed to send contract email", "rental_id", rental.ID, "error", err)
	}
}
