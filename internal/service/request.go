package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/notify"
	"fleetrent-backend/internal/repository"
)

var ErrRequestAlreadyDecided = errors.New("rental request was already decided")

type requestService struct {
	requestRepo  repository.RentalRequestRepository
	customerRepo repository.CustomerRepository
	emailSvc     EmailService
	hub          *notify.Hub
}

func NewRequestService(
	requestRepo repository.RentalRequestRepository,
	customerRepo repository.CustomerRepository,
	emailSvc EmailService,
	hub *notify.Hub,
) RequestService {
	return &requestService{
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		emailSvc:     emailSvc,
		hub:          hub,
	}
}

func (s *requestService) SubmitRequest(ctx context.Context, req *domain.RentalRequest) error {
	if err := validate.Var(req.FirstName, "required"); err != nil {
		return fmt.Errorf("first name is required")
	}
	if err := validate.Var(req.LastName, "required"); err != nil {
		return fmt.Errorf("last name is required")
	}
	if err := validate.Var(req.Email, "required,email"); err != nil {
		return fmt.Errorf("a valid email is required")
	}
	if req.ConsentOn.IsZero() {
		return fmt.Errorf("consent to data processing is required")
	}

	req.Status = domain.RequestStatusPending
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return err
	}

	// Confirmation mail is best effort; the request is already stored.
	go func(req domain.RentalRequest) {
		if err := s.emailSvc.SendRequestReceived(context.Background(), &req); err != nil {
			logger.Error("Failed to send request confirmation", "request_id", req.ID, "error", err)
		}
	}(*req)

	s.hub.Publish("rental_requests", notify.OpCreated, req.ID)
	return nil
}

func (s *requestService) GetRequest(ctx context.Context, id int64) (*domain.RentalRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return req, err
}

func (s *requestService) ListRequests(ctx context.Context) ([]domain.RentalRequest, error) {
	return s.requestRepo.List(ctx)
}

// ApproveRequest turns the intake record into a Customer. The license
// image key moves over so the scan stays attached to the new customer.
func (s *requestService) ApproveRequest(ctx context.Context, id int64) (*domain.Customer, error) {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusPending {
		return nil, ErrRequestAlreadyDecided
	}

	customer := &domain.Customer{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		IDCardNumber:         req.IDCardNumber,
		DriversLicenseNumber: req.DriversLicenseNumber,
		DriversLicenseImage:  req.DriversLicenseImage,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, domain.RequestStatusApproved); err != nil {
		return nil, err
	}

	logger.Info("Rental request approved", "request_id", id, "customer_id", customer.ID)
	s.hub.Publish("customers", notify.OpCreated, customer.ID)
	s.hub.Publish("rental_requests", notify.OpUpdated, id)
	return customer, nil
}

func (s *requestService) RejectRequest(ctx context.Context, id int64) error {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != domain.RequestStatusPending {
		return ErrRequestAlreadyDecided
	}
	if err := s.requestRepo.UpdateStatus(ctx, id, domain.RequestStatusRejected); err != nil {
		return err
	}
	s.hub.Publish("rental_requests", notify.OpUpdated, id)
	return nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish("rental_requests", notify.OpDeleted, id)
	return nil
}
