package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/notify"
	"fleetrent-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type customerService struct {
	customerRepo repository.CustomerRepository
	hub          *notify.Hub
}

func NewCustomerService(customerRepo repository.CustomerRepository, hub *notify.Hub) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		hub:          hub,
	}
}

func validateCustomer(c *domain.Customer) error {
	if err := validate.Var(c.FirstName, "required"); err != nil {
		return fmt.Errorf("first name is required")
	}
	if err := validate.Var(c.LastName, "required"); err != nil {
		return fmt.Errorf("last name is required")
	}
	if err := validate.Var(c.Email, "required,email"); err != nil {
		return fmt.Errorf("a valid email is required")
	}
	return nil
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return err
	}
	s.hub.Publish("customers", notify.OpCreated, c.ID)
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	if query == "" {
		return s.customerRepo.List(ctx)
	}
	return s.customerRepo.Search(ctx, query)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return err
	}
	s.hub.Publish("customers", notify.OpUpdated, c.ID)
	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish("customers", notify.OpDeleted, id)
	return nil
}
