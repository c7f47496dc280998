package repository

import (
	"context"

	"fleetrent-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	// Search matches a case-insensitive substring against name and email.
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Rental, error)
	Update(ctx context.Context, r *domain.Rental) error
	Delete(ctx context.Context, id int64) error
}

type RentalRequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int64) (*domain.RentalRequest, error)
	List(ctx context.Context) ([]domain.RentalRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	Delete(ctx context.Context, id int64) error
}

type StaffUserRepository interface {
	Create(ctx context.Context, u *domain.StaffUser) error
	GetByID(ctx context.Context, id int64) (*domain.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
}
