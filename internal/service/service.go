package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.StaffUser, error)
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
	Session(ctx context.Context, userID int64) (*domain.StaffUser, error)
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error
	// AvailableVehicles returns the fleet subset free for [start, end).
	AvailableVehicles(ctx context.Context, start, end time.Time) ([]domain.Vehicle, error)
	// Quote prices a duration selection against one vehicle's price list.
	// The bool is false when the selection is not computable.
	Quote(ctx context.Context, vehicleID int64, start time.Time, sel booking.Selector, days int) (booking.Quote, bool, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

type RentalService interface {
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	UpdateRentalStatus(ctx context.Context, id int64, status domain.RentalStatus) (*domain.Rental, error)
	AttachRentalSignature(ctx context.Context, id int64, party domain.SignatureParty, key string) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int64) error

	// Wizard operations. Each session holds one in-flight rental
	// creation; steps run strictly sequentially per session.
	StartWizard(ctx context.Context) (string, booking.Snapshot, error)
	WizardState(ctx context.Context, sessionID string) (booking.Snapshot, error)
	WizardDates(ctx context.Context, sessionID string, d booking.DateSelection) (booking.Snapshot, error)
	WizardVehicles(ctx context.Context, sessionID string) ([]domain.Vehicle, error)
	WizardChooseVehicle(ctx context.Context, sessionID string, vehicleID int64) (booking.Snapshot, error)
	WizardChooseCustomer(ctx context.Context, sessionID string, customerID int64) (booking.Snapshot, error)
	WizardSignature(ctx context.Context, sessionID string, party domain.SignatureParty, key string) (booking.Snapshot, error)
	WizardDraft(ctx context.Context, sessionID string) (*domain.Rental, error)
	WizardSubmit(ctx context.Context, sessionID string) (*domain.Rental, error)
	WizardBack(ctx context.Context, sessionID string) (booking.Snapshot, error)
}

type RequestService interface {
	// SubmitRequest handles the public intake form; no authentication.
	SubmitRequest(ctx context.Context, req *domain.RentalRequest) error
	GetRequest(ctx context.Context, id int64) (*domain.RentalRequest, error)
	ListRequests(ctx context.Context) ([]domain.RentalRequest, error)
	// ApproveRequest creates a Customer from the request's contact
	// fields and marks the request approved.
	ApproveRequest(ctx context.Context, id int64) (*domain.Customer, error)
	RejectRequest(ctx context.Context, id int64) error
	DeleteRequest(ctx context.Context, id int64) error
}

type EmailService interface {
	SendContract(ctx context.Context, rental *domain.Rental, vehicle *domain.Vehicle, customer *domain.Customer) error
	SendRequestReceived(ctx context.Context, req *domain.RentalRequest) error
	SendInspectionWarning(ctx context.Context, to string, vehicle *domain.Vehicle) error
}
