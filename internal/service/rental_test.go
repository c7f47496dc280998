package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/notify"

	"github.com/stretchr/testify/assert"
)

type rentalFixture struct {
	svc      RentalService
	vehicles *fakeVehicleRepo
	customer *fakeCustomerRepo
	rentals  *fakeRentalRepo
	email    *fakeEmailService
}

func newRentalFixture(t *testing.T) *rentalFixture {
	t.Helper()
	hub := notify.NewHub()
	go hub.Run()

	f := &rentalFixture{
		vehicles: newFakeVehicleRepo(),
		customer: newFakeCustomerRepo(),
		rentals:  newFakeRentalRepo(),
		email:    newFakeEmailService(),
	}
	f.svc = NewRentalService(f.rentals, f.vehicles, f.customer, booking.NewSessionStore(time.Hour), f.email, hub)

	ctx := context.Background()
	assert.NoError(t, f.vehicles.Create(ctx, &domain.Vehicle{
		Brand:        "Skoda Octavia",
		LicensePlate: "1AB 2345",
		Pricing:      domain.PriceList{domain.TierDay: 1000},
	}))
	assert.NoError(t, f.customer.Create(ctx, &domain.Customer{
		FirstName: "Jana",
		LastName:  "Novakova",
		Email:     "jana@example.com",
	}))
	return f
}

func (f *rentalFixture) startAt(t *testing.T, start time.Time, days int) string {
	t.Helper()
	ctx := context.Background()

	id, snap, err := f.svc.StartWizard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, booking.StateDateSelection, snap.State)

	snap, err = f.svc.WizardDates(ctx, id, booking.DateSelection{
		Start:    start,
		Selector: booking.SelectMultiDay,
		Days:     days,
	})
	assert.NoError(t, err)
	assert.Equal(t, booking.StateVehicleSelection, snap.State)
	return id
}

func TestRentalService_WizardFullFlow(t *testing.T) {
	f := newRentalFixture(t)
	ctx := context.Background()
	start := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	id := f.startAt(t, start, 5)

	available, err := f.svc.WizardVehicles(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, available, 1)

	snap, err := f.svc.WizardChooseVehicle(ctx, id, available[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, booking.StateCustomerSelection, snap.State)
	assert.Equal(t, int64(5000), snap.TotalPrice)

	snap, err = f.svc.WizardChooseCustomer(ctx, id, 1)
	assert.NoError(t, err)
	assert.Equal(t, booking.StateContractReview, snap.State)

	snap, err = f.svc.WizardSignature(ctx, id, domain.SignatureCustomer, "signatures/a.png")
	assert.NoError(t, err)
	assert.Equal(t, []domain.SignatureParty{domain.SignatureCustomer}, snap.Signatures)

	draft, err := f.svc.WizardDraft(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), draft.TotalPrice)
	assert.Nil(t, draft.ConsentOn)

	rental, err := f.svc.WizardSubmit(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusPending, rental.Status)
	assert.NotNil(t, rental.ConsentOn)
	assert.Equal(t, start.AddDate(0, 0, 5), rental.EndDate)

	// The contract email goes out after persistence.
	select {
	case <-f.email.delivered:
	case <-time.After(time.Second):
		t.Fatal("contract email was not dispatched")
	}
	assert.Equal(t, []int64{rental.ID}, f.email.contracts)

	stored, err := f.svc.GetRental(ctx, rental.ID)
	assert.NoError(t, err)
	assert.Equal(t, rental.TotalPrice, stored.TotalPrice)
}

func TestRentalService_WizardRejectsBookedVehicle(t *testing.T) {
	f := newRentalFixture(t)
	ctx := context.Background()
	start := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	// Vehicle 1 is already rented over the requested interval.
	assert.NoError(t, f.rentals.Create(ctx, &domain.Rental{
		VehicleID:  1,
		CustomerID: 1,
		StartDate:  start.AddDate(0, 0, 2),
		EndDate:    start.AddDate(0, 0, 4),
		Status:     domain.RentalStatusActive,
	}))

	id := f.startAt(t, start, 5)

	available, err := f.svc.WizardVehicles(ctx, id)
	assert.NoError(t, err)
	assert.Empty(t, available)

	// Forcing the choice anyway hits the guard.
	_, err = f.svc.WizardChooseVehicle(ctx, id, 1)
	assert.ErrorIs(t, err, booking.ErrVehicleUnavailable)
}

func TestRentalService_WizardSubmitRetryAfterFailure(t *testing.T) {
	f := newRentalFixture(t)
	ctx := context.Background()
	id := f.startAt(t, time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC), 3)

	_, err := f.svc.WizardChooseVehicle(ctx, id, 1)
	assert.NoError(t, err)
	_, err = f.svc.WizardChooseCustomer(ctx, id, 1)
	assert.NoError(t, err)

	f.rentals.createErr = errors.New("connection reset")
	_, err = f.svc.WizardSubmit(ctx, id)
	assert.Error(t, err)

	// The wizard stays in review; a retry succeeds.
	snap, err := f.svc.WizardState(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, booking.StateContractReview, snap.State)

	rental, err := f.svc.WizardSubmit(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, rental)

	// The terminal state never persists twice.
	_, err = f.svc.WizardSubmit(ctx, id)
	assert.ErrorIs(t, err, booking.ErrSubmitted)
	assert.Equal(t, 2, f.rentals.creates)
}

func TestRentalService_WizardBackClearsVehicle(t *testing.T) {
	f := newRentalFixture(t)
	ctx := context.Background()
	id := f.startAt(t, time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC), 3)

	_, err := f.svc.WizardChooseVehicle(ctx, id, 1)
	assert.NoError(t, err)

	snap, err := f.svc.WizardBack(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, booking.StateVehicleSelection, snap.State)
	assert.Nil(t, snap.Vehicle)
	assert.Zero(t, snap.TotalPrice)
}

func TestRentalService_WizardUnknownSession(t *testing.T) {
	f := newRentalFixture(t)
	_, err := f.svc.WizardState(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}

func TestRentalService_UpdateStatus(t *testing.T) {
	f := newRentalFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.rentals.Create(ctx, &domain.Rental{
		VehicleID:  1,
		CustomerID: 1,
		StartDate:  time.Now(),
		EndDate:    time.Now().Add(24 * time.Hour),
		Status:     domain.RentalStatusPending,
	}))

	rental, err := f.svc.UpdateRentalStatus(ctx, 1, domain.RentalStatusActive)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusActive, rental.Status)

	_, err = f.svc.UpdateRentalStatus(ctx, 1, domain.RentalStatus("torn"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.UpdateRentalStatus(ctx, 99, domain.RentalStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRentalService_AttachSignature(t *testing.T) {
	f := newRentalFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.rentals.Create(ctx, &domain.Rental{
		VehicleID:  1,
		CustomerID: 1,
		StartDate:  time.Now(),
		EndDate:    time.Now().Add(24 * time.Hour),
		Status:     domain.RentalStatusPending,
	}))

	rental, err := f.svc.AttachRentalSignature(ctx, 1, domain.SignatureCompany, "signatures/c.png")
	assert.NoError(t, err)
	assert.NotNil(t, rental.CompanySignature)
	assert.Equal(t, "signatures/c.png", *rental.CompanySignature)
	assert.Nil(t, rental.CustomerSignature)
}
