package booking

import (
	"context"
	"errors"
	"time"

	"fleetrent-backend/internal/domain"
)

// State identifies the single active step of a rental creation wizard.
type State string

const (
	StateDateSelection     State = "date_selection"
	StateVehicleSelection  State = "vehicle_selection"
	StateCustomerSelection State = "customer_selection"
	StateContractReview    State = "contract_review"
	StateConfirmation      State = "confirmation"
)

var (
	// ErrWrongState means the requested operation does not belong to
	// the wizard's current step.
	ErrWrongState = errors.New("operation not allowed in current wizard state")
	// ErrNoStartDate and ErrInvalidDuration block the date step without
	// being surfaced as failures; the form is simply incomplete.
	ErrNoStartDate     = errors.New("start date is required")
	ErrInvalidDuration = errors.New("invalid duration selection")
	// ErrVehicleUnavailable rejects a vehicle that conflicts with an
	// existing rental for the chosen interval.
	ErrVehicleUnavailable = errors.New("vehicle is not available for the selected interval")
	// ErrSubmitted guards the terminal state against re-submission.
	ErrSubmitted = errors.New("rental already submitted")
)

// DateSelection is the tagged form record of the first step.
type DateSelection struct {
	Start    time.Time `json:"start"`
	Selector Selector  `json:"selector"`
	Days     int       `json:"days,omitempty"`
}

// Wizard sequences rental creation: dates, vehicle, customer, contract
// review, confirmation. Each step keeps its own record; leaving a step
// backward discards that record. The wizard itself is not safe for
// concurrent use — the session store serializes access.
type Wizard struct {
	state State

	dates DateSelection
	end   time.Time

	vehicle *domain.Vehicle
	price   int64

	customer *domain.Customer

	customerSig *string
	companySig  *string

	rentalID int64
}

func NewWizard() *Wizard {
	return &Wizard{state: StateDateSelection}
}

func (w *Wizard) State() State { return w.state }

// Interval returns the proposed rental interval once the date step has
// been completed.
func (w *Wizard) Interval() (start, end time.Time) {
	return w.dates.Start, w.end
}

// SubmitDates completes the date-selection step. The derived end
// timestamp becomes the interval upper bound for vehicle selection.
func (w *Wizard) SubmitDates(d DateSelection) error {
	if w.state != StateDateSelection {
		return ErrWrongState
	}
	if d.Start.IsZero() {
		return ErrNoStartDate
	}
	end, ok := End(d.Start, d.Selector, d.Days)
	if !ok {
		return ErrInvalidDuration
	}
	w.dates = d
	w.end = end
	w.state = StateVehicleSelection
	return nil
}

// ChooseVehicle completes vehicle selection. The rentals snapshot is
// the caller's responsibility to fetch fresh; the guard re-runs the
// overlap check so an unavailable vehicle is rejected even when the
// caller's own availability view was stale.
func (w *Wizard) ChooseVehicle(v domain.Vehicle, rentals []domain.Rental) error {
	if w.state != StateVehicleSelection {
		return ErrWrongState
	}
	if !VehicleAvailable(v.ID, w.dates.Start, w.end, rentals) {
		return ErrVehicleUnavailable
	}
	quote, ok := Compute(w.dates.Start, w.dates.Selector, w.dates.Days, v.Pricing)
	if !ok {
		return ErrInvalidDuration
	}
	w.vehicle = &v
	w.price = quote.Price
	w.state = StateCustomerSelection
	return nil
}

// ChooseCustomer completes customer selection with an existing or
// freshly persisted customer record.
func (w *Wizard) ChooseCustomer(c domain.Customer) error {
	if w.state != StateCustomerSelection {
		return ErrWrongState
	}
	w.customer = &c
	w.state = StateContractReview
	return nil
}

// AttachSignature records a captured signature artifact during contract
// review. Either party may sign in either order; neither is required
// for submission.
func (w *Wizard) AttachSignature(party domain.SignatureParty, key string) error {
	if w.state != StateContractReview {
		return ErrWrongState
	}
	switch party {
	case domain.SignatureCustomer:
		w.customerSig = &key
	case domain.SignatureCompany:
		w.companySig = &key
	default:
		return ErrWrongState
	}
	return nil
}

// Draft assembles the rental as it would be persisted, for contract
// preview.
func (w *Wizard) Draft() (*domain.Rental, error) {
	if w.state != StateContractReview {
		return nil, ErrWrongState
	}
	return &domain.Rental{
		VehicleID:         w.vehicle.ID,
		CustomerID:        w.customer.ID,
		StartDate:         w.dates.Start,
		EndDate:           w.end,
		TotalPrice:        w.price,
		Status:            domain.RentalStatusPending,
		CustomerSignature: w.customerSig,
		CompanySignature:  w.companySig,
	}, nil
}

// Submit persists the reviewed contract through the supplied persist
// function. Only confirmed persistence advances the wizard; on failure
// it stays in contract review so the user can retry. The terminal
// state never re-invokes persistence.
func (w *Wizard) Submit(ctx context.Context, persist func(context.Context, *domain.Rental) error) (*domain.Rental, error) {
	if w.state == StateConfirmation {
		return nil, ErrSubmitted
	}
	rental, err := w.Draft()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rental.ConsentOn = &now
	if err := persist(ctx, rental); err != nil {
		return nil, err
	}
	w.rentalID = rental.ID
	w.state = StateConfirmation
	return rental, nil
}

// Back returns to the previous step, discarding what the step being
// left had accumulated. Leaving customer selection also clears the
// chosen vehicle: a date change may change availability, so the
// vehicle choice cannot be trusted across the boundary.
func (w *Wizard) Back() error {
	switch w.state {
	case StateVehicleSelection:
		w.vehicle = nil
		w.price = 0
		w.state = StateDateSelection
	case StateCustomerSelection:
		w.customer = nil
		w.vehicle = nil
		w.price = 0
		w.state = StateVehicleSelection
	case StateContractReview:
		w.customerSig = nil
		w.companySig = nil
		w.customer = nil
		w.state = StateCustomerSelection
	default:
		return ErrWrongState
	}
	return nil
}

// Snapshot is the read-only view exposed to the UI layer.
type Snapshot struct {
	State      State                   `json:"state"`
	Start      *time.Time              `json:"start,omitempty"`
	End        *time.Time              `json:"end,omitempty"`
	Selector   Selector                `json:"selector,omitempty"`
	Days       int                     `json:"days,omitempty"`
	Vehicle    *domain.Vehicle         `json:"vehicle,omitempty"`
	Customer   *domain.Customer        `json:"customer,omitempty"`
	TotalPrice int64                   `json:"total_price"`
	Signatures []domain.SignatureParty `json:"signatures,omitempty"`
	RentalID   int64                   `json:"rental_id,omitempty"`
}

func (w *Wizard) Snapshot() Snapshot {
	s := Snapshot{
		State:      w.state,
		Selector:   w.dates.Selector,
		Days:       w.dates.Days,
		Vehicle:    w.vehicle,
		Customer:   w.customer,
		TotalPrice: w.price,
		RentalID:   w.rentalID,
	}
	if !w.dates.Start.IsZero() {
		start, end := w.dates.Start, w.end
		s.Start, s.End = &start, &end
	}
	if w.customerSig != nil {
		s.Signatures = append(s.Signatures, domain.SignatureCustomer)
	}
	if w.companySig != nil {
		s.Signatures = append(s.Signatures, domain.SignatureCompany)
	}
	return s
}
