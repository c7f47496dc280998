package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusActive, RentalStatusCompleted:
		return true
	}
	return false
}

// SignatureParty identifies which side of the contract a signature
// artifact belongs to.
type SignatureParty string

const (
	SignatureCustomer SignatureParty = "customer"
	SignatureCompany  SignatureParty = "company"
)

type Rental struct {
	ID                int64        `json:"id"`
	VehicleID         int64        `json:"vehicle_id"`
	CustomerID        int64        `json:"customer_id"`
	StartDate         time.Time    `json:"start_date"`
	EndDate           time.Time    `json:"end_date"`
	TotalPrice        int64        `json:"total_price"`
	Status            RentalStatus `json:"status"`
	CustomerSignature *string      `json:"customer_signature,omitempty"` // storage key
	CompanySignature  *string      `json:"company_signature,omitempty"`  // storage key
	ConsentOn         *time.Time   `json:"consent_on,omitempty"`
	CreatedOn         time.Time    `json:"created_on"`
}

// Overlaps reports whether the rental's half-open interval
// [StartDate, EndDate) intersects [start, end). Touching endpoints do
// not conflict.
func (r *Rental) Overlaps(start, end time.Time) bool {
	return start.Before(r.EndDate) && end.After(r.StartDate)
}
