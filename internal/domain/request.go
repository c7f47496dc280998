package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RentalRequest is a pre-customer intake record created by the public
// form. Staff review flips the status; approval also creates a
// Customer from the contact fields.
type RentalRequest struct {
	ID                   int64         `json:"id"`
	FirstName            string        `json:"first_name"`
	LastName             string        `json:"last_name"`
	Email                string        `json:"email"`
	Phone                string        `json:"phone"`
	IDCardNumber         string        `json:"id_card_number"`
	DriversLicenseNumber string        `json:"drivers_license_number"`
	DriversLicenseImage  *string       `json:"drivers_license_image,omitempty"` // storage key
	ConsentOn            time.Time     `json:"consent_on"`
	Status               RequestStatus `json:"status"`
	CreatedOn            time.Time     `json:"created_on"`
}
