package domain

import "time"

// StaffUser is a back-office account. Only staff can reach the
// administration API; the public intake endpoint needs no account.
type StaffUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
