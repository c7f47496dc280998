package domain

import "time"

type Customer struct {
	ID                   int64     `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	IDCardNumber         string    `json:"id_card_number"`
	DriversLicenseNumber string    `json:"drivers_license_number"`
	DriversLicenseImage  *string   `json:"drivers_license_image,omitempty"` // storage key
	CreatedOn            time.Time `json:"created_on"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
