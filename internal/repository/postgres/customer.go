package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, first_name, last_name, email, phone, id_card_number, drivers_license_number, drivers_license_image, created_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, email, phone, id_card_number, drivers_license_number, drivers_license_image, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone, c.IDCardNumber, c.DriversLicenseNumber, c.DriversLicenseImage, time.Now()).Scan(&c.ID, &c.CreatedOn)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY last_name, first_name`
	return r.queryCustomers(ctx, query)
}

func (r *customerRepository) Search(ctx context.Context, q string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
	          WHERE first_name ILIKE '%' || $1 || '%'
	             OR last_name ILIKE '%' || $1 || '%'
	             OR email ILIKE '%' || $1 || '%'
	          ORDER BY last_name, first_name`
	return r.queryCustomers(ctx, query, q)
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4, id_card_number=$5, drivers_license_number=$6, drivers_license_image=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone, c.IDCardNumber, c.DriversLicenseNumber, c.DriversLicenseImage, c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.IDCardNumber, &c.DriversLicenseNumber, &c.DriversLicenseImage, &c.CreatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}
