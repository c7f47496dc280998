package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

const requestColumns = `id, first_name, last_name, email, phone, id_card_number, drivers_license_number, drivers_license_image, consent_on, status, created_on`

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (first_name, last_name, email, phone, id_card_number, drivers_license_number, drivers_license_image, consent_on, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, req.FirstName, req.LastName, req.Email, req.Phone, req.IDCardNumber, req.DriversLicenseNumber, req.DriversLicenseImage, req.ConsentOn, req.Status, time.Now()).Scan(&req.ID, &req.CreatedOn)
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id int64) (*domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRequestRepository) List(ctx context.Context) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *rentalRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rental_requests SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *rentalRequestRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_requests WHERE id = $1`, id)
	return err
}

func scanRequest(row rowScanner) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	err := row.Scan(&req.ID, &req.FirstName, &req.LastName, &req.Email, &req.Phone, &req.IDCardNumber, &req.DriversLicenseNumber, &req.DriversLicenseImage, &req.ConsentOn, &req.Status, &req.CreatedOn)
	if err != nil {
		return nil, err
	}
	return req, nil
}
