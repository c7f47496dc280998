package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, vehicle_id, customer_id, start_date, end_date, total_price, status, customer_signature, company_signature, consent_on, created_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (vehicle_id, customer_id, start_date, end_date, total_price, status, customer_signature, company_signature, consent_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, rt.VehicleID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.TotalPrice, rt.Status, rt.CustomerSignature, rt.CompanySignature, rt.ConsentOn, time.Now()).Scan(&rt.ID, &rt.CreatedOn)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY start_date DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE vehicle_id = $1 ORDER BY start_date`
	return r.queryRentals(ctx, query, vehicleID)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, customer_signature=$2, company_signature=$3, consent_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.CustomerSignature, rt.CompanySignature, rt.ConsentOn, rt.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.VehicleID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.TotalPrice, &rt.Status, &rt.CustomerSignature, &rt.CompanySignature, &rt.ConsentOn, &rt.CreatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}
