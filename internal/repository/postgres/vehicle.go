package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	pricing, err := json.Marshal(v.Pricing)
	if err != nil {
		return fmt.Errorf("encode pricing: %w", err)
	}
	query := `INSERT INTO vehicles (brand, license_plate, vin, year, pricing, inspection_due, insurance_info, vignette_until, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, v.Brand, v.LicensePlate, v.VIN, v.Year, pricing, v.InspectionDue, v.InsuranceInfo, v.VignetteUntil, time.Now()).Scan(&v.ID, &v.CreatedOn)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query := `SELECT id, brand, license_plate, vin, year, pricing, inspection_due, insurance_info, vignette_until, created_on FROM vehicles WHERE id = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, query, id))
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, brand, license_plate, vin, year, pricing, inspection_due, insurance_info, vignette_until, created_on FROM vehicles ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	pricing, err := json.Marshal(v.Pricing)
	if err != nil {
		return fmt.Errorf("encode pricing: %w", err)
	}
	query := `UPDATE vehicles SET brand=$1, license_plate=$2, vin=$3, year=$4, pricing=$5, inspection_due=$6, insurance_info=$7, vignette_until=$8 WHERE id=$9`
	_, err = r.db.ExecContext(ctx, query, v.Brand, v.LicensePlate, v.VIN, v.Year, pricing, v.InspectionDue, v.InsuranceInfo, v.VignetteUntil, v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var pricing []byte
	err := row.Scan(&v.ID, &v.Brand, &v.LicensePlate, &v.VIN, &v.Year, &pricing, &v.InspectionDue, &v.InsuranceInfo, &v.VignetteUntil, &v.CreatedOn)
	if err != nil {
		return nil, err
	}
	if len(pricing) > 0 {
		if err := json.Unmarshal(pricing, &v.Pricing); err != nil {
			return nil, fmt.Errorf("decode pricing: %w", err)
		}
	}
	return v, nil
}
