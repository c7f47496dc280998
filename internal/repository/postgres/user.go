package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type staffUserRepository struct {
	db *sql.DB
}

func NewStaffUserRepository(db *sql.DB) repository.StaffUserRepository {
	return &staffUserRepository{db: db}
}

func (r *staffUserRepository) Create(ctx context.Context, u *domain.StaffUser) error {
	query := `INSERT INTO staff_users (email, name, password_hash, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash, time.Now()).Scan(&u.ID, &u.CreatedOn)
}

func (r *staffUserRepository) GetByID(ctx context.Context, id int64) (*domain.StaffUser, error) {
	u := &domain.StaffUser{}
	query := `SELECT id, email, name, password_hash, created_on FROM staff_users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *staffUserRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	u := &domain.StaffUser{}
	query := `SELECT id, email, name, password_hash, created_on FROM staff_users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}
