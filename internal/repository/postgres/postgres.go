package postgres

import (
	"database/sql"

	"fleetrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles all repositories over one database handle.
type Store struct {
	db *sql.DB

	VehicleRepository       repository.VehicleRepository
	CustomerRepository      repository.CustomerRepository
	RentalRepository        repository.RentalRepository
	RentalRequestRepository repository.RentalRequestRepository
	StaffUserRepository     repository.StaffUserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		VehicleRepository:       NewVehicleRepository(db),
		CustomerRepository:      NewCustomerRepository(db),
		RentalRepository:        NewRentalRepository(db),
		RentalRequestRepository: NewRentalRequestRepository(db),
		StaffUserRepository:     NewStaffUserRepository(db),
	}
}
