package booking

import (
	"time"

	"fleetrent-backend/internal/domain"
)

// AvailableVehicles partitions the vehicle snapshot into the subset
// free for the half-open interval [start, end). A vehicle conflicts
// when any rental referencing it overlaps the interval; completed
// rentals still occupy their historical slot. Input order is
// preserved and the arguments are never mutated.
//
// Callers guarantee start < end; with an empty rental list every
// vehicle is returned.
func AvailableVehicles(start, end time.Time, vehicles []domain.Vehicle, rentals []domain.Rental) []domain.Vehicle {
	available := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if VehicleAvailable(v.ID, start, end, rentals) {
			available = append(available, v)
		}
	}
	return available
}

// VehicleAvailable reports whether a single vehicle has no rental
// overlapping [start, end).
func VehicleAvailable(vehicleID int64, start, end time.Time, rentals []domain.Rental) bool {
	for i := range rentals {
		if rentals[i].VehicleID != vehicleID {
			continue
		}
		if rentals[i].Overlaps(start, end) {
			return false
		}
	}
	return true
}
