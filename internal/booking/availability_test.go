package booking

import (
	"testing"
	"time"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func day(d, hour int) time.Time {
	return time.Date(2024, 7, d, hour, 0, 0, 0, time.UTC)
}

func TestAvailableVehicles(t *testing.T) {
	fleet := []domain.Vehicle{
		{ID: 1, Brand: "Skoda", LicensePlate: "1AB 1234"},
		{ID: 2, Brand: "Volkswagen", LicensePlate: "2CD 5678"},
		{ID: 3, Brand: "Ford", LicensePlate: "3EF 9012"},
	}

	t.Run("empty rental list leaves every vehicle available", func(t *testing.T) {
		available := AvailableVehicles(day(5, 9), day(10, 9), fleet, nil)
		assert.Equal(t, fleet, available)
	})

	t.Run("overlapping rental excludes its vehicle only", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: 1, VehicleID: 2, StartDate: day(10, 9), EndDate: day(15, 9)},
		}
		available := AvailableVehicles(day(12, 0), day(20, 0), fleet, rentals)
		assert.Len(t, available, 2)
		assert.Equal(t, int64(1), available[0].ID)
		assert.Equal(t, int64(3), available[1].ID)
	})

	t.Run("touching boundary does not conflict", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: 1, VehicleID: 2, StartDate: day(10, 9), EndDate: day(15, 9)},
		}
		// Proposed interval ends exactly when the rental starts.
		available := AvailableVehicles(day(5, 9), day(10, 9), fleet, rentals)
		assert.Len(t, available, 3)

		// And one starting exactly when the rental ends.
		available = AvailableVehicles(day(15, 9), day(18, 9), fleet, rentals)
		assert.Len(t, available, 3)
	})

	t.Run("containment conflicts", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: 1, VehicleID: 1, StartDate: day(10, 0), EndDate: day(11, 0)},
		}
		available := AvailableVehicles(day(1, 0), day(31, 0), fleet, rentals)
		assert.Len(t, available, 2)
	})

	t.Run("completed rentals still occupy their interval", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: 1, VehicleID: 1, StartDate: day(10, 0), EndDate: day(12, 0), Status: domain.RentalStatusCompleted},
		}
		assert.False(t, VehicleAvailable(1, day(11, 0), day(13, 0), rentals))
	})

	t.Run("input order is preserved", func(t *testing.T) {
		available := AvailableVehicles(day(1, 0), day(2, 0), fleet, nil)
		for i := range available {
			assert.Equal(t, fleet[i].ID, available[i].ID)
		}
	})
}

func TestVehicleAvailable(t *testing.T) {
	rentals := []domain.Rental{
		{ID: 1, VehicleID: 7, StartDate: day(10, 9), EndDate: day(15, 9)},
		{ID: 2, VehicleID: 7, StartDate: day(20, 9), EndDate: day(25, 9)},
	}

	assert.True(t, VehicleAvailable(7, day(15, 9), day(20, 9), rentals))
	assert.False(t, VehicleAvailable(7, day(14, 9), day(16, 9), rentals))
	assert.True(t, VehicleAvailable(8, day(14, 9), day(16, 9), rentals))
}
