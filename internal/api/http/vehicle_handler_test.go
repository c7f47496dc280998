package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleService) AvailableVehicles(ctx context.Context, start, end time.Time) ([]domain.Vehicle, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) Quote(ctx context.Context, vehicleID int64, start time.Time, sel booking.Selector, days int) (booking.Quote, bool, error) {
	args := m.Called(ctx, vehicleID, start, sel, days)
	return args.Get(0).(booking.Quote), args.Bool(1), args.Error(2)
}

func TestVehicleHandler_Available(t *testing.T) {
	svc := new(MockVehicleService)
	handler := NewVehicleHandler(svc)

	t.Run("Success", func(t *testing.T) {
		start := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 3)
		svc.On("AvailableVehicles", mock.Anything, start, end).
			Return([]domain.Vehicle{{ID: 2, Brand: "Ford Transit"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/vehicles/available?start=2024-07-01T09:00:00Z&end=2024-07-04T09:00:00Z", nil)
		rec := httptest.NewRecorder()
		handler.Available(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var vehicles []domain.Vehicle
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
		assert.Len(t, vehicles, 1)
		assert.Equal(t, "Ford Transit", vehicles[0].Brand)
		svc.AssertExpectations(t)
	})

	t.Run("BadStart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/vehicles/available?start=yesterday&end=2024-07-04T09:00:00Z", nil)
		rec := httptest.NewRecorder()
		handler.Available(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StartNotBeforeEnd", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/vehicles/available?start=2024-07-04T09:00:00Z&end=2024-07-01T09:00:00Z", nil)
		rec := httptest.NewRecorder()
		handler.Available(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVehicleHandler_Quote(t *testing.T) {
	svc := new(MockVehicleService)
	handler := NewVehicleHandler(svc)
	start := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Computable", func(t *testing.T) {
		svc.On("Quote", mock.Anything, int64(1), start, booking.SelectMultiDay, 5).
			Return(booking.Quote{End: start.AddDate(0, 0, 5), Price: 5000}, true, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/quotes?vehicle_id=1&start=2024-07-01T09:00:00Z&selector=multi-day&days=5", nil)
		rec := httptest.NewRecorder()
		handler.Quote(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp quoteResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Computable)
		assert.Equal(t, int64(5000), resp.Quote.Price)
		svc.AssertExpectations(t)
	})

	t.Run("NotComputable", func(t *testing.T) {
		svc.On("Quote", mock.Anything, int64(1), start, booking.SelectMultiDay, 45).
			Return(booking.Quote{}, false, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/quotes?vehicle_id=1&start=2024-07-01T09:00:00Z&selector=multi-day&days=45", nil)
		rec := httptest.NewRecorder()
		handler.Quote(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp quoteResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Computable)
		assert.Nil(t, resp.Quote)
	})
}

func TestVehicleHandler_GetNotFound(t *testing.T) {
	svc := new(MockVehicleService)
	handler := NewVehicleHandler(svc)

	svc.On("GetVehicle", mock.Anything, int64(99)).Return(nil, service.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/99", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
