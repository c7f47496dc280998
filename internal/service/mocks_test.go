package service

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"fleetrent-backend/internal/domain"
)

// In-memory repository fakes shared by the service tests.

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[int64]domain.Vehicle
	nextID   int64
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[int64]domain.Vehicle), nextID: 1}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	r.vehicles[v.ID] = *v
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &v, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Vehicle, 0, len(r.vehicles))
	for id := int64(1); id < r.nextID; id++ {
		if v, ok := r.vehicles[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[v.ID] = *v
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vehicles, id)
	return nil
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[int64]domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]domain.Customer), nextID: 1}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Customer, 0, len(r.customers))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	all, _ := r.List(ctx)
	q := strings.ToLower(query)
	var out []domain.Customer
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, id)
	return nil
}

type fakeRentalRepo struct {
	mu      sync.Mutex
	rentals map[int64]domain.Rental
	nextID  int64
	// createErr fails the next Create when set.
	createErr error
	creates   int
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[int64]domain.Rental), nextID: 1}
}

func (r *fakeRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	rt.ID = r.nextID
	r.nextID++
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *fakeRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.rentals[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &rt, nil
}

func (r *fakeRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Rental, 0, len(r.rentals))
	for id := int64(1); id < r.nextID; id++ {
		if rt, ok := r.rentals[id]; ok {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRentalRepo) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Rental, error) {
	all, _ := r.List(ctx)
	var out []domain.Rental
	for _, rt := range all {
		if rt.VehicleID == vehicleID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRentalRepo) Update(ctx context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *fakeRentalRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rentals, id)
	return nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[int64]domain.RentalRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]domain.RentalRequest), nextID: 1}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = r.nextID
	r.nextID++
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.RentalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &req, nil
}

func (r *fakeRequestRepo) List(ctx context.Context) ([]domain.RentalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.RentalRequest, 0, len(r.requests))
	for id := int64(1); id < r.nextID; id++ {
		if req, ok := r.requests[id]; ok {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return sql.ErrNoRows
	}
	req.Status = status
	r.requests[id] = req
	return nil
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.requests, id)
	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]domain.StaffUser
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.StaffUser), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.StaffUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.StaffUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

// fakeEmailService records delivered mail instead of calling SendGrid.
type fakeEmailService struct {
	mu        sync.Mutex
	contracts []int64
	received  []int64
	warnings  []int64
	delivered chan struct{}
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{delivered: make(chan struct{}, 8)}
}

func (s *fakeEmailService) SendContract(ctx context.Context, rental *domain.Rental, vehicle *domain.Vehicle, customer *domain.Customer) error {
	s.mu.Lock()
	s.contracts = append(s.contracts, rental.ID)
	s.mu.Unlock()
	s.delivered <- struct{}{}
	return nil
}

func (s *fakeEmailService) SendRequestReceived(ctx context.Context, req *domain.RentalRequest) error {
	s.mu.Lock()
	s.received = append(s.received, req.ID)
	s.mu.Unlock()
	s.delivered <- struct{}{}
	return nil
}

func (s *fakeEmailService) SendInspectionWarning(ctx context.Context, to string, vehicle *domain.Vehicle) error {
	s.mu.Lock()
	s.warnings = append(s.warnings, vehicle.ID)
	s.mu.Unlock()
	s.delivered <- struct{}{}
	return nil
}
