package service

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/notify"

	"github.com/stretchr/testify/assert"
)

func newCustomerFixture(t *testing.T) (CustomerService, *fakeCustomerRepo) {
	t.Helper()
	hub := notify.NewHub()
	go hub.Run()

	repo := newFakeCustomerRepo()
	ctx := context.Background()
	assert.NoError(t, repo.Create(ctx, &domain.Customer{
		FirstName: "Jan", LastName: "Novak", Email: "jan.novak@example.com",
	}))
	assert.NoError(t, repo.Create(ctx, &domain.Customer{
		FirstName: "Petr", LastName: "Svoboda", Email: "petr.svoboda@example.com",
	}))
	return NewCustomerService(repo, hub), repo
}

func TestCustomerService_SearchCustomers(t *testing.T) {
	svc, _ := newCustomerFixture(t)
	ctx := context.Background()

	t.Run("matches the last name case-insensitively", func(t *testing.T) {
		customers, err := svc.SearchCustomers(ctx, "nov")
		assert.NoError(t, err)
		assert.Len(t, customers, 1)
		assert.Equal(t, "Novak", customers[0].LastName)
	})

	t.Run("matches the email", func(t *testing.T) {
		customers, err := svc.SearchCustomers(ctx, "petr.svoboda@")
		assert.NoError(t, err)
		assert.Len(t, customers, 1)
		assert.Equal(t, "Svoboda", customers[0].LastName)
	})

	t.Run("empty query returns everyone", func(t *testing.T) {
		customers, err := svc.SearchCustomers(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("no match returns an empty list", func(t *testing.T) {
		customers, err := svc.SearchCustomers(ctx, "zzz")
		assert.NoError(t, err)
		assert.Empty(t, customers)
	})
}

func TestCustomerService_CreateValidation(t *testing.T) {
	svc, repo := newCustomerFixture(t)
	ctx := context.Background()

	err := svc.CreateCustomer(ctx, &domain.Customer{FirstName: "Eva", LastName: "Mala", Email: "not-an-email"})
	assert.Error(t, err)

	all, _ := repo.List(ctx)
	assert.Len(t, all, 2)
}
