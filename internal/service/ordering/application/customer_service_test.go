// internal/service/ordering/application/customer_service_test.go
package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "algashop/internal/service/ordering/application"
	"algashop/internal/service/ordering/domain"
	"algashop/internal/service/ordering/infrastructure"
)

func newCustomerService() (*CustomerService, *infrastructure.MemoryCustomerRepository, *capturingPublisher) {
	repo := infrastructure.NewMemoryCustomerRepository()
	publisher := &capturingPublisher{}
	return NewCustomerService(repo, publisher, noopTracer()), repo, publisher
}

func TestCustomerServiceRegister(t *testing.T) {
	ctx := context.Background()
	service, repo, publisher := newCustomerService()

	id, err := service.Register(ctx, testRegisterInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	customerID, err := domain.ParseCustomerID(id)
	require.NoError(t, err)
	customer, err := repo.OfID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", customer.FullName().String())
	assert.Equal(t, int64(1), customer.Version())

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "ordering.customer.registered", events[0].EventName())
	assert.Equal(t, id, events[0].AggregateID())
}

func TestCustomerServiceRegisterInvalidInput(t *testing.T) {
	ctx := context.Background()
	service, _, publisher := newCustomerService()

	input := testRegisterInput()
	input.Email = "not-an-email"

	_, err := service.Register(ctx, input)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Empty(t, publisher.Events())
}

func TestCustomerServiceArchive(t *testing.T) {
	ctx := context.Background()
	service, repo, publisher := newCustomerService()

	id, err := service.Register(ctx, testRegisterInput())
	require.NoError(t, err)

	require.NoError(t, service.Archive(ctx, id))

	customerID, err := domain.ParseCustomerID(id)
	require.NoError(t, err)
	customer, err := repo.OfID(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, customer.IsArchived())
	assert.Equal(t, domain.AnonymizedName, customer.FullName().FirstName())

	events := publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "ordering.customer.archived", events[1].EventName())

	// 归档是单向操作
	err = service.Archive(ctx, id)
	var archived domain.CustomerArchivedError
	assert.ErrorAs(t, err, &archived)
}

func TestCustomerServiceAddLoyaltyPoints(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newCustomerService()

	id, err := service.Register(ctx, testRegisterInput())
	require.NoError(t, err)

	require.NoError(t, service.AddLoyaltyPoints(ctx, id, 30))

	err = service.AddLoyaltyPoints(ctx, id, -5)
	assert.ErrorIs(t, err, domain.ErrNegativePoints)

	customerID, err := domain.ParseCustomerID(id)
	require.NoError(t, err)
	customer, err := repo.OfID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 30, customer.LoyaltyPoints().Value())
}

func TestCustomerServiceChangeEmail(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newCustomerService()

	id, err := service.Register(ctx, testRegisterInput())
	require.NoError(t, err)

	require.NoError(t, service.ChangeEmail(ctx, id, "new.email@email.com"))

	customerID, err := domain.ParseCustomerID(id)
	require.NoError(t, err)
	customer, err := repo.OfID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, "new.email@email.com", customer.Email().Value())
}

func TestCustomerServiceNotFound(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newCustomerService()

	err := service.Archive(ctx, domain.NewCustomerID().String())
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	err = service.Archive(ctx, "not-a-uuid")
	assert.Error(t, err)
}
