package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]customer.Customer, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customer.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockTypeIndexRepository struct {
	mock.Mock
}

func (m *MockTypeIndexRepository) Insert(ctx context.Context, e customer.IndexEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockTypeIndexRepository) FindCustomerID(ctx context.Context, t customer.CustomerType, key string) (uuid.UUID, error) {
	args := m.Called(ctx, t, key)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTypeIndexRepository) DeleteByCustomer(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTypeIndexRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockInvoiceRepository only stubs what the customer service calls
type MockInvoiceRepository struct {
	mock.Mock
	invoice.InvoiceRepository
}

func (m *MockInvoiceRepository) CountByCustomer(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// =============================================================================
// Helpers
// =============================================================================

type fixture struct {
	customers *MockCustomerRepository
	index     *MockTypeIndexRepository
	invoices  *MockInvoiceRepository
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		customers: new(MockCustomerRepository),
		index:     new(MockTypeIndexRepository),
		invoices:  new(MockInvoiceRepository),
	}
	scope := unitofwork.NewNoOpTransactionScope(f.customers, f.index, nil, f.invoices)
	f.service = NewService(f.customers, f.index, f.invoices, scope)
	return f
}

func productionRequest() CustomerRequest {
	return CustomerRequest{
		CustomerType: "Production",
		FullName:     "Jane Smith",
		Nickname:     "JSmith",
		JobType:      "Shoe Laser Cutting",
	}
}

func inStoreCustomer(t *testing.T) *customer.Customer {
	c, err := customer.NewCustomer(customer.Draft{
		Type:        customer.TypeInStore,
		FullName:    "John Doe",
		PhoneNumber: "123456789",
		JobType:     customer.JobWeddingInvitations,
	})
	require.NoError(t, err)
	return c
}

// =============================================================================
// Tests
// =============================================================================

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores customer and index row", func(t *testing.T) {
		f := newFixture()
		f.customers.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil)
		f.index.On("Insert", ctx, mock.MatchedBy(func(e customer.IndexEntry) bool {
			return e.Type == customer.TypeProduction && e.Key == "JSmith"
		})).Return(nil)

		resp, err := f.service.Create(ctx, productionRequest())

		require.NoError(t, err)
		assert.Equal(t, "Production", resp.CustomerType)
		assert.Equal(t, "JSmith", resp.Nickname)
		assert.Empty(t, resp.InstorePhoneNumber)
		assert.Equal(t, "Active", resp.Status)
		f.customers.AssertExpectations(t)
		f.index.AssertExpectations(t)
	})

	t.Run("reports every validation failure", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Create(ctx, CustomerRequest{CustomerType: "In-store", PhoneNumber: "12345678"})

		var ve *shared.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Messages, "Full name is required")
		assert.Contains(t, ve.Messages, "Phone number must be 9 or 10 digits")
		f.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("duplicate nickname", func(t *testing.T) {
		f := newFixture()
		f.customers.On("Save", ctx, mock.Anything).Return(nil)
		f.index.On("Insert", ctx, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := f.service.Create(ctx, productionRequest())

		assert.Equal(t, ErrDuplicateKey, err)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns in-store customer with index key", func(t *testing.T) {
		f := newFixture()
		c := inStoreCustomer(t)
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)

		resp, err := f.service.GetByID(ctx, c.ID)

		require.NoError(t, err)
		assert.Equal(t, "123456789", resp.InstorePhoneNumber)
		assert.Equal(t, "In-store", resp.CustomerType)
	})

	t.Run("missing customer", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.customers.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.GetByID(ctx, id)

		assert.Equal(t, ErrCustomerNotFound, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	filter := shared.DefaultFilter()
	c := inStoreCustomer(t)
	f.customers.On("FindAll", ctx, filter).Return([]customer.Customer{*c}, nil)
	f.customers.On("Count", ctx, filter).Return(int64(1), nil)

	list, total, err := f.service.List(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the index row when the type changes", func(t *testing.T) {
		f := newFixture()
		c := inStoreCustomer(t)
		before := c.UpdatedAt
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.customers.On("Save", ctx, c).Return(nil)
		f.index.On("DeleteByCustomer", ctx, c.ID).Return(nil)
		f.index.On("Insert", ctx, customer.IndexEntry{Type: customer.TypeProduction, Key: "JSmith", CustomerID: c.ID}).Return(nil)

		time.Sleep(time.Millisecond)
		resp, err := f.service.Replace(ctx, c.ID, productionRequest())

		require.NoError(t, err)
		assert.Equal(t, "Production", resp.CustomerType)
		assert.Equal(t, "JSmith", resp.Nickname)
		assert.True(t, resp.UpdatedAt.After(before))
		f.index.AssertExpectations(t)
	})

	t.Run("missing customer", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.customers.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.Replace(ctx, id, productionRequest())

		assert.Equal(t, ErrCustomerNotFound, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes customer and index rows", func(t *testing.T) {
		f := newFixture()
		c := inStoreCustomer(t)
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.invoices.On("CountByCustomer", ctx, c.ID).Return(int64(0), nil)
		f.index.On("DeleteByCustomer", ctx, c.ID).Return(nil)
		f.customers.On("Delete", ctx, c.ID).Return(nil)

		require.NoError(t, f.service.Delete(ctx, c.ID))
		f.customers.AssertExpectations(t)
		f.index.AssertExpectations(t)
	})

	t.Run("refuses a customer with documents", func(t *testing.T) {
		f := newFixture()
		c := inStoreCustomer(t)
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.invoices.On("CountByCustomer", ctx, c.ID).Return(int64(2), nil)

		err := f.service.Delete(ctx, c.ID)

		assert.Equal(t, ErrCustomerInUse, err)
		f.customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing customer", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.customers.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		assert.Equal(t, ErrCustomerNotFound, f.service.Delete(ctx, id))
	})
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("finds in-store customer by phone", func(t *testing.T) {
		f := newFixture()
		c := inStoreCustomer(t)
		f.index.On("FindCustomerID", ctx, customer.TypeInStore, "123456789").Return(c.ID, nil)
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)

		resp, err := f.service.Search(ctx, SearchRequest{CustomerType: "In-store", Identifier: " 123456789 "})

		require.NoError(t, err)
		assert.Equal(t, c.ID, resp.ID)
		assert.Equal(t, "123456789", resp.PhoneNumber)
	})

	t.Run("requires type and identifier", func(t *testing.T) {
		_, err := newFixture().service.Search(ctx, SearchRequest{CustomerType: "Production"})
		assert.EqualError(t, err, "Customer type and identifier (Phone Number or Nickname) are required.")
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := newFixture().service.Search(ctx, SearchRequest{CustomerType: "Online", Identifier: "x"})
		assert.EqualError(t, err, "Invalid customer type. Must be In-store, Production, or Wedding Invitation Maker.")
	})

	t.Run("unknown nickname", func(t *testing.T) {
		f := newFixture()
		f.index.On("FindCustomerID", ctx, customer.TypeWeddingMaker, "Nobody").Return(uuid.Nil, shared.ErrNotFound)

		_, err := f.service.Search(ctx, SearchRequest{CustomerType: "Wedding Invitation Maker", Identifier: "Nobody"})

		assert.EqualError(t, err, "No customer found with this nickname.")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("unknown phone", func(t *testing.T) {
		f := newFixture()
		f.index.On("FindCustomerID", ctx, customer.TypeInStore, "999999999").Return(uuid.Nil, shared.ErrNotFound)

		_, err := f.service.Search(ctx, SearchRequest{CustomerType: "In-store", Identifier: "999999999"})

		assert.EqualError(t, err, "No customer found with this phone number.")
	})
}
