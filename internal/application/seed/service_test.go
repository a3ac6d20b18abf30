package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/orgalaser/invoicing/internal/application/product"
	"github.com/orgalaser/invoicing/internal/application/seed"
	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	domainproduct "github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/config"
	"github.com/orgalaser/invoicing/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSQLiteService(t *testing.T) (*seed.Service, *persistence.Database) {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	scope := persistence.NewGormTransactionScope(db.DB)
	return seed.NewService(scope, product.NewBarcodeGenerator(0), nil), db
}

func TestSeedCustomers(t *testing.T) {
	svc, db := newSQLiteService(t)
	ctx := context.Background()

	msg, err := svc.SeedCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Customers seeded", msg)

	// a second run replaces rather than duplicates
	_, err = svc.SeedCustomers(ctx)
	require.NoError(t, err)

	customers := persistence.NewGormCustomerRepository(db.DB)
	n, err := customers.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	index := persistence.NewGormTypeIndexRepository(db.DB)
	for _, tc := range []struct {
		typ customer.CustomerType
		key string
	}{
		{customer.TypeInStore, "123456789"},
		{customer.TypeProduction, "JSmith"},
		{customer.TypeWeddingMaker, "WeddingCo"},
	} {
		id, err := index.FindCustomerID(ctx, tc.typ, tc.key)
		require.NoError(t, err, tc.key)
		c, err := customers.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, tc.typ, c.Type())
	}
}

func TestSeedProducts(t *testing.T) {
	svc, db := newSQLiteService(t)
	ctx := context.Background()

	msg, err := svc.SeedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Products seeded", msg)
	_, err = svc.SeedProducts(ctx)
	require.NoError(t, err)

	products := persistence.NewGormProductRepository(db.DB)
	all, err := products.FindAll(ctx, shared.Filter{OrderBy: "product_id", OrderDir: "asc"})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byCategory := map[domainproduct.Category]domainproduct.Product{}
	for _, p := range all {
		byCategory[p.Category()] = p
	}
	slc := byCategory[domainproduct.CategoryShoeLaserCutting]
	assert.Equal(t, "SLC-JSmith-Leather-001", slc.ProductID)
	assert.Regexp(t, `^ORGA-SLC-\d{4}$`, slc.BarcodeID)
	assert.True(t, slc.Price.Equal(decimal.NewFromInt(5000)))

	wi := byCategory[domainproduct.CategoryWeddingInvitations]
	assert.Equal(t, "WI-Wood-Invitation Card-With Sticker-0001", wi.ProductID)
	assert.Equal(t, "0001", wi.AutoGeneratedID())

	lc := byCategory[domainproduct.CategoryLaserCutting]
	assert.Equal(t, "LC", lc.ProductID)
	assert.Equal(t, "LC", lc.BarcodeID)
}

type MockProductRepository struct {
	domainproduct.ProductRepository
	mock.Mock
}

func (m *MockProductRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestSeedProducts_Failure(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("DeleteAll", mock.Anything).Return(errors.New("disk full"))
	scope := unitofwork.NewNoOpTransactionScope(nil, nil, repo, nil)
	svc := seed.NewService(scope, product.NewBarcodeGenerator(0), nil)

	msg, err := svc.SeedProducts(context.Background())

	assert.Empty(t, msg)
	assert.EqualError(t, err, "disk full")
}

func TestDemoDraftsAreValid(t *testing.T) {
	for _, d := range seed.DemoCustomers {
		_, err := customer.NewCustomer(d)
		assert.NoError(t, err, d.FullName)
	}
	for _, d := range seed.DemoProducts {
		assert.NoError(t, domainproduct.Validate(d), string(d.Category))
	}
}
