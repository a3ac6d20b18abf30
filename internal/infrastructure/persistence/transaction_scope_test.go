package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t)
	scope := NewGormTransactionScope(db.DB)
	customers := NewGormCustomerRepository(db.DB)

	t.Run("commits on success", func(t *testing.T) {
		c := newCustomer(t, customer.Draft{Type: customer.TypeProduction, Nickname: "Kept"})
		err := scope.Execute(ctx, func(repos unitofwork.Repositories) error {
			if err := repos.Customers().Save(ctx, c); err != nil {
				return err
			}
			return repos.TypeIndex().Insert(ctx, c.IndexEntry())
		})
		require.NoError(t, err)

		_, err = customers.FindByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		c := newCustomer(t, customer.Draft{Type: customer.TypeProduction, Nickname: "Kept"})
		err := scope.Execute(ctx, func(repos unitofwork.Repositories) error {
			if err := repos.Customers().Save(ctx, c); err != nil {
				return err
			}
			return repos.TypeIndex().Insert(ctx, c.IndexEntry())
		})
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))

		_, err = customers.FindByID(ctx, c.ID)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
