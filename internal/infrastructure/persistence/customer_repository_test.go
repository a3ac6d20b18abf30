package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCustomer(t *testing.T, d customer.Draft) *customer.Customer {
	t.Helper()
	if d.FullName == "" {
		d.FullName = "Test Customer"
	}
	if d.JobType == "" {
		d.JobType = customer.JobLaserCutting
	}
	c, err := customer.NewCustomer(d)
	require.NoError(t, err)
	return c
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "customer_type", "full_name", "nickname", "job_type", "status", "version"}).
			AddRow(id, "Production", "Jane Smith", "JSmith", "Shoe Laser Cutting", "Active", 1)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		c, err := repo.FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, c.ID)
		assert.Equal(t, customer.TypeProduction, c.Type())
		assert.Equal(t, "JSmith", c.Nickname())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates missing row", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), id)

		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormCustomerRepository_FindByIDs_Empty(t *testing.T) {
	db, _, mockDB := newMockGormDB(t)
	defer mockDB.Close()

	customers, err := NewGormCustomerRepository(db).FindByIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, customers)
}

func TestGormCustomerRepository_Delete(t *testing.T) {
	t.Run("deletes existing customer", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewGormCustomerRepository(db).Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports missing customer", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewGormCustomerRepository(db).Delete(context.Background(), id)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormCustomerRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t)
	repo := NewGormCustomerRepository(db.DB)

	jane := newCustomer(t, customer.Draft{Type: customer.TypeProduction, FullName: "Jane Smith", Nickname: "JSmith"})
	john := newCustomer(t, customer.Draft{Type: customer.TypeInStore, FullName: "John Doe", PhoneNumber: "0771234567"})
	weddingCo := newCustomer(t, customer.Draft{Type: customer.TypeWeddingMaker, FullName: "Wedding Co", Nickname: "Wedding_Co"})
	for _, c := range []*customer.Customer{jane, john, weddingCo} {
		require.NoError(t, repo.Save(ctx, c))
	}

	t.Run("round trips the channel", func(t *testing.T) {
		got, err := repo.FindByID(ctx, john.ID)
		require.NoError(t, err)
		assert.Equal(t, customer.InStoreChannel{PhoneNumber: "0771234567"}, got.Channel)
		assert.Equal(t, "John Doe", got.FullName)
	})

	t.Run("counts and filters by type", func(t *testing.T) {
		f := shared.DefaultFilter()
		f.Filters["customer_type"] = string(customer.TypeProduction)
		n, err := repo.Count(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		f := shared.DefaultFilter()
		f.Search = "g_co"
		got, err := repo.FindAll(ctx, f)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, weddingCo.ID, got[0].ID)

		f.Search = "%"
		got, err = repo.FindAll(ctx, f)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("pages results", func(t *testing.T) {
		f := shared.DefaultFilter()
		f.PageSize = 2
		f.OrderBy = "full_name"
		f.OrderDir = "asc"
		got, err := repo.FindAll(ctx, f)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Jane Smith", got[0].FullName)
		assert.Equal(t, "John Doe", got[1].FullName)
	})

	t.Run("updates in place", func(t *testing.T) {
		require.NoError(t, jane.Replace(customer.Draft{
			Type: customer.TypeWeddingMaker, FullName: "Jane S", Nickname: "JaneS", JobType: customer.JobWeddingInvitations,
		}))
		require.NoError(t, repo.Save(ctx, jane))

		got, err := repo.FindByID(ctx, jane.ID)
		require.NoError(t, err)
		assert.Equal(t, customer.TypeWeddingMaker, got.Type())
		assert.Equal(t, "JaneS", got.Nickname())
		assert.Equal(t, 2, got.Version)

		n, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("finds by ids", func(t *testing.T) {
		got, err := repo.FindByIDs(ctx, []uuid.UUID{john.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, john.ID, got[0].ID)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		n, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestGormTypeIndexRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t)
	repo := NewGormTypeIndexRepository(db.DB)

	prodID, storeID := uuid.New(), uuid.New()
	require.NoError(t, repo.Insert(ctx, customer.IndexEntry{Type: customer.TypeProduction, Key: "JSmith", CustomerID: prodID}))
	require.NoError(t, repo.Insert(ctx, customer.IndexEntry{Type: customer.TypeInStore, Key: "123456789", CustomerID: storeID}))

	t.Run("resolves keys within a type", func(t *testing.T) {
		id, err := repo.FindCustomerID(ctx, customer.TypeProduction, "JSmith")
		require.NoError(t, err)
		assert.Equal(t, prodID, id)

		id, err = repo.FindCustomerID(ctx, customer.TypeInStore, "123456789")
		require.NoError(t, err)
		assert.Equal(t, storeID, id)
	})

	t.Run("keys are scoped per type", func(t *testing.T) {
		_, err := repo.FindCustomerID(ctx, customer.TypeWeddingMaker, "JSmith")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("duplicate key is rejected", func(t *testing.T) {
		err := repo.Insert(ctx, customer.IndexEntry{Type: customer.TypeProduction, Key: "JSmith", CustomerID: uuid.New()})
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
	})

	t.Run("same key in another type is allowed", func(t *testing.T) {
		err := repo.Insert(ctx, customer.IndexEntry{Type: customer.TypeWeddingMaker, Key: "JSmith", CustomerID: uuid.New()})
		assert.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		err := repo.Insert(ctx, customer.IndexEntry{Type: "Online", Key: "x", CustomerID: uuid.New()})
		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "INVALID_CUSTOMER_TYPE", de.Code)
	})

	t.Run("delete by customer", func(t *testing.T) {
		require.NoError(t, repo.DeleteByCustomer(ctx, prodID))
		_, err := repo.FindCustomerID(ctx, customer.TypeProduction, "JSmith")
		assert.True(t, errors.Is(err, shared.ErrNotFound))

		_, err = repo.FindCustomerID(ctx, customer.TypeInStore, "123456789")
		assert.NoError(t, err)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		_, err := repo.FindCustomerID(ctx, customer.TypeInStore, "123456789")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
