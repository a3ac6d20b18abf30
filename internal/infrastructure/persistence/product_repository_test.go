package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoeProduct(t *testing.T, nickname, code, barcode string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(product.Draft{
		Category:         product.CategoryShoeLaserCutting,
		CustomerNickname: nickname,
		MaterialType:     product.MaterialLeather,
		UniqueCode:       code,
		Price:            decimal.NewFromInt(5000),
	}, "", barcode)
	require.NoError(t, err)
	return p
}

func weddingProduct(t *testing.T, autoID, barcode string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(product.Draft{
		Category:      product.CategoryWeddingInvitations,
		ProductType:   product.ProductTypeInvitationCard,
		MaterialType:  product.MaterialWood,
		StickerOption: product.WithSticker,
		StickerType:   product.StickerGlitter,
		StickerColor:  product.StickerSilver,
		Price:         decimal.RequireFromString("2000.50"),
	}, autoID, barcode)
	require.NoError(t, err)
	return p
}

func TestGormProductRepository_ExistsByBarcodeID_SQL(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE barcode_id = \$1`).
		WithArgs("ORGA-WI-0001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := NewGormProductRepository(db).ExistsByBarcodeID(context.Background(), "ORGA-WI-0001")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t)
	repo := NewGormProductRepository(db.DB)

	shoe := shoeProduct(t, "JSmith", "001", "ORGA-SLC-0001")
	wi := weddingProduct(t, "0009", "ORGA-WI-0420")
	lc, err := product.NewProduct(product.Draft{Category: product.CategoryLaserCutting}, "", product.LaserCuttingID)
	require.NoError(t, err)
	for _, p := range []*product.Product{shoe, wi, lc} {
		require.NoError(t, repo.Save(ctx, p))
	}

	t.Run("round trips the wedding variant", func(t *testing.T) {
		got, err := repo.FindByID(ctx, wi.ID)
		require.NoError(t, err)

		v, ok := got.Variant.(product.WeddingInvitation)
		require.True(t, ok)
		require.NotNil(t, v.Sticker)
		assert.Equal(t, product.StickerGlitter, v.Sticker.Type)
		assert.Equal(t, "0009", v.AutoGeneratedID)
		assert.Equal(t, wi.ProductID, got.ProductID)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("2000.50")))
	})

	t.Run("finds by barcode", func(t *testing.T) {
		got, err := repo.FindByBarcodeID(ctx, "ORGA-SLC-0001")
		require.NoError(t, err)
		assert.Equal(t, "SLC-JSmith-Leather-001", got.ProductID)

		_, err = repo.FindByBarcodeID(ctx, "ORGA-SLC-9999")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("existence checks exclude self", func(t *testing.T) {
		taken, err := repo.ExistsByProductID(ctx, shoe.ProductID, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.ExistsByProductID(ctx, shoe.ProductID, shoe.ID)
		require.NoError(t, err)
		assert.False(t, taken)

		taken, err = repo.ExistsByCategory(ctx, product.CategoryLaserCutting, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.ExistsByCategory(ctx, product.CategoryLaserCutting, lc.ID)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("duplicate product id", func(t *testing.T) {
		dup := shoeProduct(t, "JSmith", "001", "ORGA-SLC-0002")
		err := repo.Save(ctx, dup)
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
	})

	t.Run("duplicate barcode", func(t *testing.T) {
		dup := shoeProduct(t, "JSmith", "002", "ORGA-SLC-0001")
		err := repo.Save(ctx, dup)
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
	})

	t.Run("max auto generated id orders numerically", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, weddingProduct(t, "10000", "ORGA-WI-0421")))
		require.NoError(t, repo.Save(ctx, weddingProduct(t, "0010", "ORGA-WI-0422")))

		max, err := repo.MaxAutoGeneratedID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "10000", max)
	})

	t.Run("duplicate auto generated id", func(t *testing.T) {
		dup, err := product.NewProduct(product.Draft{
			Category:      product.CategoryWeddingInvitations,
			ProductType:   product.ProductTypeTag,
			MaterialType:  product.MaterialPaper,
			StickerOption: product.WithoutSticker,
			Price:         decimal.NewFromInt(250),
		}, "0009", "ORGA-WI-0423")
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
	})

	t.Run("filters by category", func(t *testing.T) {
		f := shared.DefaultFilter()
		f.Filters["category"] = string(product.CategoryWeddingInvitations)
		n, err := repo.Count(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, shoe.ID))
		assert.True(t, errors.Is(repo.Delete(ctx, shoe.ID), shared.ErrNotFound))
	})
}

func TestGormProductRepository_MaxAutoGeneratedID_Empty(t *testing.T) {
	db := newSQLiteDatabase(t)

	max, err := NewGormProductRepository(db.DB).MaxAutoGeneratedID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "", max)
}
