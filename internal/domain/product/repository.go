package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence.
// Methods taking excludeID ignore that record; pass uuid.Nil to consider all.
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByBarcodeID finds a product by its Barcode_ID
	FindByBarcodeID(ctx context.Context, barcodeID string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every product
	DeleteAll(ctx context.Context) error

	// ExistsByProductID checks whether a Product_ID is taken
	ExistsByProductID(ctx context.Context, productID string, excludeID uuid.UUID) (bool, error)

	// ExistsByBarcodeID checks whether a Barcode_ID is taken
	ExistsByBarcodeID(ctx context.Context, barcodeID string) (bool, error)

	// ExistsByCategory checks whether any product of the category exists
	ExistsByCategory(ctx context.Context, category Category, excludeID uuid.UUID) (bool, error)

	// MaxAutoGeneratedID returns the highest wedding invitation sequence, or "" if none
	MaxAutoGeneratedID(ctx context.Context) (string, error)
}
