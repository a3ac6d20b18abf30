package product

import (
	"context"
	"math/rand/v2"

	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// DefaultBarcodeMaxAttempts bounds random barcode draws when no limit is configured
const DefaultBarcodeMaxAttempts = 50

// ErrBarcodeExhausted is returned when every draw hit an existing barcode
var ErrBarcodeExhausted = shared.NewDomainError("CONFLICT", "Failed to generate a unique Barcode ID. Please try again.")

// BarcodeGenerator draws random Barcode_IDs and probes them for collisions.
type BarcodeGenerator struct {
	maxAttempts int
	intn        func(n int) int
}

// NewBarcodeGenerator creates a generator; maxAttempts < 1 uses the default
func NewBarcodeGenerator(maxAttempts int) *BarcodeGenerator {
	if maxAttempts < 1 {
		maxAttempts = DefaultBarcodeMaxAttempts
	}
	return &BarcodeGenerator{maxAttempts: maxAttempts, intn: rand.IntN}
}

// Generate returns an unused Barcode_ID for the category.
// Laser cutting always gets the constant LC.
func (g *BarcodeGenerator) Generate(ctx context.Context, repo product.ProductRepository, c product.Category) (string, error) {
	if c == product.CategoryLaserCutting {
		return product.LaserCuttingID, nil
	}
	for range g.maxAttempts {
		id := product.FormatBarcode(c, g.intn(product.BarcodeSpace))
		taken, err := repo.ExistsByBarcodeID(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrBarcodeExhausted
}
