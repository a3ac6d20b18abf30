package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
)

// LaserCuttingRatePerMinute is the LKR price of one minute of laser cutting time
var LaserCuttingRatePerMinute = decimal.NewFromInt(60)

var (
	one         = decimal.NewFromInt(1)
	maxQuantity = decimal.NewFromInt(invoice.MaxQuantity)
)

// Scan turns a scanned barcode into one priced line item. Nothing is stored.
// LC bills cutting time plus an optional material cost, rounded to cents; ORGA-WI- and ORGA-SLC-
// codes bill the catalog price of the product carrying the barcode.
func (s *Service) Scan(ctx context.Context, req ScanRequest) (*ItemResponse, error) {
	barcodeID := strings.TrimSpace(req.BarcodeID)
	if barcodeID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Barcode ID is required.")
	}
	if req.Quantity == nil || !req.Quantity.IsInteger() || req.Quantity.LessThan(one) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1.")
	}
	if req.Quantity.GreaterThan(maxQuantity) {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Quantity cannot exceed %d.", invoice.MaxQuantity))
	}
	qty := *req.Quantity

	category, ok := product.CategoryOfBarcode(barcodeID)
	if !ok {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Invalid Barcode ID. It must start with LC, ORGA-WI-, or ORGA-SLC-.")
	}

	if category == product.CategoryLaserCutting {
		item, err := laserCuttingItem(req, qty)
		if err == nil {
			s.opts.Metrics.Scanned(ctx, string(category), telemetry.OutcomeSuccess)
		}
		return item, err
	}

	p, err := s.products.FindByBarcodeID(ctx, barcodeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.opts.Metrics.Scanned(ctx, string(category), telemetry.OutcomeNotFound)
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("%s product not found for this Barcode ID.", scanLabel(category)))
		}
		return nil, err
	}
	s.opts.Metrics.Scanned(ctx, string(category), telemetry.OutcomeSuccess)
	return &ItemResponse{
		ItemDescription: fmt.Sprintf("%s (%s)", scanLabel(category), p.ProductID),
		Quantity:        int(qty.IntPart()),
		Rate:            p.Price,
		LineTotal:       p.Price.Mul(qty),
	}, nil
}

func laserCuttingItem(req ScanRequest, qty decimal.Decimal) (*ItemResponse, error) {
	if req.Duration == nil || !req.Duration.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Duration in minutes is required for Laser Cutting and must be greater than 0.")
	}
	rate := LaserCuttingRatePerMinute.Mul(*req.Duration)

	description := fmt.Sprintf("Laser Cutting (%s minutes)", req.Duration.String())
	if mc := req.MaterialCost; mc != nil && !mc.IsZero() {
		description = fmt.Sprintf("Laser Cutting (%s minutes, Material Cost: LKR %s)", req.Duration.String(), mc.String())
		if mc.IsPositive() {
			rate = rate.Add(*mc)
		}
	}
	rate = rate.Round(shared.MoneyPlaces)

	return &ItemResponse{
		ItemDescription: description,
		Quantity:        int(qty.IntPart()),
		Rate:            rate,
		LineTotal:       rate.Mul(qty),
	}, nil
}

func scanLabel(c product.Category) string {
	if c == product.CategoryWeddingInvitations {
		return "Wedding Invitation"
	}
	return string(c)
}
