package invoice

import (
	"fmt"
	"math"
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineItem is one row of an invoice
type LineItem struct {
	Description string
	Quantity    int
	Rate        decimal.Decimal
	LineTotal   decimal.Decimal
}

// IsConsistent reports whether LineTotal equals Quantity x Rate
func (l LineItem) IsConsistent() bool {
	return l.LineTotal.Equal(l.Rate.Mul(decimal.NewFromInt(int64(l.Quantity))))
}

// MaxQuantity is the largest quantity a line item may carry
const MaxQuantity = math.MaxInt32

var (
	minQuantity = decimal.NewFromInt(1)
	maxQuantity = decimal.NewFromInt(MaxQuantity)
)

// ItemDraft is an unvalidated line item; nil numbers were absent from the request.
type ItemDraft struct {
	Description string
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
	LineTotal   *decimal.Decimal
}

func (d ItemDraft) validate(idx int, v *shared.Violations) {
	prefix := fmt.Sprintf("Item at index %d: ", idx)
	if strings.TrimSpace(d.Description) == "" {
		v.Add(prefix + "Item_Description must be a non-empty string.")
	}
	switch {
	case d.Quantity == nil || !d.Quantity.IsInteger() || d.Quantity.LessThan(minQuantity):
		v.Add(prefix + "Quantity must be an integer greater than or equal to 1.")
	case d.Quantity.GreaterThan(maxQuantity):
		v.Add(prefix + fmt.Sprintf("Quantity cannot exceed %d.", MaxQuantity))
	}
	switch {
	case d.Rate == nil || d.Rate.IsNegative():
		v.Add(prefix + "Rate must be a non-negative number.")
	case !shared.IsMoney(*d.Rate):
		v.Add(prefix + "Rate must have at most 2 decimal places.")
	}
	switch {
	case d.LineTotal == nil || d.LineTotal.IsNegative():
		v.Add(prefix + "Line_Total must be a non-negative number.")
	case !shared.IsMoney(*d.LineTotal):
		v.Add(prefix + "Line_Total must have at most 2 decimal places.")
	}
}

// ValidateItem checks a single line item draft
func ValidateItem(idx int, d ItemDraft) error {
	var v shared.Violations
	d.validate(idx, &v)
	return v.Err()
}

func (d ItemDraft) toLineItem() LineItem {
	return LineItem{
		Description: strings.TrimSpace(d.Description),
		Quantity:    int(d.Quantity.IntPart()),
		Rate:        *d.Rate,
		LineTotal:   *d.LineTotal,
	}
}
