package invoice

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals are the presentation figures of a document. They are never persisted.
type Totals struct {
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	NetTotal        decimal.Decimal
	Paid            decimal.Decimal
	BalanceDue      decimal.Decimal
}

// ComputeTotals applies a percentage discount and an absolute advance to a subtotal:
// net = total - total*discount/100, balance = net - advance.
func ComputeTotals(total, discountPercent, advance decimal.Decimal) Totals {
	discount := total.Mul(discountPercent).Div(hundred)
	net := total.Sub(discount)
	return Totals{
		Subtotal:        total,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		NetTotal:        net,
		Paid:            advance,
		BalanceDue:      net.Sub(advance),
	}
}
