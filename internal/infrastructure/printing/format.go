package printing

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatLKR renders an amount with digit grouping and two decimals.
// Example: 12345.5 -> "LKR 12,345.50"
func FormatLKR(d decimal.Decimal) string {
	return "LKR " + formatAmount(d)
}

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return amountPrinter.Sprint(number.Decimal(f, number.Scale(2)))
}

// formatPercent renders a discount percentage. Example: 10 -> "10.00 %"
func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + " %"
}

// formatQuantity prints whole quantities without decimals
func formatQuantity(d decimal.Decimal) string {
	return d.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
