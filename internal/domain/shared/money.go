package shared

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places stored for LKR amounts
const MoneyPlaces = 2

// IsMoney reports whether d is stored without rounding
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}
