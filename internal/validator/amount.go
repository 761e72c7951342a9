// internal/validator/amount.go

package validator

import "github.com/shopspring/decimal"

// PositiveAmount 金額必須嚴格大於 0。
func PositiveAmount(d decimal.Decimal) bool {
	return d.IsPositive()
}
