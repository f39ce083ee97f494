package utils

import (
	"github.com/shopspring/decimal"
)

// CalculateTaxAmount applies a nominal percentage rate to a taxable base.
// Tax-exclusive: (base / 100) * rate. The DivRound precision of 4 is the
// rounding point for every per-bucket tax amount.
func CalculateTaxAmount(base decimal.Decimal, taxRate decimal.Decimal) decimal.Decimal {
	if taxRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return base.DivRound(decimal.NewFromInt(100), 4).Mul(taxRate)
}

// CalculateDiscountAmount resolves a discount value to an absolute amount.
// Type "P" reads the value as a percentage of subTotal, anything else as an
// absolute amount. Negative and zero discounts resolve to zero.
func CalculateDiscountAmount(subTotal decimal.Decimal, discount decimal.Decimal, discountType string) decimal.Decimal {

	var discountAmount decimal.Decimal

	decimalOneHundred := decimal.NewFromInt(100)

	if discount.GreaterThan(decimal.Zero) {
		if discountType == "P" {
			discountAmount = subTotal.Mul(discount).DivRound(decimalOneHundred, 4)
		} else {
			discountAmount = discount
		}
	} else {
		discountAmount = decimal.Zero
	}

	return discountAmount
}
