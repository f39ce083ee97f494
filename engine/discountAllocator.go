package engine

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
	"github.com/facturio/billing_backend/utils"
)

// AllocateDiscount resolves a document-level discount and distributes it
// proportionally across the tax buckets, so each rate's base shrinks by the
// same ratio the subtotal does. Returns the shrunk buckets and the resolved
// discount amount.
//
// A fixed discount larger than the subtotal is not clamped: the discount
// amount is returned as-is and the document total may go negative. With a
// zero subtotal the ratio is defined as zero, so there is no division and
// the buckets pass through untouched.
func AllocateDiscount(buckets []RateBase, subtotalPreDiscount decimal.Decimal, discount models.DiscountSpec) ([]RateBase, decimal.Decimal) {

	discountAmount := utils.CalculateDiscountAmount(subtotalPreDiscount, discount.Amount, string(discount.Type))

	if discountAmount.IsZero() || subtotalPreDiscount.IsZero() {
		return buckets, discountAmount
	}

	discountRatio := discountAmount.Div(subtotalPreDiscount)

	allocated := make([]RateBase, len(buckets))
	for i, b := range buckets {
		allocated[i] = RateBase{
			Rate: b.Rate,
			Base: b.Base.Sub(b.Base.Mul(discountRatio)),
		}
	}
	return allocated, discountAmount
}
