package engine

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
	"github.com/facturio/billing_backend/utils"
)

// DiscountMode selects how a document's discount reaches the tax buckets.
type DiscountMode string

const (
	// DiscountModeDocument applies one document-level discount,
	// distributed rate-proportionally across buckets. Invoices use this.
	DiscountModeDocument DiscountMode = "Document"
	// DiscountModePerLine relies on per-line discounts already netted into
	// each line; no allocation happens and the document discount spec is
	// ignored. Quotes use this.
	DiscountModePerLine DiscountMode = "PerLine"
)

// ComputeTotals produces the full totals breakdown for one document. It is
// deterministic and allocation-order independent: the same lines and
// discount always produce the same Totals, whatever order the lines arrive
// in. Degenerate inputs (no lines, zero amounts) compute to zeros rather
// than failing, since this feeds a per-keystroke preview.
func ComputeTotals(lines []models.LineItem, discount models.DiscountSpec, mode DiscountMode) models.Totals {

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.NetAmount())
	}

	buckets := Aggregate(lines)

	discountAmount := decimal.Zero
	if mode == DiscountModeDocument {
		buckets, discountAmount = AllocateDiscount(buckets, subtotal, discount)
	}

	taxByRate := make([]models.TaxBucket, len(buckets))
	taxTotal := decimal.Zero
	for i, b := range buckets {
		taxAmount := utils.CalculateTaxAmount(b.Base, b.Rate)
		taxByRate[i] = models.TaxBucket{Rate: b.Rate, Base: b.Base, TaxAmount: taxAmount}
		taxTotal = taxTotal.Add(taxAmount)
	}

	return models.Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxTotal,
		Total:          subtotal.Sub(discountAmount).Add(taxTotal),
		TaxByRate:      taxByRate,
	}
}

// ComputeInvoiceTotals is the invoice form's entry point: document-level
// discount, rate-proportional allocation.
func ComputeInvoiceTotals(lines []models.LineItem, discount models.DiscountSpec) models.Totals {
	return ComputeTotals(lines, discount, DiscountModeDocument)
}

// ComputeQuoteTotals is the quote form's entry point: per-line discounts
// only, nothing to allocate.
func ComputeQuoteTotals(lines []models.LineItem) models.Totals {
	return ComputeTotals(lines, models.DiscountSpec{}, DiscountModePerLine)
}
