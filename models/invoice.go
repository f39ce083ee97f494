package models

import (
	"github.com/shopspring/decimal"
)

// TaxBucket accumulates the taxable base and tax amount for one nominal
// rate. One bucket exists per distinct rate present in the line set.
type TaxBucket struct {
	Rate      decimal.Decimal `json:"rate"`
	Base      decimal.Decimal `json:"base"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
}

// DiscountSpec is a document-level discount. A percentage discount is read
// against the pre-discount subtotal; values above 100 are not rejected here.
type DiscountSpec struct {
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
	Type   DiscountType    `json:"type"`
}

// Totals is the engine output for one document. TaxByRate is ordered by
// descending rate, which is the display order; ordering never affects the
// scalar totals.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	TaxByRate      []TaxBucket     `json:"tax_by_rate"`
}

// BucketForRate returns the bucket for an exact rate, if present.
func (t Totals) BucketForRate(rate decimal.Decimal) (TaxBucket, bool) {
	for _, b := range t.TaxByRate {
		if b.Rate.Equal(rate) {
			return b, true
		}
	}
	return TaxBucket{}, false
}

// Invoice carries the fields the settlement engine and lifecycle gate read.
// Everything else about an invoice (numbering, dates, payment terms, PDF
// rendering) lives behind the persistence API.
type Invoice struct {
	ID            int             `json:"id"`
	ClientId      int             `json:"client_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Type          InvoiceType     `json:"type"`
	Total         decimal.Decimal `json:"total"`
	CurrentStatus InvoiceStatus   `json:"current_status"`
	AdvanceIds    []int           `json:"advance_ids,omitempty"`
}
