package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TimeEntry is the billable slice of a tracked work session as returned by
// the time-tracking API. Only the fields the totals engine consumes are kept.
type TimeEntry struct {
	ID              int             `json:"id" binding:"required"`
	DurationSeconds int64           `json:"duration_seconds"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	Project         string          `json:"project"`
	Task            string          `json:"task"`
}

// Amount bills the entry at its hourly rate, hours kept fractional.
func (te TimeEntry) Amount() decimal.Decimal {
	hours := decimal.NewFromInt(te.DurationSeconds).DivRound(decimal.NewFromInt(3600), 6)
	return hours.Mul(te.HourlyRate)
}

type Expense struct {
	ID          int             `json:"id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// CustomItem is a free-form billing row typed directly into the document
// form. TaxRate is nil when the row should inherit the configured default.
// Discount is an absolute per-line amount unless DiscountType says otherwise.
type CustomItem struct {
	Description  string           `json:"description"`
	Qty          decimal.Decimal  `json:"qty"`
	UnitRate     decimal.Decimal  `json:"unit_rate"`
	TaxRate      *decimal.Decimal `json:"tax_rate"`
	Discount     decimal.Decimal  `json:"discount"`
	DiscountType *DiscountType    `json:"discount_type"`
}

// IsValid reports whether the row qualifies for a submission payload.
// Invalid rows may still sit in form state; the caller filters them out
// before submitting, while live previews compute over whatever is present.
func (ci CustomItem) IsValid() bool {
	return strings.TrimSpace(ci.Description) != "" &&
		ci.Qty.GreaterThan(decimal.Zero) &&
		ci.UnitRate.GreaterThan(decimal.Zero)
}

// LineItem is the uniform representation every billing source normalizes
// into before rate grouping. Discount is the per-line discount already
// resolved to an absolute amount.
type LineItem struct {
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Source      LineSource      `json:"source"`
}

// Amount is the line's pre-discount contribution to the subtotal.
func (li LineItem) Amount() decimal.Decimal {
	return li.Qty.Mul(li.UnitRate)
}

// NetAmount is Amount with the per-line discount netted out.
func (li LineItem) NetAmount() decimal.Decimal {
	return li.Amount().Sub(li.Discount)
}
