package models

import (
	"github.com/shopspring/decimal"
)

// Quote mirrors Invoice for the fields this engine reads. Quotes carry
// per-line discounts only; there is no document-level discount to allocate.
type Quote struct {
	ID            int             `json:"id"`
	ClientId      int             `json:"client_id"`
	QuoteNumber   string          `json:"quote_number"`
	Total         decimal.Decimal `json:"total"`
	CurrentStatus QuoteStatus     `json:"current_status"`
	// InvoiceId is set once an accepted quote has been converted.
	InvoiceId int `json:"invoice_id,omitempty"`
}
