package models

import (
	"github.com/shopspring/decimal"
)

// CreditNote records a reconciliation amount owed back to a client, e.g.
// when selected advances overpay a final invoice. Issued and applied notes
// are append-only: they may be sent, downloaded or printed, never edited.
type CreditNote struct {
	ID               int              `json:"id"`
	ClientId         int              `json:"client_id"`
	CreditNoteNumber string           `json:"credit_note_number"`
	Total            decimal.Decimal  `json:"total"`
	CurrentStatus    CreditNoteStatus `json:"current_status"`
}
