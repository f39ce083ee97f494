package models

import "testing"

func TestCanMutate(t *testing.T) {
	tests := []struct {
		kind   DocumentKind
		status string
		want   bool
	}{
		{DocumentKindInvoice, "Draft", true},
		{DocumentKindInvoice, "Sent", true},
		{DocumentKindInvoice, "Paid", false},
		{DocumentKindInvoice, "Cancelled", false},

		{DocumentKindQuote, "Draft", true},
		{DocumentKindQuote, "Sent", true},
		{DocumentKindQuote, "Accepted", false},
		{DocumentKindQuote, "Rejected", false},
		{DocumentKindQuote, "Expired", false},

		{DocumentKindCreditNote, "Draft", true},
		{DocumentKindCreditNote, "Issued", false},
		{DocumentKindCreditNote, "Applied", false},

		{DocumentKind("Unknown"), "Draft", false},
		{DocumentKindInvoice, "NotAStatus", false},
	}

	for _, tt := range tests {
		if got := CanMutate(tt.kind, tt.status); got != tt.want {
			t.Errorf("CanMutate(%s, %s) = %v, want %v", tt.kind, tt.status, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		kind    DocumentKind
		current string
		target  string
		want    bool
	}{
		{DocumentKindInvoice, "Draft", "Sent", true},
		{DocumentKindInvoice, "Sent", "Paid", true},
		{DocumentKindInvoice, "Sent", "Cancelled", true},
		{DocumentKindInvoice, "Draft", "Paid", false},
		{DocumentKindInvoice, "Paid", "Sent", false},
		{DocumentKindInvoice, "Cancelled", "Draft", false},

		{DocumentKindQuote, "Draft", "Sent", true},
		// A sent quote may be pulled back to draft.
		{DocumentKindQuote, "Sent", "Draft", true},
		{DocumentKindQuote, "Sent", "Accepted", true},
		{DocumentKindQuote, "Sent", "Rejected", true},
		{DocumentKindQuote, "Sent", "Expired", true},
		{DocumentKindQuote, "Draft", "Accepted", false},
		{DocumentKindQuote, "Accepted", "Sent", false},
		{DocumentKindQuote, "Expired", "Draft", false},

		{DocumentKindCreditNote, "Draft", "Issued", true},
		{DocumentKindCreditNote, "Issued", "Applied", true},
		{DocumentKindCreditNote, "Draft", "Applied", false},
		{DocumentKindCreditNote, "Applied", "Draft", false},

		{DocumentKind("Unknown"), "Draft", "Sent", false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.kind, tt.current, tt.target); got != tt.want {
			t.Errorf("CanTransition(%s, %s, %s) = %v, want %v", tt.kind, tt.current, tt.target, got, tt.want)
		}
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		kind   DocumentKind
		status string
		want   bool
	}{
		{DocumentKindInvoice, "Draft", true},
		{DocumentKindInvoice, "Sent", false},
		{DocumentKindQuote, "Draft", true},
		{DocumentKindQuote, "Sent", false},
		{DocumentKindCreditNote, "Draft", true},
		// Issued and applied credit notes are append-only.
		{DocumentKindCreditNote, "Issued", false},
		{DocumentKindCreditNote, "Applied", false},
	}

	for _, tt := range tests {
		if got := CanDelete(tt.kind, tt.status); got != tt.want {
			t.Errorf("CanDelete(%s, %s) = %v, want %v", tt.kind, tt.status, got, tt.want)
		}
	}
}

func TestQuoteCanConvert(t *testing.T) {
	tests := []struct {
		name  string
		quote Quote
		want  bool
	}{
		{"accepted unconverted", Quote{CurrentStatus: QuoteStatusAccepted}, true},
		{"accepted already converted", Quote{CurrentStatus: QuoteStatusAccepted, InvoiceId: 12}, false},
		{"sent", Quote{CurrentStatus: QuoteStatusSent}, false},
		{"draft", Quote{CurrentStatus: QuoteStatusDraft}, false},
		{"rejected", Quote{CurrentStatus: QuoteStatusRejected}, false},
	}

	for _, tt := range tests {
		if got := tt.quote.CanConvert(); got != tt.want {
			t.Errorf("%s: CanConvert() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
