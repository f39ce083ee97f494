package models

import (
	"encoding/json"
	"errors"

	"github.com/facturio/billing_backend/utils"
)

type DocumentKind string

const (
	DocumentKindInvoice    DocumentKind = "Invoice"
	DocumentKindQuote      DocumentKind = "Quote"
	DocumentKindCreditNote DocumentKind = "CreditNote"
)

func (k *DocumentKind) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	kinds := map[string]DocumentKind{
		"Invoice":    DocumentKindInvoice,
		"Quote":      DocumentKindQuote,
		"CreditNote": DocumentKindCreditNote,
	}
	var ok bool
	*k, ok = kinds[str]
	if !ok {
		return utils.ErrorUnknownDocumentKind
	}
	return nil
}

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusSent      InvoiceStatus = "Sent"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

func (s *InvoiceStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	invoiceStatus := map[string]InvoiceStatus{
		"Draft":     InvoiceStatusDraft,
		"Sent":      InvoiceStatusSent,
		"Paid":      InvoiceStatusPaid,
		"Cancelled": InvoiceStatusCancelled,
	}
	var ok bool
	*s, ok = invoiceStatus[str]
	if !ok {
		return errors.New("invalid InvoiceStatus")
	}
	return nil
}

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Draft"
	QuoteStatusSent     QuoteStatus = "Sent"
	QuoteStatusAccepted QuoteStatus = "Accepted"
	QuoteStatusRejected QuoteStatus = "Rejected"
	QuoteStatusExpired  QuoteStatus = "Expired"
)

func (s *QuoteStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	quoteStatus := map[string]QuoteStatus{
		"Draft":    QuoteStatusDraft,
		"Sent":     QuoteStatusSent,
		"Accepted": QuoteStatusAccepted,
		"Rejected": QuoteStatusRejected,
		"Expired":  QuoteStatusExpired,
	}
	var ok bool
	*s, ok = quoteStatus[str]
	if !ok {
		return errors.New("invalid QuoteStatus")
	}
	return nil
}

type CreditNoteStatus string

const (
	CreditNoteStatusDraft   CreditNoteStatus = "Draft"
	CreditNoteStatusIssued  CreditNoteStatus = "Issued"
	CreditNoteStatusApplied CreditNoteStatus = "Applied"
)

func (s *CreditNoteStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	creditNoteStatus := map[string]CreditNoteStatus{
		"Draft":   CreditNoteStatusDraft,
		"Issued":  CreditNoteStatusIssued,
		"Applied": CreditNoteStatusApplied,
	}
	var ok bool
	*s, ok = creditNoteStatus[str]
	if !ok {
		return errors.New("invalid CreditNoteStatus")
	}
	return nil
}

type InvoiceType string

const (
	InvoiceTypeStandard InvoiceType = "Standard"
	InvoiceTypeAdvance  InvoiceType = "Advance"
	InvoiceTypeFinal    InvoiceType = "Final"
)

func (t *InvoiceType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	invoiceType := map[string]InvoiceType{
		"Standard": InvoiceTypeStandard,
		"Advance":  InvoiceTypeAdvance,
		"Final":    InvoiceTypeFinal,
	}
	var ok bool
	*t, ok = invoiceType[str]
	if !ok {
		return errors.New("invalid InvoiceType")
	}
	return nil
}

// DiscountType selects how a discount value is read: "P" as a percentage of
// the amount it applies to, "A" as an absolute amount.
type DiscountType string

const (
	DiscountTypePercent DiscountType = "P"
	DiscountTypeAmount  DiscountType = "A"
)

func (t *DiscountType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	switch str {
	case "P":
		*t = DiscountTypePercent
	case "A":
		*t = DiscountTypeAmount
	default:
		return errors.New("invalid DiscountType")
	}
	return nil
}

// LineSource records which billing source a normalized line came from.
type LineSource string

const (
	LineSourceTimeEntry LineSource = "TimeEntry"
	LineSourceExpense   LineSource = "Expense"
	LineSourceCustom    LineSource = "Custom"
)
