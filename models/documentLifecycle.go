package models

// statusMachine is one document kind's transition table plus the status
// sets gating edits and deletes. Statuses are compared as plain strings so
// a single machine shape serves Invoice, Quote and CreditNote.
type statusMachine struct {
	transitions map[string][]string
	mutable     map[string]bool
	deletable   map[string]bool
}

func (m statusMachine) canTransition(current, target string) bool {
	for _, next := range m.transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

var invoiceMachine = statusMachine{
	transitions: map[string][]string{
		string(InvoiceStatusDraft): {string(InvoiceStatusSent)},
		string(InvoiceStatusSent):  {string(InvoiceStatusPaid), string(InvoiceStatusCancelled)},
	},
	mutable: map[string]bool{
		string(InvoiceStatusDraft): true,
		string(InvoiceStatusSent):  true,
	},
	deletable: map[string]bool{
		string(InvoiceStatusDraft): true,
	},
}

var quoteMachine = statusMachine{
	transitions: map[string][]string{
		string(QuoteStatusDraft): {string(QuoteStatusSent)},
		string(QuoteStatusSent): {
			string(QuoteStatusDraft),
			string(QuoteStatusAccepted),
			string(QuoteStatusRejected),
			string(QuoteStatusExpired),
		},
	},
	mutable: map[string]bool{
		string(QuoteStatusDraft): true,
		string(QuoteStatusSent):  true,
	},
	deletable: map[string]bool{
		string(QuoteStatusDraft): true,
	},
}

var creditNoteMachine = statusMachine{
	transitions: map[string][]string{
		string(CreditNoteStatusDraft):  {string(CreditNoteStatusIssued)},
		string(CreditNoteStatusIssued): {string(CreditNoteStatusApplied)},
	},
	mutable: map[string]bool{
		string(CreditNoteStatusDraft): true,
	},
	deletable: map[string]bool{
		string(CreditNoteStatusDraft): true,
	},
}

func machineFor(kind DocumentKind) (statusMachine, bool) {
	switch kind {
	case DocumentKindInvoice:
		return invoiceMachine, true
	case DocumentKindQuote:
		return quoteMachine, true
	case DocumentKindCreditNote:
		return creditNoteMachine, true
	}
	return statusMachine{}, false
}

// CanTransition reports whether the kind's table allows moving a document
// from current to target. Unknown kinds and unknown statuses are never
// allowed. The move itself is the server's job; this gate only decides
// whether an action button should fire at all.
func CanTransition(kind DocumentKind, current, target string) bool {
	m, ok := machineFor(kind)
	if !ok {
		return false
	}
	return m.canTransition(current, target)
}

// CanMutate reports whether a document in the given status accepts edits.
// It is consulted before an edit screen is shown or a save is submitted so
// a locked document never produces a network call.
func CanMutate(kind DocumentKind, current string) bool {
	m, ok := machineFor(kind)
	if !ok {
		return false
	}
	return m.mutable[current]
}

// CanDelete reports whether a document in the given status may be deleted.
func CanDelete(kind DocumentKind, current string) bool {
	m, ok := machineFor(kind)
	if !ok {
		return false
	}
	return m.deletable[current]
}

// CanConvert reports whether a quote may be converted into an invoice.
// Only an accepted quote that has not already been converted qualifies.
func (q Quote) CanConvert() bool {
	return q.CurrentStatus == QuoteStatusAccepted && q.InvoiceId == 0
}
