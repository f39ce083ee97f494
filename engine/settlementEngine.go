package engine

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
)

// AdvanceLine is one credited advance as rendered in the settlement
// breakdown of a final invoice.
type AdvanceLine struct {
	ID            int             `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Total         decimal.Decimal `json:"total"`
}

type SettlementResult struct {
	AdvancesTotal    decimal.Decimal `json:"advances_total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Advances         []AdvanceLine   `json:"advances"`
}

// Settle computes what remains due on a final invoice after crediting the
// selected advances. The remaining balance floors at zero: a final invoice
// is never presented negative, overpayment is the credit-note domain's
// concern. An empty selection simply leaves the full total due.
//
// The engine trusts the selection: the caller filters advances to the final
// invoice's client before calling (see FilterAdvancesForClient). Nothing is
// mutated; selection state belongs to the caller and Settle is re-run on
// every selection change.
func Settle(finalTotals models.Totals, selectedAdvances []models.Invoice) SettlementResult {

	advancesTotal := decimal.Zero
	advances := make([]AdvanceLine, 0, len(selectedAdvances))
	for _, adv := range selectedAdvances {
		advancesTotal = advancesTotal.Add(adv.Total)
		advances = append(advances, AdvanceLine{
			ID:            adv.ID,
			InvoiceNumber: adv.InvoiceNumber,
			Total:         adv.Total,
		})
	}

	remaining := finalTotals.Total.Sub(advancesTotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return SettlementResult{
		AdvancesTotal:    advancesTotal,
		RemainingBalance: remaining,
		Advances:         advances,
	}
}

// FilterAdvancesForClient narrows a candidate list to the advances a final
// invoice for the given client may settle against. Advances never apply
// across clients.
func FilterAdvancesForClient(clientId int, advances []models.Invoice) []models.Invoice {
	filtered := make([]models.Invoice, 0, len(advances))
	for _, adv := range advances {
		if adv.ClientId == clientId {
			filtered = append(filtered, adv)
		}
	}
	return filtered
}

// AdvanceAmount computes the amount of an advance invoice raised as a
// percentage of a target total, the same way a percentage discount is
// resolved.
func AdvanceAmount(targetTotal decimal.Decimal, advancePercentage decimal.Decimal) decimal.Decimal {
	if advancePercentage.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return targetTotal.Mul(advancePercentage).DivRound(decimal.NewFromInt(100), 4)
}
