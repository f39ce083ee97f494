package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
)

func advance(id, clientId int, total string) models.Invoice {
	return models.Invoice{
		ID:            id,
		ClientId:      clientId,
		InvoiceNumber: "ADV-" + decimal.NewFromInt(int64(id)).String(),
		Type:          models.InvoiceTypeAdvance,
		Total:         decimal.RequireFromString(total),
		CurrentStatus: models.InvoiceStatusPaid,
	}
}

func finalTotals(total string) models.Totals {
	return models.Totals{Total: decimal.RequireFromString(total)}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name          string
		finalTotal    string
		advances      []models.Invoice
		wantAdvances  string
		wantRemaining string
	}{
		{
			name:          "advances partially cover the final invoice",
			finalTotal:    "1000",
			advances:      []models.Invoice{advance(1, 7, "100"), advance(2, 7, "200")},
			wantAdvances:  "300",
			wantRemaining: "700",
		},
		{
			name:          "overpaying advances floor at zero",
			finalTotal:    "1000",
			advances:      []models.Invoice{advance(1, 7, "900"), advance(2, 7, "600")},
			wantAdvances:  "1500",
			wantRemaining: "0",
		},
		{
			name:          "no advances selected behaves like a standard invoice",
			finalTotal:    "1000",
			advances:      nil,
			wantAdvances:  "0",
			wantRemaining: "1000",
		},
		{
			name:          "advances exactly cover the final invoice",
			finalTotal:    "450.50",
			advances:      []models.Invoice{advance(1, 7, "450.50")},
			wantAdvances:  "450.50",
			wantRemaining: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Settle(finalTotals(tt.finalTotal), tt.advances)

			requireEqual(t, "AdvancesTotal", result.AdvancesTotal, tt.wantAdvances)
			requireEqual(t, "RemainingBalance", result.RemainingBalance, tt.wantRemaining)
			if len(result.Advances) != len(tt.advances) {
				t.Errorf("breakdown lines = %d, want %d", len(result.Advances), len(tt.advances))
			}
			if result.RemainingBalance.IsNegative() {
				t.Errorf("remaining balance went negative: %s", result.RemainingBalance)
			}
		})
	}
}

func TestSettle_DoesNotMutateInputs(t *testing.T) {
	advances := []models.Invoice{advance(1, 7, "100")}
	totals := finalTotals("500")

	Settle(totals, advances)

	requireEqual(t, "advance total", advances[0].Total, "100")
	requireEqual(t, "final total", totals.Total, "500")
}

func TestFilterAdvancesForClient(t *testing.T) {
	candidates := []models.Invoice{
		advance(1, 7, "100"),
		advance(2, 8, "200"),
		advance(3, 7, "300"),
	}

	filtered := FilterAdvancesForClient(7, candidates)

	if len(filtered) != 2 {
		t.Fatalf("filtered count = %d, want 2", len(filtered))
	}
	for _, adv := range filtered {
		if adv.ClientId != 7 {
			t.Errorf("advance %d kept for wrong client %d", adv.ID, adv.ClientId)
		}
	}
}

func TestAdvanceAmount(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		percentage string
		want       string
	}{
		{"thirty percent", "1000", "30", "300"},
		{"fractional result", "333.33", "50", "166.665"},
		{"zero percentage", "1000", "0", "0"},
		{"negative percentage resolves to zero", "1000", "-10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceAmount(decimal.RequireFromString(tt.target), decimal.RequireFromString(tt.percentage))
			requireEqual(t, "AdvanceAmount", got, tt.want)
		})
	}
}
