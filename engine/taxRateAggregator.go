package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
)

// RateBase is one tax bucket before its tax amount has been applied.
type RateBase struct {
	Rate decimal.Decimal
	Base decimal.Decimal
}

// Aggregate groups lines by exact nominal rate, accumulating each line's
// net amount (per-line discount already subtracted) into that rate's base.
// Buckets are created lazily, one per distinct rate, and returned sorted by
// descending rate, the order tax breakdowns are displayed in. The result is
// independent of line order.
func Aggregate(lines []models.LineItem) []RateBase {
	baseByRate := make(map[string]decimal.Decimal)
	rates := make(map[string]decimal.Decimal)

	for _, line := range lines {
		key := line.TaxRate.String()
		baseByRate[key] = baseByRate[key].Add(line.NetAmount())
		rates[key] = line.TaxRate
	}

	buckets := make([]RateBase, 0, len(baseByRate))
	for key, base := range baseByRate {
		buckets = append(buckets, RateBase{Rate: rates[key], Base: base})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Rate.GreaterThan(buckets[j].Rate)
	})
	return buckets
}
