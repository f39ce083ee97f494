package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
)

var defaultRate = decimal.RequireFromString("20")

func TestNormalize_TimeEntries(t *testing.T) {
	timeEntries := []models.TimeEntry{
		{ID: 1, DurationSeconds: 5400, HourlyRate: decimal.RequireFromString("80"), Project: "Refonte", Task: "API"},
		{ID: 2, DurationSeconds: 3600, HourlyRate: decimal.RequireFromString("100"), Project: "Refonte"},
	}
	selected := map[int]bool{1: true, 2: true}

	lines := Normalize(timeEntries, selected, nil, nil, nil, defaultRate)

	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	// 1.5h at 80/h
	requireEqual(t, "lines[0].Amount", lines[0].Amount(), "120")
	requireEqual(t, "lines[0].TaxRate", lines[0].TaxRate, "20")
	if lines[0].Description != "API" {
		t.Errorf("description = %q, want task name", lines[0].Description)
	}
	if lines[0].Source != models.LineSourceTimeEntry {
		t.Errorf("source = %q, want TimeEntry", lines[0].Source)
	}
	// Task missing, project name used instead.
	if lines[1].Description != "Refonte" {
		t.Errorf("description = %q, want project fallback", lines[1].Description)
	}
	requireEqual(t, "lines[1].Amount", lines[1].Amount(), "100")
}

func TestNormalize_SelectionFilters(t *testing.T) {
	timeEntries := []models.TimeEntry{
		{ID: 1, DurationSeconds: 3600, HourlyRate: decimal.RequireFromString("50")},
		{ID: 2, DurationSeconds: 3600, HourlyRate: decimal.RequireFromString("60")},
	}
	expenses := []models.Expense{
		{ID: 10, Amount: decimal.RequireFromString("42.50"), Description: "Train"},
		{ID: 11, Amount: decimal.RequireFromString("99"), Description: "Hotel"},
	}

	lines := Normalize(timeEntries, map[int]bool{2: true}, expenses, map[int]bool{10: true}, nil, defaultRate)

	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2 (one entry, one expense)", len(lines))
	}
	requireEqual(t, "time line amount", lines[0].Amount(), "60")
	requireEqual(t, "expense amount", lines[1].Amount(), "42.50")
	if lines[1].Source != models.LineSourceExpense {
		t.Errorf("source = %q, want Expense", lines[1].Source)
	}
}

func TestNormalize_CustomItems(t *testing.T) {
	reduced := decimal.RequireFromString("5.5")
	percent := models.DiscountTypePercent

	items := []models.CustomItem{
		{Description: "Forfait", Qty: decimal.RequireFromString("1"), UnitRate: decimal.RequireFromString("1200")},
		{Description: "Livres", Qty: decimal.RequireFromString("10"), UnitRate: decimal.RequireFromString("15"), TaxRate: &reduced},
		{Description: "Remise ligne", Qty: decimal.RequireFromString("2"), UnitRate: decimal.RequireFromString("100"),
			Discount: decimal.RequireFromString("10"), DiscountType: &percent},
	}

	lines := Normalize(nil, nil, nil, nil, items, defaultRate)

	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	// No explicit rate, default applies.
	requireEqual(t, "lines[0].TaxRate", lines[0].TaxRate, "20")
	// Explicit per-item rate wins over the default.
	requireEqual(t, "lines[1].TaxRate", lines[1].TaxRate, "5.5")
	// Percentage per-line discount resolved to an absolute amount: 10% of 200.
	requireEqual(t, "lines[2].Discount", lines[2].Discount, "20")
	requireEqual(t, "lines[2].NetAmount", lines[2].NetAmount(), "180")
}

func TestNormalize_KeepsInvalidRowsForPreviews(t *testing.T) {
	items := []models.CustomItem{
		{Description: "", Qty: decimal.RequireFromString("1"), UnitRate: decimal.RequireFromString("100")},
		{Description: "Zero qty", Qty: decimal.Zero, UnitRate: decimal.RequireFromString("100")},
	}

	lines := Normalize(nil, nil, nil, nil, items, defaultRate)
	if len(lines) != 2 {
		t.Fatalf("preview normalization dropped rows: got %d, want 2", len(lines))
	}

	valid := FilterValidCustomItems(items)
	if len(valid) != 0 {
		t.Fatalf("submission filter kept invalid rows: got %d, want 0", len(valid))
	}
}

func TestFilterValidCustomItems(t *testing.T) {
	items := []models.CustomItem{
		{Description: "ok", Qty: decimal.RequireFromString("1"), UnitRate: decimal.RequireFromString("10")},
		{Description: "   ", Qty: decimal.RequireFromString("1"), UnitRate: decimal.RequireFromString("10")},
		{Description: "free", Qty: decimal.RequireFromString("1"), UnitRate: decimal.Zero},
		{Description: "negative", Qty: decimal.RequireFromString("-1"), UnitRate: decimal.RequireFromString("10")},
	}

	valid := FilterValidCustomItems(items)
	if len(valid) != 1 || valid[0].Description != "ok" {
		t.Fatalf("valid rows = %d, want exactly the one well-formed row", len(valid))
	}
}
