// Package engine holds the totals and settlement computations shared by the
// invoice, quote and final-invoice screens. Every exported function is a
// pure function of its inputs: the engine keeps no state between calls and
// is cheap enough to re-run on every keystroke of a document form.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/billing_backend/models"
	"github.com/facturio/billing_backend/utils"
)

// Normalize flattens the three billing sources into one uniform line list.
// Time entries and expenses contribute only when their id is selected, and
// always at the default rate since their records carry none. Custom items
// are passed through as-is, including rows that would not survive submission
// validation, so a live preview reflects exactly what the form shows.
func Normalize(
	timeEntries []models.TimeEntry,
	selectedTimeEntryIds map[int]bool,
	expenses []models.Expense,
	selectedExpenseIds map[int]bool,
	customItems []models.CustomItem,
	defaultTaxRate decimal.Decimal,
) []models.LineItem {

	lines := make([]models.LineItem, 0, len(timeEntries)+len(expenses)+len(customItems))

	for _, te := range timeEntries {
		if !selectedTimeEntryIds[te.ID] {
			continue
		}
		description := te.Task
		if description == "" {
			description = te.Project
		}
		hours := decimal.NewFromInt(te.DurationSeconds).DivRound(decimal.NewFromInt(3600), 6)
		lines = append(lines, models.LineItem{
			Description: description,
			Qty:         hours,
			UnitRate:    te.HourlyRate,
			TaxRate:     defaultTaxRate,
			Discount:    decimal.Zero,
			Source:      models.LineSourceTimeEntry,
		})
	}

	for _, ex := range expenses {
		if !selectedExpenseIds[ex.ID] {
			continue
		}
		lines = append(lines, models.LineItem{
			Description: ex.Description,
			Qty:         decimal.NewFromInt(1),
			UnitRate:    ex.Amount,
			TaxRate:     defaultTaxRate,
			Discount:    decimal.Zero,
			Source:      models.LineSourceExpense,
		})
	}

	for _, ci := range customItems {
		taxRate := defaultTaxRate
		if ci.TaxRate != nil {
			taxRate = *ci.TaxRate
		}
		discountType := models.DiscountTypeAmount
		if ci.DiscountType != nil {
			discountType = *ci.DiscountType
		}
		discount := utils.CalculateDiscountAmount(ci.Qty.Mul(ci.UnitRate), ci.Discount, string(discountType))
		lines = append(lines, models.LineItem{
			Description: ci.Description,
			Qty:         ci.Qty,
			UnitRate:    ci.UnitRate,
			TaxRate:     taxRate,
			Discount:    discount,
			Source:      models.LineSourceCustom,
		})
	}

	return lines
}

// FilterValidCustomItems keeps only the rows that qualify for a submission
// payload. Live previews skip this filter.
func FilterValidCustomItems(items []models.CustomItem) []models.CustomItem {
	valid := make([]models.CustomItem, 0, len(items))
	for _, ci := range items {
		if ci.IsValid() {
			valid = append(valid, ci)
		}
	}
	return valid
}
