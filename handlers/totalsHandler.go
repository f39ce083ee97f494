// Package handlers is the in-process caller of the totals engine: it binds
// form snapshots sent by the UI, applies the caller-side gates (billable
// item check, lifecycle lock, same-client advance filter) and returns the
// engine's numbers. Nothing here persists anything; submission goes through
// the invoicing API separately.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/facturio/billing_backend/config"
	"github.com/facturio/billing_backend/engine"
	"github.com/facturio/billing_backend/models"
	"github.com/facturio/billing_backend/utils"
)

// TotalsRequest is one edit-session snapshot of a document form. Preview
// requests compute over the raw form state, invalid rows included;
// submission requests filter invalid custom rows and must carry at least
// one billable item.
type TotalsRequest struct {
	TimeEntries          []models.TimeEntry   `json:"time_entries"`
	SelectedTimeEntryIds []int                `json:"selected_time_entry_ids"`
	Expenses             []models.Expense     `json:"expenses"`
	SelectedExpenseIds   []int                `json:"selected_expense_ids"`
	Items                []models.CustomItem  `json:"items"`
	Discount             *models.DiscountSpec `json:"discount"`
	Preview              bool                 `json:"preview"`
}

func (req TotalsRequest) normalizedLines(forSubmission bool) []models.LineItem {
	selectedTimeEntryIds := make(map[int]bool, len(req.SelectedTimeEntryIds))
	for _, id := range req.SelectedTimeEntryIds {
		selectedTimeEntryIds[id] = true
	}
	selectedExpenseIds := make(map[int]bool, len(req.SelectedExpenseIds))
	for _, id := range req.SelectedExpenseIds {
		selectedExpenseIds[id] = true
	}
	items := req.Items
	if forSubmission {
		items = engine.FilterValidCustomItems(items)
	}
	return engine.Normalize(
		req.TimeEntries, selectedTimeEntryIds,
		req.Expenses, selectedExpenseIds,
		items, config.DefaultTaxRate(),
	)
}

// InvoiceTotalsHandler computes an invoice's totals breakdown: document
// discount resolved against the subtotal and allocated rate-proportionally.
func InvoiceTotalsHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TotalsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			config.LogError(logger, "totalsHandler.go", "InvoiceTotalsHandler", "BindJSON", nil, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		discount := models.DiscountSpec{Type: models.DiscountTypeAmount}
		if req.Discount != nil {
			if err := utils.ValidateStruct(*req.Discount); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			discount = *req.Discount
		}

		lines := req.normalizedLines(!req.Preview)
		if !req.Preview && len(lines) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": utils.ErrorNoBillableItems.Error()})
			return
		}

		c.JSON(http.StatusOK, engine.ComputeInvoiceTotals(lines, discount))
	}
}

// QuoteTotalsHandler computes a quote's totals breakdown. Quotes carry
// per-line discounts only, so no document discount is accepted or allocated.
func QuoteTotalsHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TotalsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			config.LogError(logger, "totalsHandler.go", "QuoteTotalsHandler", "BindJSON", nil, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lines := req.normalizedLines(!req.Preview)
		if !req.Preview && len(lines) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": utils.ErrorNoBillableItems.Error()})
			return
		}

		c.JSON(http.StatusOK, engine.ComputeQuoteTotals(lines))
	}
}
