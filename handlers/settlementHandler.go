package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/facturio/billing_backend/config"
	"github.com/facturio/billing_backend/engine"
	"github.com/facturio/billing_backend/models"
	"github.com/facturio/billing_backend/utils"
)

// SettlementRequest pairs a final invoice's computed totals with the
// advances the user ticked in the settlement picker. SelectedAdvances must
// all belong to ClientId; a mismatch is a caller bug and is rejected here
// so it never reaches the engine.
type SettlementRequest struct {
	ClientId         int              `json:"client_id" binding:"required"`
	FinalTotals      models.Totals    `json:"final_totals"`
	SelectedAdvances []models.Invoice `json:"selected_advances"`
}

// SettlementHandler computes the remaining balance due on a final invoice
// after crediting the selected advances.
func SettlementHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SettlementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			config.LogError(logger, "settlementHandler.go", "SettlementHandler", "BindJSON", nil, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, adv := range req.SelectedAdvances {
			if adv.ClientId != req.ClientId {
				config.LogError(logger, "settlementHandler.go", "SettlementHandler", "ClientFilter", adv.ID, utils.ErrorCrossClientAdvance)
				c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrorCrossClientAdvance.Error()})
				return
			}
		}

		c.JSON(http.StatusOK, engine.Settle(req.FinalTotals, req.SelectedAdvances))
	}
}

type AdvanceAmountRequest struct {
	TargetTotal       decimal.Decimal `json:"target_total"`
	AdvancePercentage decimal.Decimal `json:"advance_percentage"`
}

// AdvanceAmountHandler computes the amount of an advance invoice raised as
// a percentage of a target total, used when a final invoice is planned but
// the advance is billed first.
func AdvanceAmountHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdvanceAmountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			config.LogError(logger, "settlementHandler.go", "AdvanceAmountHandler", "BindJSON", nil, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"advance_amount": engine.AdvanceAmount(req.TargetTotal, req.AdvancePercentage),
		})
	}
}
