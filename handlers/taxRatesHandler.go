package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facturio/billing_backend/config"
)

// TaxRatesHandler exposes the configured rate catalog and the default rate
// the normalizer applies to time entries and expenses. The engine itself
// stays rate-agnostic; this only feeds the UI rate picker.
func TaxRatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"catalog":      config.TaxRateCatalog(),
			"default_rate": config.DefaultTaxRate(),
		})
	}
}
