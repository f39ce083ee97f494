package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Tax handling is rate-agnostic; the catalog below only drives what the UI
// offers in rate pickers. Time entries and expenses fall back to the default
// rate because their sources carry no rate of their own. The 20% default
// matches the standard VAT rate of the operating jurisdiction and can be
// overridden per deployment.
const (
	defaultTaxRate    = "20"
	defaultTaxCatalog = "0,5.5,10,20"
	defaultPort       = "8080"
)

var (
	settingsOnce sync.Once

	serverPort     string
	defaultRate    decimal.Decimal
	taxRateCatalog []decimal.Decimal
)

func loadSettings() {
	godotenv.Load()

	serverPort = os.Getenv("PORT")
	if serverPort == "" {
		serverPort = defaultPort
	}

	rate := os.Getenv("DEFAULT_TAX_RATE")
	if rate == "" {
		rate = defaultTaxRate
	}
	parsed, err := decimal.NewFromString(rate)
	if err != nil || parsed.IsNegative() {
		parsed = decimal.RequireFromString(defaultTaxRate)
	}
	defaultRate = parsed

	catalog := os.Getenv("TAX_RATE_CATALOG")
	if catalog == "" {
		catalog = defaultTaxCatalog
	}
	taxRateCatalog = taxRateCatalog[:0]
	for _, s := range strings.Split(catalog, ",") {
		r, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil || r.IsNegative() {
			continue
		}
		taxRateCatalog = append(taxRateCatalog, r)
	}
}

func GetPort() string {
	settingsOnce.Do(loadSettings)
	return serverPort
}

// DefaultTaxRate is the nominal rate applied to billed time entries and
// expenses, and to custom items that do not carry an explicit rate.
func DefaultTaxRate() decimal.Decimal {
	settingsOnce.Do(loadSettings)
	return defaultRate
}

// TaxRateCatalog returns the rates offered in the UI rate picker. The totals
// engine accepts any non-negative rate regardless of this list.
func TaxRateCatalog() []decimal.Decimal {
	settingsOnce.Do(loadSettings)
	out := make([]decimal.Decimal, len(taxRateCatalog))
	copy(out, taxRateCatalog)
	return out
}
