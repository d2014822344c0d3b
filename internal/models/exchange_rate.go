package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the rate between two currencies for a provider and valuation date.
type ExchangeRate struct {
	ExchangeRateID    int64           `db:"exchange_rate_id"`
	ProviderID        int64           `db:"provider_id"`
	SourceCurrency    string          `db:"source_currency"`
	ExchangedCurrency string          `db:"exchanged_currency"`
	ValuationDate     time.Time       `db:"valuation_date"`
	RateValue         decimal.Decimal `db:"rate_value"` // NUMERIC(18,6)
	AuditFields
}
