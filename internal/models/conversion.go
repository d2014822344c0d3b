package models

import "github.com/shopspring/decimal"

// Conversion represents a row of the conversions audit table.
type Conversion struct {
	ConversionID      int64           `db:"conversion_id"`
	ProviderName      string          `db:"provider_name"`
	SourceCurrency    string          `db:"source_currency"`
	ExchangedCurrency string          `db:"exchanged_currency"`
	SourceAmount      decimal.Decimal `db:"source_amount"`
	ExchangedAmount   decimal.Decimal `db:"exchanged_amount"`
	RateValue         decimal.Decimal `db:"rate_value"`
	AuditFields
}
