package domain

import "github.com/shopspring/decimal"

// Conversion is an audit record of one conversion performed against a provider.
type Conversion struct {
	ConversionID      int64           `json:"conversionID"`
	ProviderName      string          `json:"providerName"`
	SourceCurrency    string          `json:"sourceCurrency"`
	ExchangedCurrency string          `json:"exchangedCurrency"`
	SourceAmount      decimal.Decimal `json:"sourceAmount"`
	ExchangedAmount   decimal.Decimal `json:"exchangedAmount"`
	RateValue         decimal.Decimal `json:"rateValue"`
	AuditFields
}

// BackfillTicket acknowledges a launched backfill. It carries no completion handle.
type BackfillTicket struct {
	JobID  string
	Chunks []DateRange
}
