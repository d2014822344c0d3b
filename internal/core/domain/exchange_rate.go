package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateScale is the number of fractional digits rates and converted amounts are kept at.
const RateScale = 6

// ExchangeRate is one stored quote: the value of one unit of SourceCurrency in
// ExchangedCurrency on ValuationDate, as reported by a provider.
type ExchangeRate struct {
	ExchangeRateID    int64           `json:"exchangeRateID"`
	ProviderID        int64           `json:"providerID"`
	SourceCurrency    string          `json:"sourceCurrency"`
	ExchangedCurrency string          `json:"exchangedCurrency"`
	ValuationDate     time.Time       `json:"valuationDate"`
	RateValue         decimal.Decimal `json:"rateValue"`
	AuditFields
}

// Rates maps a currency code to its rate against some base currency.
type Rates map[string]decimal.Decimal

// RateSeries maps a YYYY-MM-DD date to the rates quoted for that day.
type RateSeries map[string]Rates

// RateSeriesResult is the answer to a rate-series query.
type RateSeriesResult struct {
	ProviderName   string
	SourceCurrency string
	DateFrom       time.Time
	DateTo         time.Time
	Data           RateSeries
}

// ConversionResult is the answer to a live conversion.
type ConversionResult struct {
	ProviderName      string
	SourceCurrency    string
	ExchangedCurrency string
	SourceAmount      decimal.Decimal
	ExchangedAmount   decimal.Decimal
	RateValue         decimal.Decimal
}

// SeriesFromRates groups stored rows by valuation date.
func SeriesFromRates(rates []ExchangeRate) RateSeries {
	series := make(RateSeries)
	for _, r := range rates {
		day := FormatDate(r.ValuationDate)
		if _, ok := series[day]; !ok {
			series[day] = make(Rates)
		}
		series[day][r.ExchangedCurrency] = r.RateValue
	}
	return series
}
