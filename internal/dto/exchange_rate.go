package dto

import (
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListExchangeRatesParams defines the query parameters for listing stored rates.
type ListExchangeRatesParams struct {
	SourceCurrency string `form:"source_currency" binding:"omitempty,tracked_currency"`
	Limit          int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken      string `form:"next_token"`
}

// ExchangeRateResponse defines a stored rate row as returned by the API.
type ExchangeRateResponse struct {
	ExchangeRateID    int64           `json:"id"`
	ProviderID        int64           `json:"provider_id"`
	SourceCurrency    string          `json:"source_currency"`
	ExchangedCurrency string          `json:"exchanged_currency"`
	ValuationDate     string          `json:"valuation_date"`
	RateValue         decimal.Decimal `json:"rate_value"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ListExchangeRatesResponse is one page of stored rates.
type ListExchangeRatesResponse struct {
	ExchangeRates []ExchangeRateResponse `json:"exchange_rates"`
	NextToken     *string                `json:"next_token,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:    rate.ExchangeRateID,
		ProviderID:        rate.ProviderID,
		SourceCurrency:    rate.SourceCurrency,
		ExchangedCurrency: rate.ExchangedCurrency,
		ValuationDate:     domain.FormatDate(rate.ValuationDate),
		RateValue:         rate.RateValue,
		CreatedAt:         rate.CreatedAt,
		UpdatedAt:         rate.UpdatedAt,
	}
}

// ToListExchangeRatesResponse builds a page response from domain rows and the next cursor
func ToListExchangeRatesResponse(rates []domain.ExchangeRate, nextToken *string) ListExchangeRatesResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		res[i] = ToExchangeRateResponse(&rates[i])
	}
	return ListExchangeRatesResponse{ExchangeRates: res, NextToken: nextToken}
}
