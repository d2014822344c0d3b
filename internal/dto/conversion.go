package dto

import (
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateConversionRequest defines the data needed to record a conversion.
type CreateConversionRequest struct {
	SourceCurrency    string `json:"source_currency" binding:"required,tracked_currency"`
	ExchangedCurrency string `json:"exchanged_currency" binding:"required,tracked_currency"`
	Amount            string `json:"amount" binding:"required,numeric"`
}

// ListConversionsParams defines the query parameters for listing conversions.
type ListConversionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"next_token"`
}

// ConversionResponse defines an audit record as returned by the API.
type ConversionResponse struct {
	ConversionID      int64           `json:"id"`
	ProviderName      string          `json:"provider_name"`
	SourceCurrency    string          `json:"source_currency"`
	ExchangedCurrency string          `json:"exchanged_currency"`
	SourceAmount      decimal.Decimal `json:"source_amount"`
	ExchangedAmount   decimal.Decimal `json:"exchanged_amount"`
	RateValue         decimal.Decimal `json:"rate_value"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ListConversionsResponse is one page of conversions.
type ListConversionsResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
	NextToken   *string              `json:"next_token,omitempty"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ConversionID:      c.ConversionID,
		ProviderName:      c.ProviderName,
		SourceCurrency:    c.SourceCurrency,
		ExchangedCurrency: c.ExchangedCurrency,
		SourceAmount:      c.SourceAmount,
		ExchangedAmount:   c.ExchangedAmount,
		RateValue:         c.RateValue,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ToListConversionsResponse builds a page response from domain rows and the next cursor
func ToListConversionsResponse(conversions []domain.Conversion, nextToken *string) ListConversionsResponse {
	res := make([]ConversionResponse, len(conversions))
	for i := range conversions {
		res[i] = ToConversionResponse(&conversions[i])
	}
	return ListConversionsResponse{Conversions: res, NextToken: nextToken}
}
