package dto

import (
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSeriesRequest holds the query parameters of a rate-series lookup.
type RateSeriesRequest struct {
	SourceCurrency string `form:"source_currency" json:"source_currency" binding:"required,tracked_currency"`
	DateFrom       string `form:"date_from" json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo         string `form:"date_to" json:"date_to" binding:"required,datetime=2006-01-02,date_order=DateFrom"`
}

// RateSeriesResponse is the rate series for one source currency over a date range.
type RateSeriesResponse struct {
	ProviderName   string                                `json:"provider_name"`
	SourceCurrency string                                `json:"source_currency"`
	DateFrom       string                                `json:"date_from"`
	DateTo         string                                `json:"date_to"`
	Data           map[string]map[string]decimal.Decimal `json:"data"`
}

// ToRateSeriesResponse converts a domain.RateSeriesResult to its DTO
func ToRateSeriesResponse(r *domain.RateSeriesResult) RateSeriesResponse {
	data := make(map[string]map[string]decimal.Decimal, len(r.Data))
	for day, rates := range r.Data {
		data[day] = rates
	}
	return RateSeriesResponse{
		ProviderName:   r.ProviderName,
		SourceCurrency: r.SourceCurrency,
		DateFrom:       domain.FormatDate(r.DateFrom),
		DateTo:         domain.FormatDate(r.DateTo),
		Data:           data,
	}
}

// ConvertAmountRequest holds the query parameters of a live conversion.
type ConvertAmountRequest struct {
	SourceCurrency    string `form:"source_currency" binding:"required,tracked_currency"`
	ExchangedCurrency string `form:"exchanged_currency" binding:"required,tracked_currency"`
	Amount            string `form:"amount" binding:"required,numeric"`
}

// ConvertAmountResponse is the result of a live conversion.
type ConvertAmountResponse struct {
	ProviderName      string          `json:"provider_name"`
	SourceCurrency    string          `json:"source_currency"`
	ExchangedCurrency string          `json:"exchanged_currency"`
	SourceAmount      decimal.Decimal `json:"source_amount"`
	ExchangedAmount   decimal.Decimal `json:"exchanged_amount"`
	RateValue         decimal.Decimal `json:"rate_value"`
}

// ToConvertAmountResponse converts a domain.ConversionResult to its DTO
func ToConvertAmountResponse(r *domain.ConversionResult) ConvertAmountResponse {
	return ConvertAmountResponse{
		ProviderName:      r.ProviderName,
		SourceCurrency:    r.SourceCurrency,
		ExchangedCurrency: r.ExchangedCurrency,
		SourceAmount:      r.SourceAmount,
		ExchangedAmount:   r.ExchangedAmount,
		RateValue:         r.RateValue,
	}
}

// BackfillChunkResponse describes one chunk of a launched backfill.
type BackfillChunkResponse struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// LaunchHistoryTaskResponse acknowledges a launched backfill.
type LaunchHistoryTaskResponse struct {
	Message string                  `json:"message"`
	JobID   string                  `json:"job_id"`
	Chunks  []BackfillChunkResponse `json:"chunks"`
}

// BackfillLaunchedMessage is returned once a backfill's chunks are dispatched.
const BackfillLaunchedMessage = "Task launched successfully"

// ToLaunchHistoryTaskResponse converts a domain.BackfillTicket to its DTO
func ToLaunchHistoryTaskResponse(t *domain.BackfillTicket) LaunchHistoryTaskResponse {
	chunks := make([]BackfillChunkResponse, len(t.Chunks))
	for i, c := range t.Chunks {
		chunks[i] = BackfillChunkResponse{DateFrom: domain.FormatDate(c.From), DateTo: domain.FormatDate(c.To)}
	}
	return LaunchHistoryTaskResponse{
		Message: BackfillLaunchedMessage,
		JobID:   t.JobID,
		Chunks:  chunks,
	}
}
