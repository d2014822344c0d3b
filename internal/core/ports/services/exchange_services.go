package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/shopspring/decimal"
)

// RateSeriesSvc answers rate-series queries from the store or, failing that, the providers.
type RateSeriesSvc interface {
	RateSeries(ctx context.Context, source string, from, to time.Time) (*domain.RateSeriesResult, error)
}

// ConverterSvc converts amounts at a live provider quote.
type ConverterSvc interface {
	Convert(ctx context.Context, source, exchanged string, amount decimal.Decimal) (*domain.ConversionResult, error)
}

// ExchangeRateReaderSvc exposes the stored rates read-only.
type ExchangeRateReaderSvc interface {
	ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) (*dto.ListExchangeRatesResponse, error)
}

// ExchangeSvcFacade combines all exchange-related service interfaces
type ExchangeSvcFacade interface {
	RateSeriesSvc
	ConverterSvc
	ExchangeRateReaderSvc
}

// BackfillSvc launches chunked historical backfills.
type BackfillSvc interface {
	// LaunchBackfill returns as soon as every chunk is dispatched.
	LaunchBackfill(ctx context.Context, source string, from, to time.Time) (*domain.BackfillTicket, error)
}
