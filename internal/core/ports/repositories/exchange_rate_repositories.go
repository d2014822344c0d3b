package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// ExchangeRateReader defines read operations over the rate store
type ExchangeRateReader interface {
	// FindRatesBySourceAndRange returns every stored row for source whose valuation
	// date falls in [from, to], regardless of provider.
	FindRatesBySourceAndRange(ctx context.Context, source string, from, to time.Time) ([]domain.ExchangeRate, error)

	// ListExchangeRates pages through stored rows, newest valuation date first.
	ListExchangeRates(ctx context.Context, source *string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error)
}

// ExchangeRateWriter defines write operations over the rate store
type ExchangeRateWriter interface {
	// UpsertRates inserts rates, updating rate_value when the
	// (provider, source, exchanged, valuation_date) key already exists.
	UpsertRates(ctx context.Context, rates []domain.ExchangeRate) (int64, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
