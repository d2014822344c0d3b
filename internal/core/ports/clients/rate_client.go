package clients

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// RateClient fetches rates from one external source. Implementations return
// errors matching apperrors.ErrProviderTransport or apperrors.ErrProviderSchema.
type RateClient interface {
	Name() domain.ProviderName
	Latest(ctx context.Context, base string) (domain.Rates, error)
	Historical(ctx context.Context, base string, date time.Time) (domain.Rates, error)
	// Timeseries returns one Rates per day of [start, end], keyed by YYYY-MM-DD.
	Timeseries(ctx context.Context, base string, start, end time.Time) (domain.RateSeries, error)
}

// Registry maps each provider name to its client. It is built once at startup.
type Registry map[domain.ProviderName]RateClient

// NewRegistry indexes clients by their Name.
func NewRegistry(cs ...RateClient) Registry {
	r := make(Registry, len(cs))
	for _, c := range cs {
		r[c.Name()] = c
	}
	return r
}

// CurrencyCatalog lists currency metadata known to an external source.
type CurrencyCatalog interface {
	CurrencyDetails(ctx context.Context) ([]domain.Currency, error)
}
