package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_service/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// Provider operations, used as metric labels.
const (
	operationLatest     = "latest"
	operationTimeseries = "timeseries"
)

// ExchangeController answers rate queries from the rate store when it is complete
// and otherwise walks its provider chain, persisting results from live providers.
// It holds no state beyond the chain snapshot taken at construction.
type ExchangeController struct {
	BaseService
	chain    ProviderChain
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	tracked  domain.TrackedCurrencies
	maxDays  int
}

// NewExchangeController creates a controller bound to one provider chain snapshot.
// RateSeries rejects ranges longer than maxDays days; 0 leaves ranges unbounded.
func NewExchangeController(chain ProviderChain, rateRepo portsrepo.ExchangeRateRepositoryFacade, tracked domain.TrackedCurrencies, maxDays int) *ExchangeController {
	return &ExchangeController{
		chain:    chain,
		rateRepo: rateRepo,
		tracked:  tracked,
		maxDays:  maxDays,
	}
}

// RateSeries returns the rates of source for every day of [from, to].
//
// The store answers when it holds days x tracked-currency-count rows for the range.
// The check counts rows only, so a store holding the right number of rows with the
// wrong currency mix is treated as complete.
func (c *ExchangeController) RateSeries(ctx context.Context, source string, from, to time.Time) (*domain.RateSeriesResult, error) {
	from, to = domain.TruncateDay(from), domain.TruncateDay(to)
	days := domain.DaysInclusive(from, to)
	if c.maxDays > 0 && days > c.maxDays {
		return nil, apperrors.NewValidationError(fmt.Sprintf("date range spans %d days, at most %d are allowed", days, c.maxDays))
	}
	expected := days * c.tracked.Count()

	stored, err := c.rateRepo.FindRatesBySourceAndRange(ctx, source, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored rates: %w", err)
	}

	if expected > 0 && len(stored) == expected {
		c.LogDebug(ctx, "Rate series served from store",
			slog.String("source_currency", source),
			slog.Int("rows", len(stored)))
		metrics.RateSeriesSourceTotal.WithLabelValues(domain.StoreProviderName).Inc()
		return &domain.RateSeriesResult{
			ProviderName:   domain.StoreProviderName,
			SourceCurrency: source,
			DateFrom:       from,
			DateTo:         to,
			Data:           domain.SeriesFromRates(stored),
		}, nil
	}

	c.LogDebug(ctx, "Rate store incomplete, asking providers",
		slog.String("source_currency", source),
		slog.Int("expected_rows", expected),
		slog.Int("stored_rows", len(stored)))

	for _, link := range c.chain {
		name := string(link.Provider.Name)
		series, err := link.Client.Timeseries(ctx, source, from, to)
		if err != nil {
			c.LogWarn(ctx, err, "Provider failed, trying next",
				slog.String("provider", name),
				slog.String("operation", operationTimeseries))
			metrics.ProviderRequestsTotal.WithLabelValues(name, operationTimeseries, metrics.OutcomeFailure).Inc()
			continue
		}
		if len(series) == 0 {
			c.LogWarn(ctx, apperrors.ErrProviderSchema, "Provider returned no data, trying next",
				slog.String("provider", name),
				slog.String("operation", operationTimeseries))
			metrics.ProviderRequestsTotal.WithLabelValues(name, operationTimeseries, metrics.OutcomeEmpty).Inc()
			continue
		}
		metrics.ProviderRequestsTotal.WithLabelValues(name, operationTimeseries, metrics.OutcomeSuccess).Inc()

		if link.Client.Name().IsLive() {
			if _, err := c.PersistRates(ctx, link.Provider.ProviderID, source, series); err != nil {
				return nil, err
			}
		}

		metrics.RateSeriesSourceTotal.WithLabelValues(name).Inc()
		return &domain.RateSeriesResult{
			ProviderName:   name,
			SourceCurrency: source,
			DateFrom:       from,
			DateTo:         to,
			Data:           series,
		}, nil
	}

	return nil, apperrors.ErrNoProviderAvailable
}

// Convert converts amount of source into exchanged at the first usable live quote.
// The rate store is never consulted.
func (c *ExchangeController) Convert(ctx context.Context, source, exchanged string, amount decimal.Decimal) (*domain.ConversionResult, error) {
	for _, link := range c.chain {
		name := string(link.Provider.Name)
		rates, err := link.Client.Latest(ctx, source)
		if err != nil {
			c.LogWarn(ctx, err, "Provider failed, trying next",
				slog.String("provider", name),
				slog.String("operation", operationLatest))
			metrics.ProviderRequestsTotal.WithLabelValues(name, operationLatest, metrics.OutcomeFailure).Inc()
			continue
		}
		rate, ok := rates[exchanged]
		if !ok {
			c.LogWarn(ctx, apperrors.ErrProviderSchema, "Provider quote lacks the requested currency, trying next",
				slog.String("provider", name),
				slog.String("exchanged_currency", exchanged))
			metrics.ProviderRequestsTotal.WithLabelValues(name, operationLatest, metrics.OutcomeEmpty).Inc()
			continue
		}
		metrics.ProviderRequestsTotal.WithLabelValues(name, operationLatest, metrics.OutcomeSuccess).Inc()

		rate = rate.Round(domain.RateScale)
		return &domain.ConversionResult{
			ProviderName:      name,
			SourceCurrency:    source,
			ExchangedCurrency: exchanged,
			SourceAmount:      amount,
			ExchangedAmount:   amount.Mul(rate).Round(domain.RateScale),
			RateValue:         rate,
		}, nil
	}

	return nil, apperrors.ErrNoProviderAvailable
}

// PersistRates upserts every tracked (day, currency, rate) triple of series under providerID.
// Untracked currencies and undated keys are dropped.
func (c *ExchangeController) PersistRates(ctx context.Context, providerID int64, source string, series domain.RateSeries) (int64, error) {
	rows := make([]domain.ExchangeRate, 0, len(series)*c.tracked.Count())
	for day, rates := range series {
		valuationDate, err := domain.ParseDate(day)
		if err != nil {
			c.LogWarn(ctx, err, "Skipping undated rates", slog.String("day", day))
			continue
		}
		for code, value := range rates {
			if !c.tracked.Contains(code) {
				continue
			}
			rows = append(rows, domain.ExchangeRate{
				ProviderID:        providerID,
				SourceCurrency:    source,
				ExchangedCurrency: code,
				ValuationDate:     valuationDate,
				RateValue:         value,
			})
		}
	}

	written, err := c.rateRepo.UpsertRates(ctx, rows)
	if err != nil {
		c.LogError(ctx, err, "Failed to persist rates",
			slog.Int64("provider_id", providerID),
			slog.String("source_currency", source))
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to persist rates", err)
	}
	metrics.PersistedRatesTotal.Add(float64(written))
	c.LogDebug(ctx, "Rates persisted",
		slog.Int64("provider_id", providerID),
		slog.String("source_currency", source),
		slog.Int64("rows", written))
	return written, nil
}

// ControllerFactory builds a controller per call, each with a fresh provider snapshot.
type ControllerFactory struct {
	providerRepo portsrepo.ProviderReader
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	registry     clients.Registry
	tracked      domain.TrackedCurrencies
	maxDays      int
}

// NewControllerFactory creates a new ControllerFactory. maxDays bounds rate-series ranges, 0 disables it.
func NewControllerFactory(providerRepo portsrepo.ProviderReader, rateRepo portsrepo.ExchangeRateRepositoryFacade, registry clients.Registry, tracked domain.TrackedCurrencies, maxDays int) *ControllerFactory {
	return &ControllerFactory{
		providerRepo: providerRepo,
		rateRepo:     rateRepo,
		registry:     registry,
		tracked:      tracked,
		maxDays:      maxDays,
	}
}

// NewController snapshots the active providers and returns a controller bound to them.
func (f *ControllerFactory) NewController(ctx context.Context) (*ExchangeController, error) {
	chain, err := BuildProviderChain(ctx, f.providerRepo, f.registry)
	if err != nil {
		return nil, err
	}
	return NewExchangeController(chain, f.rateRepo, f.tracked, f.maxDays), nil
}

// Persister returns a controller with an empty chain, usable only for PersistRates.
func (f *ControllerFactory) Persister() *ExchangeController {
	return NewExchangeController(nil, f.rateRepo, f.tracked, 0)
}
