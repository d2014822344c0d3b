package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeEmpty   = "empty"
)

// ProviderRequestsTotal counts calls made to rate providers.
// Labels: provider, operation (latest, timeseries), outcome
var ProviderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fx_provider_requests_total",
		Help: "Total number of rate provider calls by outcome",
	},
	[]string{"provider", "operation", "outcome"},
)

// RateSeriesSourceTotal counts where rate-series answers came from.
// The source label is "store" or the provider name.
var RateSeriesSourceTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fx_rate_series_source_total",
		Help: "Total number of rate series answered, by source",
	},
	[]string{"source"},
)

// BackfillChunksTotal counts finished backfill chunks.
var BackfillChunksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fx_backfill_chunks_total",
		Help: "Total number of backfill chunks processed, by outcome",
	},
	[]string{"outcome"},
)

// PersistedRatesTotal counts rows written by the rate store upsert.
var PersistedRatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "fx_persisted_rates_total",
		Help: "Total number of rate rows inserted or updated",
	},
)

// HTTPRequestDuration tracks request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"method", "route", "status"},
)
