package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/SscSPs/fx_rates_service/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// RatePersister writes a fetched series to the rate store.
type RatePersister interface {
	PersistRates(ctx context.Context, providerID int64, source string, series domain.RateSeries) (int64, error)
}

// BackfillOptions tunes chunking and concurrency of backfills.
type BackfillOptions struct {
	ChunkDays  int
	MaxWorkers int
}

type backfillService struct {
	BaseService
	providerRepo portsrepo.ProviderReader
	registry     clients.Registry
	persister    RatePersister
	opts         BackfillOptions
}

// NewBackfillService creates a service that fetches history from the live provider in chunks.
func NewBackfillService(providerRepo portsrepo.ProviderReader, registry clients.Registry, persister RatePersister, opts BackfillOptions) portssvc.BackfillSvc {
	if opts.ChunkDays <= 0 || opts.ChunkDays > domain.MaxBackfillChunkDays {
		opts.ChunkDays = domain.MaxBackfillChunkDays
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 1
	}
	return &backfillService{
		providerRepo: providerRepo,
		registry:     registry,
		persister:    persister,
		opts:         opts,
	}
}

// LaunchBackfill splits [from, to] into chunks and hands them to a bounded pool.
// It returns once the job is dispatched. Chunk failures are logged and not retried.
func (s *backfillService) LaunchBackfill(ctx context.Context, source string, from, to time.Time) (*domain.BackfillTicket, error) {
	chunks := domain.SplitRange(from, to, s.opts.ChunkDays)
	if len(chunks) == 0 {
		return nil, apperrors.NewValidationError("date_from must not be after date_to")
	}

	client, ok := s.registry[domain.ProviderCurrencyBeacon]
	if !ok {
		return nil, fmt.Errorf("%w: no client for %s", apperrors.ErrNoProviderAvailable, domain.ProviderCurrencyBeacon)
	}
	provider, err := s.providerRepo.FindProviderByName(ctx, domain.ProviderCurrencyBeacon)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: provider %s is not registered", apperrors.ErrNoProviderAvailable, domain.ProviderCurrencyBeacon)
		}
		return nil, fmt.Errorf("failed to look up live provider: %w", err)
	}

	jobID := uuid.NewString()
	logger := s.GetLogger(ctx).With(
		slog.String("job_id", jobID),
		slog.String("source_currency", source),
	)
	jobCtx := middleware.WithLogger(context.WithoutCancel(ctx), logger)

	logger.Info("Backfill launched",
		slog.String("date_from", domain.FormatDate(from)),
		slog.String("date_to", domain.FormatDate(to)),
		slog.Int("chunks", len(chunks)))

	go s.run(jobCtx, provider.ProviderID, client, source, chunks)

	return &domain.BackfillTicket{JobID: jobID, Chunks: chunks}, nil
}

func (s *backfillService) run(ctx context.Context, providerID int64, client clients.RateClient, source string, chunks []domain.DateRange) {
	p := pool.New().WithMaxGoroutines(s.opts.MaxWorkers)
	for _, chunk := range chunks {
		chunk := chunk
		p.Go(func() {
			s.runChunk(ctx, providerID, client, source, chunk)
		})
	}
	p.Wait()

	s.LogInfo(ctx, "Backfill finished")
}

func (s *backfillService) runChunk(ctx context.Context, providerID int64, client clients.RateClient, source string, chunk domain.DateRange) {
	series, err := client.Timeseries(ctx, source, chunk.From, chunk.To)
	if err != nil {
		s.LogError(ctx, err, "Backfill chunk fetch failed", slog.String("chunk", chunk.String()))
		metrics.ProviderRequestsTotal.WithLabelValues(string(client.Name()), operationTimeseries, metrics.OutcomeFailure).Inc()
		metrics.BackfillChunksTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		return
	}
	metrics.ProviderRequestsTotal.WithLabelValues(string(client.Name()), operationTimeseries, metrics.OutcomeSuccess).Inc()

	written, err := s.persister.PersistRates(ctx, providerID, source, series)
	if err != nil {
		s.LogError(ctx, err, "Backfill chunk persist failed", slog.String("chunk", chunk.String()))
		metrics.BackfillChunksTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		return
	}

	s.LogDebug(ctx, "Backfill chunk stored", slog.String("chunk", chunk.String()), slog.Int64("rows", written))
	metrics.BackfillChunksTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
}
