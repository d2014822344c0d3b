package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
)

// ChainLink binds a configured provider to the client that talks to it.
type ChainLink struct {
	Provider domain.Provider
	Client   clients.RateClient
}

// ProviderChain is a snapshot of the active providers in ascending priority.
// It is consumed by index and never refreshed.
type ProviderChain []ChainLink

// BuildProviderChain snapshots the active providers and resolves their clients.
// Providers without a registered client are skipped.
func BuildProviderChain(ctx context.Context, reader portsrepo.ProviderReader, registry clients.Registry) (ProviderChain, error) {
	active, err := reader.ListActiveProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active providers: %w", err)
	}

	chain := make(ProviderChain, 0, len(active))
	for _, p := range active {
		client, ok := registry[p.Name]
		if !ok {
			middleware.GetLoggerFromCtx(ctx).Warn("Active provider has no client, skipping", slog.String("provider", string(p.Name)))
			continue
		}
		chain = append(chain, ChainLink{Provider: p, Client: client})
	}
	return chain, nil
}
