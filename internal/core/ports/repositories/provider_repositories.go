package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// ProviderReader defines read operations over the provider registry
type ProviderReader interface {
	FindProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error)

	FindProviderByName(ctx context.Context, name domain.ProviderName) (*domain.Provider, error)

	// ListProviders returns every provider ordered by ascending priority.
	ListProviders(ctx context.Context) ([]domain.Provider, error)

	// ListActiveProviders returns active providers ordered by ascending priority.
	ListActiveProviders(ctx context.Context) ([]domain.Provider, error)
}

// ProviderWriter defines write operations over the provider registry.
// Name or priority collisions yield apperrors.ErrDuplicate.
type ProviderWriter interface {
	SaveProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, providerID int64) error
}

// ProviderRepositoryFacade combines all provider-related repository interfaces
type ProviderRepositoryFacade interface {
	ProviderReader
	ProviderWriter
}
