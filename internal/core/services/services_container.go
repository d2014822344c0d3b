package services

import (
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// catalog may be nil, in which case the seeder uses built-in currency names.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, registry clients.Registry, catalog clients.CurrencyCatalog) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	factory := NewControllerFactory(repos.ProviderRepo, repos.ExchangeRateRepo, registry, cfg.TrackedCurrencies, cfg.MaxRateSeriesDays)

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Provider = NewProviderService(repos.ProviderRepo)
	container.Exchange = NewExchangeService(factory, repos.ExchangeRateRepo)
	container.Backfill = NewBackfillService(repos.ProviderRepo, registry, factory.Persister(), BackfillOptions{
		ChunkDays:  cfg.BackfillChunkDays,
		MaxWorkers: cfg.BackfillMaxWorkers,
	})
	container.Conversion = NewConversionService(container.Exchange, repos.ConversionRepo)
	container.Seeder = NewStaticDataService(repos.CurrencyRepo, repos.ProviderRepo, catalog, cfg.TrackedCurrencies)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ExchangeSvcFacade   = (*exchangeService)(nil)
	_ portssvc.BackfillSvc         = (*backfillService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
	_ RatePersister                = (*ExchangeController)(nil)
	_ ControllerSource             = (*ControllerFactory)(nil)
)
