package pgsql

import (
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewPgxCurrencyRepository(dbPool),
		ProviderRepo:     NewPgxProviderRepository(dbPool),
		ExchangeRateRepo: NewPgxExchangeRateRepository(dbPool),
		ConversionRepo:   NewPgxConversionRepository(dbPool),
	}
}
