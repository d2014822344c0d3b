package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
)

type staticDataService struct {
	BaseService
	currencyRepo portsrepo.CurrencyWriter
	providerRepo portsrepo.ProviderWriter
	catalog      clients.CurrencyCatalog
	tracked      domain.TrackedCurrencies
}

// NewStaticDataService creates the seeder for currencies and providers.
// catalog is optional; when set, currency names and symbols are taken from it.
func NewStaticDataService(currencyRepo portsrepo.CurrencyWriter, providerRepo portsrepo.ProviderWriter, catalog clients.CurrencyCatalog, tracked domain.TrackedCurrencies) portssvc.StaticDataService {
	return &staticDataService{
		currencyRepo: currencyRepo,
		providerRepo: providerRepo,
		catalog:      catalog,
		tracked:      tracked,
	}
}

// InitializeStaticData writes the tracked currencies and the default providers.
// Rows that already exist are skipped, so running it twice is harmless.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	for _, currency := range s.currencies(ctx) {
		if _, err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				s.LogDebug(ctx, "Currency already present", slog.String("code", currency.Code))
				continue
			}
			return fmt.Errorf("failed to seed currency %s: %w", currency.Code, err)
		}
		s.LogInfo(ctx, "Currency seeded", slog.String("code", currency.Code))
	}

	for _, provider := range domain.DefaultProviders {
		if _, err := s.providerRepo.SaveProvider(ctx, provider); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				s.LogDebug(ctx, "Provider already present", slog.String("provider", string(provider.Name)))
				continue
			}
			return fmt.Errorf("failed to seed provider %s: %w", provider.Name, err)
		}
		s.LogInfo(ctx, "Provider seeded", slog.String("provider", string(provider.Name)))
	}
	return nil
}

// currencies resolves the seed row of every tracked code: catalog first, then the
// built-in defaults, then the bare code.
func (s *staticDataService) currencies(ctx context.Context) []domain.Currency {
	known := make(map[string]domain.Currency, len(domain.DefaultCurrencies))
	for _, c := range domain.DefaultCurrencies {
		known[c.Code] = c
	}

	if s.catalog != nil {
		listed, err := s.catalog.CurrencyDetails(ctx)
		if err != nil {
			s.LogWarn(ctx, err, "Currency catalog unavailable, using built-in names")
		}
		for _, c := range listed {
			known[c.Code] = c
		}
	}

	out := make([]domain.Currency, 0, len(s.tracked))
	for _, code := range s.tracked {
		c, ok := known[code]
		if !ok {
			c = domain.Currency{Code: code, Name: code, Symbol: code}
		}
		out = append(out, c)
	}
	return out
}
