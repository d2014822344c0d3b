package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	// Basic validation already handled by DTO binding (required, len=3, uppercase)
	currency, err := s.currencyRepo.SaveCurrency(ctx, domain.Currency{
		Code:   req.Code,
		Name:   req.Name,
		Symbol: req.Symbol,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("code", currency.Code))
	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	current, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s: %w", code, err)
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Symbol != nil {
		current.Symbol = *req.Symbol
	}

	updated, err := s.currencyRepo.UpdateCurrency(ctx, code, *current)
	if err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", code, err)
	}
	return updated, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, code string) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", code, err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("code", code))
	return nil
}
