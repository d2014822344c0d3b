package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/shopspring/decimal"
)

// ControllerSource yields a controller bound to the current provider registry.
type ControllerSource interface {
	NewController(ctx context.Context) (*ExchangeController, error)
}

type exchangeService struct {
	BaseService
	controllers ControllerSource
	rateRepo    portsrepo.ExchangeRateReader
}

// NewExchangeService creates a new exchange service. Every call gets its own controller.
func NewExchangeService(controllers ControllerSource, rateRepo portsrepo.ExchangeRateReader) portssvc.ExchangeSvcFacade {
	return &exchangeService{
		controllers: controllers,
		rateRepo:    rateRepo,
	}
}

func (s *exchangeService) RateSeries(ctx context.Context, source string, from, to time.Time) (*domain.RateSeriesResult, error) {
	controller, err := s.controllers.NewController(ctx)
	if err != nil {
		return nil, err
	}
	return controller.RateSeries(ctx, source, from, to)
}

func (s *exchangeService) Convert(ctx context.Context, source, exchanged string, amount decimal.Decimal) (*domain.ConversionResult, error) {
	controller, err := s.controllers.NewController(ctx)
	if err != nil {
		return nil, err
	}
	return controller.Convert(ctx, source, exchanged, amount)
}

func (s *exchangeService) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) (*dto.ListExchangeRatesResponse, error) {
	var source, token *string
	if params.SourceCurrency != "" {
		source = &params.SourceCurrency
	}
	if params.NextToken != "" {
		token = &params.NextToken
	}

	rates, next, err := s.rateRepo.ListExchangeRates(ctx, source, params.Limit, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	resp := dto.ToListExchangeRatesResponse(rates, next)
	return &resp, nil
}
