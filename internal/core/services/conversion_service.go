package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/shopspring/decimal"
)

type conversionService struct {
	BaseService
	converter      portssvc.ConverterSvc
	conversionRepo portsrepo.ConversionRepositoryFacade
}

// NewConversionService creates a service that records every conversion it performs.
func NewConversionService(converter portssvc.ConverterSvc, conversionRepo portsrepo.ConversionRepositoryFacade) portssvc.ConversionSvcFacade {
	return &conversionService{
		converter:      converter,
		conversionRepo: conversionRepo,
	}
}

func (s *conversionService) CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.Conversion, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("amount %q is not a decimal number", req.Amount))
	}

	result, err := s.converter.Convert(ctx, req.SourceCurrency, req.ExchangedCurrency, amount)
	if err != nil {
		return nil, err
	}

	saved, err := s.conversionRepo.SaveConversion(ctx, domain.Conversion{
		ProviderName:      result.ProviderName,
		SourceCurrency:    result.SourceCurrency,
		ExchangedCurrency: result.ExchangedCurrency,
		SourceAmount:      result.SourceAmount,
		ExchangedAmount:   result.ExchangedAmount,
		RateValue:         result.RateValue,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save conversion",
			slog.String("source_currency", req.SourceCurrency),
			slog.String("exchanged_currency", req.ExchangedCurrency))
		return nil, fmt.Errorf("failed to save conversion: %w", err)
	}

	s.LogInfo(ctx, "Conversion recorded",
		slog.Int64("conversion_id", saved.ConversionID),
		slog.String("provider", saved.ProviderName))
	return saved, nil
}

func (s *conversionService) ListConversions(ctx context.Context, params dto.ListConversionsParams) (*dto.ListConversionsResponse, error) {
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	conversions, next, err := s.conversionRepo.ListConversions(ctx, params.Limit, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	resp := dto.ToListConversionsResponse(conversions, next)
	return &resp, nil
}
