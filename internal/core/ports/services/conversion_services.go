package services

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/dto"
)

// ConversionWriterSvc records conversions.
type ConversionWriterSvc interface {
	// CreateConversion performs a live conversion and stores its audit record.
	CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.Conversion, error)
}

// ConversionReaderSvc reads the conversion audit log.
type ConversionReaderSvc interface {
	ListConversions(ctx context.Context, params dto.ListConversionsParams) (*dto.ListConversionsResponse, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionReaderSvc
	ConversionWriterSvc
}
