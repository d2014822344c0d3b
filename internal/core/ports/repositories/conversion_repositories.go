package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// ConversionReader defines read operations over the conversion audit log
type ConversionReader interface {
	ListConversions(ctx context.Context, limit int, nextToken *string) ([]domain.Conversion, *string, error)
}

// ConversionWriter defines write operations over the conversion audit log
type ConversionWriter interface {
	SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error)
}

// ConversionRepositoryFacade combines all conversion-related repository interfaces
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
