package services

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/dto"
)

// ProviderReaderSvc defines read operations over the provider registry
type ProviderReaderSvc interface {
	GetProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}

// ProviderWriterSvc defines write operations over the provider registry
type ProviderWriterSvc interface {
	CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, providerID int64, req dto.UpdateProviderRequest) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, providerID int64) error
}

// ProviderSvcFacade combines all provider-related service interfaces
type ProviderSvcFacade interface {
	ProviderReaderSvc
	ProviderWriterSvc
}
