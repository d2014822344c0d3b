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
)

type providerService struct {
	BaseService
	providerRepo portsrepo.ProviderRepositoryFacade
}

// NewProviderService creates a service managing the provider registry.
func NewProviderService(providerRepo portsrepo.ProviderRepositoryFacade) portssvc.ProviderSvcFacade {
	return &providerService{providerRepo: providerRepo}
}

func (s *providerService) CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*domain.Provider, error) {
	name := domain.ProviderName(req.Name)
	if !name.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown provider name %q", req.Name))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	provider, err := s.providerRepo.SaveProvider(ctx, domain.Provider{
		Name:        name,
		Description: req.Description,
		Priority:    req.Priority,
		IsActive:    isActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	s.LogInfo(ctx, "Provider created",
		slog.String("provider", string(provider.Name)),
		slog.Int("priority", provider.Priority))
	return provider, nil
}

func (s *providerService) GetProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %d: %w", providerID, err)
	}
	return provider, nil
}

func (s *providerService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	providers, err := s.providerRepo.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	if providers == nil {
		return []domain.Provider{}, nil
	}
	return providers, nil
}

func (s *providerService) UpdateProvider(ctx context.Context, providerID int64, req dto.UpdateProviderRequest) (*domain.Provider, error) {
	current, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider %d: %w", providerID, err)
	}

	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Priority != nil {
		current.Priority = *req.Priority
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	updated, err := s.providerRepo.UpdateProvider(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("failed to update provider %d: %w", providerID, err)
	}

	s.LogInfo(ctx, "Provider updated",
		slog.String("provider", string(updated.Name)),
		slog.Int("priority", updated.Priority),
		slog.Bool("is_active", updated.IsActive))
	return updated, nil
}

func (s *providerService) DeleteProvider(ctx context.Context, providerID int64) error {
	if err := s.providerRepo.DeleteProvider(ctx, providerID); err != nil {
		return fmt.Errorf("failed to delete provider %d: %w", providerID, err)
	}
	s.LogInfo(ctx, "Provider deleted", slog.Int64("provider_id", providerID))
	return nil
}
