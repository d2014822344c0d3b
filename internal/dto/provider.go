package dto

import (
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// CreateProviderRequest defines the data needed to register a provider.
type CreateProviderRequest struct {
	Name        string `json:"name" binding:"required,oneof=currency_beacon mock"`
	Description string `json:"description" binding:"max=200"`
	Priority    int    `json:"priority" binding:"required,min=1"`
	IsActive    *bool  `json:"is_active,omitempty"` // defaults to true
}

// UpdateProviderRequest defines the provider fields that may be changed.
type UpdateProviderRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,max=200"`
	Priority    *int    `json:"priority,omitempty" binding:"omitempty,min=1"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProviderResponse defines the data returned for a provider.
type ProviderResponse struct {
	ProviderID  int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProviderResponse converts a domain.Provider to ProviderResponse DTO
func ToProviderResponse(p *domain.Provider) ProviderResponse {
	return ProviderResponse{
		ProviderID:  p.ProviderID,
		Name:        string(p.Name),
		Description: p.Description,
		Priority:    p.Priority,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToListProviderResponse converts a slice of domain.Provider to ProviderResponse DTOs
func ToListProviderResponse(providers []domain.Provider) []ProviderResponse {
	res := make([]ProviderResponse, len(providers))
	for i := range providers {
		res[i] = ToProviderResponse(&providers[i])
	}
	return res
}
