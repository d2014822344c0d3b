package dto

import (
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code   string `json:"code" binding:"required,uppercase,len=3"`
	Name   string `json:"name" binding:"required,max=64"`
	Symbol string `json:"symbol" binding:"required,max=10"`
}

// UpdateCurrencyRequest defines the fields of a currency that may be changed.
// Nil fields are left untouched.
type UpdateCurrencyRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=64"`
	Symbol *string `json:"symbol,omitempty" binding:"omitempty,min=1,max=10"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID int64     `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Symbol     string    `json:"symbol"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: curr.CurrencyID,
		Code:       curr.Code,
		Name:       curr.Name,
		Symbol:     curr.Symbol,
		CreatedAt:  curr.CreatedAt,
		UpdatedAt:  curr.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
