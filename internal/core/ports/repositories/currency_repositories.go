package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts a new currency. A taken code yields apperrors.ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// UpdateCurrency replaces name and symbol of the currency identified by code.
	UpdateCurrency(ctx context.Context, code string, currency domain.Currency) (*domain.Currency, error)

	// DeleteCurrency removes a currency and, through the schema, its stored rates.
	DeleteCurrency(ctx context.Context, code string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
