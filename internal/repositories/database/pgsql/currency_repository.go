package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_service/internal/models"
	"github.com/SscSPs/fx_rates_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const currencyColumns = `currency_id, code, name, symbol, created_at, updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new repository for currency data.
func NewPgxCurrencyRepository(pool PgxPool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(&m.CurrencyID, &m.Code, &m.Name, &m.Symbol, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, name, symbol)
		VALUES ($1, $2, $3)
		RETURNING ` + currencyColumns + `;
	`

	saved, err := scanCurrency(r.Pool.QueryRow(ctx, query, modelCurr.Code, modelCurr.Name, modelCurr.Symbol))
	if err != nil {
		return nil, r.wrapWriteError(err, "failed to save currency %s", modelCurr.Code)
	}

	domainCurr := mapping.ToDomainCurrency(saved)
	return &domainCurr, nil
}

// UpdateCurrency changes the name and symbol of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, code string, currency domain.Currency) (*domain.Currency, error) {
	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, updated_at = now()
		WHERE code = $1
		RETURNING ` + currencyColumns + `;
	`

	updated, err := scanCurrency(r.Pool.QueryRow(ctx, query, code, currency.Name, currency.Symbol))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, r.wrapWriteError(err, "failed to update currency %s", code)
	}

	domainCurr := mapping.ToDomainCurrency(updated)
	return &domainCurr, nil
}

// DeleteCurrency removes a currency. Stored rates referencing it are removed by cascade.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE code = $1;`, code)
	if err != nil {
		return r.wrapWriteError(err, "failed to delete currency %s", code)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
