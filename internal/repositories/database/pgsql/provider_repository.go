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

const providerColumns = `provider_id, name, description, priority, is_active, created_at, updated_at`

// PgxProviderRepository stores the provider registry.
type PgxProviderRepository struct {
	BaseRepository
}

// NewPgxProviderRepository creates a new repository for provider data.
func NewPgxProviderRepository(pool PgxPool) *PgxProviderRepository {
	return &PgxProviderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProviderRepositoryFacade = (*PgxProviderRepository)(nil)

func scanProvider(row pgx.Row) (models.Provider, error) {
	var m models.Provider
	err := row.Scan(&m.ProviderID, &m.Name, &m.Description, &m.Priority, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxProviderRepository) findOne(ctx context.Context, query string, arg any) (*domain.Provider, error) {
	m, err := scanProvider(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider %v: %w", arg, err)
	}
	p := mapping.ToDomainProvider(m)
	return &p, nil
}

func (r *PgxProviderRepository) findMany(ctx context.Context, query string) ([]domain.Provider, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	modelProviders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Provider, error) {
		return scanProvider(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan providers: %w", err)
	}
	return mapping.ToDomainProviderSlice(modelProviders), nil
}

// FindProviderByID retrieves a provider by its ID.
func (r *PgxProviderRepository) FindProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error) {
	return r.findOne(ctx, `SELECT `+providerColumns+` FROM providers WHERE provider_id = $1;`, providerID)
}

// FindProviderByName retrieves a provider by its unique name.
func (r *PgxProviderRepository) FindProviderByName(ctx context.Context, name domain.ProviderName) (*domain.Provider, error) {
	return r.findOne(ctx, `SELECT `+providerColumns+` FROM providers WHERE name = $1;`, string(name))
}

// ListProviders retrieves all providers by ascending priority.
func (r *PgxProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return r.findMany(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY priority ASC;`)
}

// ListActiveProviders retrieves active providers by ascending priority.
func (r *PgxProviderRepository) ListActiveProviders(ctx context.Context) ([]domain.Provider, error) {
	return r.findMany(ctx, `SELECT `+providerColumns+` FROM providers WHERE is_active ORDER BY priority ASC;`)
}

// SaveProvider inserts a provider.
func (r *PgxProviderRepository) SaveProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error) {
	m := mapping.ToModelProvider(provider)
	query := `
		INSERT INTO providers (name, description, priority, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + providerColumns + `;
	`
	saved, err := scanProvider(r.Pool.QueryRow(ctx, query, m.Name, m.Description, m.Priority, m.IsActive))
	if err != nil {
		return nil, r.wrapWriteError(err, "failed to save provider %s", m.Name)
	}
	p := mapping.ToDomainProvider(saved)
	return &p, nil
}

// UpdateProvider overwrites description, priority and is_active of an existing provider.
func (r *PgxProviderRepository) UpdateProvider(ctx context.Context, provider domain.Provider) (*domain.Provider, error) {
	m := mapping.ToModelProvider(provider)
	query := `
		UPDATE providers
		SET description = $2, priority = $3, is_active = $4, updated_at = now()
		WHERE provider_id = $1
		RETURNING ` + providerColumns + `;
	`
	updated, err := scanProvider(r.Pool.QueryRow(ctx, query, m.ProviderID, m.Description, m.Priority, m.IsActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, r.wrapWriteError(err, "failed to update provider %d", m.ProviderID)
	}
	p := mapping.ToDomainProvider(updated)
	return &p, nil
}

// DeleteProvider removes a provider. Its stored rates are removed by cascade.
func (r *PgxProviderRepository) DeleteProvider(ctx context.Context, providerID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM providers WHERE provider_id = $1;`, providerID)
	if err != nil {
		return r.wrapWriteError(err, "failed to delete provider %d", providerID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
