package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_service/internal/models"
	"github.com/SscSPs/fx_rates_service/internal/utils/mapping"
	"github.com/SscSPs/fx_rates_service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const conversionColumns = `conversion_id, provider_name, source_currency, exchanged_currency, source_amount, exchanged_amount, rate_value, created_at, updated_at`

// PgxConversionRepository stores the conversion audit log.
type PgxConversionRepository struct {
	BaseRepository
}

// NewPgxConversionRepository creates a new PgxConversionRepository.
func NewPgxConversionRepository(pool PgxPool) *PgxConversionRepository {
	return &PgxConversionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)

func scanConversion(row pgx.Row) (models.Conversion, error) {
	var m models.Conversion
	err := row.Scan(
		&m.ConversionID, &m.ProviderName, &m.SourceCurrency, &m.ExchangedCurrency,
		&m.SourceAmount, &m.ExchangedAmount, &m.RateValue, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// SaveConversion inserts an audit record.
func (r *PgxConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error) {
	m := mapping.ToModelConversion(conversion)
	query := `
		INSERT INTO conversions (provider_name, source_currency, exchanged_currency, source_amount, exchanged_amount, rate_value)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric)
		RETURNING ` + conversionColumns + `;
	`

	saved, err := scanConversion(r.Pool.QueryRow(ctx, query,
		m.ProviderName,
		m.SourceCurrency,
		m.ExchangedCurrency,
		m.SourceAmount.StringFixed(domain.RateScale),
		m.ExchangedAmount.StringFixed(domain.RateScale),
		m.RateValue.StringFixed(domain.RateScale),
	))
	if err != nil {
		return nil, r.wrapWriteError(err, "failed to save conversion %s->%s", m.SourceCurrency, m.ExchangedCurrency)
	}

	d := mapping.ToDomainConversion(saved)
	return &d, nil
}

// ListConversions pages through audit records, newest first.
func (r *PgxConversionRepository) ListConversions(ctx context.Context, limit int, nextToken *string) ([]domain.Conversion, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	fetchLimit := limit + 1

	query := `SELECT ` + conversionColumns + ` FROM conversions`
	args := []any{}
	argNum := 1

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError("invalid next_token: " + decodeErr.Error())
		}
		query += fmt.Sprintf(" WHERE (created_at, conversion_id) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, lastCreatedAt, lastID)
		argNum += 2
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, conversion_id DESC LIMIT $%d;", argNum)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list conversions", err)
	}
	defer rows.Close()

	modelConversions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Conversion, error) {
		return scanConversion(row)
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan conversions", err)
	}

	var nextTokenVal *string
	if len(modelConversions) > limit {
		last := modelConversions[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ConversionID)
		nextTokenVal = &token
		modelConversions = modelConversions[:limit]
	}

	return mapping.ToDomainConversionSlice(modelConversions), nextTokenVal, nil
}
