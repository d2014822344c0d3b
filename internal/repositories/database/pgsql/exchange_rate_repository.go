package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_service/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_service/internal/models"
	"github.com/SscSPs/fx_rates_service/internal/utils/mapping"
	"github.com/SscSPs/fx_rates_service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const exchangeRateColumns = `exchange_rate_id, provider_id, source_currency, exchanged_currency, valuation_date, rate_value, created_at, updated_at`

// upsertRatesQuery writes a whole batch in one statement. Rows naming a currency
// that is not in the currencies table are skipped.
const upsertRatesQuery = `
	INSERT INTO exchange_rates (provider_id, source_currency, exchanged_currency, valuation_date, rate_value)
	SELECT t.provider_id, t.source_currency, t.exchanged_currency, t.valuation_date::date, t.rate_value::numeric
	FROM unnest($1::bigint[], $2::text[], $3::text[], $4::text[], $5::text[])
		AS t(provider_id, source_currency, exchanged_currency, valuation_date, rate_value)
	WHERE EXISTS (SELECT 1 FROM currencies c WHERE c.code = t.source_currency)
		AND EXISTS (SELECT 1 FROM currencies c WHERE c.code = t.exchanged_currency)
	ON CONFLICT (provider_id, source_currency, exchanged_currency, valuation_date)
	DO UPDATE SET rate_value = EXCLUDED.rate_value, updated_at = now();
`

// PgxExchangeRateRepository implements the rate store on top of pgx.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(pool PgxPool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.ProviderID, &m.SourceCurrency, &m.ExchangedCurrency,
		&m.ValuationDate, &m.RateValue, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// FindRatesBySourceAndRange returns all stored rows for source within [from, to].
func (r *PgxExchangeRateRepository) FindRatesBySourceAndRange(ctx context.Context, source string, from, to time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE source_currency = $1 AND valuation_date BETWEEN $2 AND $3
		ORDER BY valuation_date, exchanged_currency, provider_id;
	`

	rows, err := r.Pool.Query(ctx, query, source, domain.TruncateDay(from), domain.TruncateDay(to))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan exchange rates", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

type rateKey struct {
	providerID int64
	source     string
	exchanged  string
	day        string
}

// UpsertRates writes rates in a single statement. Postgres rejects a batch that
// touches the same conflict key twice, so duplicates are collapsed first and the
// last occurrence wins.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) (int64, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	index := make(map[rateKey]int, len(rates))
	var (
		providerIDs []int64
		sources     []string
		exchanged   []string
		days        []string
		values      []string
	)
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		key := rateKey{m.ProviderID, m.SourceCurrency, m.ExchangedCurrency, domain.FormatDate(m.ValuationDate)}
		value := m.RateValue.StringFixed(domain.RateScale)
		if i, seen := index[key]; seen {
			values[i] = value
			continue
		}
		index[key] = len(providerIDs)
		providerIDs = append(providerIDs, key.providerID)
		sources = append(sources, key.source)
		exchanged = append(exchanged, key.exchanged)
		days = append(days, key.day)
		values = append(values, value)
	}

	tag, err := r.Pool.Exec(ctx, upsertRatesQuery, providerIDs, sources, exchanged, days, values)
	if err != nil {
		return 0, r.wrapWriteError(err, "failed to upsert %d exchange rates", len(providerIDs))
	}
	return tag.RowsAffected(), nil
}

// ListExchangeRates pages through stored rows ordered by valuation date, newest first.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, source *string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	fetchLimit := limit + 1

	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE 1=1`
	args := []any{}
	argNum := 1

	if source != nil && *source != "" {
		query += fmt.Sprintf(" AND source_currency = $%d", argNum)
		args = append(args, *source)
		argNum++
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError("invalid next_token: " + decodeErr.Error())
		}
		query += fmt.Sprintf(" AND (valuation_date, exchange_rate_id) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, lastDate, lastID)
		argNum += 2
	}

	query += fmt.Sprintf(" ORDER BY valuation_date DESC, exchange_rate_id DESC LIMIT $%d;", argNum)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan exchange rates", err)
	}

	var nextTokenVal *string
	if len(modelRates) > limit {
		last := modelRates[limit-1]
		token := pagination.EncodeToken(last.ValuationDate, last.ExchangeRateID)
		nextTokenVal = &token
		modelRates = modelRates[:limit]
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nextTokenVal, nil
}
