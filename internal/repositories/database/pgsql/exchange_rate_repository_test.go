package pgsql_test

import (
	"regexp"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_rates_service/internal/utils/pagination"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
)

var rateCols = []string{"exchange_rate_id", "provider_id", "source_currency", "exchanged_currency", "valuation_date", "rate_value", "created_at", "updated_at"}

type ExchangeRateRepositoryTestSuite struct {
	RepositorySuite
	repo *pgsql.PgxExchangeRateRepository
}

func (s *ExchangeRateRepositoryTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.repo = pgsql.NewPgxExchangeRateRepository(s.mock)
}

func (s *ExchangeRateRepositoryTestSuite) TestFindRatesBySourceAndRange() {
	from, to := date("2023-10-01"), date("2023-10-02")
	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE source_currency = $1 AND valuation_date BETWEEN $2 AND $3")).
		WithArgs("USD", from, to).
		WillReturnRows(pgxmock.NewRows(rateCols).
			AddRow(int64(1), int64(1), "USD", "EUR", from, "0.945000", s.now, s.now).
			AddRow(int64(2), int64(1), "USD", "EUR", to, "0.950000", s.now, s.now))

	rates, err := s.repo.FindRatesBySourceAndRange(s.ctx, "USD", from, to)

	s.Require().NoError(err)
	s.Require().Len(rates, 2)
	s.True(rates[1].RateValue.Equal(decimal.RequireFromString("0.95")))
	s.Equal(to, rates[1].ValuationDate)
}

func (s *ExchangeRateRepositoryTestSuite) TestUpsertRates_CollapsesDuplicateKeys() {
	day := date("2023-10-01")
	rates := []domain.ExchangeRate{
		{ProviderID: 1, SourceCurrency: "USD", ExchangedCurrency: "EUR", ValuationDate: day, RateValue: decimal.RequireFromString("0.9")},
		{ProviderID: 1, SourceCurrency: "USD", ExchangedCurrency: "GBP", ValuationDate: day, RateValue: decimal.RequireFromString("0.8")},
		{ProviderID: 1, SourceCurrency: "USD", ExchangedCurrency: "EUR", ValuationDate: day, RateValue: decimal.RequireFromString("0.91")},
	}

	s.mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (provider_id, source_currency, exchanged_currency, valuation_date)")).
		WithArgs(
			[]int64{1, 1},
			[]string{"USD", "USD"},
			[]string{"EUR", "GBP"},
			[]string{"2023-10-01", "2023-10-01"},
			[]string{"0.910000", "0.800000"},
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	n, err := s.repo.UpsertRates(s.ctx, rates)

	s.Require().NoError(err)
	s.Equal(int64(2), n)
}

func (s *ExchangeRateRepositoryTestSuite) TestUpsertRates_UpdatesOnlyRateValue() {
	s.mock.ExpectExec(regexp.QuoteMeta("DO UPDATE SET rate_value = EXCLUDED.rate_value, updated_at = now()")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	_, err := s.repo.UpsertRates(s.ctx, []domain.ExchangeRate{
		{ProviderID: 1, SourceCurrency: "USD", ExchangedCurrency: "CHF", ValuationDate: date("2023-10-01"), RateValue: decimal.NewFromInt(1)},
	})

	s.NoError(err)
}

func (s *ExchangeRateRepositoryTestSuite) TestUpsertRates_EmptyBatchSkipsDatabase() {
	n, err := s.repo.UpsertRates(s.ctx, nil)

	s.NoError(err)
	s.Zero(n)
}

func (s *ExchangeRateRepositoryTestSuite) TestListExchangeRates_Paginates() {
	d1, d2, d3 := date("2023-10-03"), date("2023-10-02"), date("2023-10-01")
	s.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY valuation_date DESC, exchange_rate_id DESC LIMIT $2")).
		WithArgs("USD", 3).
		WillReturnRows(pgxmock.NewRows(rateCols).
			AddRow(int64(30), int64(1), "USD", "EUR", d1, "0.9", s.now, s.now).
			AddRow(int64(20), int64(1), "USD", "EUR", d2, "0.9", s.now, s.now).
			AddRow(int64(10), int64(1), "USD", "EUR", d3, "0.9", s.now, s.now))

	source := "USD"
	rates, next, err := s.repo.ListExchangeRates(s.ctx, &source, 2, nil)

	s.Require().NoError(err)
	s.Len(rates, 2)
	s.Require().NotNil(next)
	lastDate, lastID, err := pagination.DecodeToken(*next)
	s.Require().NoError(err)
	s.Equal(d2, lastDate)
	s.Equal(int64(20), lastID)
}

func (s *ExchangeRateRepositoryTestSuite) TestListExchangeRates_WithCursor() {
	token := pagination.EncodeToken(date("2023-10-02"), 20)
	s.mock.ExpectQuery(regexp.QuoteMeta("AND (valuation_date, exchange_rate_id) < ($1, $2)")).
		WithArgs(date("2023-10-02"), int64(20), 3).
		WillReturnRows(pgxmock.NewRows(rateCols).
			AddRow(int64(10), int64(1), "USD", "EUR", date("2023-10-01"), "0.9", s.now, s.now))

	rates, next, err := s.repo.ListExchangeRates(s.ctx, nil, 2, &token)

	s.Require().NoError(err)
	s.Len(rates, 1)
	s.Nil(next)
}

func (s *ExchangeRateRepositoryTestSuite) TestListExchangeRates_InvalidToken() {
	bad := "not-a-token"

	_, _, err := s.repo.ListExchangeRates(s.ctx, nil, 10, &bad)

	s.ErrorIs(err, apperrors.ErrValidation)
}
