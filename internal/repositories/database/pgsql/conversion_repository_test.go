package pgsql_test

import (
	"regexp"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/repositories/database/pgsql"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
)

var conversionCols = []string{"conversion_id", "provider_name", "source_currency", "exchanged_currency", "source_amount", "exchanged_amount", "rate_value", "created_at", "updated_at"}

type ConversionRepositoryTestSuite struct {
	RepositorySuite
	repo *pgsql.PgxConversionRepository
}

func (s *ConversionRepositoryTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.repo = pgsql.NewPgxConversionRepository(s.mock)
}

func (s *ConversionRepositoryTestSuite) TestSaveConversion() {
	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO conversions")).
		WithArgs("mock", "USD", "EUR", "10.000000", "9.450000", "0.945000").
		WillReturnRows(pgxmock.NewRows(conversionCols).
			AddRow(int64(5), "mock", "USD", "EUR", "10.000000", "9.450000", "0.945000", s.now, s.now))

	saved, err := s.repo.SaveConversion(s.ctx, domain.Conversion{
		ProviderName:      "mock",
		SourceCurrency:    "USD",
		ExchangedCurrency: "EUR",
		SourceAmount:      decimal.NewFromInt(10),
		ExchangedAmount:   decimal.RequireFromString("9.45"),
		RateValue:         decimal.RequireFromString("0.945"),
	})

	s.Require().NoError(err)
	s.Equal(int64(5), saved.ConversionID)
	s.True(saved.ExchangedAmount.Equal(decimal.RequireFromString("9.45")))
}

func (s *ConversionRepositoryTestSuite) TestListConversions_LastPage() {
	s.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, conversion_id DESC LIMIT $1")).
		WithArgs(21).
		WillReturnRows(pgxmock.NewRows(conversionCols).
			AddRow(int64(1), "mock", "USD", "EUR", "1", "0.9", "0.9", s.now, s.now))

	conversions, next, err := s.repo.ListConversions(s.ctx, 0, nil)

	s.Require().NoError(err)
	s.Len(conversions, 1)
	s.Nil(next)
}
