package pgsql_test

import (
	"regexp"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
)

var currencyCols = []string{"currency_id", "code", "name", "symbol", "created_at", "updated_at"}

type CurrencyRepositoryTestSuite struct {
	RepositorySuite
	repo *pgsql.PgxCurrencyRepository
}

func (s *CurrencyRepositoryTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.repo = pgsql.NewPgxCurrencyRepository(s.mock)
}

func (s *CurrencyRepositoryTestSuite) TestSaveCurrency_Success() {
	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO currencies (code, name, symbol)")).
		WithArgs("CHF", "Swiss Franc", "CHF").
		WillReturnRows(pgxmock.NewRows(currencyCols).AddRow(int64(4), "CHF", "Swiss Franc", "CHF", s.now, s.now))

	saved, err := s.repo.SaveCurrency(s.ctx, domain.Currency{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"})

	s.Require().NoError(err)
	s.Equal(int64(4), saved.CurrencyID)
	s.Equal(s.now, saved.CreatedAt)
}

func (s *CurrencyRepositoryTestSuite) TestSaveCurrency_Duplicate() {
	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO currencies")).
		WithArgs("USD", "United States Dollar", "$").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "currencies_code_key"})

	_, err := s.repo.SaveCurrency(s.ctx, domain.Currency{Code: "USD", Name: "United States Dollar", Symbol: "$"})

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CurrencyRepositoryTestSuite) TestFindCurrencyByCode_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM currencies WHERE code = $1")).
		WithArgs("XXX").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.repo.FindCurrencyByCode(s.ctx, "XXX")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CurrencyRepositoryTestSuite) TestListCurrencies() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM currencies ORDER BY code")).
		WillReturnRows(pgxmock.NewRows(currencyCols).
			AddRow(int64(2), "EUR", "Euro", "€", s.now, s.now).
			AddRow(int64(1), "USD", "United States Dollar", "$", s.now, s.now))

	currencies, err := s.repo.ListCurrencies(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(currencies, 2)
	s.Equal("EUR", currencies[0].Code)
	s.Equal("$", currencies[1].Symbol)
}

func (s *CurrencyRepositoryTestSuite) TestUpdateCurrency_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("UPDATE currencies")).
		WithArgs("JPY", "Yen", "¥").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.repo.UpdateCurrency(s.ctx, "JPY", domain.Currency{Name: "Yen", Symbol: "¥"})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CurrencyRepositoryTestSuite) TestDeleteCurrency() {
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM currencies WHERE code = $1")).
		WithArgs("GBP").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM currencies WHERE code = $1")).
		WithArgs("GBP").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	s.NoError(s.repo.DeleteCurrency(s.ctx, "GBP"))
	s.ErrorIs(s.repo.DeleteCurrency(s.ctx, "GBP"), apperrors.ErrNotFound)
}
