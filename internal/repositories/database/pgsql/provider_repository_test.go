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

var providerCols = []string{"provider_id", "name", "description", "priority", "is_active", "created_at", "updated_at"}

type ProviderRepositoryTestSuite struct {
	RepositorySuite
	repo *pgsql.PgxProviderRepository
}

func (s *ProviderRepositoryTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.repo = pgsql.NewPgxProviderRepository(s.mock)
}

func (s *ProviderRepositoryTestSuite) TestListActiveProviders_OrderedByPriority() {
	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active ORDER BY priority ASC")).
		WillReturnRows(pgxmock.NewRows(providerCols).
			AddRow(int64(1), "currency_beacon", "live", 1, true, s.now, s.now).
			AddRow(int64(2), "mock", "generated", 2, true, s.now, s.now))

	providers, err := s.repo.ListActiveProviders(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(providers, 2)
	s.Equal(domain.ProviderCurrencyBeacon, providers[0].Name)
	s.Equal(2, providers[1].Priority)
}

func (s *ProviderRepositoryTestSuite) TestSaveProvider_PriorityTaken() {
	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO providers")).
		WithArgs("mock", "", 1, true).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "providers_priority_key"})

	_, err := s.repo.SaveProvider(s.ctx, domain.Provider{Name: domain.ProviderMock, Priority: 1, IsActive: true})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Contains(err.Error(), "providers_priority_key")
}

func (s *ProviderRepositoryTestSuite) TestUpdateProvider() {
	s.mock.ExpectQuery(regexp.QuoteMeta("UPDATE providers")).
		WithArgs(int64(2), "generated", 3, false).
		WillReturnRows(pgxmock.NewRows(providerCols).
			AddRow(int64(2), "mock", "generated", 3, false, s.now, s.now))

	updated, err := s.repo.UpdateProvider(s.ctx, domain.Provider{ProviderID: 2, Name: domain.ProviderMock, Description: "generated", Priority: 3})

	s.Require().NoError(err)
	s.Equal(3, updated.Priority)
	s.False(updated.IsActive)
}

func (s *ProviderRepositoryTestSuite) TestFindProviderByName_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM providers WHERE name = $1")).
		WithArgs("currency_beacon").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.repo.FindProviderByName(s.ctx, domain.ProviderCurrencyBeacon)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ProviderRepositoryTestSuite) TestDeleteProvider_NotFound() {
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM providers")).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	s.ErrorIs(s.repo.DeleteProvider(s.ctx, 9), apperrors.ErrNotFound)
}
