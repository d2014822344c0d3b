package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeStaticData_SkipsExistingRows(t *testing.T) {
	ctx := context.Background()
	currencyRepo := new(MockCurrencyRepository)
	providerRepo := new(MockProviderRepository)

	for _, c := range domain.DefaultCurrencies {
		currencyRepo.On("SaveCurrency", ctx, c).Return(&c, nil).Once()
	}
	providerRepo.On("SaveProvider", ctx, domain.DefaultProviders[0]).Return(nil, apperrors.ErrDuplicate).Once()
	providerRepo.On("SaveProvider", ctx, domain.DefaultProviders[1]).Return(&domain.DefaultProviders[1], nil).Once()

	seeder := services.NewStaticDataService(currencyRepo, providerRepo, nil, tracked)

	require.NoError(t, seeder.InitializeStaticData(ctx))
	currencyRepo.AssertExpectations(t)
	providerRepo.AssertExpectations(t)
}

func TestInitializeStaticData_UsesCatalogNames(t *testing.T) {
	ctx := context.Background()
	currencyRepo := new(MockCurrencyRepository)
	providerRepo := new(MockProviderRepository)
	catalog := new(MockCurrencyCatalog)

	catalog.On("CurrencyDetails", ctx).Return([]domain.Currency{{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"}}, nil).Once()
	currencyRepo.On("SaveCurrency", ctx, domain.Currency{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"}).Return(&domain.Currency{Code: "JPY"}, nil).Once()
	currencyRepo.On("SaveCurrency", ctx, domain.Currency{Code: "SEK", Name: "SEK", Symbol: "SEK"}).Return(&domain.Currency{Code: "SEK"}, nil).Once()
	providerRepo.On("SaveProvider", ctx, mock.Anything).Return(&domain.Provider{}, nil).Twice()

	seeder := services.NewStaticDataService(currencyRepo, providerRepo, catalog, domain.TrackedCurrencies{"JPY", "SEK"})

	require.NoError(t, seeder.InitializeStaticData(ctx))
	currencyRepo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestInitializeStaticData_CatalogFailureFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	currencyRepo := new(MockCurrencyRepository)
	providerRepo := new(MockProviderRepository)
	catalog := new(MockCurrencyCatalog)

	catalog.On("CurrencyDetails", ctx).Return(nil, apperrors.ErrProviderTransport).Once()
	currencyRepo.On("SaveCurrency", ctx, domain.DefaultCurrencies[1]).Return(&domain.DefaultCurrencies[1], nil).Once()
	providerRepo.On("SaveProvider", ctx, mock.Anything).Return(&domain.Provider{}, nil).Twice()

	seeder := services.NewStaticDataService(currencyRepo, providerRepo, catalog, domain.TrackedCurrencies{"EUR"})

	require.NoError(t, seeder.InitializeStaticData(ctx))
	currencyRepo.AssertExpectations(t)
}

func TestInitializeStaticData_StopsOnStorageError(t *testing.T) {
	ctx := context.Background()
	currencyRepo := new(MockCurrencyRepository)
	providerRepo := new(MockProviderRepository)
	currencyRepo.On("SaveCurrency", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()

	seeder := services.NewStaticDataService(currencyRepo, providerRepo, nil, tracked)

	err := seeder.InitializeStaticData(ctx)

	assert.ErrorContains(t, err, "failed to seed currency USD")
	providerRepo.AssertNotCalled(t, "SaveProvider", mock.Anything, mock.Anything)
}
