package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/core/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	converter *MockConverter
	repo      *MockConversionRepository
	service   portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.converter = new(MockConverter)
	suite.repo = new(MockConversionRepository)
	suite.service = services.NewConversionService(suite.converter, suite.repo)
}

func (suite *ConversionServiceTestSuite) TestCreateConversion_Success() {
	req := dto.CreateConversionRequest{SourceCurrency: "USD", ExchangedCurrency: "EUR", Amount: "12.5"}
	result := &domain.ConversionResult{
		ProviderName:      "mock",
		SourceCurrency:    "USD",
		ExchangedCurrency: "EUR",
		SourceAmount:      dec("12.5"),
		ExchangedAmount:   dec("11.25"),
		RateValue:         dec("0.9"),
	}
	suite.converter.On("Convert", suite.ctx, "USD", "EUR", dec("12.5")).Return(result, nil).Once()
	suite.repo.On("SaveConversion", suite.ctx, mock.MatchedBy(func(c domain.Conversion) bool {
		return c.ProviderName == "mock" && c.ExchangedAmount.Equal(dec("11.25")) && c.RateValue.Equal(dec("0.9"))
	})).Return(&domain.Conversion{ConversionID: 3, ProviderName: "mock"}, nil).Once()

	saved, err := suite.service.CreateConversion(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(3), saved.ConversionID)
	suite.converter.AssertExpectations(suite.T())
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestCreateConversion_InvalidAmount() {
	_, err := suite.service.CreateConversion(suite.ctx, dto.CreateConversionRequest{SourceCurrency: "USD", ExchangedCurrency: "EUR", Amount: "1e"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.converter.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestCreateConversion_NoProviderIsNotRecorded() {
	suite.converter.On("Convert", suite.ctx, "USD", "GBP", mock.Anything).Return(nil, apperrors.ErrNoProviderAvailable).Once()

	_, err := suite.service.CreateConversion(suite.ctx, dto.CreateConversionRequest{SourceCurrency: "USD", ExchangedCurrency: "GBP", Amount: "1"})

	suite.ErrorIs(err, apperrors.ErrNoProviderAvailable)
	suite.repo.AssertNotCalled(suite.T(), "SaveConversion", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestListConversions_PassesCursor() {
	next := "bmV4dA=="
	token := "dG9rZW4="
	suite.repo.On("ListConversions", suite.ctx, 5, &token).Return([]domain.Conversion{{ConversionID: 1}}, &next, nil).Once()

	resp, err := suite.service.ListConversions(suite.ctx, dto.ListConversionsParams{Limit: 5, NextToken: token})

	suite.Require().NoError(err)
	suite.Len(resp.Conversions, 1)
	suite.Equal(&next, resp.NextToken)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

func TestExchangeService_ListExchangeRates(t *testing.T) {
	ctx := context.Background()
	rateRepo := new(MockExchangeRateRepository)
	source := "CHF"
	rateRepo.On("ListExchangeRates", ctx, &source, 0, (*string)(nil)).Return([]domain.ExchangeRate{
		{ExchangeRateID: 9, SourceCurrency: "CHF", ExchangedCurrency: "USD", ValuationDate: mustDate("2023-10-01"), RateValue: dec("1.1")},
	}, nil, nil).Once()

	svc := services.NewExchangeService(nil, rateRepo)
	resp, err := svc.ListExchangeRates(ctx, dto.ListExchangeRatesParams{SourceCurrency: "CHF"})

	assert.NoError(t, err)
	assert.Len(t, resp.ExchangeRates, 1)
	assert.Equal(t, "2023-10-01", resp.ExchangeRates[0].ValuationDate)
	assert.Nil(t, resp.NextToken)
}

func TestExchangeService_BuildsControllerPerCall(t *testing.T) {
	ctx := context.Background()
	providerRepo := new(MockProviderRepository)
	rateRepo := new(MockExchangeRateRepository)
	first := NewMockRateClient(domain.ProviderMock)
	first.On("Latest", ctx, "USD").Return(domain.Rates{"EUR": dec("0.9")}, nil)

	providerRepo.On("ListActiveProviders", ctx).Return([]domain.Provider{mockProvider}, nil).Once()
	providerRepo.On("ListActiveProviders", ctx).Return([]domain.Provider{}, nil).Once()

	factory := services.NewControllerFactory(providerRepo, rateRepo, clients.NewRegistry(first), tracked, 0)
	svc := services.NewExchangeService(factory, rateRepo)

	_, err := svc.Convert(ctx, "USD", "EUR", dec("1"))
	assert.NoError(t, err)

	// the provider was deactivated between calls
	_, err = svc.Convert(ctx, "USD", "EUR", dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrNoProviderAvailable)
	providerRepo.AssertExpectations(t)
}
