package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency   CurrencySvcFacade
	Provider   ProviderSvcFacade
	Exchange   ExchangeSvcFacade
	Backfill   BackfillSvc
	Conversion ConversionSvcFacade
	Seeder     StaticDataService
}

// StaticDataService writes the initial currencies and providers.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
