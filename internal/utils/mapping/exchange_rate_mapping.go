package mapping

import (
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:    d.ExchangeRateID,
		ProviderID:        d.ProviderID,
		SourceCurrency:    d.SourceCurrency,
		ExchangedCurrency: d.ExchangedCurrency,
		ValuationDate:     d.ValuationDate,
		RateValue:         d.RateValue,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:    m.ExchangeRateID,
		ProviderID:        m.ProviderID,
		SourceCurrency:    m.SourceCurrency,
		ExchangedCurrency: m.ExchangedCurrency,
		ValuationDate:     m.ValuationDate,
		RateValue:         m.RateValue,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
