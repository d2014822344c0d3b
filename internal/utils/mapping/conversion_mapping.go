package mapping

import (
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/models"
)

// ToModelConversion converts a domain Conversion to a model Conversion
func ToModelConversion(d domain.Conversion) models.Conversion {
	return models.Conversion{
		ConversionID:      d.ConversionID,
		ProviderName:      d.ProviderName,
		SourceCurrency:    d.SourceCurrency,
		ExchangedCurrency: d.ExchangedCurrency,
		SourceAmount:      d.SourceAmount,
		ExchangedAmount:   d.ExchangedAmount,
		RateValue:         d.RateValue,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConversion converts a model Conversion to a domain Conversion
func ToDomainConversion(m models.Conversion) domain.Conversion {
	return domain.Conversion{
		ConversionID:      m.ConversionID,
		ProviderName:      m.ProviderName,
		SourceCurrency:    m.SourceCurrency,
		ExchangedCurrency: m.ExchangedCurrency,
		SourceAmount:      m.SourceAmount,
		ExchangedAmount:   m.ExchangedAmount,
		RateValue:         m.RateValue,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConversionSlice converts a slice of model Conversions to domain Conversions
func ToDomainConversionSlice(ms []models.Conversion) []domain.Conversion {
	ds := make([]domain.Conversion, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConversion(m)
	}
	return ds
}
