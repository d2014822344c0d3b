package providers

import (
	"errors"
	"fmt"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

type beaconMeta struct {
	Code       *int   `json:"code"`
	Disclaimer string `json:"disclaimer"`
}

type beaconRatesResponse struct {
	Meta  *beaconMeta                `json:"meta"`
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type beaconTimeseriesResponse struct {
	Meta     *beaconMeta                           `json:"meta"`
	Response map[string]map[string]decimal.Decimal `json:"response"`
}

// BeaconCurrency is one entry of the Currency Beacon currencies listing.
type BeaconCurrency struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	Code      string `json:"code"`
	Precision int    `json:"precision"`
	Symbol    string `json:"symbol"`
}

type beaconCurrenciesResponse struct {
	Meta     *beaconMeta      `json:"meta"`
	Response []BeaconCurrency `json:"response"`
}

func (m *beaconMeta) validate() error {
	if m == nil || m.Code == nil {
		return errors.New("missing meta.code")
	}
	return nil
}

func (r *beaconRatesResponse) validate(tracked domain.TrackedCurrencies) (domain.Rates, error) {
	if err := r.Meta.validate(); err != nil {
		return nil, err
	}
	if r.Base == "" {
		return nil, errors.New("missing base")
	}
	if r.Date == "" {
		return nil, errors.New("missing date")
	}
	return pickTracked(r.Rates, tracked)
}

func (r *beaconTimeseriesResponse) validate(tracked domain.TrackedCurrencies) (domain.RateSeries, error) {
	if err := r.Meta.validate(); err != nil {
		return nil, err
	}
	if r.Response == nil {
		return nil, errors.New("missing response")
	}
	series := make(domain.RateSeries, len(r.Response))
	for day, rates := range r.Response {
		if _, err := domain.ParseDate(day); err != nil {
			return nil, fmt.Errorf("response key: %w", err)
		}
		picked, err := pickTracked(rates, tracked)
		if err != nil {
			return nil, fmt.Errorf("response[%s]: %w", day, err)
		}
		series[day] = picked
	}
	return series, nil
}

// pickTracked returns the tracked subset of rates rounded to domain.RateScale,
// failing if any tracked code is absent.
func pickTracked(rates map[string]decimal.Decimal, tracked domain.TrackedCurrencies) (domain.Rates, error) {
	if rates == nil {
		return nil, errors.New("missing rates")
	}
	picked := make(domain.Rates, len(tracked))
	for _, code := range tracked {
		v, ok := rates[code]
		if !ok {
			return nil, fmt.Errorf("missing rate for %s", code)
		}
		picked[code] = v.Round(domain.RateScale)
	}
	return picked, nil
}
