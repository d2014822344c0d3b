package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
)

// DefaultBeaconBaseURL is the public Currency Beacon API root.
const DefaultBeaconBaseURL = "https://api.currencybeacon.com/v1"

// maxErrorBodyBytes bounds how much of a failed response is kept for the error message.
const maxErrorBodyBytes = 512

// BeaconClient talks to the Currency Beacon HTTP API.
type BeaconClient struct {
	baseURL    string
	apiKey     string
	tracked    domain.TrackedCurrencies
	symbols    string
	httpClient *http.Client
}

var _ clients.RateClient = (*BeaconClient)(nil)

// NewBeaconClient creates a BeaconClient with its own http.Client.
func NewBeaconClient(baseURL, apiKey string, tracked domain.TrackedCurrencies, timeout time.Duration) *BeaconClient {
	if baseURL == "" {
		baseURL = DefaultBeaconBaseURL
	}
	return &BeaconClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		tracked: tracked,
		symbols: strings.Join(tracked, ","),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *BeaconClient) Name() domain.ProviderName {
	return domain.ProviderCurrencyBeacon
}

// Latest fetches today's rates for base.
func (c *BeaconClient) Latest(ctx context.Context, base string) (domain.Rates, error) {
	var resp beaconRatesResponse
	if err := c.get(ctx, "latest", c.rateParams(base), &resp); err != nil {
		return nil, err
	}
	rates, err := resp.validate(c.tracked)
	if err != nil {
		return nil, apperrors.NewProviderSchemaError(string(c.Name()), err)
	}
	return rates, nil
}

// Historical fetches the rates for base on a given day.
func (c *BeaconClient) Historical(ctx context.Context, base string, date time.Time) (domain.Rates, error) {
	params := c.rateParams(base)
	params.Set("date", domain.FormatDate(date))

	var resp beaconRatesResponse
	if err := c.get(ctx, "historical", params, &resp); err != nil {
		return nil, err
	}
	rates, err := resp.validate(c.tracked)
	if err != nil {
		return nil, apperrors.NewProviderSchemaError(string(c.Name()), err)
	}
	return rates, nil
}

// Timeseries fetches daily rates for base over [start, end].
func (c *BeaconClient) Timeseries(ctx context.Context, base string, start, end time.Time) (domain.RateSeries, error) {
	params := c.rateParams(base)
	params.Set("start_date", domain.FormatDate(start))
	params.Set("end_date", domain.FormatDate(end))

	var resp beaconTimeseriesResponse
	if err := c.get(ctx, "timeseries", params, &resp); err != nil {
		return nil, err
	}
	series, err := resp.validate(c.tracked)
	if err != nil {
		return nil, apperrors.NewProviderSchemaError(string(c.Name()), err)
	}
	return series, nil
}

// Currencies lists the fiat currencies Currency Beacon knows about.
func (c *BeaconClient) Currencies(ctx context.Context) ([]BeaconCurrency, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("type", "fiat")

	var resp beaconCurrenciesResponse
	if err := c.get(ctx, "currencies", params, &resp); err != nil {
		return nil, err
	}
	if err := resp.Meta.validate(); err != nil {
		return nil, apperrors.NewProviderSchemaError(string(c.Name()), err)
	}
	return resp.Response, nil
}

// CurrencyDetails returns the Currency Beacon listing as domain currencies keyed by ISO code.
func (c *BeaconClient) CurrencyDetails(ctx context.Context) ([]domain.Currency, error) {
	listed, err := c.Currencies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Currency, 0, len(listed))
	for _, bc := range listed {
		if bc.ShortCode == "" {
			continue
		}
		out = append(out, domain.Currency{Code: bc.ShortCode, Name: bc.Name, Symbol: bc.Symbol})
	}
	return out, nil
}

func (c *BeaconClient) rateParams(base string) url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("base", base)
	params.Set("symbols", c.symbols)
	return params
}

// get performs GET {baseURL}/{endpoint}?params and decodes a 200 response into out.
func (c *BeaconClient) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	name := string(c.Name())
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apperrors.NewProviderTransportError(name, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewProviderTransportError(name, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return apperrors.NewProviderTransportError(name, fmt.Errorf("%s returned status %d: %s", endpoint, resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewProviderSchemaError(name, fmt.Errorf("failed to decode %s response: %w", endpoint, err))
	}
	return nil
}
