package providers

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/SscSPs/fx_rates_service/internal/core/ports/clients"
	"github.com/shopspring/decimal"
)

// mock rates are drawn uniformly from [0.900000, 1.099999] in steps of 1e-6
const (
	mockRateMinMicros  = 900_000
	mockRateSpanMicros = 200_000
)

// MockClient generates plausible rates locally. It never fails.
type MockClient struct {
	tracked domain.TrackedCurrencies

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ clients.RateClient = (*MockClient)(nil)

// NewMockClient creates a MockClient. A nil rnd is replaced by a time-seeded source.
func NewMockClient(tracked domain.TrackedCurrencies, rnd *rand.Rand) *MockClient {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockClient{tracked: tracked, rnd: rnd}
}

func (c *MockClient) Name() domain.ProviderName {
	return domain.ProviderMock
}

func (c *MockClient) Latest(_ context.Context, base string) (domain.Rates, error) {
	return c.generate(base), nil
}

func (c *MockClient) Historical(_ context.Context, base string, _ time.Time) (domain.Rates, error) {
	return c.generate(base), nil
}

func (c *MockClient) Timeseries(_ context.Context, base string, start, end time.Time) (domain.RateSeries, error) {
	series := make(domain.RateSeries, domain.DaysInclusive(start, end))
	domain.EachDay(start, end, func(day time.Time) {
		series[domain.FormatDate(day)] = c.generate(base)
	})
	return series, nil
}

func (c *MockClient) generate(base string) domain.Rates {
	c.mu.Lock()
	defer c.mu.Unlock()

	rates := make(domain.Rates, len(c.tracked))
	for _, code := range c.tracked {
		if code == base {
			rates[code] = decimal.NewFromInt(1)
			continue
		}
		micros := mockRateMinMicros + c.rnd.Int63n(mockRateSpanMicros)
		rates[code] = decimal.New(micros, -domain.RateScale)
	}
	return rates
}
