package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "single day", from: "2023-10-01", to: "2023-10-01", want: 1},
		{name: "two days", from: "2023-10-01", to: "2023-10-02", want: 2},
		{name: "across month end", from: "2023-01-30", to: "2023-02-02", want: 4},
		{name: "leap year february", from: "2024-02-01", to: "2024-03-01", want: 30},
		{name: "inverted range", from: "2023-10-02", to: "2023-10-01", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DaysInclusive(mustDate(t, tt.from), mustDate(t, tt.to)))
		})
	}
}

func TestSplitRange_NinetyTwoDays(t *testing.T) {
	from := mustDate(t, "2023-01-01")
	to := from.AddDate(0, 0, 91)

	chunks := domain.SplitRange(from, to, 30)

	require.Len(t, chunks, 4)
	wantDays := []int{30, 30, 30, 2}
	for i, c := range chunks {
		assert.Equal(t, wantDays[i], c.Days(), "chunk %d (%s)", i, c)
	}

	// contiguous, non-overlapping, covering both ends
	assert.True(t, chunks[0].From.Equal(from))
	assert.True(t, chunks[len(chunks)-1].To.Equal(to))
	for i := 1; i < len(chunks); i++ {
		assert.True(t, chunks[i].From.Equal(chunks[i-1].To.AddDate(0, 0, 1)), "gap or overlap before chunk %d", i)
	}
}

func TestSplitRange_EdgeCases(t *testing.T) {
	day := mustDate(t, "2023-10-01")

	single := domain.SplitRange(day, day, 30)
	require.Len(t, single, 1)
	assert.Equal(t, 1, single[0].Days())

	exact := domain.SplitRange(day, day.AddDate(0, 0, 29), 30)
	require.Len(t, exact, 1)
	assert.Equal(t, 30, exact[0].Days())

	assert.Empty(t, domain.SplitRange(day, day.AddDate(0, 0, -1), 30))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := domain.ParseDate("01/10/2023")
	assert.Error(t, err)
}

func TestSeriesFromRates(t *testing.T) {
	day1 := mustDate(t, "2023-10-01")
	day2 := mustDate(t, "2023-10-02")
	rows := []domain.ExchangeRate{
		{SourceCurrency: "USD", ExchangedCurrency: "EUR", ValuationDate: day1, RateValue: decimal.RequireFromString("0.94")},
		{SourceCurrency: "USD", ExchangedCurrency: "GBP", ValuationDate: day1, RateValue: decimal.RequireFromString("0.81")},
		{SourceCurrency: "USD", ExchangedCurrency: "EUR", ValuationDate: day2, RateValue: decimal.RequireFromString("0.95")},
	}

	series := domain.SeriesFromRates(rows)

	require.Len(t, series, 2)
	assert.True(t, series["2023-10-01"]["GBP"].Equal(decimal.RequireFromString("0.81")))
	assert.True(t, series["2023-10-02"]["EUR"].Equal(decimal.RequireFromString("0.95")))
}

func TestTrackedCurrencies_Contains(t *testing.T) {
	tracked := domain.TrackedCurrencies{"USD", "EUR", "GBP", "CHF"}
	assert.True(t, tracked.Contains("CHF"))
	assert.False(t, tracked.Contains("JPY"))
	assert.Equal(t, 4, tracked.Count())
}
