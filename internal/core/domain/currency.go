package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID int64  `json:"currencyID"`
	Code       string `json:"code"`   // e.g., "USD"
	Name       string `json:"name"`   // e.g., "United States Dollar"
	Symbol     string `json:"symbol"` // e.g., "$"
	AuditFields
}

// DefaultCurrencies is the initial currency set written by the seeder.
var DefaultCurrencies = []Currency{
	{Code: "USD", Name: "United States Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound Sterling", Symbol: "£"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
}

// TrackedCurrencies is the configured set of currency codes the service quotes,
// kept in configuration order.
type TrackedCurrencies []string

// Contains reports whether code is tracked.
func (t TrackedCurrencies) Contains(code string) bool {
	for _, c := range t {
		if c == code {
			return true
		}
	}
	return false
}

// Count returns the number of tracked currencies.
func (t TrackedCurrencies) Count() int {
	return len(t)
}
