package domain

// ProviderName identifies a rate source. Each name maps to exactly one client.
type ProviderName string

const (
	ProviderCurrencyBeacon ProviderName = "currency_beacon"
	ProviderMock           ProviderName = "mock"
)

// StoreProviderName tags series answered from the local rate store.
const StoreProviderName = "store"

// IsValid reports whether n is one of the known provider names.
func (n ProviderName) IsValid() bool {
	switch n {
	case ProviderCurrencyBeacon, ProviderMock:
		return true
	}
	return false
}

// IsLive reports whether results from this provider come from an external source
// and may therefore be written to the rate store.
func (n ProviderName) IsLive() bool {
	return n == ProviderCurrencyBeacon
}

// Provider is a configured rate source with its fallback priority.
type Provider struct {
	ProviderID  int64        `json:"providerID"`
	Name        ProviderName `json:"name"`
	Description string       `json:"description"`
	Priority    int          `json:"priority"` // lower is tried first, unique
	IsActive    bool         `json:"isActive"`
	AuditFields
}

// DefaultProviders is the initial provider registry written by the seeder.
var DefaultProviders = []Provider{
	{Name: ProviderCurrencyBeacon, Description: "Currency Beacon live rates", Priority: 1, IsActive: true},
	{Name: ProviderMock, Description: "Generated rates for offline use", Priority: 2, IsActive: true},
}
