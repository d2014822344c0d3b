package models

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyID int64  `db:"currency_id"`
	Code       string `db:"code"` // e.g., "USD"
	Name       string `db:"name"`
	Symbol     string `db:"symbol"`
	AuditFields
}
