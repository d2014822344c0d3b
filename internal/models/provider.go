package models

// Provider represents a row of the providers table.
type Provider struct {
	ProviderID  int64  `db:"provider_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Priority    int    `db:"priority"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
