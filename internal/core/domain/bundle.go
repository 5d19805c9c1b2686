package domain

import "github.com/govalues/decimal"

// Bundle is a catalog quote. The price is frozen on the order at creation.
type Bundle struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CountryISO   string          `json:"country_iso"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Currency     string          `json:"currency"`
	DataAmountMB int             `json:"data_amount_mb"`
	DurationDays int             `json:"duration_days"`
	Unlimited    bool            `json:"unlimited"`
	Available    bool            `json:"available"`
}
