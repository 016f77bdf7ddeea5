// Package taxconfig stores and serves data-driven tax type configuration.
// Built-in tax types ship their zone tables in code; custom ones are rows in
// Postgres that merchants manage through the admin API.
package taxconfig

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/tax"
	"github.com/bucefal91/commerce/internal/taxtype"
)

// RateRow is one configured rate: a label and a decimal fraction such as
// 0.2 for 20%.
type RateRow struct {
	Label  string          `json:"label" validate:"required,max=255"`
	Amount decimal.Decimal `json:"amount"`
}

// Config is a stored custom tax type.
type Config struct {
	ID               uuid.UUID `json:"id"`
	Label            string    `json:"label" validate:"required,max=255"`
	DisplayLabel     string    `json:"display_label" validate:"required,oneof=tax vat gst consumption_tax"`
	RoundingMode     string    `json:"rounding_mode" validate:"required,oneof=none half_up half_down half_even half_odd"`
	DisplayInclusive bool      `json:"display_inclusive"`
	Enabled          bool      `json:"enabled"`
	Rates            []RateRow `json:"rates" validate:"required,min=1,dive"`
	Territories      []string  `json:"territories" validate:"required,min=1,dive,iso3166_1_alpha2"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TaxType assembles the runtime tax type from the stored row. The rounding
// mode has already been validated, so parse failures fall back to none.
func (c Config) TaxType() taxtype.Custom {
	mode, _ := tax.ParseRoundingMode(c.RoundingMode)
	rates := make([]taxtype.CustomRate, 0, len(c.Rates))
	for _, row := range c.Rates {
		rates = append(rates, taxtype.CustomRate{Label: row.Label, Amount: row.Amount})
	}
	territories := make([]tax.CountryCode, 0, len(c.Territories))
	for _, country := range c.Territories {
		territories = append(territories, tax.CountryCode(country))
	}
	return taxtype.Custom{
		TypeID:      c.ID.String(),
		TypeLabel:   c.Label,
		Display:     c.DisplayLabel,
		Rounding:    mode,
		Inclusive:   c.DisplayInclusive,
		Rates:       rates,
		Territories: territories,
	}
}
