package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/tax"
)

// Store describes the selling party: where it is located and where it is
// registered to collect tax.
type Store struct {
	Address          tax.Address
	TaxRegistrations []tax.CountryCode
}

// Item is a single order line. The unit price is the taxable base; tax
// adjustments are appended by the engine and never mutated afterwards.
type Item struct {
	ID        uuid.UUID
	UnitPrice decimal.Decimal
	Quantity  int64
	Digital   bool

	adjustments []tax.Adjustment
}

// AddAdjustment appends a computed adjustment to the item.
func (i *Item) AddAdjustment(a tax.Adjustment) {
	i.adjustments = append(i.adjustments, a)
}

// Adjustments returns the adjustments attached to the item.
func (i *Item) Adjustments() []tax.Adjustment {
	return i.adjustments
}

// Order is the ordered sequence of line items priced in a single currency.
type Order struct {
	Currency string
	Date     time.Time
	Items    []*Item
}

// minorUnits lists ISO 4217 currencies that do not use two decimal places.
var minorUnits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0,
	"KMF": 0, "KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0,
	"VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnits returns the number of decimal places for a currency code.
func MinorUnits(currency string) int32 {
	if places, ok := minorUnits[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return places
	}
	return 2
}
