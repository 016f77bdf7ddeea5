package tax

import "time"

// CountryCode is an ISO 3166-1 alpha-2 country code.
type CountryCode string

// Address is the postal location used for territory matching. Only the
// fields relevant to tax jurisdiction are carried.
type Address struct {
	Country    CountryCode `json:"country"`
	PostalCode string      `json:"postal_code,omitempty"`
}

// TransactionContext is the read-only input to jurisdiction resolution.
// It is assembled per line item and never persisted.
type TransactionContext struct {
	StoreAddress       Address
	CustomerAddress    Address
	Date               time.Time
	StoreRegistrations []CountryCode
	CustomerTaxNumber  string
	Digital            bool
}

// Registered reports whether the store holds a tax registration for the country.
func (c TransactionContext) Registered(country CountryCode) bool {
	for _, reg := range c.StoreRegistrations {
		if reg == country {
			return true
		}
	}
	return false
}
