package domain

import (
	"strings"
	"time"
)

// ShippingAddress is the free-form address draft edited during checkout.
type ShippingAddress struct {
	Name       string `json:"name"`
	Street1    string `json:"street_1"`
	Street2    string `json:"street_2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postal_code"`
}

// Complete reports whether the address carries the minimum persistable set of
// fields. State, street2 and phone are optional here; the new-address checkout
// gate applies a stricter rule.
func (a ShippingAddress) Complete() bool {
	return a.Name != "" &&
		a.Street1 != "" &&
		a.City != "" &&
		a.Country != "" &&
		a.PostalCode != ""
}

// DisplayLine renders the address as a single comma-separated line, skipping
// empty fields.
func (a ShippingAddress) DisplayLine() string {
	var parts []string
	for _, p := range []string{a.Street1, a.City, a.State, a.Country, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// SavedAddress is a shipping address persisted in the remote store, scoped to
// a user fingerprint. ID and CreatedAt are assigned by the backend.
type SavedAddress struct {
	ID              string     `json:"id,omitempty"`
	UserFingerprint string     `json:"user_fingerprint"`
	Name            string     `json:"name"`
	Street1         string     `json:"street_1"`
	Street2         string     `json:"street_2"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	Country         string     `json:"country"`
	Phone           string     `json:"phone"`
	PostalCode      string     `json:"postal_code"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// SavedAddressFrom wraps a shipping address for persistence under the given
// fingerprint. ID and CreatedAt stay empty until the backend assigns them.
func SavedAddressFrom(addr ShippingAddress, fingerprint string) SavedAddress {
	return SavedAddress{
		UserFingerprint: fingerprint,
		Name:            addr.Name,
		Street1:         addr.Street1,
		Street2:         addr.Street2,
		City:            addr.City,
		State:           addr.State,
		Country:         addr.Country,
		Phone:           addr.Phone,
		PostalCode:      addr.PostalCode,
	}
}

// ToShipping drops the fingerprint and backend identity, returning the plain
// address for local use.
func (s SavedAddress) ToShipping() ShippingAddress {
	return ShippingAddress{
		Name:       s.Name,
		Street1:    s.Street1,
		Street2:    s.Street2,
		City:       s.City,
		State:      s.State,
		Country:    s.Country,
		Phone:      s.Phone,
		PostalCode: s.PostalCode,
	}
}

// DisplayLine renders the saved address the same way ShippingAddress does.
func (s SavedAddress) DisplayLine() string {
	return s.ToShipping().DisplayLine()
}
