package domain

// Region is a storefront region with its own catalog and currency.
type Region struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Code     string `json:"code" yaml:"code"`
	Flag     string `json:"flag" yaml:"flag"`
	Currency string `json:"currency" yaml:"currency"`
	// FreeShippingThreshold is in minor currency units (cents).
	FreeShippingThreshold int `json:"free_shipping_threshold" yaml:"free_shipping_threshold"`
}

// FlatShippingCents is charged when the subtotal is below the region's
// free-shipping threshold.
const FlatShippingCents = 800

// ShippingCents returns the shipping cost for a cart subtotal in this region.
func (r Region) ShippingCents(subtotalCents int) int {
	if subtotalCents >= r.FreeShippingThreshold {
		return 0
	}
	return FlatShippingCents
}

// DefaultRegion is the built-in fallback used when no regions could be loaded.
func DefaultRegion() Region {
	return Region{
		ID:                    "global",
		Name:                  "Global",
		Code:                  "Global",
		Flag:                  "🌎",
		Currency:              "USD",
		FreeShippingThreshold: 4000,
	}
}
