package domain

import "fmt"

// ProductCategory groups products into catalog sections.
type ProductCategory string

const (
	CategoryFeatured  ProductCategory = "featured"
	CategoryOriginals ProductCategory = "originals"
)

// Heading returns the section heading used by the shop list.
func (c ProductCategory) Heading() string {
	switch c {
	case CategoryFeatured:
		return "~ featured ~"
	case CategoryOriginals:
		return "~ originals ~"
	default:
		return string(c)
	}
}

// RoastLevel describes how dark a coffee is roasted. Empty for non-coffee
// products.
type RoastLevel string

const (
	RoastLight  RoastLevel = "light"
	RoastMedium RoastLevel = "medium"
	RoastDark   RoastLevel = "dark"
)

func (r RoastLevel) String() string {
	if r == "" {
		return ""
	}
	return string(r) + " roast"
}

// ProductType distinguishes recurring subscriptions from one-time purchases.
type ProductType string

const (
	TypeSubscription ProductType = "subscription"
	TypeOneTime      ProductType = "one_time"
)

// Product is a catalog entry. Immutable once loaded; the catalog is replaced
// wholesale on reload.
type Product struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Slug           string          `json:"slug" yaml:"slug"`
	Description    string          `json:"description" yaml:"description"`
	PriceCents     int             `json:"price_cents" yaml:"price_cents"`
	Category       ProductCategory `json:"category" yaml:"category"`
	RoastLevel     RoastLevel      `json:"roast_level,omitempty" yaml:"roast_level,omitempty"`
	WeightOz       int             `json:"weight_oz" yaml:"weight_oz"`
	BeanType       string          `json:"bean_type" yaml:"bean_type"`
	ProductType    ProductType     `json:"product_type" yaml:"product_type"`
	HighlightColor string          `json:"highlight_color" yaml:"highlight_color"`
	RegionID       string          `json:"region_id" yaml:"region_id"`
	InStock        bool            `json:"in_stock" yaml:"in_stock"`
}

// PriceDisplay renders the price in whole currency units, e.g. "$25".
func (p Product) PriceDisplay() string {
	return fmt.Sprintf("$%d", p.PriceCents/100)
}

// DetailsLine renders the roast/weight/bean summary shown under the name.
func (p Product) DetailsLine() string {
	if p.RoastLevel != "" {
		return fmt.Sprintf("%s | %doz | %s", p.RoastLevel, p.WeightOz, p.BeanType)
	}
	return fmt.Sprintf("%doz", p.WeightOz)
}
