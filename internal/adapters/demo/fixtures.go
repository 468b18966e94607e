package demo

import "roastline/pkg/domain"

// SeedRegions returns the demo storefront regions.
func SeedRegions() []domain.Region {
	return []domain.Region{
		{
			ID:                    "na",
			Name:                  "North America",
			Code:                  "NA",
			Flag:                  "🇺🇸",
			Currency:              "USD",
			FreeShippingThreshold: 4000,
		},
		{
			ID:                    "eu",
			Name:                  "Europe",
			Code:                  "EU",
			Flag:                  "🇪🇺",
			Currency:              "EUR",
			FreeShippingThreshold: 5000,
		},
	}
}

// SeedProducts returns the demo catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:             "11111111-1111-1111-1111-111111111101",
			Name:           "cron",
			Slug:           "cron",
			Description:    "A monthly rotation of single-origin beans, delivered on schedule.",
			PriceCents:     2500,
			Category:       domain.CategoryFeatured,
			RoastLevel:     domain.RoastMedium,
			WeightOz:       12,
			BeanType:       "arabica",
			ProductType:    domain.TypeSubscription,
			HighlightColor: "#ff5c00",
			RegionID:       "na",
			InStock:        true,
		},
		{
			ID:             "11111111-1111-1111-1111-111111111102",
			Name:           "segfault",
			Slug:           "segfault",
			Description:    "A dark roast strong enough to debug at 3am.",
			PriceCents:     2200,
			Category:       domain.CategoryOriginals,
			RoastLevel:     domain.RoastDark,
			WeightOz:       12,
			BeanType:       "robusta blend",
			ProductType:    domain.TypeOneTime,
			HighlightColor: "#d62828",
			RegionID:       "na",
			InStock:        true,
		},
		{
			ID:             "11111111-1111-1111-1111-111111111103",
			Name:           "dark mode",
			Slug:           "dark-mode",
			Description:    "Smooth, low-acid dark roast for late sessions.",
			PriceCents:     2000,
			Category:       domain.CategoryOriginals,
			RoastLevel:     domain.RoastDark,
			WeightOz:       12,
			BeanType:       "arabica",
			ProductType:    domain.TypeOneTime,
			HighlightColor: "#1d3557",
			RegionID:       "eu",
			InStock:        true,
		},
		{
			ID:             "11111111-1111-1111-1111-111111111104",
			Name:           "404 blend",
			Slug:           "404-blend",
			Description:    "Sold out more often than not.",
			PriceCents:     1800,
			Category:       domain.CategoryOriginals,
			RoastLevel:     domain.RoastLight,
			WeightOz:       10,
			BeanType:       "arabica",
			ProductType:    domain.TypeOneTime,
			HighlightColor: "#588157",
			RegionID:       "na",
			InStock:        false,
		},
	}
}
