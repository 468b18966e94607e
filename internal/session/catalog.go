package session

import (
	"context"
	"time"

	"roastline/pkg/domain"
)

// Cache TTLs, fixed per namespace.
const (
	ProductCacheTTL = 5 * time.Minute
	RegionCacheTTL  = 30 * time.Minute
)

// Cache namespaces and key qualifiers.
const (
	ProductCacheNamespace = "products"
	RegionCacheNamespace  = "regions"

	regionCacheKey = "regions"
)

func productCacheKey(regionID string) string {
	return "products:" + regionID
}

// LoadRegions loads the region list through the cache. A backend failure or
// an empty list falls back to the built-in default region; the session always
// ends up with a usable current region.
func (s *Session) LoadRegions(ctx context.Context) {
	if cached, ok, err := s.regionCache.Get(ctx, regionCacheKey); err == nil && ok {
		s.Regions = cached
		s.adoptFirstRegion()
		return
	}

	s.Loading = LoadBusy
	regions, err := s.backend.ListRegions(ctx)
	switch {
	case err != nil:
		s.logger.Warn("load regions", "error", err)
		s.Loading = LoadFailure
		s.Notification = "Failed to load regions: " + err.Error()
		s.Regions = []domain.Region{domain.DefaultRegion()}
		s.Region = s.Regions[0]
	case len(regions) == 0:
		s.Regions = []domain.Region{domain.DefaultRegion()}
		s.Region = s.Regions[0]
		s.Loading = LoadIdle
	default:
		if err := s.regionCache.Set(ctx, regionCacheKey, regions); err != nil {
			s.logger.Warn("cache regions", "error", err)
		}
		s.Regions = regions
		s.adoptFirstRegion()
		s.Loading = LoadIdle
	}
}

// adoptFirstRegion points the current region at the head of the loaded list
// when the session is still on the placeholder default.
func (s *Session) adoptFirstRegion() {
	if len(s.Regions) == 0 {
		return
	}
	if s.Region.ID == "" || s.Region.ID == domain.DefaultRegion().ID {
		s.Region = s.Regions[0]
	}
}

// LoadProducts loads the current region's catalog through the cache. On
// failure the catalog is emptied and a notification surfaces; browsing stays
// navigable.
func (s *Session) LoadProducts(ctx context.Context) {
	key := productCacheKey(s.Region.ID)
	if cached, ok, err := s.productCache.Get(ctx, key); err == nil && ok {
		s.Products = cached
		return
	}

	s.Loading = LoadBusy
	products, err := s.backend.ListProducts(ctx, s.Region.ID)
	if err != nil {
		s.logger.Warn("load products", "error", err, "region", s.Region.ID)
		s.Loading = LoadFailure
		s.Notification = "Failed to load products: " + err.Error()
		s.Products = nil
		return
	}

	if err := s.productCache.Set(ctx, key, products); err != nil {
		s.logger.Warn("cache products", "error", err, "region", s.Region.ID)
	}
	s.Products = products
	s.Loading = LoadIdle
}

// LoadSavedAddresses fetches the user's saved addresses. Failures are
// silent: addresses are a convenience, not a checkout requirement.
func (s *Session) LoadSavedAddresses(ctx context.Context) {
	addrs, err := s.backend.ListSavedAddresses(ctx, s.Fingerprint)
	if err != nil {
		s.logger.Debug("load saved addresses", "error", err)
		s.SavedAddresses = nil
		return
	}
	s.SavedAddresses = addrs
}

// LoadAccountData fetches order history and subscriptions for the account
// tab. Failures leave the previous lists in place.
func (s *Session) LoadAccountData(ctx context.Context) {
	if orders, err := s.backend.ListOrders(ctx, s.Fingerprint); err == nil {
		s.Orders = orders
	} else {
		s.logger.Debug("load orders", "error", err)
	}
	if subs, err := s.backend.ListSubscriptions(ctx, s.Fingerprint); err == nil {
		s.Subscriptions = subs
	} else {
		s.logger.Debug("load subscriptions", "error", err)
	}
}

// LoadInitialData performs the startup load: regions, then the current
// region's products, then saved addresses.
func (s *Session) LoadInitialData(ctx context.Context) {
	s.LoadRegions(ctx)
	s.LoadProducts(ctx)
	s.LoadSavedAddresses(ctx)
}

// ChangeRegion switches the current region, reloads its catalog and resets
// the product selection.
func (s *Session) ChangeRegion(ctx context.Context, region domain.Region) {
	s.Region = region
	s.LoadProducts(ctx)
	s.SelectedProduct = 0
}

// CycleRegion switches to the next region in the loaded list, wrapping.
func (s *Session) CycleRegion(ctx context.Context) {
	if len(s.Regions) == 0 {
		return
	}
	current := 0
	for i, r := range s.Regions {
		if r.ID == s.Region.ID {
			current = i
			break
		}
	}
	s.ChangeRegion(ctx, s.Regions[cycle(current, len(s.Regions), 1)])
}
