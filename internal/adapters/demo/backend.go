// Package demo provides an in-memory ports.Backend with seeded fixtures, and
// an HTTP server that exposes the same PostgREST-style surface the supabase
// client speaks. It powers offline demo mode and the REST client tests.
package demo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"roastline/pkg/domain"
	"roastline/pkg/ports"
)

// Backend is an in-memory remote store. Safe for concurrent use.
type Backend struct {
	mu            sync.RWMutex
	regions       []domain.Region
	products      []domain.Product
	addresses     []domain.SavedAddress
	orders        []domain.Order
	subscriptions []domain.Subscription
}

// NewBackend returns an empty store.
func NewBackend() *Backend {
	return &Backend{}
}

// NewSeededBackend returns a store populated with the demo fixtures.
func NewSeededBackend() *Backend {
	b := NewBackend()
	b.SetRegions(SeedRegions())
	b.SetProducts(SeedProducts())
	return b
}

var _ ports.Backend = (*Backend)(nil)

// SetRegions replaces the region fixtures.
func (b *Backend) SetRegions(regions []domain.Region) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.regions = regions
}

// SetProducts replaces the product fixtures.
func (b *Backend) SetProducts(products []domain.Product) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products = products
}

func (b *Backend) ListRegions(ctx context.Context) ([]domain.Region, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := append([]domain.Region(nil), b.regions...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (b *Backend) ListProducts(ctx context.Context, regionID string) ([]domain.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []domain.Product
	for _, p := range b.products {
		if !p.InStock {
			continue
		}
		if regionID != "" && p.RegionID != regionID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (b *Backend) ListSavedAddresses(ctx context.Context, fingerprint string) ([]domain.SavedAddress, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []domain.SavedAddress
	for _, a := range b.addresses {
		if a.UserFingerprint == fingerprint {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := time.Time{}, time.Time{}
		if out[i].CreatedAt != nil {
			ti = *out[i].CreatedAt
		}
		if out[j].CreatedAt != nil {
			tj = *out[j].CreatedAt
		}
		return ti.After(tj)
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out, nil
}

func (b *Backend) CreateSavedAddress(ctx context.Context, addr domain.SavedAddress) (domain.SavedAddress, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().UTC()
	addr.ID = uuid.NewString()
	addr.CreatedAt = &now
	b.addresses = append(b.addresses, addr)
	return addr, nil
}

func (b *Backend) DeleteSavedAddress(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for idx, a := range b.addresses {
		if a.ID == id {
			b.addresses = append(b.addresses[:idx], b.addresses[idx+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (b *Backend) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []domain.Order
	for _, o := range b.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (b *Backend) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []domain.Subscription
	for _, s := range b.subscriptions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (b *Backend) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().UTC()
	order.ID = uuid.NewString()
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	b.orders = append(b.orders, order)
	return order, nil
}

func (b *Backend) CreateSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub.ID = uuid.NewString()
	if sub.Status == "" {
		sub.Status = domain.SubscriptionActive
	}
	sub.CreatedAt = time.Now().UTC()
	b.subscriptions = append(b.subscriptions, sub)
	return sub, nil
}
