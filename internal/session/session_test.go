package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/internal/adapters/demo"
	"roastline/internal/adapters/memory"
	"roastline/internal/logging"
	"roastline/internal/session"
	"roastline/pkg/domain"
	"roastline/pkg/ports"
)

// newTestSession builds a session over the seeded demo backend with fresh
// in-memory caches.
func newTestSession(t *testing.T) (*session.Session, *demo.Backend) {
	t.Helper()

	store := demo.NewSeededBackend()
	s := session.New(
		store,
		memory.NewCache[[]domain.Region](session.RegionCacheNamespace, session.RegionCacheTTL),
		memory.NewCache[[]domain.Product](session.ProductCacheNamespace, session.ProductCacheTTL),
		"fp-test", "fp-test0",
		logging.NewNop(),
	)
	return s, store
}

// loadedSession is a test session after the startup load, positioned on the
// first region's catalog.
func loadedSession(t *testing.T) (*session.Session, *demo.Backend) {
	t.Helper()

	s, store := newTestSession(t)
	s.LoadInitialData(context.Background())
	return s, store
}

// failingBackend errors on every call, for exercising fallback paths.
type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) ListRegions(context.Context) ([]domain.Region, error) {
	return nil, errBackendDown
}

func (failingBackend) ListProducts(context.Context, string) ([]domain.Product, error) {
	return nil, errBackendDown
}

func (failingBackend) ListSavedAddresses(context.Context, string) ([]domain.SavedAddress, error) {
	return nil, errBackendDown
}

func (failingBackend) CreateSavedAddress(context.Context, domain.SavedAddress) (domain.SavedAddress, error) {
	return domain.SavedAddress{}, errBackendDown
}

func (failingBackend) DeleteSavedAddress(context.Context, string) error {
	return errBackendDown
}

func (failingBackend) ListOrders(context.Context, string) ([]domain.Order, error) {
	return nil, errBackendDown
}

func (failingBackend) ListSubscriptions(context.Context, string) ([]domain.Subscription, error) {
	return nil, errBackendDown
}

func (failingBackend) CreateOrder(context.Context, domain.Order) (domain.Order, error) {
	return domain.Order{}, errBackendDown
}

func (failingBackend) CreateSubscription(context.Context, domain.Subscription) (domain.Subscription, error) {
	return domain.Subscription{}, errBackendDown
}

var _ ports.Backend = failingBackend{}

func newFailingSession(t *testing.T) *session.Session {
	t.Helper()

	return session.New(
		failingBackend{},
		memory.NewCache[[]domain.Region](session.RegionCacheNamespace, session.RegionCacheTTL),
		memory.NewCache[[]domain.Product](session.ProductCacheNamespace, session.ProductCacheTTL),
		"fp-test", "fp-test0",
		logging.NewNop(),
	)
}

func TestSession_AddToCart(t *testing.T) {
	s, _ := loadedSession(t)

	assert.NotEmpty(t, s.Products)
	s.ProductQuantity = 3
	s.AddToCart()

	assert.Equal(t, 3, s.Cart.TotalItems())
	// Pending quantity resets after each add.
	assert.Equal(t, 1, s.ProductQuantity)

	s.AddToCart()
	assert.Len(t, s.Cart.Items, 1)
	assert.Equal(t, 4, s.Cart.Items[0].Quantity)
}

func TestSession_AddToCartWithEmptyCatalog(t *testing.T) {
	s, _ := newTestSession(t)

	s.AddToCart()
	assert.True(t, s.Cart.IsEmpty())
}

func TestSession_AdjustProductQuantityClamps(t *testing.T) {
	s, _ := newTestSession(t)

	s.AdjustProductQuantity(-5)
	assert.Equal(t, 1, s.ProductQuantity)

	s.AdjustProductQuantity(200)
	assert.Equal(t, 99, s.ProductQuantity)

	s.AdjustProductQuantity(-1)
	assert.Equal(t, 98, s.ProductQuantity)
}

func TestSession_DecrementCartItemClampsSelection(t *testing.T) {
	s, _ := newTestSession(t)

	s.Cart.Add(domain.Product{ID: "p1", PriceCents: 2500}, 1)
	s.Cart.Add(domain.Product{ID: "p2", PriceCents: 2000}, 1)
	assert.Len(t, s.Cart.Items, 2)

	// Remove the last line while it is highlighted.
	s.CartItemIndex = 1
	s.DecrementCartItem()

	assert.Len(t, s.Cart.Items, 1)
	assert.Equal(t, 0, s.CartItemIndex)

	s.DecrementCartItem()
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, 0, s.CartItemIndex)
}

func TestSession_ShippingCents(t *testing.T) {
	s, _ := newTestSession(t)
	s.Region = domain.Region{ID: "na", FreeShippingThreshold: 4000}

	s.Cart.Add(domain.Product{ID: "p1", PriceCents: 2000}, 1)
	assert.Equal(t, domain.FlatShippingCents, s.ShippingCents())

	s.Cart.Add(domain.Product{ID: "p1", PriceCents: 2000}, 1)
	assert.Equal(t, 0, s.ShippingCents())
}

func TestSession_SplashLifecycle(t *testing.T) {
	s, _ := newTestSession(t)

	assert.True(t, s.ShowSplash)

	// Before the timeout nothing changes.
	s.CheckSplashTimeout()
	assert.True(t, s.ShowSplash)

	s.SkipSplash()
	assert.False(t, s.ShowSplash)
}
