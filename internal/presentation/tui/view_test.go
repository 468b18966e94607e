package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/internal/adapters/demo"
	"roastline/internal/adapters/memory"
	"roastline/internal/logging"
	"roastline/internal/presentation/tui"
	"roastline/internal/session"
	"roastline/pkg/domain"
)

func newRenderSession(t *testing.T) *session.Session {
	t.Helper()

	s := session.New(
		demo.NewSeededBackend(),
		memory.NewCache[[]domain.Region](session.RegionCacheNamespace, session.RegionCacheTTL),
		memory.NewCache[[]domain.Product](session.ProductCacheNamespace, session.ProductCacheTTL),
		"fp-test", "fp-test0",
		logging.NewNop(),
	)
	s.SkipSplash()
	return s
}

func TestRender_Splash(t *testing.T) {
	s := newRenderSession(t)
	s.ShowSplash = true

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "press any key")
}

func TestRender_HomeTab(t *testing.T) {
	s := newRenderSession(t)

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "roastline")
	assert.Contains(t, frame, "[c]art (0)")
	assert.Contains(t, frame, "start shopping")
}

func TestRender_ShopTab(t *testing.T) {
	s := newRenderSession(t)
	s.CurrentTab = session.TabShop
	s.Products = demo.SeedProducts()[:2]

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "~ featured ~")
	assert.Contains(t, frame, "cron")
	assert.Contains(t, frame, "segfault")
	assert.Contains(t, frame, "qty 1")
}

func TestRender_EmptyCart(t *testing.T) {
	s := newRenderSession(t)
	s.CurrentTab = session.TabCart

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "your cart is empty")
}

func TestRender_CartTotals(t *testing.T) {
	s := newRenderSession(t)
	s.CurrentTab = session.TabCart
	s.Region = domain.Region{Flag: "x", Code: "NA", Currency: "USD", FreeShippingThreshold: 4000}
	s.Cart.Add(domain.Product{ID: "p1", Name: "segfault", PriceCents: 2200}, 1)

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "segfault")
	assert.Contains(t, frame, "$22.00")
	assert.Contains(t, frame, "$8.00")
	assert.Contains(t, frame, "$30.00")
}

func TestRender_AddressSelection(t *testing.T) {
	s := newRenderSession(t)
	s.CurrentTab = session.TabCart
	s.Step = session.StepShipping
	s.SavedAddresses = []domain.SavedAddress{
		{Name: "Jane", Street1: "1 Main St", City: "Springfield", Country: "USA", PostalCode: "00000"},
	}

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "+ add new address")
	assert.Contains(t, frame, "Jane")
	assert.Contains(t, frame, "1 Main St, Springfield, USA, 00000")
}

func TestRender_ConfirmationMasksCard(t *testing.T) {
	s := newRenderSession(t)
	s.CurrentTab = session.TabCart
	s.Step = session.StepConfirmation
	s.PaymentMethod = session.PaymentSSH
	s.Payment.CardNumber = "4242424242424242"
	s.Shipping = domain.ShippingAddress{Name: "Jane", Street1: "1 Main St", City: "Springfield", Country: "USA", PostalCode: "00000"}

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "**** **** **** 4242")
	assert.NotContains(t, frame, "4242424242424242")
}

func TestRender_NotificationInFooter(t *testing.T) {
	s := newRenderSession(t)
	s.Notification = "name can't be empty"

	frame := tui.NewView(80).Render(s)
	assert.Contains(t, frame, "name can't be empty")
}
