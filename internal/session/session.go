package session

import (
	"log/slog"
	"time"

	"roastline/pkg/domain"
	"roastline/pkg/ports"
)

// Tab is the top-level storefront view.
type Tab string

const (
	TabHome    Tab = "home"
	TabShop    Tab = "shop"
	TabAccount Tab = "account"
	TabCart    Tab = "cart"
)

// AccountSection is the active pane of the account tab.
type AccountSection string

const (
	SectionOrderHistory  AccountSection = "order_history"
	SectionSubscriptions AccountSection = "subscriptions"
	SectionFaq           AccountSection = "faq"
	SectionAbout         AccountSection = "about"
)

// accountSections is the cyclic navigation order of the account tab.
var accountSections = []AccountSection{
	SectionOrderHistory, SectionSubscriptions, SectionFaq, SectionAbout,
}

// LoadingState reports whether a backend load is in flight or has failed.
type LoadingState string

const (
	LoadIdle    LoadingState = "idle"
	LoadBusy    LoadingState = "loading"
	LoadFailure LoadingState = "error"
)

// splashDuration is how long the splash screen stays up uninterrupted.
const splashDuration = 5 * time.Second

// Session is the single mutable record for one storefront session: loaded
// catalog data, the cart, checkout drafts, and every UI selection index. It
// is created at process start and owned exclusively by the event loop;
// renderers only read it.
type Session struct {
	logger       *slog.Logger
	backend      ports.Backend
	regionCache  ports.Cache[[]domain.Region]
	productCache ports.Cache[[]domain.Product]

	// Fingerprint scopes saved addresses and order history to this user.
	Fingerprint string
	// ShortID is the display form of the fingerprint.
	ShortID string

	Running    bool
	CurrentTab Tab

	Region        domain.Region
	Regions       []domain.Region
	Products      []domain.Product
	Cart          *domain.Cart
	Orders        []domain.Order
	Subscriptions []domain.Subscription

	SelectedProduct    int
	ProductQuantity    int
	AccountSection     AccountSection
	Step               CheckoutStep
	CartItemIndex      int
	PaymentOptionIndex int
	PaymentMethod      PaymentMethod

	Shipping           domain.ShippingAddress
	SavedAddresses     []domain.SavedAddress
	ShippingMode       ShippingMode
	AddressSelectIndex int
	Payment            domain.PaymentInfo
	ActiveField        Field

	// Notification is the single-slot transient message from the last
	// validation or load failure; empty when none.
	Notification string

	Loading LoadingState

	ShowSplash  bool
	splashStart time.Time
}

// New creates a session starting on the splash screen with the built-in
// default region. Catalog data arrives via LoadInitialData.
func New(backend ports.Backend, regionCache ports.Cache[[]domain.Region], productCache ports.Cache[[]domain.Product], fingerprint, shortID string, logger *slog.Logger) *Session {
	return &Session{
		logger:          logger,
		backend:         backend,
		regionCache:     regionCache,
		productCache:    productCache,
		Fingerprint:     fingerprint,
		ShortID:         shortID,
		Running:         true,
		CurrentTab:      TabHome,
		Region:          domain.DefaultRegion(),
		Cart:            domain.NewCart(),
		ProductQuantity: 1,
		AccountSection:  SectionOrderHistory,
		Step:            StepCart,
		ShippingMode:    ModeSelectAddress,
		Loading:         LoadIdle,
		ShowSplash:      true,
		splashStart:     time.Now(),
	}
}

// CheckSplashTimeout hides the splash screen once its duration has elapsed.
func (s *Session) CheckSplashTimeout() {
	if s.ShowSplash && time.Since(s.splashStart) >= splashDuration {
		s.ShowSplash = false
	}
}

// SkipSplash hides the splash screen immediately.
func (s *Session) SkipSplash() {
	s.ShowSplash = false
}

// Quit stops the event loop.
func (s *Session) Quit() {
	s.Running = false
}

// SwitchTab changes the top-level view.
func (s *Session) SwitchTab(tab Tab) {
	s.CurrentTab = tab
}

// SelectedProductValue returns the highlighted product, if any.
func (s *Session) SelectedProductValue() (domain.Product, bool) {
	if s.SelectedProduct < 0 || s.SelectedProduct >= len(s.Products) {
		return domain.Product{}, false
	}
	return s.Products[s.SelectedProduct], true
}

// AddToCart merges the highlighted product into the cart with the pending
// quantity, then resets the pending quantity to 1.
func (s *Session) AddToCart() {
	product, ok := s.SelectedProductValue()
	if !ok {
		return
	}
	s.Cart.Add(product, s.ProductQuantity)
	s.ProductQuantity = 1
}

// AdjustProductQuantity changes the pending quantity within [1, 99].
func (s *Session) AdjustProductQuantity(delta int) {
	q := s.ProductQuantity + delta
	if q < 1 {
		q = 1
	}
	if q > 99 {
		q = 99
	}
	s.ProductQuantity = q
}

// IncrementCartItem raises the highlighted cart line by one.
func (s *Session) IncrementCartItem() {
	if s.CartItemIndex < len(s.Cart.Items) {
		s.Cart.Increment(s.Cart.Items[s.CartItemIndex].Product.ID)
	}
}

// DecrementCartItem lowers the highlighted cart line by one, removing it at
// quantity 1 and clamping the selection when the last line goes away.
func (s *Session) DecrementCartItem() {
	if s.CartItemIndex >= len(s.Cart.Items) {
		return
	}
	s.Cart.Decrement(s.Cart.Items[s.CartItemIndex].Product.ID)
	if s.CartItemIndex >= len(s.Cart.Items) && !s.Cart.IsEmpty() {
		s.CartItemIndex = len(s.Cart.Items) - 1
	}
}

// ShippingCents returns the shipping cost of the current cart in the current
// region.
func (s *Session) ShippingCents() int {
	return s.Region.ShippingCents(s.Cart.SubtotalCents())
}

// ClearNotification drops the pending notification.
func (s *Session) ClearNotification() {
	s.Notification = ""
}
