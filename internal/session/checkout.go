package session

import (
	"context"
	"time"

	"roastline/pkg/domain"
)

// CheckoutStep is the coarse stage of the purchase workflow.
type CheckoutStep string

const (
	StepCart         CheckoutStep = "cart"
	StepShipping     CheckoutStep = "shipping"
	StepPayment      CheckoutStep = "payment"
	StepConfirmation CheckoutStep = "confirmation"
)

// ShippingMode is the shipping step's sub-mode: browsing saved addresses or
// entering a new one.
type ShippingMode string

const (
	ModeSelectAddress ShippingMode = "select_address"
	ModeAddNewAddress ShippingMode = "add_new_address"
)

// PaymentMethod is the chosen payment path. Empty means no method selected
// yet, which is its own sub-state: the method list is shown and a bare
// advance does nothing.
type PaymentMethod string

const (
	PaymentNone    PaymentMethod = ""
	PaymentSSH     PaymentMethod = "ssh"
	PaymentBrowser PaymentMethod = "browser"
)

// maxSavedAddresses is how many addresses are retained per user.
const maxSavedAddresses = 3

// Advance moves the checkout forward one step. Validation gates block the
// transition and set a field-specific notification; backend side effects run
// before the step changes.
func (s *Session) Advance(ctx context.Context) {
	s.Notification = ""

	switch s.Step {
	case StepCart:
		if s.Cart.IsEmpty() {
			return
		}
		s.ShippingMode = ModeSelectAddress
		s.AddressSelectIndex = 0
		s.ActiveField = FieldNone
		s.Step = StepShipping

	case StepShipping:
		switch s.ShippingMode {
		case ModeSelectAddress:
			// Choosing an option is an explicit action, not an advance.
			return
		case ModeAddNewAddress:
			if field := s.emptyShippingField(); field != "" {
				s.Notification = field + " can't be empty"
				return
			}
			s.saveAddress(ctx)
			s.ActiveField = FieldNone
			s.Step = StepPayment
		}

	case StepPayment:
		switch s.PaymentMethod {
		case PaymentSSH:
			if field := s.emptyPaymentField(); field != "" {
				s.Notification = field + " can't be empty"
				return
			}
			s.Step = StepConfirmation
		case PaymentBrowser:
			s.Step = StepConfirmation
		default:
			// No method chosen yet; selection is a separate action.
		}

	case StepConfirmation:
		s.submitOrder(ctx)
		s.Cart.Clear()
		s.Step = StepCart
		s.CurrentTab = TabHome
	}
}

// Retreat moves the checkout backward one step, always clearing any pending
// notification.
func (s *Session) Retreat() {
	s.Notification = ""

	switch s.Step {
	case StepCart:
		s.CurrentTab = TabShop

	case StepShipping:
		switch s.ShippingMode {
		case ModeAddNewAddress:
			s.ShippingMode = ModeSelectAddress
			s.ActiveField = FieldNone
		case ModeSelectAddress:
			s.ActiveField = FieldNone
			s.Step = StepCart
		}

	case StepPayment:
		s.PaymentMethod = PaymentNone
		s.ShippingMode = ModeSelectAddress
		s.ActiveField = FieldNone
		s.Step = StepShipping

	case StepConfirmation:
		if s.PaymentMethod == PaymentSSH {
			s.ActiveField = FieldPaymentName
		} else {
			s.ActiveField = FieldNone
		}
		s.Step = StepPayment
	}
}

// SelectAddressOption acts on the highlighted address option: a saved address
// is copied into the working draft and the flow jumps straight to payment;
// the trailing "add new" sentinel switches to the entry form.
func (s *Session) SelectAddressOption() {
	if s.AddressSelectIndex < len(s.SavedAddresses) {
		s.Shipping = s.SavedAddresses[s.AddressSelectIndex].ToShipping()
		s.ActiveField = FieldNone
		s.Step = StepPayment
		return
	}
	s.ShippingMode = ModeAddNewAddress
	s.Shipping = domain.ShippingAddress{}
	s.ActiveField = FieldName
}

// SelectPaymentMethod acts on the highlighted payment option: index 0 is the
// in-terminal card form, anything else hands off to the browser flow.
func (s *Session) SelectPaymentMethod() {
	if s.PaymentOptionIndex == 0 {
		s.PaymentMethod = PaymentSSH
		s.ActiveField = FieldPaymentName
		return
	}
	s.PaymentMethod = PaymentBrowser
	s.ActiveField = FieldNone
}

// RemoveSelectedAddress deletes the highlighted saved address. The backend
// delete is best-effort; the local list and selection index are always kept
// consistent.
func (s *Session) RemoveSelectedAddress(ctx context.Context) {
	idx := s.AddressSelectIndex
	if idx >= len(s.SavedAddresses) {
		return
	}

	if id := s.SavedAddresses[idx].ID; id != "" {
		if err := s.backend.DeleteSavedAddress(ctx, id); err != nil {
			s.logger.Warn("delete saved address", "error", err)
		}
	}
	s.SavedAddresses = append(s.SavedAddresses[:idx], s.SavedAddresses[idx+1:]...)

	if s.AddressSelectIndex >= s.AddressOptionCount() && s.AddressSelectIndex > 0 {
		s.AddressSelectIndex--
	}
}

// emptyShippingField returns the display name of the first empty required
// shipping field. Phone is required here even though the address completeness
// predicate treats it as optional: the entry gate is deliberately stricter
// than what backend-sourced addresses must satisfy.
func (s *Session) emptyShippingField() string {
	checks := []struct {
		value string
		label string
	}{
		{s.Shipping.Name, "name"},
		{s.Shipping.Street1, "street"},
		{s.Shipping.City, "city"},
		{s.Shipping.Country, "country"},
		{s.Shipping.Phone, "phone"},
		{s.Shipping.PostalCode, "postal code"},
	}
	for _, c := range checks {
		if c.value == "" {
			return c.label
		}
	}
	return ""
}

// emptyPaymentField returns the display name of the first empty payment
// field.
func (s *Session) emptyPaymentField() string {
	checks := []struct {
		value string
		label string
	}{
		{s.Payment.Name, "name"},
		{s.Payment.Email, "email"},
		{s.Payment.CardNumber, "card number"},
		{s.Payment.ExpiryMonth, "expiry month"},
		{s.Payment.ExpiryYear, "expiry year"},
		{s.Payment.CVV, "cvv"},
	}
	for _, c := range checks {
		if c.value == "" {
			return c.label
		}
	}
	return ""
}

// saveAddress persists the working address best-effort. It skips persisting
// when three addresses are already saved or an existing one matches on
// street, city and postal code; failures are swallowed since saved addresses
// are a convenience, never a checkout requirement.
func (s *Session) saveAddress(ctx context.Context) {
	if !s.Shipping.Complete() || len(s.SavedAddresses) >= maxSavedAddresses {
		return
	}
	for _, a := range s.SavedAddresses {
		if a.Street1 == s.Shipping.Street1 &&
			a.City == s.Shipping.City &&
			a.PostalCode == s.Shipping.PostalCode {
			return
		}
	}

	created, err := s.backend.CreateSavedAddress(ctx, domain.SavedAddressFrom(s.Shipping, s.Fingerprint))
	if err != nil {
		s.logger.Warn("save address", "error", err)
		return
	}

	s.SavedAddresses = append([]domain.SavedAddress{created}, s.SavedAddresses...)
	if len(s.SavedAddresses) > maxSavedAddresses {
		s.SavedAddresses = s.SavedAddresses[:maxSavedAddresses]
	}
}

// submitOrder sends the completed purchase to the backend. Submission is
// best-effort: local completion is authoritative for the demo flow and a
// failure never blocks the checkout from finishing.
func (s *Session) submitOrder(ctx context.Context) {
	subtotal := s.Cart.SubtotalCents()
	shipping := s.Region.ShippingCents(subtotal)

	order := domain.Order{
		UserID:          s.Fingerprint,
		Items:           append([]domain.CartItem(nil), s.Cart.Items...),
		ShippingAddress: s.Shipping,
		SubtotalCents:   subtotal,
		ShippingCents:   shipping,
		TotalCents:      subtotal + shipping,
		Status:          domain.OrderPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	created, err := s.backend.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Warn("submit order", "error", err)
		return
	}
	s.Orders = append([]domain.Order{created}, s.Orders...)
}
