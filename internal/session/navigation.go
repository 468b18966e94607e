package session

// cycle moves an index forward or backward over a list of length n, wrapping
// at both ends. An empty list leaves the index untouched.
func cycle(index, n, delta int) int {
	if n == 0 {
		return index
	}
	return ((index+delta)%n + n) % n
}

// NextProduct highlights the next product, wrapping, and resets the pending
// quantity.
func (s *Session) NextProduct() {
	if len(s.Products) == 0 {
		return
	}
	s.SelectedProduct = cycle(s.SelectedProduct, len(s.Products), 1)
	s.ProductQuantity = 1
}

// PrevProduct highlights the previous product, wrapping, and resets the
// pending quantity.
func (s *Session) PrevProduct() {
	if len(s.Products) == 0 {
		return
	}
	s.SelectedProduct = cycle(s.SelectedProduct, len(s.Products), -1)
	s.ProductQuantity = 1
}

// NextCartItem highlights the next cart line, wrapping.
func (s *Session) NextCartItem() {
	s.CartItemIndex = cycle(s.CartItemIndex, len(s.Cart.Items), 1)
}

// PrevCartItem highlights the previous cart line, wrapping.
func (s *Session) PrevCartItem() {
	s.CartItemIndex = cycle(s.CartItemIndex, len(s.Cart.Items), -1)
}

// NextAccountSection cycles forward through the account panes.
func (s *Session) NextAccountSection() {
	s.AccountSection = accountSections[cycle(s.accountSectionIndex(), len(accountSections), 1)]
}

// PrevAccountSection cycles backward through the account panes.
func (s *Session) PrevAccountSection() {
	s.AccountSection = accountSections[cycle(s.accountSectionIndex(), len(accountSections), -1)]
}

func (s *Session) accountSectionIndex() int {
	for i, sect := range accountSections {
		if sect == s.AccountSection {
			return i
		}
	}
	return 0
}

// paymentOptionCount is the fixed size of the payment method list.
const paymentOptionCount = 2

// NextPaymentOption highlights the next payment method, wrapping.
func (s *Session) NextPaymentOption() {
	s.PaymentOptionIndex = cycle(s.PaymentOptionIndex, paymentOptionCount, 1)
}

// PrevPaymentOption highlights the previous payment method, wrapping.
func (s *Session) PrevPaymentOption() {
	s.PaymentOptionIndex = cycle(s.PaymentOptionIndex, paymentOptionCount, -1)
}

// AddressOptionCount is the saved addresses plus the "add new" sentinel.
func (s *Session) AddressOptionCount() int {
	return len(s.SavedAddresses) + 1
}

// NextAddressOption highlights the next address option, wrapping.
func (s *Session) NextAddressOption() {
	s.AddressSelectIndex = cycle(s.AddressSelectIndex, s.AddressOptionCount(), 1)
}

// PrevAddressOption highlights the previous address option, wrapping.
func (s *Session) PrevAddressOption() {
	s.AddressSelectIndex = cycle(s.AddressSelectIndex, s.AddressOptionCount(), -1)
}
