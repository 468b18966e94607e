package session

// Field identifies the input target currently receiving character and
// backspace events. FieldNone disables all editing.
type Field string

const (
	FieldNone Field = ""

	// Shipping form, left column then right column.
	FieldName       Field = "name"
	FieldStreet1    Field = "street1"
	FieldStreet2    Field = "street2"
	FieldCity       Field = "city"
	FieldState      Field = "state"
	FieldCountry    Field = "country"
	FieldPhone      Field = "phone"
	FieldPostalCode Field = "postal_code"

	// Payment form.
	FieldPaymentName  Field = "payment_name"
	FieldPaymentEmail Field = "payment_email"
	FieldCardNumber   Field = "card_number"
	FieldExpiryMonth  Field = "expiry_month"
	FieldExpiryYear   Field = "expiry_year"
	FieldCVV          Field = "cvv"
)

// ShippingFields is the tab order of the shipping form.
func ShippingFields() []Field {
	return []Field{
		FieldName, FieldStreet1, FieldStreet2, FieldCity,
		FieldState, FieldCountry, FieldPhone, FieldPostalCode,
	}
}

// PaymentFields is the tab order of the payment form.
func PaymentFields() []Field {
	return []Field{
		FieldPaymentName, FieldPaymentEmail, FieldCardNumber,
		FieldExpiryMonth, FieldExpiryYear, FieldCVV,
	}
}

// nextField cycles within an ordering, wrapping past the last field. A field
// outside the ordering resolves to the second entry, matching a reset to the
// top of the form.
func nextField(fields []Field, current Field) Field {
	idx := 0
	for i, f := range fields {
		if f == current {
			idx = i
			break
		}
	}
	if idx+1 < len(fields) {
		return fields[idx+1]
	}
	return fields[0]
}

// digitCaps are the length caps of digit-only fields. A keystroke past the
// cap, or a non-digit into these fields, is a no-op.
var digitCaps = map[Field]int{
	FieldCardNumber:  16,
	FieldExpiryMonth: 2,
	FieldExpiryYear:  4,
	FieldCVV:         3,
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// HandleChar appends a character to the active field, applying per-field
// filtering. Any keystroke clears the pending notification.
func (s *Session) HandleChar(r rune) {
	s.Notification = ""

	target := s.fieldValue(s.ActiveField)
	if target == nil {
		return
	}
	if cap, numeric := digitCaps[s.ActiveField]; numeric {
		if !isDigit(r) || len(*target) >= cap {
			return
		}
	}
	*target += string(r)
}

// HandleBackspace removes the last character of the active field; a no-op on
// an empty value.
func (s *Session) HandleBackspace() {
	target := s.fieldValue(s.ActiveField)
	if target == nil || *target == "" {
		return
	}
	*target = (*target)[:len(*target)-1]
}

// NextInputField advances to the next field of the active form, wrapping to
// the first. Navigation clears the pending notification.
func (s *Session) NextInputField() {
	s.Notification = ""

	switch {
	case s.Step == StepShipping:
		s.ActiveField = nextField(ShippingFields(), s.ActiveField)
	case s.Step == StepPayment && s.PaymentMethod == PaymentSSH:
		s.ActiveField = nextField(PaymentFields(), s.ActiveField)
	}
}

// fieldValue maps a field onto the draft it edits, or nil for FieldNone.
func (s *Session) fieldValue(f Field) *string {
	switch f {
	case FieldName:
		return &s.Shipping.Name
	case FieldStreet1:
		return &s.Shipping.Street1
	case FieldStreet2:
		return &s.Shipping.Street2
	case FieldCity:
		return &s.Shipping.City
	case FieldState:
		return &s.Shipping.State
	case FieldCountry:
		return &s.Shipping.Country
	case FieldPhone:
		return &s.Shipping.Phone
	case FieldPostalCode:
		return &s.Shipping.PostalCode
	case FieldPaymentName:
		return &s.Payment.Name
	case FieldPaymentEmail:
		return &s.Payment.Email
	case FieldCardNumber:
		return &s.Payment.CardNumber
	case FieldExpiryMonth:
		return &s.Payment.ExpiryMonth
	case FieldExpiryYear:
		return &s.Payment.ExpiryYear
	case FieldCVV:
		return &s.Payment.CVV
	default:
		return nil
	}
}
