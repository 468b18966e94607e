package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/internal/session"
)

func TestHandleChar_AppendsToActiveField(t *testing.T) {
	s, _ := newTestSession(t)

	s.ActiveField = session.FieldName
	for _, r := range "Jane" {
		s.HandleChar(r)
	}
	assert.Equal(t, "Jane", s.Shipping.Name)

	s.ActiveField = session.FieldCity
	s.HandleChar('X')
	assert.Equal(t, "X", s.Shipping.City)
	assert.Equal(t, "Jane", s.Shipping.Name)
}

func TestHandleChar_NoActiveFieldIsNoop(t *testing.T) {
	s, _ := newTestSession(t)

	s.ActiveField = session.FieldNone
	s.HandleChar('x')

	assert.Equal(t, "", s.Shipping.Name)
	assert.Equal(t, "", s.Payment.Name)
}

func TestHandleChar_ClearsNotification(t *testing.T) {
	s, _ := newTestSession(t)

	s.Notification = "name can't be empty"
	s.ActiveField = session.FieldName
	s.HandleChar('J')

	assert.Empty(t, s.Notification)
}

func TestHandleChar_DigitFieldsFilterAndCap(t *testing.T) {
	s, _ := newTestSession(t)

	tests := []struct {
		field session.Field
		cap   int
		value func() string
	}{
		{session.FieldCardNumber, 16, func() string { return s.Payment.CardNumber }},
		{session.FieldExpiryMonth, 2, func() string { return s.Payment.ExpiryMonth }},
		{session.FieldExpiryYear, 4, func() string { return s.Payment.ExpiryYear }},
		{session.FieldCVV, 3, func() string { return s.Payment.CVV }},
	}
	for _, tc := range tests {
		s.ActiveField = tc.field

		// Letters never land.
		s.HandleChar('a')
		assert.Empty(t, tc.value(), "field %s accepted a letter", tc.field)

		// Digits land up to the cap, then stop.
		for i := 0; i < tc.cap+5; i++ {
			s.HandleChar('7')
		}
		assert.Len(t, tc.value(), tc.cap, "field %s exceeded its cap", tc.field)
	}
}

func TestHandleChar_TextFieldsAcceptDigits(t *testing.T) {
	s, _ := newTestSession(t)

	s.ActiveField = session.FieldStreet1
	for _, r := range "1 Main St" {
		s.HandleChar(r)
	}
	assert.Equal(t, "1 Main St", s.Shipping.Street1)
}

func TestHandleBackspace(t *testing.T) {
	s, _ := newTestSession(t)

	s.ActiveField = session.FieldName
	s.Shipping.Name = "Jane"

	s.HandleBackspace()
	assert.Equal(t, "Jan", s.Shipping.Name)

	s.Shipping.Name = ""
	s.HandleBackspace()
	assert.Equal(t, "", s.Shipping.Name)

	s.ActiveField = session.FieldNone
	s.HandleBackspace()
}

func TestNextInputField_ShippingOrderWraps(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step = session.StepShipping
	s.ActiveField = session.FieldName

	want := []session.Field{
		session.FieldStreet1, session.FieldStreet2, session.FieldCity,
		session.FieldState, session.FieldCountry, session.FieldPhone,
		session.FieldPostalCode,
		session.FieldName, // wrap
	}
	for _, f := range want {
		s.NextInputField()
		assert.Equal(t, f, s.ActiveField)
	}
}

func TestNextInputField_PaymentRequiresCardMethod(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step = session.StepPayment

	s.PaymentMethod = session.PaymentBrowser
	s.ActiveField = session.FieldNone
	s.NextInputField()
	assert.Equal(t, session.FieldNone, s.ActiveField)

	s.PaymentMethod = session.PaymentSSH
	s.ActiveField = session.FieldPaymentName
	s.NextInputField()
	assert.Equal(t, session.FieldPaymentEmail, s.ActiveField)

	s.ActiveField = session.FieldCVV
	s.NextInputField()
	assert.Equal(t, session.FieldPaymentName, s.ActiveField)
}

func TestNextInputField_ClearsNotification(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step = session.StepShipping
	s.ActiveField = session.FieldName
	s.Notification = "street can't be empty"

	s.NextInputField()
	assert.Empty(t, s.Notification)
}
