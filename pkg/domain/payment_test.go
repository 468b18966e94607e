package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/pkg/domain"
)

func TestPaymentInfo_Complete(t *testing.T) {
	payment := domain.PaymentInfo{
		Name:        "Jane",
		Email:       "jane@example.com",
		CardNumber:  "4242424242424242",
		ExpiryMonth: "12",
		ExpiryYear:  "2027",
		CVV:         "123",
	}
	assert.True(t, payment.Complete())

	payment.CVV = ""
	assert.False(t, payment.Complete())
}

func TestPaymentInfo_MaskedCard(t *testing.T) {
	payment := domain.PaymentInfo{CardNumber: "4242424242424242"}
	assert.Equal(t, "**** **** **** 4242", payment.MaskedCard())

	payment.CardNumber = "4242"
	assert.Equal(t, "**** **** **** 4242", payment.MaskedCard())

	payment.CardNumber = "42"
	assert.Equal(t, "****", payment.MaskedCard())

	payment.CardNumber = ""
	assert.Equal(t, "****", payment.MaskedCard())
}
