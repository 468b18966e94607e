package domain

// PaymentInfo is the card payment draft. The numeric fields hold digits only;
// length caps are enforced at input time, not here.
type PaymentInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// Complete reports whether all six fields are non-empty.
func (p PaymentInfo) Complete() bool {
	return p.Name != "" &&
		p.Email != "" &&
		p.CardNumber != "" &&
		p.ExpiryMonth != "" &&
		p.ExpiryYear != "" &&
		p.CVV != ""
}

// MaskedCard reveals only the last four digits of the card number.
func (p PaymentInfo) MaskedCard() string {
	if len(p.CardNumber) >= 4 {
		return "**** **** **** " + p.CardNumber[len(p.CardNumber)-4:]
	}
	return "****"
}
