package domain

import "strings"

// Payment is the payment method chosen during checkout.
type Payment string

const (
	PaymentCard Payment = "card"
	PaymentCash Payment = "cash"
)

// Valid reports whether the payment method is one of the supported values.
// The zero value (nothing selected yet) is invalid.
func (p Payment) Valid() bool {
	return p == PaymentCard || p == PaymentCash
}

// Buyer holds the contact and payment data collected across the two
// checkout forms. All fields start empty and are filled in gradually.
type Buyer struct {
	Payment Payment `json:"payment"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
}

// BuyerUpdate is a partial patch of buyer data: nil fields are left
// untouched by a merge.
type BuyerUpdate struct {
	Payment *Payment
	Email   *string
	Phone   *string
	Address *string
}

// Field names one of the four buyer fields.
type Field string

const (
	FieldPayment Field = "payment"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
)

// FieldErrors maps a buyer field to a human-readable validation message.
// A field with no error is absent from the map; an empty map means the
// buyer data is complete.
type FieldErrors map[Field]string

// Validation messages shown inline in the checkout forms.
const (
	MsgPaymentMissing = "Не выбран способ оплаты"
	MsgAddressMissing = "Не указан адрес"
	MsgEmailMissing   = "Не указан email"
	MsgPhoneMissing   = "Не указан телефон"
)

// ValidateBuyer checks all four buyer fields and returns a message per
// missing or invalid field. It is pure and cheap, so callers recompute it
// in full on every change instead of diffing.
func ValidateBuyer(b Buyer) FieldErrors {
	errs := FieldErrors{}
	if !b.Payment.Valid() {
		errs[FieldPayment] = MsgPaymentMissing
	}
	if strings.TrimSpace(b.Address) == "" {
		errs[FieldAddress] = MsgAddressMissing
	}
	if strings.TrimSpace(b.Email) == "" {
		errs[FieldEmail] = MsgEmailMissing
	}
	if strings.TrimSpace(b.Phone) == "" {
		errs[FieldPhone] = MsgPhoneMissing
	}
	return errs
}
