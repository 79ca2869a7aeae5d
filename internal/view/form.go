package view

import (
	"strings"
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// joinErrors renders the given fields' messages in a fixed order so the
// error line is deterministic.
func joinErrors(errs domain.FieldErrors, fields ...domain.Field) string {
	var msgs []string
	for _, field := range fields {
		if msg, ok := errs[field]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, ", ")
}

// OrderForm renders the first checkout step: payment method and delivery
// address. Submit is enabled only while those two fields validate.
type OrderForm struct {
	broker *events.Broker

	mu      sync.Mutex
	payment domain.Payment
	address string
	errors  domain.FieldErrors
}

// NewOrderForm creates the order form view and subscribes it to buyer
// data and validation changes.
func NewOrderForm(broker *events.Broker) *OrderForm {
	f := &OrderForm{broker: broker, errors: domain.FieldErrors{}}

	broker.Subscribe(events.TopicBuyerChange, func(e events.Event) {
		if change, ok := e.(events.BuyerChange); ok {
			f.mu.Lock()
			f.payment = change.Buyer.Payment
			f.address = change.Buyer.Address
			f.mu.Unlock()
		}
	})
	broker.Subscribe(events.TopicBuyerErrorsChange, func(e events.Event) {
		if change, ok := e.(events.BuyerErrorsChange); ok {
			f.mu.Lock()
			f.errors = change.Errors
			f.mu.Unlock()
		}
	})

	return f
}

// Valid reports whether the form's own fields are error-free.
func (f *OrderForm) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, badPayment := f.errors[domain.FieldPayment]
	_, badAddress := f.errors[domain.FieldAddress]
	return !badPayment && !badAddress
}

// Render produces the order form fragment.
func (f *OrderForm) Render() string {
	f.mu.Lock()
	data := struct {
		CardActive bool
		CashActive bool
		Address    string
		Valid      bool
		Errors     string
	}{
		CardActive: f.payment == domain.PaymentCard,
		CashActive: f.payment == domain.PaymentCash,
		Address:    f.address,
		Errors:     joinErrors(f.errors, domain.FieldPayment, domain.FieldAddress),
	}
	_, badPayment := f.errors[domain.FieldPayment]
	_, badAddress := f.errors[domain.FieldAddress]
	data.Valid = !badPayment && !badAddress
	f.mu.Unlock()

	var sb strings.Builder
	orderFormTmpl.Execute(&sb, data)
	return sb.String()
}

// PickPayment is the user choosing a payment method.
func (f *OrderForm) PickPayment(payment domain.Payment) {
	f.broker.Emit(events.OrderPaymentChange{Payment: payment})
}

// InputAddress is the user typing in the address field.
func (f *OrderForm) InputAddress(address string) {
	f.broker.Emit(events.OrderAddressChange{Address: address})
}

// Submit is the user submitting the form, by button or Enter key.
func (f *OrderForm) Submit() {
	f.broker.Emit(events.OrderSubmit{})
}

// ContactsForm renders the second checkout step: email and phone. Submit
// is enabled only while those two fields validate.
type ContactsForm struct {
	broker *events.Broker

	mu     sync.Mutex
	email  string
	phone  string
	errors domain.FieldErrors
}

// NewContactsForm creates the contacts form view and subscribes it to
// buyer data and validation changes.
func NewContactsForm(broker *events.Broker) *ContactsForm {
	f := &ContactsForm{broker: broker, errors: domain.FieldErrors{}}

	broker.Subscribe(events.TopicBuyerChange, func(e events.Event) {
		if change, ok := e.(events.BuyerChange); ok {
			f.mu.Lock()
			f.email = change.Buyer.Email
			f.phone = change.Buyer.Phone
			f.mu.Unlock()
		}
	})
	broker.Subscribe(events.TopicBuyerErrorsChange, func(e events.Event) {
		if change, ok := e.(events.BuyerErrorsChange); ok {
			f.mu.Lock()
			f.errors = change.Errors
			f.mu.Unlock()
		}
	})

	return f
}

// Valid reports whether the form's own fields are error-free.
func (f *ContactsForm) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, badEmail := f.errors[domain.FieldEmail]
	_, badPhone := f.errors[domain.FieldPhone]
	return !badEmail && !badPhone
}

// Render produces the contacts form fragment.
func (f *ContactsForm) Render() string {
	f.mu.Lock()
	_, badEmail := f.errors[domain.FieldEmail]
	_, badPhone := f.errors[domain.FieldPhone]
	data := struct {
		Email  string
		Phone  string
		Valid  bool
		Errors string
	}{
		Email:  f.email,
		Phone:  f.phone,
		Valid:  !badEmail && !badPhone,
		Errors: joinErrors(f.errors, domain.FieldEmail, domain.FieldPhone),
	}
	f.mu.Unlock()

	var sb strings.Builder
	contactsFormTmpl.Execute(&sb, data)
	return sb.String()
}

// InputEmail is the user typing in the email field.
func (f *ContactsForm) InputEmail(email string) {
	f.broker.Emit(events.ContactsEmailChange{Email: email})
}

// InputPhone is the user typing in the phone field.
func (f *ContactsForm) InputPhone(phone string) {
	f.broker.Emit(events.ContactsPhoneChange{Phone: phone})
}

// Submit is the user submitting the form, by button or Enter key.
func (f *ContactsForm) Submit() {
	f.broker.Emit(events.ContactsSubmit{})
}
