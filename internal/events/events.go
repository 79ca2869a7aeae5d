package events

import "web-larek/internal/domain"

// Topic is the name of an event channel on the broker.
type Topic string

// Intent topics: emitted by the view layer when the user acts.
const (
	TopicCardSelect          Topic = "card:select"
	TopicCardBuy             Topic = "card:buy"
	TopicCardRemove          Topic = "card:remove"
	TopicBasketOpen          Topic = "basket:open"
	TopicBasketRemove        Topic = "basket:remove"
	TopicBasketCheckout      Topic = "basket:checkout"
	TopicOrderPaymentChange  Topic = "order.payment:change"
	TopicOrderAddressChange  Topic = "order.address:change"
	TopicContactsEmailChange Topic = "contacts.email:change"
	TopicContactsPhoneChange Topic = "contacts.phone:change"
	TopicOrderSubmit         Topic = "order:submit"
	TopicContactsSubmit      Topic = "contacts:submit"
	TopicSuccessClose        Topic = "success:close"
	TopicModalClose          Topic = "modal:close"
)

// Change topics: emitted by the models when observable state changes.
const (
	TopicCatalogChange     Topic = "catalog:change"
	TopicPreviewChange     Topic = "preview:change"
	TopicCartChange        Topic = "cart:change"
	TopicBuyerChange       Topic = "buyer:change"
	TopicBuyerErrorsChange Topic = "buyerErrors:change"
)

// Event is a single message on the broker. The set of implementations is
// closed, one struct per topic, so handlers can type-switch over payloads
// instead of decoding an open map.
type Event interface {
	Topic() Topic
}

// CardSelect asks to open the preview for a catalog card.
type CardSelect struct {
	ID string
}

// CardBuy asks to put the previewed product into the cart.
type CardBuy struct {
	ID string
}

// CardRemove asks to take the previewed product out of the cart.
type CardRemove struct {
	ID string
}

// BasketOpen asks to show the basket modal.
type BasketOpen struct{}

// BasketRemove asks to delete one row from the basket list.
type BasketRemove struct {
	ID string
}

// BasketCheckout asks to start checkout from the basket.
type BasketCheckout struct{}

// OrderPaymentChange carries a payment method picked on the order form.
type OrderPaymentChange struct {
	Payment domain.Payment
}

// OrderAddressChange carries the address input of the order form.
type OrderAddressChange struct {
	Address string
}

// ContactsEmailChange carries the email input of the contacts form.
type ContactsEmailChange struct {
	Email string
}

// ContactsPhoneChange carries the phone input of the contacts form.
type ContactsPhoneChange struct {
	Phone string
}

// OrderSubmit is the submit of the first checkout form.
type OrderSubmit struct{}

// ContactsSubmit is the submit of the second checkout form and triggers
// order submission to the backend.
type ContactsSubmit struct{}

// SuccessClose closes the order-complete screen.
type SuccessClose struct{}

// ModalClose closes whatever modal is open.
type ModalClose struct{}

// CatalogChange announces a wholesale catalog replacement. Items is a
// snapshot: handlers may keep it, they must not expect later mutations.
type CatalogChange struct {
	Items []domain.Product
}

// PreviewChange announces a new previewed product.
type PreviewChange struct {
	Product domain.Product
}

// CartChange announces any cart mutation with the resulting contents.
type CartChange struct {
	Items []domain.Product
	Total int
}

// BuyerChange announces that buyer data changed (or was reset).
type BuyerChange struct {
	Buyer domain.Buyer
}

// BuyerErrorsChange announces freshly recomputed validation results.
type BuyerErrorsChange struct {
	Errors domain.FieldErrors
}

func (CardSelect) Topic() Topic          { return TopicCardSelect }
func (CardBuy) Topic() Topic             { return TopicCardBuy }
func (CardRemove) Topic() Topic          { return TopicCardRemove }
func (BasketOpen) Topic() Topic          { return TopicBasketOpen }
func (BasketRemove) Topic() Topic        { return TopicBasketRemove }
func (BasketCheckout) Topic() Topic      { return TopicBasketCheckout }
func (OrderPaymentChange) Topic() Topic  { return TopicOrderPaymentChange }
func (OrderAddressChange) Topic() Topic  { return TopicOrderAddressChange }
func (ContactsEmailChange) Topic() Topic { return TopicContactsEmailChange }
func (ContactsPhoneChange) Topic() Topic { return TopicContactsPhoneChange }
func (OrderSubmit) Topic() Topic         { return TopicOrderSubmit }
func (ContactsSubmit) Topic() Topic      { return TopicContactsSubmit }
func (SuccessClose) Topic() Topic        { return TopicSuccessClose }
func (ModalClose) Topic() Topic          { return TopicModalClose }
func (CatalogChange) Topic() Topic       { return TopicCatalogChange }
func (PreviewChange) Topic() Topic       { return TopicPreviewChange }
func (CartChange) Topic() Topic          { return TopicCartChange }
func (BuyerChange) Topic() Topic         { return TopicBuyerChange }
func (BuyerErrorsChange) Topic() Topic   { return TopicBuyerErrorsChange }
