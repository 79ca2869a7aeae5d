package service

import (
	"web-larek/internal/domain"
	"web-larek/internal/events"
	"web-larek/internal/model"
)

// AppState is the use-case facade over the three models. View-originated
// events go through it, never to the raw models, so every mutation keeps
// its follow-up effects (re-validation, derived events) in one place.
type AppState struct {
	catalog *model.Catalog
	cart    *model.Cart
	buyer   *model.Buyer
	broker  *events.Broker
}

// NewAppState composes the models behind a single facade.
func NewAppState(catalog *model.Catalog, cart *model.Cart, buyer *model.Buyer, broker *events.Broker) *AppState {
	return &AppState{
		catalog: catalog,
		cart:    cart,
		buyer:   buyer,
		broker:  broker,
	}
}

// SetCatalog replaces the catalog wholesale.
func (s *AppState) SetCatalog(items []domain.Product) {
	s.catalog.SetItems(items)
}

// Catalog returns a snapshot of the current catalog.
func (s *AppState) Catalog() []domain.Product {
	return s.catalog.Items()
}

// ItemByID resolves a product id against the catalog.
func (s *AppState) ItemByID(id string) (domain.Product, bool) {
	return s.catalog.ItemByID(id)
}

// SelectProduct opens the product for preview. An unknown id silently
// no-ops: a stale card click must never surface an error.
func (s *AppState) SelectProduct(id string) bool {
	product, ok := s.catalog.ItemByID(id)
	if !ok {
		return false
	}
	s.catalog.SetCurrentItem(product)
	return true
}

// CurrentItem returns the previewed product, if any.
func (s *AppState) CurrentItem() (domain.Product, bool) {
	return s.catalog.CurrentItem()
}

// AddToCart resolves the id and puts the product into the cart. Unknown
// ids and priceless products are refused silently; priceless items are
// displayed but never purchasable, even for programmatic callers.
func (s *AppState) AddToCart(id string) {
	product, ok := s.catalog.ItemByID(id)
	if !ok || product.Priceless() {
		return
	}
	s.cart.AddItem(product)
}

// RemoveFromCart deletes the product from the cart by id. The id is
// resolved against the cart itself, not the catalog, so removal still
// works after the catalog has been replaced.
func (s *AppState) RemoveFromCart(id string) {
	for _, item := range s.cart.Items() {
		if item.ID == id {
			s.cart.RemoveItem(item)
			return
		}
	}
}

// InCart reports cart membership by product id.
func (s *AppState) InCart(id string) bool {
	return s.cart.InCart(id)
}

// CartItems returns a snapshot of the cart contents.
func (s *AppState) CartItems() []domain.Product {
	return s.cart.Items()
}

// CartCount returns the number of cart entries.
func (s *AppState) CartCount() int {
	return s.cart.Count()
}

// CartTotal returns the client-computed cart total. It doubles as the
// fallback order total when the backend does not confirm one.
func (s *AppState) CartTotal() int {
	return s.cart.TotalPrice()
}

// UpdateBuyer merges the patch into the buyer record and always recomputes
// validation, so the forms see fresh errors on every keystroke.
func (s *AppState) UpdateBuyer(update domain.BuyerUpdate) {
	s.buyer.SaveData(update)
	s.ValidateBuyer()
}

// Buyer returns a snapshot of the buyer record.
func (s *AppState) Buyer() domain.Buyer {
	return s.buyer.Data()
}

// ValidateBuyer recomputes the error mapping and announces it.
func (s *AppState) ValidateBuyer() domain.FieldErrors {
	errs := s.buyer.Validate()
	s.broker.Emit(events.BuyerErrorsChange{Errors: errs})
	return errs
}

// BuildOrder assembles the submission payload from the cart and buyer.
func (s *AppState) BuildOrder() domain.Order {
	items := s.cart.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return domain.NewOrder(ids, s.buyer.Data(), s.cart.TotalPrice())
}

// CompleteOrder wipes the cart and buyer after an order went through and
// announces the reset so the basket and both forms re-render empty.
func (s *AppState) CompleteOrder() {
	s.cart.Clear()
	s.buyer.Clear()
	s.broker.Emit(events.BuyerErrorsChange{Errors: domain.FieldErrors{}})
}
