package view

import (
	"strings"
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// Basket renders the cart modal content: the item list with row indexes,
// the total, and the checkout button which is disabled while the cart is
// empty.
type Basket struct {
	broker *events.Broker

	mu    sync.Mutex
	items []domain.Product
	total int
}

// NewBasket creates the basket view and subscribes it to cart changes.
func NewBasket(broker *events.Broker) *Basket {
	b := &Basket{broker: broker}

	broker.Subscribe(events.TopicCartChange, func(e events.Event) {
		if change, ok := e.(events.CartChange); ok {
			b.mu.Lock()
			b.items = change.Items
			b.total = change.Total
			b.mu.Unlock()
		}
	})

	return b
}

type basketRow struct {
	Index int
	ID    string
	Title string
	Price string
}

// Render produces the basket fragment from the last cart snapshot.
func (b *Basket) Render() string {
	b.mu.Lock()
	rows := make([]basketRow, len(b.items))
	for i, item := range b.items {
		rows[i] = basketRow{
			Index: i + 1,
			ID:    item.ID,
			Title: item.Title,
			Price: priceText(item.Price),
		}
	}
	total := b.total
	b.mu.Unlock()

	var sb strings.Builder
	basketTmpl.Execute(&sb, struct {
		Items []basketRow
		Empty bool
		Total string
	}{
		Items: rows,
		Empty: len(rows) == 0,
		Total: priceText(&total),
	})
	return sb.String()
}

// ClickDelete is the user removing one row from the basket.
func (b *Basket) ClickDelete(id string) {
	b.broker.Emit(events.BasketRemove{ID: id})
}

// ClickCheckout is the user starting checkout from the basket.
func (b *Basket) ClickCheckout() {
	b.broker.Emit(events.BasketCheckout{})
}
