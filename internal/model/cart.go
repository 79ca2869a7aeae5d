package model

import (
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// Cart holds the products picked for purchase, insertion-ordered, at most
// one entry per product id. It stores full product snapshots rather than
// ids, so entries stay valid even after the catalog is replaced.
type Cart struct {
	mu     sync.Mutex
	items  []domain.Product
	broker *events.Broker
}

// NewCart creates an empty cart publishing changes on broker.
func NewCart(broker *events.Broker) *Cart {
	return &Cart{broker: broker}
}

// AddItem puts the product into the cart. Adding an id that is already
// present is a no-op: nothing changes and no event fires.
func (c *Cart) AddItem(product domain.Product) {
	c.mu.Lock()
	if c.containsLocked(product.ID) {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items, product)
	items, total := c.snapshotLocked()
	c.mu.Unlock()

	c.broker.Emit(events.CartChange{Items: items, Total: total})
}

// RemoveItem deletes the product from the cart by id. Removing an absent
// product is a no-op: nothing changes and no event fires.
func (c *Cart) RemoveItem(product domain.Product) {
	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != product.ID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.items) {
		c.mu.Unlock()
		return
	}
	c.items = kept
	items, total := c.snapshotLocked()
	c.mu.Unlock()

	c.broker.Emit(events.CartChange{Items: items, Total: total})
}

// Clear empties the cart. Clearing an already-empty cart is a no-op.
func (c *Cart) Clear() {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return
	}
	c.items = nil
	items, total := c.snapshotLocked()
	c.mu.Unlock()

	c.broker.Emit(events.CartChange{Items: items, Total: total})
}

// Items returns a snapshot of the cart contents in insertion order.
func (c *Cart) Items() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.items...)
}

// InCart reports whether a product with the given id is in the cart.
func (c *Cart) InCart(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.containsLocked(id)
}

// Count returns the number of cart entries.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalPrice sums the entry prices. Priceless items contribute 0.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) containsLocked(id string) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (c *Cart) totalLocked() int {
	total := 0
	for _, item := range c.items {
		total += item.PriceValue()
	}
	return total
}

func (c *Cart) snapshotLocked() ([]domain.Product, int) {
	return append([]domain.Product(nil), c.items...), c.totalLocked()
}
