package model

import (
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// Catalog holds the full list of purchasable products plus the product
// currently opened for preview. The list is only ever replaced wholesale;
// individual products are never mutated in place.
type Catalog struct {
	mu      sync.Mutex
	items   []domain.Product
	current *domain.Product
	broker  *events.Broker
}

// NewCatalog creates an empty catalog publishing changes on broker.
func NewCatalog(broker *events.Broker) *Catalog {
	return &Catalog{broker: broker}
}

// SetItems replaces the whole catalog and announces the new contents.
func (c *Catalog) SetItems(items []domain.Product) {
	snapshot := append([]domain.Product(nil), items...)

	c.mu.Lock()
	c.items = snapshot
	c.mu.Unlock()

	// Emit outside the lock so handlers can query the model freely.
	c.broker.Emit(events.CatalogChange{Items: append([]domain.Product(nil), snapshot...)})
}

// Items returns a snapshot of the catalog contents.
func (c *Catalog) Items() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.items...)
}

// ItemByID looks a product up by id. A miss is reported through the bool,
// never by panicking.
func (c *Catalog) ItemByID(id string) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Product{}, false
}

// SetCurrentItem records the product opened for preview and announces it.
// Callers resolve the id against the catalog first; the model trusts them.
func (c *Catalog) SetCurrentItem(product domain.Product) {
	c.mu.Lock()
	p := product
	c.current = &p
	c.mu.Unlock()

	c.broker.Emit(events.PreviewChange{Product: product})
}

// CurrentItem returns the previewed product, if any.
func (c *Catalog) CurrentItem() (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return domain.Product{}, false
	}
	return *c.current, true
}
