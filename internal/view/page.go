package view

import (
	"strings"
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// Page renders the main page fragment: the catalog gallery and the header
// basket counter. It re-renders on catalog and cart changes and emits
// intents when the user clicks a card or the basket button. Like every
// view it never mutates models.
type Page struct {
	broker *events.Broker
	cdnURL string

	mu    sync.Mutex
	items []domain.Product
	count int
}

// NewPage creates the page view and subscribes it to catalog and cart
// changes.
func NewPage(broker *events.Broker, cdnURL string) *Page {
	p := &Page{broker: broker, cdnURL: cdnURL}

	broker.Subscribe(events.TopicCatalogChange, func(e events.Event) {
		if change, ok := e.(events.CatalogChange); ok {
			p.mu.Lock()
			p.items = change.Items
			p.mu.Unlock()
		}
	})
	broker.Subscribe(events.TopicCartChange, func(e events.Event) {
		if change, ok := e.(events.CartChange); ok {
			p.mu.Lock()
			p.count = len(change.Items)
			p.mu.Unlock()
		}
	})

	return p
}

// Render produces the page fragment from the last received snapshots.
func (p *Page) Render() string {
	p.mu.Lock()
	cards := make([]cardData, len(p.items))
	for i, item := range p.items {
		cards[i] = newCardData(item, p.cdnURL)
	}
	count := p.count
	p.mu.Unlock()

	var sb strings.Builder
	pageTmpl.Execute(&sb, struct {
		Count int
		Cards []cardData
	}{Count: count, Cards: cards})
	return sb.String()
}

// ClickCard is the user opening a product preview.
func (p *Page) ClickCard(id string) {
	p.broker.Emit(events.CardSelect{ID: id})
}

// ClickBasket is the user opening the basket modal.
func (p *Page) ClickBasket() {
	p.broker.Emit(events.BasketOpen{})
}
