package view

import (
	"strings"
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// Preview renders the product detail modal. The action button switches
// between buy and remove depending on cart membership, and is disabled
// with the unavailable label for priceless products.
type Preview struct {
	broker *events.Broker
	cdnURL string

	mu      sync.Mutex
	product *domain.Product
	cartIDs map[string]bool
}

// NewPreview creates the preview view and subscribes it to preview and
// cart changes.
func NewPreview(broker *events.Broker, cdnURL string) *Preview {
	p := &Preview{broker: broker, cdnURL: cdnURL, cartIDs: map[string]bool{}}

	broker.Subscribe(events.TopicPreviewChange, func(e events.Event) {
		if change, ok := e.(events.PreviewChange); ok {
			p.mu.Lock()
			product := change.Product
			p.product = &product
			p.mu.Unlock()
		}
	})
	broker.Subscribe(events.TopicCartChange, func(e events.Event) {
		if change, ok := e.(events.CartChange); ok {
			ids := make(map[string]bool, len(change.Items))
			for _, item := range change.Items {
				ids[item.ID] = true
			}
			p.mu.Lock()
			p.cartIDs = ids
			p.mu.Unlock()
		}
	})

	return p
}

// Render produces the preview fragment, or an empty string when no
// product has been selected yet.
func (p *Preview) Render() string {
	p.mu.Lock()
	if p.product == nil {
		p.mu.Unlock()
		return ""
	}
	product := *p.product
	inCart := p.cartIDs[product.ID]
	p.mu.Unlock()

	action := "buy"
	button := "Купить"
	disabled := false
	switch {
	case product.Priceless():
		button = "Недоступно"
		disabled = true
	case inCart:
		action = "remove"
		button = "Удалить из корзины"
	}

	var sb strings.Builder
	previewTmpl.Execute(&sb, struct {
		Card     cardData
		Action   string
		Button   string
		Disabled bool
	}{
		Card:     newCardData(product, p.cdnURL),
		Action:   action,
		Button:   button,
		Disabled: disabled,
	})
	return sb.String()
}

// ClickButton is the user pressing the preview's action button: buy or
// remove depending on cart membership. Closing the modal afterwards is
// this view's side effect of the same click, not the model's doing.
// Priceless products ignore the click entirely.
func (p *Preview) ClickButton() {
	p.mu.Lock()
	if p.product == nil {
		p.mu.Unlock()
		return
	}
	product := *p.product
	inCart := p.cartIDs[product.ID]
	p.mu.Unlock()

	if product.Priceless() {
		return
	}
	if inCart {
		p.broker.Emit(events.CardRemove{ID: product.ID})
	} else {
		p.broker.Emit(events.CardBuy{ID: product.ID})
	}
	p.broker.Emit(events.ModalClose{})
}
