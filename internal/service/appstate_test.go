package service

import (
	"testing"

	"web-larek/internal/domain"
	"web-larek/internal/events"
	"web-larek/internal/model"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func payPtr(p domain.Payment) *domain.Payment { return &p }

func product(id string, price *int) domain.Product {
	return domain.Product{ID: id, Title: "товар " + id, Price: price}
}

func newState(broker *events.Broker) *AppState {
	return NewAppState(model.NewCatalog(broker), model.NewCart(broker), model.NewBuyer(broker), broker)
}

func countEvents(broker *events.Broker, topic events.Topic) *int {
	count := new(int)
	broker.Subscribe(topic, func(events.Event) { *count++ })
	return count
}

func TestSelectProductUnknownIDIsSilent(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)
	state.SetCatalog([]domain.Product{product("a", intPtr(100))})

	previews := countEvents(broker, events.TopicPreviewChange)

	if state.SelectProduct("missing") {
		t.Error("Expected SelectProduct to report a miss")
	}
	if *previews != 0 {
		t.Errorf("A miss must not emit preview:change, got %d", *previews)
	}
}

func TestAddToCartRefusesPriceless(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)
	state.SetCatalog([]domain.Product{product("free", nil), product("paid", intPtr(500))})

	state.AddToCart("free")
	if state.CartCount() != 0 {
		t.Error("A priceless product must never enter the cart")
	}

	state.AddToCart("paid")
	if state.CartCount() != 1 {
		t.Error("Expected the priced product to be added")
	}
}

func TestAddToCartUnknownIDIsSilent(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)
	state.SetCatalog([]domain.Product{product("a", intPtr(100))})

	changes := countEvents(broker, events.TopicCartChange)
	state.AddToCart("missing")

	if state.CartCount() != 0 || *changes != 0 {
		t.Error("Unknown id must be a silent no-op")
	}
}

func TestRemoveFromCartSurvivesCatalogReplacement(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)
	state.SetCatalog([]domain.Product{product("a", intPtr(100))})
	state.AddToCart("a")

	// The cart stores snapshots, so removal works even after the product
	// vanished from the catalog.
	state.SetCatalog(nil)
	state.RemoveFromCart("a")

	if state.CartCount() != 0 {
		t.Error("Expected removal to work after catalog replacement")
	}
}

func TestUpdateBuyerAlwaysRevalidates(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)

	buyerChanges := countEvents(broker, events.TopicBuyerChange)
	errorChanges := countEvents(broker, events.TopicBuyerErrorsChange)

	state.UpdateBuyer(domain.BuyerUpdate{Email: strPtr("a@b.com")})
	state.UpdateBuyer(domain.BuyerUpdate{Email: strPtr("a@b.com")})

	// Identical data emits buyer:change once, but validation re-runs on
	// every call.
	if *buyerChanges != 1 {
		t.Errorf("Expected 1 buyer:change, got %d", *buyerChanges)
	}
	if *errorChanges != 2 {
		t.Errorf("Expected 2 buyerErrors:change, got %d", *errorChanges)
	}
}

func TestBuildOrder(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)
	state.SetCatalog([]domain.Product{product("a", intPtr(750)), product("b", intPtr(1450))})
	state.AddToCart("a")
	state.AddToCart("b")
	state.UpdateBuyer(domain.BuyerUpdate{
		Payment: payPtr(domain.PaymentCard),
		Email:   strPtr("a@b.com"),
		Phone:   strPtr("123"),
		Address: strPtr("дом"),
	})

	order := state.BuildOrder()

	if len(order.Items) != 2 || order.Items[0] != "a" || order.Items[1] != "b" {
		t.Errorf("Expected insertion-ordered item ids, got %v", order.Items)
	}
	if order.Total != 2200 {
		t.Errorf("Expected total 2200, got %d", order.Total)
	}
	if order.Payment != domain.PaymentCard || order.Address != "дом" {
		t.Errorf("Expected buyer fields flattened into the order, got %+v", order)
	}
}

func TestCompleteOrderResetsEverything(t *testing.T) {
	broker := events.New(nil)
	state := newState(broker)
	state.SetCatalog([]domain.Product{product("a", intPtr(750))})
	state.AddToCart("a")
	state.UpdateBuyer(domain.BuyerUpdate{Email: strPtr("a@b.com")})

	var lastErrors *events.BuyerErrorsChange
	broker.Subscribe(events.TopicBuyerErrorsChange, func(e events.Event) {
		change := e.(events.BuyerErrorsChange)
		lastErrors = &change
	})
	cartChanges := countEvents(broker, events.TopicCartChange)
	buyerChanges := countEvents(broker, events.TopicBuyerChange)

	state.CompleteOrder()

	if state.CartCount() != 0 {
		t.Error("Expected empty cart after completion")
	}
	if state.Buyer() != (domain.Buyer{}) {
		t.Error("Expected empty buyer after completion")
	}
	if *cartChanges != 1 || *buyerChanges != 1 {
		t.Errorf("Expected reset events for cart and buyer, got %d/%d", *cartChanges, *buyerChanges)
	}
	if lastErrors == nil || len(lastErrors.Errors) != 0 {
		t.Errorf("Expected an empty buyerErrors:change after completion, got %+v", lastErrors)
	}
}
