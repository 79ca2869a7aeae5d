package events

import (
	"testing"
)

func TestEmitDispatchesInSubscriptionOrder(t *testing.T) {
	broker := New(nil)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		broker.Subscribe(TopicBasketOpen, func(Event) {
			order = append(order, i)
		})
	}

	broker.Emit(BasketOpen{})

	if len(order) != 3 {
		t.Fatalf("Expected 3 handler calls, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("Handler %d ran at position %d", got, i)
		}
	}
}

func TestEmitOnlyReachesMatchingTopic(t *testing.T) {
	broker := New(nil)

	calls := 0
	broker.Subscribe(TopicCardSelect, func(Event) { calls++ })

	broker.Emit(BasketOpen{})
	if calls != 0 {
		t.Errorf("Handler for card:select ran on basket:open")
	}

	broker.Emit(CardSelect{ID: "a"})
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestEmitIsSynchronous(t *testing.T) {
	broker := New(nil)

	delivered := false
	broker.Subscribe(TopicBasketOpen, func(Event) { delivered = true })

	broker.Emit(BasketOpen{})
	if !delivered {
		t.Error("Emit returned before dispatch completed")
	}
}

func TestReentrantEmit(t *testing.T) {
	broker := New(nil)

	var order []string
	broker.Subscribe(TopicBasketOpen, func(Event) {
		order = append(order, "outer-start")
		broker.Emit(BasketCheckout{})
		order = append(order, "outer-end")
	})
	broker.Subscribe(TopicBasketCheckout, func(Event) {
		order = append(order, "nested")
	})

	broker.Emit(BasketOpen{})

	want := []string{"outer-start", "nested", "outer-end"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	broker := New(nil)

	var calls []string
	var unsubscribeSecond func()

	broker.Subscribe(TopicBasketOpen, func(Event) {
		calls = append(calls, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = broker.Subscribe(TopicBasketOpen, func(Event) {
		calls = append(calls, "second")
	})
	broker.Subscribe(TopicBasketOpen, func(Event) {
		calls = append(calls, "third")
	})

	// The in-flight dispatch works on a snapshot: all three still run.
	broker.Emit(BasketOpen{})
	if len(calls) != 3 {
		t.Fatalf("Expected 3 calls during first dispatch, got %v", calls)
	}

	// The next dispatch no longer sees the removed subscriber.
	calls = nil
	broker.Emit(BasketOpen{})
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "third" {
		t.Fatalf("Expected [first third] after unsubscribe, got %v", calls)
	}
}

func TestSubscribeAll(t *testing.T) {
	broker := New(nil)

	var topics []Topic
	broker.SubscribeAll(func(e Event) {
		topics = append(topics, e.Topic())
	})

	broker.Emit(BasketOpen{})
	broker.Emit(CardSelect{ID: "a"})
	broker.Emit(SuccessClose{})

	want := []Topic{TopicBasketOpen, TopicCardSelect, TopicSuccessClose}
	if len(topics) != len(want) {
		t.Fatalf("Expected %v, got %v", want, topics)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, topics)
		}
	}
}

func TestDepthCapStopsRunawayRecursion(t *testing.T) {
	broker := New(nil)

	calls := 0
	broker.Subscribe(TopicBasketOpen, func(Event) {
		calls++
		// A handler that unconditionally re-emits its own topic must be
		// cut off by the cap instead of overflowing the stack.
		broker.Emit(BasketOpen{})
	})

	broker.Emit(BasketOpen{})

	if calls != MaxDepth {
		t.Errorf("Expected %d calls before the cap, got %d", MaxDepth, calls)
	}
}
