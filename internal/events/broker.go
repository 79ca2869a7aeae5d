package events

import (
	"sync"

	"go.uber.org/zap"
)

// Handler consumes a single event during dispatch.
type Handler func(Event)

// MaxDepth caps nested synchronous dispatch. A handler that keeps
// re-emitting its own topic hits the cap and the surplus emit is dropped
// (and logged) instead of overflowing the stack.
const MaxDepth = 64

type subscription struct {
	handler Handler
}

// Broker is the in-process publish/subscribe hub connecting models, views
// and the checkout orchestrator. Dispatch is synchronous: Emit invokes all
// current subscribers for the topic, in subscription order, before it
// returns. Handlers may themselves Emit (nested dispatch); delivery stays
// single-flight, there are no queues and no backpressure.
type Broker struct {
	mu     sync.Mutex
	subs   map[Topic][]*subscription
	all    []*subscription
	depth  int
	logger *zap.Logger
}

// New creates an empty broker. A nil logger disables diagnostics.
func New(logger *zap.Logger) *Broker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broker{
		subs:   make(map[Topic][]*subscription),
		logger: logger,
	}
}

// Subscribe registers a handler for one topic and returns a function that
// removes it. Unsubscribing during dispatch is allowed: the current
// dispatch still sees the subscriber list as it was when Emit started.
func (b *Broker) Subscribe(topic Topic, handler Handler) func() {
	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs[topic] = remove(b.subs[topic], sub)
	}
}

// SubscribeAll registers a handler for every topic. Useful for logging and
// debugging; dispatched after the topic's own subscribers.
func (b *Broker) SubscribeAll(handler Handler) func() {
	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.all = append(b.all, sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, sub)
	}
}

// Emit delivers the event to all current subscribers of its topic, in
// subscription order, then to all SubscribeAll handlers. The subscriber
// list is snapshotted first, so handlers can subscribe and unsubscribe
// freely without skipping unrelated subscribers.
func (b *Broker) Emit(event Event) {
	topic := event.Topic()

	b.mu.Lock()
	if b.depth >= MaxDepth {
		b.mu.Unlock()
		b.logger.Warn("event dropped: dispatch depth cap reached",
			zap.String("topic", string(topic)),
			zap.Int("depth", MaxDepth),
		)
		return
	}
	b.depth++
	targets := make([]*subscription, 0, len(b.subs[topic])+len(b.all))
	targets = append(targets, b.subs[topic]...)
	targets = append(targets, b.all...)
	b.mu.Unlock()

	for _, sub := range targets {
		sub.handler(event)
	}

	b.mu.Lock()
	b.depth--
	b.mu.Unlock()
}

func remove(subs []*subscription, target *subscription) []*subscription {
	for i, sub := range subs {
		if sub == target {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}
