package model

import (
	"sync"

	"web-larek/internal/domain"
	"web-larek/internal/events"
)

// Buyer accumulates the checkout contact and payment data. The model only
// stores and merges; validation is triggered explicitly by the use-case
// layer after every mutating call.
type Buyer struct {
	mu     sync.Mutex
	data   domain.Buyer
	broker *events.Broker
}

// NewBuyer creates an empty buyer record publishing changes on broker.
func NewBuyer(broker *events.Broker) *Buyer {
	return &Buyer{broker: broker}
}

// SaveData merges the provided fields into the record, leaving nil fields
// untouched. A change event fires only when at least one field's value
// actually changed; re-saving identical data must not trigger another
// re-validation/re-render cascade.
func (b *Buyer) SaveData(update domain.BuyerUpdate) {
	b.mu.Lock()
	changed := false
	if update.Payment != nil && b.data.Payment != *update.Payment {
		b.data.Payment = *update.Payment
		changed = true
	}
	if update.Email != nil && b.data.Email != *update.Email {
		b.data.Email = *update.Email
		changed = true
	}
	if update.Phone != nil && b.data.Phone != *update.Phone {
		b.data.Phone = *update.Phone
		changed = true
	}
	if update.Address != nil && b.data.Address != *update.Address {
		b.data.Address = *update.Address
		changed = true
	}
	snapshot := b.data
	b.mu.Unlock()

	if changed {
		b.broker.Emit(events.BuyerChange{Buyer: snapshot})
	}
}

// Clear resets all four fields and always emits, even when the record was
// already empty: the forms treat it as an unconditional reset signal and
// wipe their displayed values.
func (b *Buyer) Clear() {
	b.mu.Lock()
	b.data = domain.Buyer{}
	b.mu.Unlock()

	b.broker.Emit(events.BuyerChange{Buyer: domain.Buyer{}})
}

// Data returns a snapshot of the buyer record.
func (b *Buyer) Data() domain.Buyer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Validate recomputes the per-field error mapping from the current record.
func (b *Buyer) Validate() domain.FieldErrors {
	return domain.ValidateBuyer(b.Data())
}
