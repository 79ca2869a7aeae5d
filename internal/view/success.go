package view

import (
	"strings"

	"web-larek/internal/events"
)

// Success renders the order-complete screen with the charged total. The
// total comes from the orchestrator (server-confirmed or local fallback),
// so the view takes it as a render argument instead of subscribing.
type Success struct {
	broker *events.Broker
}

// NewSuccess creates the success view.
func NewSuccess(broker *events.Broker) *Success {
	return &Success{broker: broker}
}

// Render produces the success fragment for the given total.
func (s *Success) Render(total int) string {
	var sb strings.Builder
	successTmpl.Execute(&sb, struct{ Total int }{Total: total})
	return sb.String()
}

// ClickClose is the user leaving the success screen.
func (s *Success) ClickClose() {
	s.broker.Emit(events.SuccessClose{})
}
