package view

import (
	"html/template"
	"strings"

	"web-larek/internal/events"
)

// Modal wraps another fragment in the overlay container. Which fragment
// is shown (preview, basket, forms or success) is decided by the
// checkout stage, so the content arrives as a render argument.
type Modal struct {
	broker *events.Broker
}

// NewModal creates the modal wrapper view.
func NewModal(broker *events.Broker) *Modal {
	return &Modal{broker: broker}
}

// Render wraps content in the modal container. Empty content renders the
// inactive overlay. The content is trusted fragment HTML produced by the
// sibling views, not user input.
func (m *Modal) Render(content string) string {
	var sb strings.Builder
	modalTmpl.Execute(&sb, struct {
		Active  bool
		Content template.HTML
	}{
		Active:  content != "",
		Content: template.HTML(content),
	})
	return sb.String()
}

// ClickClose is the user dismissing the modal via the cross or backdrop.
func (m *Modal) ClickClose() {
	m.broker.Emit(events.ModalClose{})
}
