package service

import (
	"context"

	"web-larek/internal/domain"
	"web-larek/internal/events"

	"go.uber.org/zap"
)

// Stage identifies where the user is in the checkout flow.
type Stage int

const (
	StageBrowsing Stage = iota
	StagePreviewOpen
	StageCartOpen
	StageOrderFormOpen
	StageContactsFormOpen
	StageSubmitting
	StageSuccess
)

func (s Stage) String() string {
	switch s {
	case StageBrowsing:
		return "browsing"
	case StagePreviewOpen:
		return "preview"
	case StageCartOpen:
		return "cart"
	case StageOrderFormOpen:
		return "order-form"
	case StageContactsFormOpen:
		return "contacts-form"
	case StageSubmitting:
		return "submitting"
	case StageSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ShopAPI is the backend collaborator used at bootstrap and checkout.
type ShopAPI interface {
	FetchCatalog(ctx context.Context) ([]domain.Product, error)
	SubmitOrder(ctx context.Context, order domain.Order) (domain.OrderResult, error)
}

// Checkout drives the order lifecycle as a state machine over broker
// events. It owns no timers and no goroutines: every transition happens
// synchronously inside a dispatch, except the single suspension point of
// the network call at submission.
//
// Checkout assumes the cooperative single-threaded dispatch model. A host
// driving the broker from multiple goroutines must serialize its emits
// behind one mutation queue; the web adapter does exactly that.
type Checkout struct {
	state  *AppState
	api    ShopAPI
	broker *events.Broker
	logger *zap.Logger

	stage Stage
	// total shown on the success screen: the server-confirmed amount, or
	// the client-computed fallback when the backend failed
	successTotal int
}

// NewCheckout wires the orchestrator into the broker. All intent topics
// are subscribed immediately.
func NewCheckout(state *AppState, shopAPI ShopAPI, broker *events.Broker, logger *zap.Logger) *Checkout {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Checkout{
		state:  state,
		api:    shopAPI,
		broker: broker,
		logger: logger,
		stage:  StageBrowsing,
	}

	broker.Subscribe(events.TopicCardSelect, c.handle)
	broker.Subscribe(events.TopicCardBuy, c.handle)
	broker.Subscribe(events.TopicCardRemove, c.handle)
	broker.Subscribe(events.TopicBasketOpen, c.handle)
	broker.Subscribe(events.TopicBasketRemove, c.handle)
	broker.Subscribe(events.TopicBasketCheckout, c.handle)
	broker.Subscribe(events.TopicOrderPaymentChange, c.handle)
	broker.Subscribe(events.TopicOrderAddressChange, c.handle)
	broker.Subscribe(events.TopicContactsEmailChange, c.handle)
	broker.Subscribe(events.TopicContactsPhoneChange, c.handle)
	broker.Subscribe(events.TopicOrderSubmit, c.handle)
	broker.Subscribe(events.TopicContactsSubmit, c.handle)
	broker.Subscribe(events.TopicSuccessClose, c.handle)
	broker.Subscribe(events.TopicModalClose, c.handle)

	return c
}

// Stage returns the current checkout stage.
func (c *Checkout) Stage() Stage {
	return c.stage
}

// SuccessTotal returns the amount shown on the order-complete screen.
func (c *Checkout) SuccessTotal() int {
	return c.successTotal
}

func (c *Checkout) handle(event events.Event) {
	switch e := event.(type) {
	case events.CardSelect:
		c.onCardSelect(e.ID)
	case events.CardBuy:
		c.state.AddToCart(e.ID)
	case events.CardRemove:
		c.state.RemoveFromCart(e.ID)
	case events.BasketOpen:
		c.stage = StageCartOpen
	case events.BasketRemove:
		c.state.RemoveFromCart(e.ID)
	case events.BasketCheckout:
		c.onBasketCheckout()
	case events.OrderPaymentChange:
		c.state.UpdateBuyer(domain.BuyerUpdate{Payment: &e.Payment})
	case events.OrderAddressChange:
		c.state.UpdateBuyer(domain.BuyerUpdate{Address: &e.Address})
	case events.ContactsEmailChange:
		c.state.UpdateBuyer(domain.BuyerUpdate{Email: &e.Email})
	case events.ContactsPhoneChange:
		c.state.UpdateBuyer(domain.BuyerUpdate{Phone: &e.Phone})
	case events.OrderSubmit:
		c.onOrderSubmit()
	case events.ContactsSubmit:
		c.onContactsSubmit()
	case events.SuccessClose:
		c.stage = StageBrowsing
	case events.ModalClose:
		c.onModalClose()
	}
}

func (c *Checkout) onCardSelect(id string) {
	// An unknown id is a stale click, not an error: stay where we are.
	if c.state.SelectProduct(id) {
		c.stage = StagePreviewOpen
	}
}

// onBasketCheckout guards checkout entry: an empty cart refuses the
// transition outright: no form opens, no events fire.
func (c *Checkout) onBasketCheckout() {
	if c.state.CartCount() == 0 {
		return
	}
	c.stage = StageOrderFormOpen
	c.state.ValidateBuyer()
}

// onOrderSubmit advances to the contacts form only when payment and
// address validate. Re-validating here covers users who bypass the
// disabled submit button, e.g. by pressing Enter.
func (c *Checkout) onOrderSubmit() {
	if c.stage != StageOrderFormOpen {
		return
	}
	errs := c.state.ValidateBuyer()
	if _, bad := errs[domain.FieldPayment]; bad {
		return
	}
	if _, bad := errs[domain.FieldAddress]; bad {
		return
	}
	c.stage = StageContactsFormOpen
}

// onContactsSubmit is the submission sequence. The stage check doubles as
// the double-submit guard: a second submit arriving while one is in
// flight finds the stage already at Submitting and is ignored. There is
// no idempotency key, so a backend-side duplicate remains possible.
func (c *Checkout) onContactsSubmit() {
	if c.stage != StageContactsFormOpen {
		return
	}
	if errs := c.state.ValidateBuyer(); len(errs) != 0 {
		return
	}

	order := c.state.BuildOrder()
	fallbackTotal := order.Total
	c.stage = StageSubmitting

	// The only suspension point of the flow. No cancellation: an in-flight
	// submission cannot be aborted by further user action.
	result, err := c.api.SubmitOrder(context.Background(), order)

	total := fallbackTotal
	if err != nil {
		// Fail open: the user still gets a completed order with the
		// client-computed total. The failure is diagnostic only.
		c.logger.Error("order submission failed, completing with local total",
			zap.Error(err),
			zap.Int("fallback_total", fallbackTotal),
			zap.Int("items", len(order.Items)),
		)
	} else {
		total = result.Total
		c.logger.Info("order confirmed",
			zap.String("order_id", result.ID),
			zap.Int("total", result.Total),
		)
	}

	c.state.CompleteOrder()
	c.successTotal = total
	c.stage = StageSuccess
}

func (c *Checkout) onModalClose() {
	switch c.stage {
	case StagePreviewOpen, StageCartOpen, StageOrderFormOpen, StageContactsFormOpen, StageSuccess:
		c.stage = StageBrowsing
	}
}
