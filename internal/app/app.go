package app

import (
	"context"

	"web-larek/internal/config"
	"web-larek/internal/domain"
	"web-larek/internal/events"
	"web-larek/internal/model"
	"web-larek/internal/service"
	"web-larek/internal/view"

	"go.uber.org/zap"
)

// App is the composition root: one broker, the three models, the use-case
// facade, the checkout orchestrator and all view components, wired
// together as explicitly constructed instances. Nothing here is a
// process-wide singleton; tests build a fresh App per case.
type App struct {
	Broker   *events.Broker
	Catalog  *model.Catalog
	Cart     *model.Cart
	Buyer    *model.Buyer
	State    *service.AppState
	Checkout *service.Checkout

	Page         *view.Page
	Basket       *view.Basket
	Preview      *view.Preview
	OrderForm    *view.OrderForm
	ContactsForm *view.ContactsForm
	Success      *view.Success
	Modal        *view.Modal

	api    service.ShopAPI
	logger *zap.Logger
}

// New wires a complete storefront instance against the given backend
// collaborator.
func New(cfg *config.Config, shopAPI service.ShopAPI, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	broker := events.New(logger)
	catalog := model.NewCatalog(broker)
	cart := model.NewCart(broker)
	buyer := model.NewBuyer(broker)
	state := service.NewAppState(catalog, cart, buyer, broker)

	return &App{
		Broker:       broker,
		Catalog:      catalog,
		Cart:         cart,
		Buyer:        buyer,
		State:        state,
		Checkout:     service.NewCheckout(state, shopAPI, broker, logger),
		Page:         view.NewPage(broker, cfg.API.CDNURL),
		Basket:       view.NewBasket(broker),
		Preview:      view.NewPreview(broker, cfg.API.CDNURL),
		OrderForm:    view.NewOrderForm(broker),
		ContactsForm: view.NewContactsForm(broker),
		Success:      view.NewSuccess(broker),
		Modal:        view.NewModal(broker),
		api:          shopAPI,
		logger:       logger,
	}
}

// LoadCatalog bootstraps the catalog from the backend. A fetch failure is
// never fatal: the fixed local fallback catalog takes its place so the
// storefront always opens with products on display.
func (a *App) LoadCatalog(ctx context.Context) {
	items, err := a.api.FetchCatalog(ctx)
	if err != nil {
		a.logger.Warn("catalog fetch failed, using local fallback data", zap.Error(err))
		a.State.SetCatalog(domain.FallbackCatalog())
		return
	}
	a.logger.Info("catalog loaded", zap.Int("items", len(items)))
	a.State.SetCatalog(items)
}
