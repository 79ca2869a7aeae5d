package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"web-larek/internal/app"
	"web-larek/internal/config"
	"web-larek/internal/domain"
	"web-larek/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the browser-facing adapter: it translates HTTP requests into
// the intent events a browser would emit and serves the re-rendered
// fragments back. All intent emission goes through one mutex, the single
// mutation queue the cooperative dispatch model requires when the host is
// multi-goroutine.
type Server struct {
	*http.Server
	app    *app.App
	logger *zap.Logger

	// serializes broker dispatch across request goroutines
	dispatch sync.Mutex
}

// NewServer builds the UI server around a wired storefront instance.
func NewServer(cfg *config.Config, application *app.App, logger *zap.Logger) *Server {
	s := &Server{
		app:    application,
		logger: logger,
	}

	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Get("/", s.handleIndex)
	router.Post("/card/{id}/select", s.intent(func(r *http.Request) {
		s.app.Page.ClickCard(chi.URLParam(r, "id"))
	}))
	router.Post("/preview/action", s.intent(func(*http.Request) {
		s.app.Preview.ClickButton()
	}))
	router.Post("/basket/open", s.intent(func(*http.Request) {
		s.app.Page.ClickBasket()
	}))
	router.Post("/basket/remove/{id}", s.intent(func(r *http.Request) {
		s.app.Basket.ClickDelete(chi.URLParam(r, "id"))
	}))
	router.Post("/basket/checkout", s.intent(func(*http.Request) {
		s.app.Basket.ClickCheckout()
	}))
	router.Post("/order/payment", s.intent(func(r *http.Request) {
		s.app.OrderForm.PickPayment(domain.Payment(r.FormValue("payment")))
	}))
	router.Post("/order/address", s.intent(func(r *http.Request) {
		s.app.OrderForm.InputAddress(r.FormValue("address"))
	}))
	router.Post("/order/submit", s.intent(func(*http.Request) {
		s.app.OrderForm.Submit()
	}))
	router.Post("/contacts/email", s.intent(func(r *http.Request) {
		s.app.ContactsForm.InputEmail(r.FormValue("email"))
	}))
	router.Post("/contacts/phone", s.intent(func(r *http.Request) {
		s.app.ContactsForm.InputPhone(r.FormValue("phone"))
	}))
	router.Post("/contacts/submit", s.intent(func(*http.Request) {
		s.app.ContactsForm.Submit()
	}))
	router.Post("/success/close", s.intent(func(*http.Request) {
		s.app.Success.ClickClose()
	}))
	router.Post("/modal/close", s.intent(func(*http.Request) {
		s.app.Modal.ClickClose()
	}))

	s.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// intent wraps a user action: parse the form, emit under the dispatch
// lock, then send the browser back to the page.
func (s *Server) intent(emit func(*http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form data", http.StatusBadRequest)
			return
		}

		s.dispatch.Lock()
		emit(r)
		s.dispatch.Unlock()

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.dispatch.Lock()
	stage := s.app.Checkout.Stage()
	page := s.app.Page.Render()
	modal := s.app.Modal.Render(s.modalContent(stage))
	s.dispatch.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"ru\">\n<head><meta charset=\"utf-8\"><title>Веб-ларёк</title></head>\n<body>\n%s\n%s\n</body>\n</html>\n", page, modal)
}

// modalContent picks the fragment the current checkout stage shows.
func (s *Server) modalContent(stage service.Stage) string {
	switch stage {
	case service.StagePreviewOpen:
		return s.app.Preview.Render()
	case service.StageCartOpen:
		return s.app.Basket.Render()
	case service.StageOrderFormOpen:
		return s.app.OrderForm.Render()
	case service.StageContactsFormOpen, service.StageSubmitting:
		return s.app.ContactsForm.Render()
	case service.StageSuccess:
		return s.app.Success.Render(s.app.Checkout.SuccessTotal())
	default:
		return ""
	}
}
