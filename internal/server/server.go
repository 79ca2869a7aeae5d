package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"web-larek/internal/config"
	"web-larek/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Server is the stub storefront backend: it serves the fixed catalog and
// accepts orders, recomputing the total server-side. It backs local
// development and the end-to-end tests; the production backend speaks the
// same contract.
type Server struct {
	*http.Server
	logger *zap.Logger
}

// NewServer builds the stub backend on the configured port.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{logger: logger}

	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api/weblarek", func(r chi.Router) {
		r.Get("/product/", s.handleCatalog)
		r.Post("/order/", s.handleOrder)
	})

	s.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Stub.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Router exposes the handler for httptest-based callers.
func (s *Server) Router() http.Handler {
	return s.Server.Handler
}

type catalogResponse struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	items := domain.FallbackCatalog()
	writeJSON(w, http.StatusOK, catalogResponse{Total: len(items), Items: items})
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order payload")
		return
	}

	if err := validateOrder(order); err != "" {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// The server-side total is authoritative; the client's is ignored.
	total := 0
	known := make(map[string]domain.Product)
	for _, item := range domain.FallbackCatalog() {
		known[item.ID] = item
	}
	for _, id := range order.Items {
		product, ok := known[id]
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown product id %s", id))
			return
		}
		if product.Priceless() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("product %s is priceless and cannot be ordered", id))
			return
		}
		total += product.PriceValue()
	}

	result := domain.OrderResult{ID: uuid.New().String(), Total: total}
	if s.logger != nil {
		s.logger.Info("order accepted",
			zap.String("order_id", result.ID),
			zap.Int("total", result.Total),
			zap.Int("items", len(order.Items)),
		)
	}
	writeJSON(w, http.StatusOK, result)
}

// validateOrder checks the flat payload, returning a message or "".
func validateOrder(order domain.Order) string {
	if len(order.Items) == 0 {
		return "order has no items"
	}
	if !order.Payment.Valid() {
		return "invalid payment method"
	}
	if strings.TrimSpace(order.Address) == "" {
		return "address is required"
	}
	if strings.TrimSpace(order.Email) == "" {
		return "email is required"
	}
	if strings.TrimSpace(order.Phone) == "" {
		return "phone is required"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
