package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-kpi/internal/core/port"
	"mesa-kpi/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a DashboardUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc     port.DashboardUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// Option customises a Handler.
type Option func(*Handler, chi.Router)

// WithMetrics records request metrics in m and serves them on path.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(h *Handler, r chi.Router) {
		h.metrics = m
		r.Method(http.MethodGet, path, m.Handler())
	}
}

// NewHandler creates a handler with all routes configured. It accepts a
// DashboardUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// logRequests wraps Recoverer so recovered panics are logged as 500s.
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	for _, opt := range opts {
		opt(h, r)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.handleOverview)
		r.Post("/dashboard/records", h.handleAddRecord)
		r.Post("/dashboard/reset", h.handleReset)

		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/campaigns/{id}", h.handleCampaign)
		r.Post("/campaigns/{id}/records", h.handleAddCampaignRecord)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
