package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/metrics"
)

// Handler is the inbound HTTP adapter. It owns request decoding and
// field-presence validation, so the usecases behind it receive only
// well-formed inputs. Routes are registered on a chi.Router.
type Handler struct {
	decisions port.DecisionUseCase
	targets   port.TargetUseCase
	store     port.TargetStore
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The store is
// used only by the health check; limiter, when non-nil, guards the
// decision route.
func NewHandler(decisions port.DecisionUseCase, targets port.TargetUseCase, store port.TargetStore, logger *slog.Logger, limiter *RateLimiter) *Handler {
	h := &Handler{decisions: decisions, targets: targets, store: store, logger: logger}
	r := chi.NewRouter()
	r.Use(h.observe)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/targets", h.handleListTargets)
		r.Post("/targets", h.handleCreateTarget)
		r.Get("/target/{id}", h.handleGetTarget)
		r.Post("/target/{id}", h.handleUpdateTarget)
	})

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Post("/route", h.handleDecision)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth reports liveness. A store that does not answer the ping
// makes the service unhealthy.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("store ping failed", slog.Any("error", err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// observe records the request duration histogram, labelled with the chi
// route pattern rather than the raw path so ids don't explode the
// cardinality.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.ResponseTime.
			WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON envelope for client errors.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
