package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

// targetRequest is the wire form of a target create/update body. The id
// and count fields are not accepted from callers.
type targetRequest struct {
	URL              string        `json:"url"`
	Value            float64       `json:"value"`
	MaxAcceptsPerDay int           `json:"maxAcceptsPerDay"`
	Accept           domain.Accept `json:"accept"`
}

func (t targetRequest) validate() string {
	switch {
	case t.URL == "":
		return "url is required"
	case t.Value <= 0:
		return "value must be positive"
	case t.MaxAcceptsPerDay <= 0:
		return "maxAcceptsPerDay must be positive"
	default:
		return ""
	}
}

func (t targetRequest) draft() port.TargetDraft {
	return port.TargetDraft{
		URL:              t.URL,
		Value:            t.Value,
		MaxAcceptsPerDay: t.MaxAcceptsPerDay,
		Accept:           t.Accept,
	}
}

// handleCreateTarget stores a new target and responds with the full
// record, id included.
func (h *Handler) handleCreateTarget(w http.ResponseWriter, r *http.Request) {
	var body targetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := body.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	target, err := h.targets.Create(r.Context(), body.draft())
	if err != nil {
		h.logger.Error("create target error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, target)
}

// handleListTargets lists stored targets. Optional geoState and hour
// query parameters narrow the list with the engine's own filters.
func (h *Handler) handleListTargets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	targets, err := h.targets.List(r.Context(), port.TargetFilter{
		GeoState: q.Get("geoState"),
		Hour:     q.Get("hour"),
	})
	if err != nil {
		h.logger.Error("list targets error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, targets)
}

func (h *Handler) handleGetTarget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	target, err := h.targets.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrTargetNotFound) {
			writeError(w, http.StatusNotFound, "target not found")
			return
		}
		h.logger.Error("get target error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, target)
}

// handleUpdateTarget replaces the mutable fields of an existing target.
func (h *Handler) handleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body targetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := body.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	target, err := h.targets.Update(r.Context(), id, body.draft())
	if err != nil {
		if errors.Is(err, port.ErrTargetNotFound) {
			writeError(w, http.StatusNotFound, "target not found")
			return
		}
		h.logger.Error("update target error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, target)
}
