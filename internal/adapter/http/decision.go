package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/metrics"
)

// decisionRequest is the wire form of a routing request.
type decisionRequest struct {
	GeoState  string `json:"geoState"`
	Timestamp string `json:"timestamp"`
}

// handleDecision routes one request through the decision engine. Both
// fields are required; validation lives here so the engine can assume
// its preconditions. Acceptance returns {"url": ...}, exhaustion
// returns {"decision": "reject"} with HTTP 200 — rejection is a normal
// outcome, not a failure. Commit-retry exhaustion maps to 503 so the
// caller can distinguish a transient conflict from a rejection.
func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request) {
	var body decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.GeoState == "" {
		writeError(w, http.StatusBadRequest, "geoState is required")
		return
	}
	if body.Timestamp == "" {
		writeError(w, http.StatusBadRequest, "timestamp is required")
		return
	}
	ts, err := time.Parse(time.RFC3339, body.Timestamp)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timestamp")
		return
	}

	decision, err := h.decisions.Decide(r.Context(), port.DecisionRequest{
		GeoState:  body.GeoState,
		Timestamp: ts,
	})
	if err != nil {
		if errors.Is(err, port.ErrCommitConflict) {
			h.logger.Warn("decision commit conflict", slog.Any("error", err))
			writeError(w, http.StatusServiceUnavailable, "decision conflict, retry")
			return
		}
		h.logger.Error("decision error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if decision.Rejected {
		metrics.DecisionsTotal.WithLabelValues("reject").Inc()
		writeJSON(w, http.StatusOK, map[string]string{"decision": "reject"})
		return
	}
	metrics.DecisionsTotal.WithLabelValues("accept").Inc()
	writeJSON(w, http.StatusOK, map[string]string{"url": decision.URL})
}
