package port

import (
	"context"
	"time"
)

// DecisionRequest carries the already-validated inputs of one routing
// request. Field presence is checked at the HTTP boundary; the engine
// treats a missing value here as a precondition violation, not an
// error to handle.
type DecisionRequest struct {
	// GeoState is the requested region code; empty skips the region
	// filter.
	GeoState string
	// Timestamp is the request time; the hour filter derives its hour
	// code from it in the engine's reference zone. A zero time skips
	// the hour filter.
	Timestamp time.Time
}

// Decision is the engine's outcome: either a winning destination URL or
// an explicit rejection. Rejection is a normal result, never an error.
type Decision struct {
	URL      string
	Rejected bool
}

// DecisionUseCase is the primary port into the decision engine. Decide
// filters the target pool by eligibility, ranks by bid value and
// commits exactly one quota unit against the winner. Errors indicate
// store failures or commit-retry exhaustion, never "no winner".
type DecisionUseCase interface {
	Decide(ctx context.Context, req DecisionRequest) (Decision, error)
}
