package port

import (
	"context"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
)

// TargetDraft carries the caller-mutable fields of a target. The id and
// the quota ledger are never taken from callers: ids are assigned at
// creation and the ledger is advanced only by the decision engine.
type TargetDraft struct {
	URL              string
	Value            float64
	MaxAcceptsPerDay int
	Accept           domain.Accept
}

// TargetFilter narrows List results by the same eligibility predicates
// the decision engine uses. Empty fields skip their filter.
type TargetFilter struct {
	GeoState string
	Hour     string
}

// TargetUseCase exposes target management. It is the only path that may
// mutate url, value, maxAcceptsPerDay and the accept sets.
type TargetUseCase interface {
	// Create assigns a fresh id, stores the target and returns it.
	Create(ctx context.Context, draft TargetDraft) (*domain.Target, error)
	// List returns stored targets ordered by id, with quota ledgers
	// stripped, optionally narrowed by filter.
	List(ctx context.Context, filter TargetFilter) ([]domain.Target, error)
	// GetByID returns one target or ErrTargetNotFound.
	GetByID(ctx context.Context, id string) (*domain.Target, error)
	// Update replaces the mutable fields of an existing target. The
	// stored quota ledger is preserved as-is.
	Update(ctx context.Context, id string, draft TargetDraft) (*domain.Target, error)
}
