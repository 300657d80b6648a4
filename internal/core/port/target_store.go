package port

import (
	"context"
	"errors"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
)

var (
	// ErrTargetNotFound is returned when no record exists for an id.
	ErrTargetNotFound = errors.New("target not found")

	// ErrCommitConflict is returned when an optimistic update kept
	// colliding with concurrent writers after all retry attempts. It is
	// a transient failure, distinct from a rejection.
	ErrCommitConflict = errors.New("target update conflict")
)

// ApplyFunc inspects the freshest copy of a target and returns the
// record to persist together with whether to commit it. Returning
// commit=false leaves the stored record untouched. Implementations of
// TargetStore may invoke apply more than once, so it must be free of
// side effects beyond its return values.
type ApplyFunc func(current domain.Target) (next domain.Target, commit bool, err error)

// TargetStore is the outbound port to the target record store. It is a
// key-value store holding whole Target records; Put is a full-value
// overwrite. Implementations must serialize Update per target id so a
// read-modify-write never loses a concurrent increment.
type TargetStore interface {
	// List returns every stored target. Order is store-defined and not
	// guaranteed stable across calls.
	List(ctx context.Context) ([]domain.Target, error)
	// Get returns the target with the given id or ErrTargetNotFound.
	Get(ctx context.Context, id string) (*domain.Target, error)
	// Put stores the target under its id, overwriting any prior record.
	Put(ctx context.Context, target domain.Target) error
	// Update runs apply against the stored record under per-key
	// serialization and persists the result only when apply commits.
	// It returns the record apply produced and whether it was
	// committed. Unresolvable write contention surfaces as
	// ErrCommitConflict, a missing record as ErrTargetNotFound.
	Update(ctx context.Context, id string, apply ApplyFunc) (*domain.Target, bool, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
