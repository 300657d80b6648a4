package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

// TargetUseCase provides target management on top of the store. It owns
// id assignment and guards the quota ledger from caller interference.
type TargetUseCase struct {
	store port.TargetStore
}

func NewTargetUseCase(store port.TargetStore) *TargetUseCase {
	return &TargetUseCase{store: store}
}

// Create stores a new target under a fresh id. The target starts with
// no quota ledger; the first accepted decision creates one.
func (u *TargetUseCase) Create(ctx context.Context, draft port.TargetDraft) (*domain.Target, error) {
	target := domain.Target{
		ID:               uuid.NewString(),
		URL:              draft.URL,
		Value:            draft.Value,
		MaxAcceptsPerDay: draft.MaxAcceptsPerDay,
		Accept:           draft.Accept,
	}
	if err := u.store.Put(ctx, target); err != nil {
		return nil, fmt.Errorf("store target: %w", err)
	}
	return &target, nil
}

// List returns all targets ordered by id with ledgers stripped, so the
// management surface never exposes consumption state. The optional
// filter reuses the engine's eligibility predicates.
func (u *TargetUseCase) List(ctx context.Context, filter port.TargetFilter) ([]domain.Target, error) {
	targets, err := u.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}

	targets = domain.FilterByRegion(targets, filter.GeoState)
	targets = domain.FilterByHour(targets, filter.Hour)

	out := make([]domain.Target, 0, len(targets))
	for _, t := range targets {
		t.Count = nil
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b domain.Target) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// GetByID returns one target, ledger included.
func (u *TargetUseCase) GetByID(ctx context.Context, id string) (*domain.Target, error) {
	return u.store.Get(ctx, id)
}

// Update replaces the mutable fields of an existing target. The stored
// ledger is kept: refilling a day's quota by editing a target would
// break the daily cap, so only the decision engine advances it.
func (u *TargetUseCase) Update(ctx context.Context, id string, draft port.TargetDraft) (*domain.Target, error) {
	updated, _, err := u.store.Update(ctx, id, func(current domain.Target) (domain.Target, bool, error) {
		current.URL = draft.URL
		current.Value = draft.Value
		current.MaxAcceptsPerDay = draft.MaxAcceptsPerDay
		current.Accept = draft.Accept
		return current, true, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
