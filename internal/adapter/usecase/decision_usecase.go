package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

// DecisionUseCase implements the decision engine. It orchestrates the
// eligibility filters, the value ranking and the quota commit against
// the target store. All day and hour derivation happens in the single
// reference zone so a ledger written at 23:59 and a request at 00:01
// land on different days.
type DecisionUseCase struct {
	store port.TargetStore
	zone  *time.Location

	// now supplies "today" for the quota ledger; overridable in tests.
	now func() time.Time
}

// NewDecisionUseCase creates the engine. A nil zone defaults to UTC.
func NewDecisionUseCase(store port.TargetStore, zone *time.Location) *DecisionUseCase {
	if zone == nil {
		zone = time.UTC
	}
	return &DecisionUseCase{store: store, zone: zone, now: time.Now}
}

// Decide routes one request. It snapshots the target pool, narrows it
// by region then by hour, and walks the ranked survivors asking each
// one, freshest record first, whether it can take one more acceptance
// today. The first target whose quota commit succeeds wins and its URL
// is returned; if none can, the decision is a rejection and nothing is
// written.
//
// The snapshot may be stale by the time a candidate commits; the store's
// Update re-runs admission against the record it actually persists, so
// the cap can never be oversubscribed by concurrent requests.
func (u *DecisionUseCase) Decide(ctx context.Context, req port.DecisionRequest) (port.Decision, error) {
	targets, err := u.store.List(ctx)
	if err != nil {
		return port.Decision{}, fmt.Errorf("load targets: %w", err)
	}

	eligible := domain.FilterByRegion(targets, req.GeoState)
	hour := ""
	if !req.Timestamp.IsZero() {
		hour = domain.HourCode(req.Timestamp, u.zone)
	}
	eligible = domain.FilterByHour(eligible, hour)

	today := domain.DayOf(u.now(), u.zone)
	for _, candidate := range domain.RankByValue(eligible) {
		applied, committed, err := u.store.Update(ctx, candidate.ID, func(fresh domain.Target) (domain.Target, bool, error) {
			ledger := fresh.AdmitAndAdvance(today)
			if ledger == nil {
				return fresh, false, nil
			}
			fresh.Count = ledger
			return fresh, true, nil
		})
		switch {
		case errors.Is(err, port.ErrTargetNotFound):
			// deleted between snapshot and commit; try the next one
			continue
		case err != nil:
			return port.Decision{}, fmt.Errorf("commit quota for target %s: %w", candidate.ID, err)
		case committed:
			return port.Decision{URL: applied.URL}, nil
		}
	}

	return port.Decision{Rejected: true}, nil
}
