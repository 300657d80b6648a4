package memory

import (
	"context"
	"sync"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

// TargetStore is an in-process port.TargetStore. It backs the "memory"
// store driver and the tests. A single mutex around the record map
// serializes Update, which is exactly the per-target discipline the
// quota commit needs.
type TargetStore struct {
	mu      sync.Mutex
	records map[string]domain.Target
}

func NewTargetStore() *TargetStore {
	return &TargetStore{records: make(map[string]domain.Target)}
}

// List returns the stored targets. Map iteration makes the order
// unstable across calls, matching the store contract.
func (s *TargetStore) List(ctx context.Context) ([]domain.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Target, 0, len(s.records))
	for _, t := range s.records {
		out = append(out, t)
	}
	return out, nil
}

func (s *TargetStore) Get(ctx context.Context, id string) (*domain.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.records[id]
	if !ok {
		return nil, port.ErrTargetNotFound
	}
	return &t, nil
}

func (s *TargetStore) Put(ctx context.Context, target domain.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[target.ID] = target
	return nil
}

func (s *TargetStore) Update(ctx context.Context, id string, apply port.ApplyFunc) (*domain.Target, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.records[id]
	if !ok {
		return nil, false, port.ErrTargetNotFound
	}
	next, commit, err := apply(current)
	if err != nil {
		return nil, false, err
	}
	if !commit {
		return &current, false, nil
	}
	s.records[id] = next
	return &next, true, nil
}

func (s *TargetStore) Ping(ctx context.Context) error {
	return nil
}
