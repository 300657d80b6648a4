package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

func TestUpdateCommitAndDecline(t *testing.T) {
	ctx := context.Background()
	s := NewTargetStore()
	require.NoError(t, s.Put(ctx, domain.Target{ID: "a", URL: "http://a.example.com", MaxAcceptsPerDay: 1}))

	applied, committed, err := s.Update(ctx, "a", func(cur domain.Target) (domain.Target, bool, error) {
		cur.URL = "http://changed.example.com"
		return cur, true, nil
	})
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, "http://changed.example.com", applied.URL)

	// a declined apply leaves the record untouched
	applied, committed, err = s.Update(ctx, "a", func(cur domain.Target) (domain.Target, bool, error) {
		cur.URL = "http://discarded.example.com"
		return cur, false, nil
	})
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Equal(t, "http://changed.example.com", applied.URL)

	stored, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "http://changed.example.com", stored.URL)
}

func TestUpdateMissingAndErrors(t *testing.T) {
	ctx := context.Background()
	s := NewTargetStore()

	_, _, err := s.Update(ctx, "nope", func(cur domain.Target) (domain.Target, bool, error) {
		return cur, true, nil
	})
	assert.ErrorIs(t, err, port.ErrTargetNotFound)

	_, err = s.Get(ctx, "nope")
	assert.ErrorIs(t, err, port.ErrTargetNotFound)

	require.NoError(t, s.Put(ctx, domain.Target{ID: "a"}))
	boom := errors.New("apply failed")
	_, _, err = s.Update(ctx, "a", func(cur domain.Target) (domain.Target, bool, error) {
		return cur, false, boom
	})
	assert.ErrorIs(t, err, boom)
}

// Concurrent read-modify-write increments through Update must not lose
// updates.
func TestUpdateSerialisesPerKey(t *testing.T) {
	ctx := context.Background()
	s := NewTargetStore()
	require.NoError(t, s.Put(ctx, domain.Target{ID: "a", MaxAcceptsPerDay: 1000}))

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _, err := s.Update(ctx, "a", func(cur domain.Target) (domain.Target, bool, error) {
				if cur.Count == nil {
					cur.Count = &domain.QuotaLedger{Date: "2026-08-31", Value: 1}
				} else {
					cur.Count = &domain.QuotaLedger{Date: cur.Count.Date, Value: cur.Count.Value + 1}
				}
				return cur, true, nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	stored, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, stored.Count)
	assert.Equal(t, n, stored.Count.Value)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewTargetStore()
	require.NoError(t, s.Put(ctx, domain.Target{ID: "a", URL: "http://a.example.com"}))

	listed, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	listed[0].URL = "http://mutated.example.com"

	stored, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "http://a.example.com", stored.URL)
}
