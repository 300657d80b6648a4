package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/domain"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

const keyPrefix = "target:"

// scanBatch is the COUNT hint passed to SCAN when listing targets.
const scanBatch = 100

func targetKey(id string) string { return keyPrefix + id }

// TargetStore implements port.TargetStore on Redis. Records are stored
// as JSON under "target:<id>". Update uses WATCH/MULTI/EXEC so the
// read-admit-write sequence commits only against the record it read;
// a concurrent writer aborts the transaction and the whole sequence is
// retried with fresh state.
type TargetStore struct {
	rdb     *redis.Client
	retries int
}

type Option func(*TargetStore)

// WithCommitRetries bounds how many times Update re-runs an aborted
// optimistic transaction before giving up with ErrCommitConflict.
func WithCommitRetries(n int) Option {
	return func(s *TargetStore) {
		if n > 0 {
			s.retries = n
		}
	}
}

func NewTargetStore(rdb *redis.Client, opts ...Option) *TargetStore {
	s := &TargetStore{rdb: rdb, retries: 3}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List scans every target key and fetches the records in one MGET.
// Keys deleted between the scan and the fetch are skipped.
func (s *TargetStore) List(ctx context.Context) ([]domain.Target, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("scan targets: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if len(keys) == 0 {
		return []domain.Target{}, nil
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch targets: %w", err)
	}
	targets := make([]domain.Target, 0, len(vals))
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var t domain.Target
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("decode target record: %w", err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func (s *TargetStore) Get(ctx context.Context, id string) (*domain.Target, error) {
	raw, err := s.rdb.Get(ctx, targetKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrTargetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get target %s: %w", id, err)
	}
	var t domain.Target
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, fmt.Errorf("decode target record: %w", err)
	}
	return &t, nil
}

func (s *TargetStore) Put(ctx context.Context, target domain.Target) error {
	raw, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("encode target record: %w", err)
	}
	if err := s.rdb.Set(ctx, targetKey(target.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("put target %s: %w", target.ID, err)
	}
	return nil
}

// Update implements the optimistic commit. The apply function runs
// against the record read under WATCH; if another client writes the key
// before EXEC, redis aborts the transaction and the read-apply-write
// sequence restarts with the new state, up to the retry bound.
func (s *TargetStore) Update(ctx context.Context, id string, apply port.ApplyFunc) (*domain.Target, bool, error) {
	key := targetKey(id)
	var (
		applied   domain.Target
		committed bool
	)

	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return port.ErrTargetNotFound
		}
		if err != nil {
			return err
		}
		var current domain.Target
		if err := json.Unmarshal([]byte(raw), &current); err != nil {
			return fmt.Errorf("decode target record: %w", err)
		}

		next, commit, err := apply(current)
		if err != nil {
			return err
		}
		if !commit {
			applied, committed = current, false
			return nil
		}

		buf, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode target record: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, buf, 0)
			return nil
		})
		if err != nil {
			return err
		}
		applied, committed = next, true
		return nil
	}

	for attempt := 0; attempt < s.retries; attempt++ {
		err := s.rdb.Watch(ctx, txn, key)
		if err == nil {
			return &applied, committed, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, port.ErrTargetNotFound) {
			return nil, false, port.ErrTargetNotFound
		}
		return nil, false, fmt.Errorf("update target %s: %w", id, err)
	}
	return nil, false, port.ErrCommitConflict
}

func (s *TargetStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
