package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
)

const (
	ComplaintsKey = "spx_complaints"
	WorkersKey    = "spx_workers"
)

// errUnchanged tells mutate the callback found nothing to change
var errUnchanged = errors.New("collection unchanged")

// collection owns one JSON-array blob. Every mutation runs under the write
// lock and rewrites the whole blob; on a failed write the previous slice stays.
type collection[T any] struct {
	store kvstore.Store
	key   string

	mu    sync.RWMutex
	items []T
}

func loadCollection[T any](ctx context.Context, store kvstore.Store, key string, seed []T) (*collection[T], error) {
	c := &collection[T]{store: store, key: key}

	data, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, kvstore.ErrKeyNotFound):
		c.items = []T{}
		if seed != nil {
			if err := c.mutate(ctx, func([]T) ([]T, error) { return append([]T{}, seed...), nil }); err != nil {
				return nil, fmt.Errorf("failed to seed %s: %w", key, err)
			}
			slog.Info("Seeded collection", "key", key, "count", len(seed))
		}
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, &c.items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if c.items == nil {
		c.items = []T{}
	}
	slog.Info("Loaded collection", "key", key, "count", len(c.items))
	return c, nil
}

// snapshot returns a copy callers may keep and reorder freely
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := make([]T, len(c.items))
	copy(current, c.items)

	next, err := fn(current)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Put(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}

	c.items = next
	return nil
}
