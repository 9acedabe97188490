// Package keyvalue implements the home and holiday repository ports on the
// key-value store. Each record family keeps one JSON array per owner under a
// "<prefix>_<ownerID>" key; writes rewrite the whole array.
package keyvalue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// collection wraps one record family in the key-value store. Mutations hold a
// per-owner lock around the read-modify-write cycle so interleaved writes from
// the same process cannot drop each other's records.
type collection[T any] struct {
	store  adapter.KeyValueStore
	prefix string

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newCollection[T any](store adapter.KeyValueStore, prefix string) *collection[T] {
	return &collection[T]{
		store:  store,
		prefix: prefix,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (c *collection[T]) key(ownerID uuid.UUID) string {
	return c.prefix + "_" + ownerID.String()
}

func (c *collection[T]) ownerLock(ownerID uuid.UUID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[ownerID] = lock
	}
	return lock
}

// load reads the owner's array. A missing key yields an empty slice; a corrupt
// value is logged and also yields an empty slice, so one bad write cannot
// brick every read for that owner.
func (c *collection[T]) load(ctx context.Context, ownerID uuid.UUID) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key(ownerID))
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", c.prefix, err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("Discarding corrupt key-value collection",
			"prefix", c.prefix,
			"owner_id", ownerID,
			"error", err,
		)
		return nil, nil
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, ownerID uuid.UUID, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", c.prefix, err)
	}
	if err := c.store.Set(ctx, c.key(ownerID), string(raw)); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", c.prefix, err)
	}
	return nil
}

// mutate runs fn on the owner's array under the owner lock and writes back the
// result.
func (c *collection[T]) mutate(ctx context.Context, ownerID uuid.UUID, fn func([]T) ([]T, error)) error {
	lock := c.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	items, err := c.load(ctx, ownerID)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, ownerID, items)
}
