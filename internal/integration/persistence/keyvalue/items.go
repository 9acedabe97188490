package keyvalue

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// Array-level operations shared by the record families. idOf extracts the
// record id; the functions never touch records belonging to other ids.

func appendItem[T any](ctx context.Context, c *collection[T], ownerID uuid.UUID, item T) error {
	return c.mutate(ctx, ownerID, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

func replaceItem[T any](ctx context.Context, c *collection[T], ownerID, id uuid.UUID, idOf func(T) uuid.UUID, item T) error {
	return c.mutate(ctx, ownerID, func(items []T) ([]T, error) {
		for i := range items {
			if idOf(items[i]) == id {
				items[i] = item
				return items, nil
			}
		}
		return nil, domainerror.ErrRecordNotFound
	})
}

func removeItem[T any](ctx context.Context, c *collection[T], ownerID, id uuid.UUID, idOf func(T) uuid.UUID) error {
	return c.mutate(ctx, ownerID, func(items []T) ([]T, error) {
		for i := range items {
			if idOf(items[i]) == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domainerror.ErrRecordNotFound
	})
}

// removeWhere drops every record matching the predicate. Matching nothing is
// not an error; cascades use this.
func removeWhere[T any](ctx context.Context, c *collection[T], ownerID uuid.UUID, match func(T) bool) error {
	return c.mutate(ctx, ownerID, func(items []T) ([]T, error) {
		kept := items[:0]
		for _, item := range items {
			if !match(item) {
				kept = append(kept, item)
			}
		}
		return kept, nil
	})
}
