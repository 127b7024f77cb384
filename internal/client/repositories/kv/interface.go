package kv

import (
	"context"
	"fmt"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store.
type UpdateFunc func(current []byte) ([]byte, error)

// Updater is implemented by repositories able to run an UpdateFunc on one key
// without interleaving writers.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Update applies fn to key, atomically when repo implements Updater and as a
// plain Get then Set otherwise.
func Update(ctx context.Context, repo Repository, key string, fn UpdateFunc) error {
	if u, ok := repo.(Updater); ok {
		return u.Update(ctx, key, fn)
	}
	cur, err := repo.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	if err := repo.Set(ctx, key, next); err != nil {
		return fmt.Errorf("failed to write back kv[%s]: %w", key, err)
	}
	return nil
}
