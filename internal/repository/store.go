package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("record not found")

// Store is a keyed collection of T. Implementations are safe for concurrent use.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, id string, value T) error
	List(ctx context.Context) (map[string]T, error)
	Delete(ctx context.Context, id string) error
}

// Seed writes every value whose key is not stored yet. Existing values win,
// so restarting against a shared Redis keeps client writes.
func Seed[T any](ctx context.Context, s Store[T], values map[string]T) error {
	for id, v := range values {
		_, err := s.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := s.Put(ctx, id, v); err != nil {
			return err
		}
	}
	return nil
}
