package repository

import (
	"context"
	"sync"
)

// MemoryStore is a Store backed by a map.
type MemoryStore[T any] struct {
	mu   sync.RWMutex
	data map[string]T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{data: make(map[string]T)}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[id] = value
	return nil
}

func (s *MemoryStore[T]) List(_ context.Context) (map[string]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]T, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, id)
	return nil
}
