// Package store provides the in-memory keyed collections backing the
// services. Absence is represented with a boolean, never an error, and every
// store guards its map with a single lock so service calls stay atomic under
// concurrent callers.
package store

import "sync"

// Store is a generic keyed collection. The key function derives the
// identifier from the entity itself, so Save is always an upsert.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	key   func(T) string
}

// New creates an empty store keyed by the given function.
func New[T any](key func(T) string) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		key:   key,
	}
}

// FindByID returns the entity with the given identifier, if present.
func (s *Store[T]) FindByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// Search returns all entities matching the predicate, in no particular order.
func (s *Store[T]) Search(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []T
	for _, item := range s.items {
		if match(item) {
			results = append(results, item)
		}
	}
	return results
}

// All returns every stored entity.
func (s *Store[T]) All() []T {
	return s.Search(func(T) bool { return true })
}

// Save inserts or overwrites the entity under its own identifier.
func (s *Store[T]) Save(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.key(item)] = item
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
