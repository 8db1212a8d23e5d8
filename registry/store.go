package registry

import (
	"context"
	"sync"
)

// BuildFunc produces a fresh Registry snapshot.
type BuildFunc func(ctx context.Context) (*Registry, error)

// Store holds the current Registry snapshot for long-lived sessions. A
// refresh builds a brand-new snapshot and swaps it in atomically; callers
// must take one snapshot via Current at the start of an operation and use
// it throughout, never re-query mid-operation.
type Store struct {
	mu      sync.RWMutex
	build   BuildFunc
	current *Registry
}

// NewStore creates a store that refreshes through build. The store starts
// empty; call Refresh before the first Current.
func NewStore(build BuildFunc) *Store {
	return &Store{build: build}
}

// Refresh builds a new snapshot and replaces the current one. On build
// failure the previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	r, err := s.build(ctx)
	if err != nil {
		return err
	}
	s.Replace(r)
	return nil
}

// Replace swaps in a snapshot built elsewhere.
func (s *Store) Replace(r *Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = r
}

// Current returns the current snapshot, or nil before the first refresh.
func (s *Store) Current() *Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
