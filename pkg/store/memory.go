package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps analyses in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Analysis
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Analysis)}
}

func (s *MemoryStore) Save(_ context.Context, a *Analysis) error {
	if err := ValidateID(a.ID); err != nil {
		return err
	}
	cp := *a
	s.mu.Lock()
	s.items[a.ID] = &cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Analysis, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *a
	return &cp, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]*Analysis, error) {
	s.mu.RLock()
	out := make([]*Analysis, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, a.Summary())
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return notFound(id)
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

// sortNewestFirst orders by creation time, breaking ties by id so listings
// are stable.
func sortNewestFirst(items []*Analysis) {
	slices.SortFunc(items, func(a, b *Analysis) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

var _ Store = (*MemoryStore)(nil)
