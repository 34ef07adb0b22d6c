package material

import (
	"sort"
	"sync"
)

// Store is the process-wide material asset table mapping handles to data
// Thread-Safety: all methods lock internally; Range holds the write lock
// for its full duration so in-place propagation is atomic
type Store struct {
	mu    sync.RWMutex
	next  Handle
	items map[Handle]Material
}

// NewStore creates an empty material store
func NewStore() *Store {
	return &Store{
		next:  1,
		items: make(map[Handle]Material),
	}
}

// Add inserts a material and returns its fresh handle
// Every call produces a distinct slot, even for identical data
func (s *Store) Add(m Material) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.next
	s.next++
	s.items[h] = m
	return h
}

// Get retrieves the material for a handle
func (s *Store) Get(h Handle) (Material, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.items[h]
	return m, ok
}

// Has reports whether the handle resolves to an entry
func (s *Store) Has(h Handle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[h]
	return ok
}

// Mutate applies fn to the entry in place, returns false if absent
// The handle stays stable; only the data changes
func (s *Store) Mutate(h Handle, fn func(*Material)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[h]
	if !ok {
		return false
	}
	fn(&m)
	s.items[h] = m
	return true
}

// Range iterates all entries in ascending handle order
// Mutations through the pointer are written back; the whole walk runs
// under one lock so readers never observe a half-propagated store
func (s *Store) Range(fn func(h Handle, m *Material)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return
	}

	handles := make([]Handle, 0, len(s.items))
	for h := range s.items {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		m := s.items[h]
		fn(h, &m)
		s.items[h] = m
	}
}

// Remove deletes an entry; orphaned entries are otherwise kept forever
// (no compaction), callers use this only in teardown paths
func (s *Store) Remove(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, h)
}

// Len returns the number of stored materials
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
