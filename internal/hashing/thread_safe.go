package hashing

import (
	"sync"
)

// ThreadSafePositionSet wraps PositionSet with mutex protection for concurrent access.
type ThreadSafePositionSet struct {
	set *PositionSet
	mu  sync.RWMutex
}

// NewThreadSafePositionSet creates an empty thread-safe set.
func NewThreadSafePositionSet() *ThreadSafePositionSet {
	return &ThreadSafePositionSet{set: NewPositionSet()}
}

// Add atomically checks whether hash is present and records it.
func (s *ThreadSafePositionSet) Add(hash uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Add(hash)
}

// DuplicateCount returns how many Add calls found their hash present.
func (s *ThreadSafePositionSet) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.DuplicateCount()
}

// UniqueCount returns the number of distinct hashes stored.
func (s *ThreadSafePositionSet) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.UniqueCount()
}
