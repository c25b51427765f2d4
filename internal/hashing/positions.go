package hashing

// PositionSet records distinct positions by hash.
type PositionSet struct {
	// seen maps a hash to the number of times it was added
	seen           map[uint64]int
	duplicateCount int
}

// NewPositionSet creates an empty set.
func NewPositionSet() *PositionSet {
	return &PositionSet{seen: make(map[uint64]int)}
}

// Add records hash and returns true if it was already present.
func (s *PositionSet) Add(hash uint64) bool {
	s.seen[hash]++
	if s.seen[hash] > 1 {
		s.duplicateCount++
		return true
	}
	return false
}

// DuplicateCount returns how many Add calls found their hash present.
func (s *PositionSet) DuplicateCount() int {
	return s.duplicateCount
}

// UniqueCount returns the number of distinct hashes stored.
func (s *PositionSet) UniqueCount() int {
	return len(s.seen)
}
