// Package sequence provides the mutable sequence of magnitudes that a sort
// run operates on, with tear-free snapshots for concurrent readers.
package sequence

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

const (
	// MinLength and MaxLength bound the sequence length.
	MinLength = 10
	MaxLength = 300

	// MinValue and MaxValue bound the generated magnitudes.
	MinValue = 10
	MaxValue = 489
)

// ErrIndexOutOfRange is returned when an element access is outside [0, Len).
// It indicates a bug in the calling algorithm, not a user error.
var ErrIndexOutOfRange = errors.New("index out of range")

// Store owns a fixed-length sequence of non-negative integers. All element
// access goes through Read/Write/Swap so that a Snapshot taken from another
// goroutine never observes a partially applied swap.
type Store struct {
	mu     sync.RWMutex
	values []int
}

// New creates a store holding a copy of the given values.
func New(values []int) *Store {
	v := make([]int, len(values))
	copy(v, values)
	return &Store{values: v}
}

// NewRandom creates a store with n random magnitudes in [MinValue, MaxValue].
func NewRandom(n int) *Store {
	return New(RandomValues(n))
}

// RandomValues generates n magnitudes in [MinValue, MaxValue].
func RandomValues(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = MinValue + rand.Intn(MaxValue-MinValue+1)
	}
	return v
}

// Len returns the sequence length.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Read returns the element at index i.
func (s *Store) Read(i int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("%w: read %d (len %d)", ErrIndexOutOfRange, i, len(s.values))
	}
	return s.values[i], nil
}

// Write sets the element at index i to v.
func (s *Store) Write(i, v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("%w: write %d (len %d)", ErrIndexOutOfRange, i, len(s.values))
	}
	s.values[i] = v
	return nil
}

// Swap exchanges the elements at i and j. Both writes happen under one
// critical section, so snapshots see either both or neither.
func (s *Store) Swap(i, j int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.values)
	if i < 0 || i >= n {
		return fmt.Errorf("%w: swap %d (len %d)", ErrIndexOutOfRange, i, n)
	}
	if j < 0 || j >= n {
		return fmt.Errorf("%w: swap %d (len %d)", ErrIndexOutOfRange, j, n)
	}
	s.values[i], s.values[j] = s.values[j], s.values[i]
	return nil
}

// Snapshot returns an immutable copy of the sequence for rendering.
func (s *Store) Snapshot() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// Replace swaps in a whole new sequence. Only the run controller calls this,
// and only while no run is active.
func (s *Store) Replace(values []int) {
	v := make([]int, len(values))
	copy(v, values)
	s.mu.Lock()
	s.values = v
	s.mu.Unlock()
}
