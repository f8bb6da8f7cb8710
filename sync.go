package lehmer

import "sync"

// SyncState is concurrency safe State
type SyncState struct {
	s  *State
	mu sync.Mutex
}

// NewSyncState wraps s. s must not be used directly afterwards.
func NewSyncState(s *State) *SyncState {
	return &SyncState{s: s}
}

// Apply steps the active lane under the lock.
func (s *SyncState) Apply(kind Kind) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Apply(kind)
}

// Random steps the active lane and returns it normalized.
func (s *SyncState) Random(kind Kind) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Random(kind)
}

// Select moves the selector to index modulo the size.
func (s *SyncState) Select(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Select(index)
}

// Value returns the active lane.
func (s *SyncState) Value() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Value()
}

// Float normalizes the active lane without stepping.
func (s *SyncState) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Float()
}

// Do runs f with exclusive access to the wrapped state.
func (s *SyncState) Do(f func(s *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.s)
}
