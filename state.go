package lehmer

import (
	"github.com/pkg/errors"
)

// State is a set of independently advanced lanes and the selector of the
// active one. It is not safe for concurrent use; see SyncState.
type State struct {
	lanes []int32
	index int
	opts  Options
}

// New creates a state of size lanes. Lane 0 holds the bound seed and every
// following lane is the seeder transition of its predecessor. A size <= 0
// means DefaultSize.
//
// A seed of 0 is accepted and yields an all zero state.
func New(size int, seed int64, opts ...Option) (*State, error) {
	opt := newOptions(opts...)
	if size <= 0 {
		opt.log.Debug().Int("size", size).Int("default", DefaultSize).Msg("coerce state size")
		size = DefaultSize
	}
	if size > MaxSize {
		return nil, errors.Wrapf(ErrAllocation, "size %d exceeds %d", size, MaxSize)
	}

	s := &State{
		lanes: make([]int32, size),
		opts:  *opt,
	}
	s.chain(BindSeed(seed))
	return s, nil
}

// chain writes root into lane 0 and derives the rest from it.
func (s *State) chain(root int32) {
	s.lanes[0] = root
	for i := 1; i < len(s.lanes); i++ {
		s.lanes[i] = s.opts.seeder.Apply(s.lanes[i-1])
	}
}

// Free releases the lanes. Calling it on a nil or freed state is a no-op.
// A freed state must not be used again.
func (s *State) Free() {
	if s == nil {
		return
	}
	s.lanes = nil
	s.index = 0
}

// Size returns the number of lanes.
func (s *State) Size() int {
	return len(s.lanes)
}

// Index returns the active lane.
func (s *State) Index() int {
	return s.index
}

// Select makes lane index mod Size active. It never steps a lane.
func (s *State) Select(index int) {
	s.index = int(Bind(int64(index), int64(len(s.lanes))))
}

// Value returns the raw value of the active lane.
func (s *State) Value() int32 {
	return s.lanes[s.index]
}

// SetValue stores v, bound into [0, m), in the active lane.
func (s *State) SetValue(v int64) {
	s.lanes[s.index] = BindSeed(v)
}

// Lanes returns a copy of every lane.
func (s *State) Lanes() []int32 {
	lanes := make([]int32, len(s.lanes))
	copy(lanes, s.lanes)
	return lanes
}

// Apply steps the active lane once and returns its new value.
func (s *State) Apply(kind Kind) int32 {
	v := kind.Apply(s.lanes[s.index])
	s.lanes[s.index] = v
	return v
}

// Float normalizes the active lane without stepping it.
func (s *State) Float() float64 {
	return Normalize(s.Value())
}

// Random steps the active lane once and normalizes the result.
func (s *State) Random(kind Kind) float64 {
	return Normalize(s.Apply(kind))
}

// SeedAll re-derives every lane from seed the same way New does and keeps
// the active lane.
func (s *State) SeedAll(seed int64) {
	index := s.index
	s.Select(0)
	s.chain(BindSeed(seed))
	s.Select(index)
	s.opts.log.Debug().Int64("seed", seed).Int("lane", index).Msg("reseed lanes")
}
