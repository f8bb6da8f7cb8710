package lehmer

// Generate fills the lanes from seed using kind: lane 0 holds kind applied
// to the bound seed, not the seed itself, and lane i is kind applied to
// lane i-1. The selector is left unchanged.
func (s *State) Generate(kind Kind, seed int64) {
	s.lanes[0] = kind.Apply(BindSeed(seed))
	for i := 1; i < len(s.lanes); i++ {
		s.lanes[i] = kind.Apply(s.lanes[i-1])
	}
}

// GenerateFromTime is Generate seeded from the wall clock. The result is
// not reproducible.
func (s *State) GenerateFromTime(kind Kind) {
	seed := s.opts.clock()
	s.opts.log.Debug().Int64("seed", seed).Str("kind", kind.String()).Msg("seed from clock")
	s.Generate(kind, seed)
}

// Regenerate calls Generate seeded with the value of the active lane.
func (s *State) Regenerate(kind Kind) {
	s.Generate(kind, int64(s.Value()))
}

// Next moves the selector forward, wrapping at Size.
func (s *State) Next() {
	s.index = (s.index + 1) % len(s.lanes)
}

// Previous moves the selector back, wrapping at 0.
func (s *State) Previous() {
	n := len(s.lanes)
	s.index = (s.index - 1 + n) % n
}
