package lehmer

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a single lane to math/rand.
type Source struct {
	state *State
}

// NewSource returns a rand.Source stepped with the Gamma transition.
// Zero is an absorbing state: a source seeded with 0 (or any multiple of
// Modulus) returns 0 forever.
func NewSource(seed int64) rand.Source {
	s, _ := New(1, seed)
	return &Source{state: s}
}

// Seed implements rand.Source. The seed is bound into [0, Modulus), so the
// zero caveat of NewSource applies here too.
func (l *Source) Seed(seed int64) {
	l.state.SetValue(seed)
}

// Uint64 implements rand.Source64. Three draws fill 31, 31 and 2 bits.
func (l *Source) Uint64() uint64 {
	hi := uint64(l.state.Apply(Gamma))
	mid := uint64(l.state.Apply(Gamma))
	lo := uint64(l.state.Apply(Gamma))
	return hi<<33 | mid<<2 | lo&3
}

// Int63 implements rand.Source.
func (l *Source) Int63() int64 {
	return int64(l.Uint64() >> 1)
}
