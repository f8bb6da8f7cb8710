// Package lehmer implements the Lehmer linear congruential generator
// f(z) = a*z mod m over the Mersenne prime m = 2^31 - 1.
//
// A State holds N lanes of generator state plus the selector of the active
// lane. Every lane value is kept in [0, m). The sequence is fully
// predictable from the seed, so it must not be used for cryptography.
package lehmer

const (
	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus int32 = 2147483647

	// Multiplier is the primitive root used for output sequences.
	Multiplier int32 = 48271

	// MinimalMultiplier is the original Park-Miller multiplier.
	MinimalMultiplier int32 = 16807

	// JumpMultiplier separates lanes from one another.
	JumpMultiplier int32 = 22937

	// Quotient and Remainder are Schrage's q = m / a and r = m mod a.
	Quotient  = Modulus / Multiplier
	Remainder = Modulus % Multiplier

	// DefaultSize is used when a state is created with size 0.
	DefaultSize = 256

	// DefaultSeed is the reference seed.
	DefaultSeed int64 = 123456789

	// MaxSize bounds the lane array of a single state.
	MaxSize = 1 << 26
)
