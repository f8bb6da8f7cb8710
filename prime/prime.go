// Package prime tests numbers for primality with Miller-Rabin, drawing its
// witnesses from a Lehmer state.
package prime

import (
	"math/bits"

	"github.com/tutils/lehmer"
)

// Source steps a generator once per call.
type Source interface {
	Apply(kind lehmer.Kind) int32
}

var _ Source = (*lehmer.State)(nil)
var _ Source = (*lehmer.SyncState)(nil)

// ModularExponent returns base^exponent mod modulus by square and multiply.
// Products are formed in 128 bits. A modulus of 0 yields 0.
func ModularExponent(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		return 0
	}
	result := uint64(1) % modulus
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulmod(result, base, modulus)
		}
		exponent >>= 1
		base = mulmod(base, base, modulus)
	}
	return result
}

func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// IsProbablyPrime runs k Miller-Rabin rounds on n. Each round steps src
// once to pick a witness in [2, n-2]. A composite n passes with probability
// at most 4^-k. k < 1 runs a single round.
func IsProbablyPrime(src Source, n uint64, k int) bool {
	if n <= 1 || (n > 2 && n%2 == 0) {
		return false
	}
	if n < 4 {
		return true
	}
	if k < 1 {
		k = 1
	}

	// n-1 = 2^s * d
	d, s := n-1, 0
	for d%2 == 0 {
		d >>= 1
		s++
	}

	for i := 0; i < k; i++ {
		a := 2 + uint64(src.Apply(lehmer.Direct))%(n-3)
		if witness(a, d, s, n) {
			return false
		}
	}
	return true
}

// witness reports whether a proves n composite.
func witness(a, d uint64, s int, n uint64) bool {
	x := ModularExponent(a, d, n)
	if x == 1 || x == n-1 {
		return false
	}
	for r := 1; r < s; r++ {
		x = mulmod(x, x, n)
		if x == n-1 {
			return false
		}
		if x == 1 {
			return true
		}
	}
	return true
}
