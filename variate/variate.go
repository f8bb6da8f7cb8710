// Package variate draws Bernoulli and Binomial variates from a Lehmer state.
//
// Bernoulli succeeds when the normalized draw u satisfies u < p. This is the
// only convention exposed: larger p means more successes.
package variate

import (
	"math"

	"github.com/tutils/lehmer"
)

// Source yields one normalized value per generator step.
type Source interface {
	Random(kind lehmer.Kind) float64
}

var _ Source = (*lehmer.State)(nil)
var _ Source = (*lehmer.SyncState)(nil)

// Bernoulli returns 1 with probability p and 0 otherwise. A p <= 0 (or NaN)
// returns 0 and a p >= 1 returns 1, and neither steps the generator.
// Any other p consumes exactly one Direct step.
func Bernoulli(src Source, p float64) int {
	if p <= 0 || math.IsNaN(p) {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return bernoulli(src, p)
}

func bernoulli(src Source, p float64) int {
	if src.Random(lehmer.Direct) < p {
		return 1
	}
	return 0
}

// Binomial returns the number of successes in n Bernoulli(p) trials. The
// guards of Bernoulli apply up front, so degenerate p or n == 0 consume no
// steps. Any other input consumes exactly n steps.
func Binomial(src Source, n uint32, p float64) uint32 {
	if p <= 0 || math.IsNaN(p) || n == 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	var count uint32
	for i := uint32(0); i < n; i++ {
		count += uint32(bernoulli(src, p))
	}
	return count
}
