package variate

import (
	"math"
	"testing"

	"github.com/tutils/lehmer"
)

// countingSource records how many steps were drawn.
type countingSource struct {
	s     *lehmer.State
	steps int
}

func (c *countingSource) Random(kind lehmer.Kind) float64 {
	c.steps++
	return c.s.Random(kind)
}

func newSource(t *testing.T) *countingSource {
	t.Helper()
	s, err := lehmer.New(1, lehmer.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	return &countingSource{s: s}
}

func TestBernoulliBoundary(t *testing.T) {
	src := newSource(t)
	before := src.s.Value()
	for _, p := range []float64{0, -0.5, math.Inf(-1), math.NaN()} {
		if Bernoulli(src, p) != 0 {
			t.Fatalf("p=%v should fail", p)
		}
	}
	for _, p := range []float64{1, 1.5, math.Inf(1)} {
		if Bernoulli(src, p) != 1 {
			t.Fatalf("p=%v should succeed", p)
		}
	}
	if src.steps != 0 || src.s.Value() != before {
		t.Fatal("guards consumed steps:", src.steps)
	}
}

func TestBernoulliConvention(t *testing.T) {
	// first draw from the reference seed is 115541394 / m ~ 0.0538
	src := newSource(t)
	if Bernoulli(src, 0.06) != 1 {
		t.Fatal("u < p should succeed")
	}
	src = newSource(t)
	if Bernoulli(src, 0.05) != 0 {
		t.Fatal("u >= p should fail")
	}
	if src.steps != 1 {
		t.Fatal("expected one step, got", src.steps)
	}
}

func TestBernoulliFrequency(t *testing.T) {
	src := newSource(t)
	const n = 100000
	hits := 0
	for i := 0; i < n; i++ {
		hits += Bernoulli(src, 0.25)
	}
	if f := float64(hits) / n; math.Abs(f-0.25) > 0.01 {
		t.Fatal("frequency:", f)
	}
}

func TestBinomialBoundary(t *testing.T) {
	src := newSource(t)
	if Binomial(src, 0, 0.5) != 0 {
		t.Fatal("n=0")
	}
	if Binomial(src, 5, 1.0) != 5 {
		t.Fatal("p=1")
	}
	if Binomial(src, 5, 0) != 0 {
		t.Fatal("p=0")
	}
	if src.steps != 0 {
		t.Fatal("guards consumed steps:", src.steps)
	}
}

func TestBinomialSteps(t *testing.T) {
	src := newSource(t)
	k := Binomial(src, 10, 0.5)
	if k > 10 {
		t.Fatal("count out of range:", k)
	}
	if src.steps != 10 {
		t.Fatal("expected 10 steps, got", src.steps)
	}

	// same draws as ten Bernoulli calls on a fresh state
	ref := newSource(t)
	var want uint32
	for i := 0; i < 10; i++ {
		want += uint32(Bernoulli(ref, 0.5))
	}
	if k != want {
		t.Fatalf("binomial %d, bernoulli sum %d", k, want)
	}
}

func TestBinomialMean(t *testing.T) {
	src := newSource(t)
	const trials = 2000
	var sum uint32
	for i := 0; i < trials; i++ {
		sum += Binomial(src, 20, 0.3)
	}
	if mean := float64(sum) / trials; math.Abs(mean-6) > 0.2 {
		t.Fatal("mean:", mean)
	}
}
