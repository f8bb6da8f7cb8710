package lehmer

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func newState(t *testing.T, size int, seed int64, opts ...Option) *State {
	t.Helper()
	s, err := New(size, seed, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewChainsLanes(t *testing.T) {
	s := newState(t, 11, DefaultSeed)
	lanes := s.Lanes()
	if lanes[0] != int32(DefaultSeed) {
		t.Fatal("lane 0:", lanes[0])
	}
	for i, want := range referenceVector {
		if lanes[i+1] != want {
			t.Fatalf("lane %d: got %d, want %d", i+1, lanes[i+1], want)
		}
	}
}

func TestNewSize(t *testing.T) {
	if s := newState(t, 0, 1); s.Size() != DefaultSize {
		t.Fatal("size 0 ->", s.Size())
	}
	if s := newState(t, -3, 1); s.Size() != DefaultSize {
		t.Fatal("size -3 ->", s.Size())
	}
	if s := newState(t, 1, 1); s.Size() != 1 {
		t.Fatal("size 1 ->", s.Size())
	}
	s, err := New(MaxSize+1, 1)
	if s != nil || errors.Cause(err) != ErrAllocation {
		t.Fatal("expected ErrAllocation, got", err)
	}
}

func TestNewBindsSeed(t *testing.T) {
	cases := []struct {
		seed int64
		want int32
	}{
		{0, 0},
		{int64(Modulus), 0},
		{int64(Modulus) + 5, 5},
		{-1, Modulus - 1},
		{-int64(Modulus) - 2, Modulus - 2},
		{math.MinInt64, BindSeed(math.MinInt64)},
	}
	for _, c := range cases {
		s := newState(t, 2, c.seed)
		if s.Value() != c.want {
			t.Fatalf("seed %d: got %d, want %d", c.seed, s.Value(), c.want)
		}
		if s.Value() < 0 || s.Value() >= Modulus {
			t.Fatalf("seed %d: lane out of range", c.seed)
		}
	}
}

func TestZeroSeed(t *testing.T) {
	s := newState(t, 8, 0)
	for _, v := range s.Lanes() {
		if v != 0 {
			t.Fatal("zero seed should stay degenerate:", s.Lanes())
		}
	}
	if s.Apply(Direct) != 0 {
		t.Fatal("zero is absorbing")
	}
}

func TestSeeder(t *testing.T) {
	s := newState(t, 3, DefaultSeed, WithSeeder(Jump))
	lanes := s.Lanes()
	if lanes[1] != JumpOf(lanes[0]) || lanes[2] != JumpOf(lanes[1]) {
		t.Fatal("jump seeder:", lanes)
	}
}

func TestDeterminism(t *testing.T) {
	kinds := []Kind{Direct, Gamma, Jump, Delta, Direct, Gamma}
	for _, seed := range []int64{1, 42, DefaultSeed, -99} {
		a := newState(t, 16, seed)
		b := newState(t, 16, seed)
		for i := 0; i < 1000; i++ {
			lane := i * 7
			a.Select(lane)
			b.Select(lane)
			k := kinds[i%len(kinds)]
			if a.Apply(k) != b.Apply(k) {
				t.Fatalf("seed %d step %d diverged", seed, i)
			}
		}
		for i, v := range a.Lanes() {
			if v != b.Lanes()[i] {
				t.Fatalf("seed %d lane %d diverged", seed, i)
			}
		}
	}
}

func TestRangeInvariant(t *testing.T) {
	s := newState(t, 4, 987654321)
	for i := 0; i < 100000; i++ {
		s.Select(i)
		f := s.Random(Kind(i % 4))
		v := s.Value()
		if v < 0 || v >= Modulus {
			t.Fatal("lane out of range:", v)
		}
		if f < 0 || f >= 1 {
			t.Fatal("float out of range:", f)
		}
	}
}

func TestSelectModulo(t *testing.T) {
	s := newState(t, 5, DefaultSeed)
	for k := 0; k < 5; k++ {
		s.Select(k)
		want := s.Value()
		for _, n := range []int{-3, -1, 1, 2, 1000} {
			s.Select(k + n*s.Size())
			if s.Index() != k || s.Value() != want {
				t.Fatalf("select %d+%d*5: index %d", k, n, s.Index())
			}
		}
	}
	lanes := s.Lanes()
	s.Select(3)
	for i, v := range s.Lanes() {
		if v != lanes[i] {
			t.Fatal("select stepped a lane")
		}
	}
}

func TestValue(t *testing.T) {
	s := newState(t, 3, DefaultSeed)
	s.Select(2)
	s.SetValue(-1)
	if s.Value() != Modulus-1 {
		t.Fatal("set -1:", s.Value())
	}
	s.SetValue(int64(Modulus) * 3)
	if s.Value() != 0 {
		t.Fatal("set 3m:", s.Value())
	}
	s.SetValue(7)
	before := s.Value()
	if s.Float() != Normalize(before) || s.Value() != before {
		t.Fatal("float must not step")
	}
	if got := s.Apply(Gamma); got != GammaOf(7) || s.Value() != got {
		t.Fatal("apply:", got)
	}
	if s.Lanes()[0] != int32(DefaultSeed) {
		t.Fatal("apply touched an inactive lane")
	}
}

func TestSeedAll(t *testing.T) {
	s := newState(t, 6, 1)
	s.Select(4)
	s.Apply(Direct)
	s.SeedAll(DefaultSeed)
	if s.Index() != 4 {
		t.Fatal("selector lost:", s.Index())
	}
	ref := newState(t, 6, DefaultSeed)
	for i, v := range s.Lanes() {
		if v != ref.Lanes()[i] {
			t.Fatalf("lane %d: got %d, want %d", i, v, ref.Lanes()[i])
		}
	}
}

func TestFree(t *testing.T) {
	var nilState *State
	nilState.Free()

	s := newState(t, 4, 1)
	s.Free()
	s.Free()
	if s.Size() != 0 {
		t.Fatal("lanes not released")
	}
}

func TestGenerate(t *testing.T) {
	s := newState(t, 10, 1)
	s.Select(3)
	s.Generate(Direct, DefaultSeed)
	for i, v := range s.Lanes() {
		if v != referenceVector[i] {
			t.Fatalf("slot %d: got %d, want %d", i, v, referenceVector[i])
		}
	}
	if s.Index() != 3 {
		t.Fatal("generate moved the selector")
	}

	g := newState(t, 10, 1)
	g.Generate(Gamma, DefaultSeed)
	for i, v := range g.Lanes() {
		if v != referenceVector[i] {
			t.Fatal("gamma sequence differs at", i)
		}
	}
}

func TestGenerateFromTime(t *testing.T) {
	s := newState(t, 4, 1, WithClock(func() int64 { return DefaultSeed }))
	s.GenerateFromTime(Direct)
	if s.Lanes()[0] != referenceVector[0] {
		t.Fatal("clock seed not used:", s.Lanes())
	}
}

func TestRegenerate(t *testing.T) {
	s := newState(t, 10, 1)
	s.Generate(Direct, DefaultSeed)
	s.Select(4)
	seed := s.Value()
	s.Regenerate(Direct)
	want := Modulo(seed)
	if s.Lanes()[0] != want {
		t.Fatalf("regenerate from lane 4: got %d, want %d", s.Lanes()[0], want)
	}
	// lane 4 held the 5th reference value, so the new sequence continues it
	if s.Lanes()[0] != referenceVector[5] {
		t.Fatal("jump did not continue the sequence")
	}
}

func TestNextPrevious(t *testing.T) {
	s := newState(t, 3, 1)
	s.Previous()
	if s.Index() != 2 {
		t.Fatal("previous from 0:", s.Index())
	}
	s.Next()
	if s.Index() != 0 {
		t.Fatal("next from 2:", s.Index())
	}
	for i := 0; i < 7; i++ {
		s.Next()
	}
	if s.Index() != 1 {
		t.Fatal("next x7:", s.Index())
	}
}

func TestBind(t *testing.T) {
	cases := []struct{ v, m, want int64 }{
		{5, 3, 2},
		{-5, 3, 1},
		{-3, 3, 0},
		{0, 7, 0},
		{9, 0, 0},
		{9, -4, 0},
	}
	for _, c := range cases {
		if got := Bind(c.v, c.m); got != c.want {
			t.Fatalf("Bind(%d, %d) = %d, want %d", c.v, c.m, got, c.want)
		}
	}
	if Normalize(0) != 0 || Normalize(Modulus-1) >= 1 {
		t.Fatal("normalize range")
	}
}

func TestSource(t *testing.T) {
	a := rand.New(NewSource(DefaultSeed))
	b := rand.New(NewSource(DefaultSeed))
	for i := 0; i < 100; i++ {
		x, y := a.Int63(), b.Int63()
		if x != y || x < 0 {
			t.Fatal("source:", x, y)
		}
	}
	src := NewSource(1)
	first := src.Int63()
	src.Seed(1)
	if src.Int63() != first {
		t.Fatal("reseed")
	}
	src.Seed(DefaultSeed)
	want := uint64(referenceVector[0])<<33 | uint64(referenceVector[1])<<2 | uint64(referenceVector[2])&3
	if src.Int63() != int64(want>>1) {
		t.Fatal("source layout")
	}
	src.Seed(DefaultSeed)
	if src.(rand.Source64).Uint64() != want {
		t.Fatal("uint64 layout")
	}
}

func TestSourceCoversFullRange(t *testing.T) {
	r := rand.New(NewSource(DefaultSeed))
	var high, topBit bool
	for i := 0; i < 1000 && !(high && topBit); i++ {
		if r.Float64() >= 0.5 {
			high = true
		}
		if r.Int63()&(1<<62) != 0 {
			topBit = true
		}
	}
	if !high || !topBit {
		t.Fatal("upper half never reached:", high, topBit)
	}
}

func TestSourceZeroSeed(t *testing.T) {
	src := NewSource(int64(Modulus))
	for i := 0; i < 10; i++ {
		if v := src.Int63(); v != 0 {
			t.Fatal("zero seed should stay at 0:", v)
		}
	}
}

func TestSyncState(t *testing.T) {
	s := NewSyncState(newState(t, 4, DefaultSeed))
	var wg sync.WaitGroup
	for lane := 0; lane < 4; lane++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Apply(Direct)
			}
		}()
	}
	wg.Wait()

	ref := newState(t, 1, DefaultSeed)
	for i := 0; i < 4000; i++ {
		ref.Apply(Direct)
	}
	if s.Value() != ref.Value() {
		t.Fatal("lost updates:", s.Value(), ref.Value())
	}
	s.Do(func(st *State) {
		st.Select(1)
	})
	if s.Value() != referenceVector[0] {
		t.Fatal("do")
	}
}
