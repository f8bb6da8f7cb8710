package main

import (
	"testing"

	"github.com/tutils/lehmer"
)

func TestRegistry(t *testing.T) {
	r := &registry{states: make(map[uintptr]*lehmer.State)}
	st, err := lehmer.New(2, lehmer.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	h := r.add(st)
	if h == 0 || r.get(h) != st {
		t.Fatal("handle", h)
	}
	r.remove(h).Free()
	// a second free finds nothing and Free on nil is a no-op
	r.remove(h).Free()
	r.remove(0).Free()
	if r.get(h) != nil {
		t.Fatal("handle still live")
	}
}
