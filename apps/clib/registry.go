package main

import (
	"sync"

	"github.com/tutils/lehmer"
)

// registry maps the opaque handles given to C onto states. Handle 0 is
// never issued.
type registry struct {
	mu     sync.Mutex
	next   uintptr
	states map[uintptr]*lehmer.State
}

var states = &registry{states: make(map[uintptr]*lehmer.State)}

func (r *registry) add(st *lehmer.State) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.states[r.next] = st
	return r.next
}

func (r *registry) get(h uintptr) *lehmer.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[h]
}

// remove forgets h and returns its state, or nil when h is unknown.
func (r *registry) remove(h uintptr) *lehmer.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.states[h]
	delete(r.states, h)
	return st
}
