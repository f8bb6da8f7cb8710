package main

/*
#include <stdint.h>
*/
import "C"
import (
	"os"
	"unsafe"

	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/cmd"
	"github.com/tutils/lehmer/logger"
	"github.com/tutils/lehmer/prime"
	"github.com/tutils/lehmer/variate"
)

//export RunCmd
func RunCmd(cargs **C.char, size C.int) {
	args := os.Args[:1]
	ptr := unsafe.Pointer(cargs)
	for i := 0; i < int(size); i++ {
		cStrPtr := (**C.char)(unsafe.Pointer(uintptr(ptr) + uintptr(i)*unsafe.Sizeof(uintptr(0))))
		args = append(args, C.GoString(*cStrPtr))
	}
	os.Args = args
	cmd.Execute()
}

// lehmer_state_create returns 0 when the state cannot be allocated.
//
//export lehmer_state_create
func lehmer_state_create(size C.uint32_t, seed C.int64_t) C.uintptr_t {
	st, err := lehmer.New(int(size), int64(seed), lehmer.WithLogger(*logger.Log()))
	if err != nil {
		logger.Log().Error().Err(err).Msg("lehmer_state_create")
		return 0
	}
	return C.uintptr_t(states.add(st))
}

//export lehmer_state_free
func lehmer_state_free(h C.uintptr_t) {
	states.remove(uintptr(h)).Free()
}

//export lehmer_seed_select
func lehmer_seed_select(h C.uintptr_t, index C.uint32_t) {
	if st := states.get(uintptr(h)); st != nil {
		st.Select(int(index))
	}
}

//export lehmer_seed_get
func lehmer_seed_get(h C.uintptr_t) C.int32_t {
	if st := states.get(uintptr(h)); st != nil {
		return C.int32_t(st.Value())
	}
	return 0
}

//export lehmer_seed_set
func lehmer_seed_set(h C.uintptr_t, value C.int64_t) {
	if st := states.get(uintptr(h)); st != nil {
		st.SetValue(int64(value))
	}
}

// lehmer_apply takes 0 direct, 1 gamma, 2 delta, 3 jump.
//
//export lehmer_apply
func lehmer_apply(h C.uintptr_t, kind C.int) C.int32_t {
	if st := states.get(uintptr(h)); st != nil {
		return C.int32_t(st.Apply(lehmer.Kind(kind)))
	}
	return 0
}

//export lehmer_normalize_to_float
func lehmer_normalize_to_float(value C.int32_t) C.double {
	return C.double(lehmer.Normalize(int32(value)))
}

//export lehmer_normalize_to_int
func lehmer_normalize_to_int(value C.int64_t, modulus C.int64_t) C.int64_t {
	return C.int64_t(lehmer.Bind(int64(value), int64(modulus)))
}

//export lehmer_generate
func lehmer_generate(h C.uintptr_t, kind C.int, seed C.int64_t) {
	if st := states.get(uintptr(h)); st != nil {
		st.Generate(lehmer.Kind(kind), int64(seed))
	}
}

//export lehmer_seed_all
func lehmer_seed_all(h C.uintptr_t, value C.int64_t) {
	if st := states.get(uintptr(h)); st != nil {
		st.SeedAll(int64(value))
	}
}

//export lehmer_bernoulli
func lehmer_bernoulli(h C.uintptr_t, p C.double) C.int {
	if st := states.get(uintptr(h)); st != nil {
		return C.int(variate.Bernoulli(st, float64(p)))
	}
	return 0
}

//export lehmer_binomial
func lehmer_binomial(h C.uintptr_t, n C.uint32_t, p C.double) C.uint32_t {
	if st := states.get(uintptr(h)); st != nil {
		return C.uint32_t(variate.Binomial(st, uint32(n), float64(p)))
	}
	return 0
}

// prime_miller_rabin returns 1 for probably prime and 0 otherwise.
//
//export prime_miller_rabin
func prime_miller_rabin(h C.uintptr_t, n C.uint64_t, k C.int) C.int {
	st := states.get(uintptr(h))
	if st == nil || !prime.IsProbablyPrime(st, uint64(n), int(k)) {
		return 0
	}
	return 1
}

func main() {}
