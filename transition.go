package lehmer

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind selects the formula used to compute the next lane value.
type Kind int

const (
	// Direct computes (a * z) mod m with a 64-bit intermediate.
	Direct Kind = iota
	// Gamma computes the same value with Schrage's decomposition.
	Gamma
	// Delta recombines gamma with its correction term. Experimental.
	Delta
	// Jump is Gamma with the jump multiplier.
	Jump
)

var kindNames = map[Kind]string{
	Direct: "direct",
	Gamma:  "gamma",
	Delta:  "delta",
	Jump:   "jump",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a transition name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "modulo", "":
		return Direct, nil
	case "gamma", "schrage":
		return Gamma, nil
	case "delta":
		return Delta, nil
	case "jump":
		return Jump, nil
	}
	return Direct, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Apply returns the successor of z. Unknown kinds behave like Direct.
func (k Kind) Apply(z int32) int32 {
	switch k {
	case Gamma:
		return GammaOf(z)
	case Delta:
		return composeDelta(z)
	case Jump:
		return JumpOf(z)
	}
	return Modulo(z)
}

// Multiply returns (a * z) mod m. The product is formed in 64 bits.
// Zero maps to zero.
func Multiply(z, a int32) int32 {
	p := int64(a) * int64(BindSeed(int64(z)))
	return BindSeed(p)
}

// Schrage returns (a * z) mod m without a double width product:
//
//	gamma(z) = a * (z mod q) - r * (z / q), plus m if negative
//
// The decomposition needs r < q. Multipliers that break this fall back to
// Multiply.
func Schrage(z, a int32) int32 {
	q, r := Modulus/a, Modulus%a
	if r >= q {
		return Multiply(z, a)
	}
	g := gammaRaw(BindSeed(int64(z)), a, q, r)
	if g < 0 {
		g += Modulus
	}
	return g
}

// gammaRaw stays in (-m, m) for z in [0, m) when r < q.
func gammaRaw(z, a, q, r int32) int32 {
	return a*(z%q) - r*(z/q)
}

// Modulo is the Direct transition.
func Modulo(z int32) int32 {
	return Multiply(z, Multiplier)
}

// GammaOf is the Gamma transition.
func GammaOf(z int32) int32 {
	return Schrage(z, Multiplier)
}

// JumpOf is the Jump transition.
func JumpOf(z int32) int32 {
	return Schrage(z, JumpMultiplier)
}

// DeltaOf returns delta(z) = z/q - (a*z)/m, which is 0 or 1 for z in [0, m).
// It satisfies f(z) = gamma(z) + m * delta(z) before gamma is shifted.
func DeltaOf(z int32) int32 {
	z = BindSeed(int64(z))
	return int32(int64(z/Quotient) - int64(Multiplier)*int64(z)/int64(Modulus))
}

func composeDelta(z int32) int32 {
	z = BindSeed(int64(z))
	return gammaRaw(z, Multiplier, Quotient, Remainder) + Modulus*DeltaOf(z)
}

// CheckIdentity reports whether (a*z) mod m == gamma(z) + m*delta(z).
func CheckIdentity(z int32) bool {
	return Modulo(z) == composeDelta(z)
}
