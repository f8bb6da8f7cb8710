package lehmer

// Normalize projects v onto [0, 1) as v / m.
func Normalize(v int32) float64 {
	return float64(v) / float64(Modulus)
}

// Bind reduces v into [0, modulus) regardless of the sign of v.
// A modulus <= 0 binds everything to 0.
func Bind(v, modulus int64) int64 {
	if modulus <= 0 {
		return 0
	}
	return ((v % modulus) + modulus) % modulus
}

// BindSeed reduces a caller supplied integer into [0, Modulus).
func BindSeed(v int64) int32 {
	return int32(Bind(v, int64(Modulus)))
}
