package dragon4

import (
	"math"

	"github.com/BasixKOR/numconv/bigint"
)

// decompose extracts the significand f and binary exponent e of a
// positive finite double x such that x = f * 2^e exactly, restoring the
// implicit leading bit for normal numbers. It reads the IEEE-754 bit
// pattern by value rather than by memory aliasing, so the result does
// not depend on host byte order.
func decompose(x float64) (f bigint.Int, e int) {
	bits := math.Float64bits(x)
	hi := uint32(bits >> 32)
	lo := uint32(bits)

	f.SetLimbs(lo, hi&0x000fffff)

	biasedExp := (hi >> 20) & 0x7ff
	if biasedExp == 0 {
		// Subnormal: no implicit leading bit, exponent pinned to the
		// minimum normal exponent minus the mantissa width.
		e = -1022 - 52
	} else {
		f.SetHighBit(20) // restore the implicit leading 1-bit
		e = int(biasedExp) - 1023 - 52
	}
	f.Normalize()
	return f, e
}
