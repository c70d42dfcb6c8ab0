// Package bigint implements the fixed-capacity nonnegative multi-precision
// integer arithmetic that the dragon4 package needs to convert a binary64
// into exact rational bounds. It deliberately does not grow: every
// operation is sized for the largest intermediate value that double-to-
// digits conversion can produce (35 32-bit limbs, 1120 bits), the same
// bound duktape's duk_numconv.c uses for the same algorithm.
//
// There is no dynamic allocation anywhere in this package: an Int is a
// plain value type with an inline limb array, meant to live on the
// caller's stack for the lifetime of one conversion.
package bigint

import "fmt"

// MaxLimbs is the capacity of an Int, in 32-bit limbs.
const MaxLimbs = 35

// ContractError reports a violation of one of this package's fixed-
// capacity contracts: a result that would not fit in MaxLimbs limbs, or
// an operation called with operands outside its documented preconditions.
// It always indicates a bug in the caller, not a recoverable condition.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("bigint: %s: %s", e.Op, e.Msg)
}

func fail(op, msg string) {
	panic(&ContractError{Op: op, Msg: msg})
}

// Int is a nonnegative integer stored as an ordered, little-endian-limb
// sequence with an explicit length. The zero value represents 0.
//
// Invariant: if n > 0, the most significant limb (v[n-1]) is nonzero.
type Int struct {
	n int
	v [MaxLimbs]uint32
}

// Len reports the number of limbs currently used (0 for the value zero).
func (x *Int) Len() int { return x.n }

func (x *Int) normalize() {
	i := x.n - 1
	for i >= 0 && x.v[i] == 0 {
		i--
	}
	x.n = i + 1
}

// Normalize re-establishes the top-limb-nonzero invariant after direct
// limb manipulation (see SetLimbs, SetHighBit).
func (x *Int) Normalize() { x.normalize() }

// SetLimbs sets x to a raw two-limb value (lo + hi<<32) without
// normalizing, for callers building a value limb-by-limb from bits (the
// double decomposer). Call Normalize afterwards.
func (x *Int) SetLimbs(lo, hi uint32) {
	x.n = 2
	x.v[0] = lo
	x.v[1] = hi
}

// SetHighBit ORs bit 1<<pos into limb index 1, used to restore an IEEE
// double's implicit leading mantissa bit.
func (x *Int) SetHighBit(pos uint) {
	x.v[1] |= uint32(1) << pos
}

// SetSmall sets z to the value of a 32-bit unsigned integer.
func SetSmall(z *Int, v uint32) {
	if v == 0 {
		z.n = 0
		return
	}
	z.n = 1
	z.v[0] = v
}

// Copy sets y to x's value.
func Copy(x, y *Int) {
	y.n = x.n
	if x.n == 0 {
		return
	}
	copy(y.v[:x.n], x.v[:x.n])
}

// Add sets z to x + y. z must not alias x or y.
func Add(x, y, z *Int) {
	if y.n > x.n {
		x, y = y, x
	}
	nx, ny := x.n, y.n
	var carry uint64
	i := 0
	for ; i < nx; i++ {
		sum := carry + uint64(x.v[i])
		if i < ny {
			sum += uint64(y.v[i])
		}
		z.v[i] = uint32(sum)
		carry = sum >> 32
	}
	if carry != 0 {
		if i >= MaxLimbs {
			fail("Add", "result exceeds capacity")
		}
		z.v[i] = uint32(carry)
		i++
	}
	z.n = i
}

// Sub sets z to x - y. Requires x >= y. z must not alias x or y.
func Sub(x, y, z *Int) {
	nx, ny := x.n, y.n
	var borrow int64
	i := 0
	for ; i < nx; i++ {
		tx := int64(x.v[i])
		var ty int64
		if i < ny {
			ty = int64(y.v[i])
		}
		d := tx - ty + borrow
		z.v[i] = uint32(uint64(d))
		d >>= 32
		borrow = d
	}
	z.n = i
	z.normalize()
}

// SubCopy performs x <- x - y, using t as scratch. Requires x >= y.
func SubCopy(x, y, t *Int) {
	Sub(x, y, t)
	Copy(t, x)
}

// Mul sets z to x * y via schoolbook multiplication. z must not alias x
// or y, though x and y may alias each other.
func Mul(x, y, z *Int) {
	nz := x.n + y.n
	if nz == 0 {
		z.n = 0
		return
	}
	if nz > MaxLimbs {
		fail("Mul", "result exceeds capacity")
	}
	for i := 0; i < nz; i++ {
		z.v[i] = 0
	}
	z.n = nz

	for i := 0; i < x.n; i++ {
		var carry uint64
		for j := 0; j < y.n; j++ {
			carry += uint64(x.v[i])*uint64(y.v[j]) + uint64(z.v[i+j])
			z.v[i+j] = uint32(carry)
			carry >>= 32
		}
		if carry > 0 {
			if i+y.n >= MaxLimbs {
				fail("Mul", "result exceeds capacity")
			}
			z.v[i+y.n] += uint32(carry)
		}
	}
	z.normalize()
}

// MulSmall sets z to x * v. z must not alias x.
func MulSmall(x *Int, v uint32, z *Int) {
	var tmp Int
	SetSmall(&tmp, v)
	Mul(x, &tmp, z)
}

// MulSmallCopy performs x <- x * v, using t as scratch.
func MulSmallCopy(x *Int, v uint32, t *Int) {
	MulSmall(x, v, t)
	Copy(t, x)
}

// Compare returns -1, 0, or +1 as x is less than, equal to, or greater
// than y.
func Compare(x, y *Int) int {
	if x.n != y.n {
		if x.n > y.n {
			return 1
		}
		return -1
	}
	for i := x.n - 1; i >= 0; i-- {
		if x.v[i] != y.v[i] {
			if x.v[i] > y.v[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// IsEven reports whether x is an even number.
func IsEven(x *Int) bool {
	return x.n == 0 || x.v[0]&1 == 0
}

// Is2To52 reports whether x equals 2^52 exactly, checked directly
// against the canonical two-limb pattern rather than by comparison, the
// way the generating algorithm needs it to detect a double's mantissa
// sitting at the bottom edge of its binade.
func Is2To52(x *Int) bool {
	return x.n == 2 && x.v[0] == 0 && x.v[1] == 1<<(52-32)
}

// TwoExp sets x to 2^y for y >= 0.
func TwoExp(x *Int, y int) {
	n := y/32 + 1
	if n > MaxLimbs {
		fail("TwoExp", "result exceeds capacity")
	}
	for i := 0; i < n; i++ {
		x.v[i] = 0
	}
	x.n = n
	x.v[n-1] = uint32(1) << uint(y%32)
}
