// Package dragon4 converts IEEE-754 binary64 values to the shortest
// sequence of base-B digits (2 <= B <= 36) that round-trips back to the
// same double under round-to-nearest-even, following the Burger-Dybvig
// "free-format" Dragon4 variant (their Figure 1, without the paper's
// logarithmic k-estimate) on top of the bigint package's fixed-capacity
// arithmetic.
//
// The algorithm and its working set are ported from duktape's
// duk_numconv.c, the number-to-string half of an embeddable JS engine
// that needs exactly this: Number.prototype.toString(radix) for an
// arbitrary radix, pushed onto the engine's own value stack rather than
// returned in the ordinary sense -- hence the Host abstraction.
package dragon4

import (
	"math"

	"github.com/BasixKOR/numconv/bigint"
	"github.com/BasixKOR/numconv/numhost"
)

// Option configures a Stringify call. The functional-options shape
// mirrors the rest of this module's teacher lineage (its Runtime takes
// the same kind of Option).
type Option interface {
	apply(*options)
}

type options struct {
	roundToEven bool
}

type funcOption struct{ f func(*options) }

func (fo *funcOption) apply(o *options) { fo.f(o) }

func newFuncOption(f func(*options)) *funcOption { return &funcOption{f: f} }

// WithRoundToEven controls whether the low/high rounding boundaries are
// treated as inclusive under IEEE round-to-nearest-even (the default,
// and the only mode that is correct: disabling it is retained purely
// for experimentation, since it can make the leading digit equal B, as
// in duk_numconv.c's disabled branch).
func WithRoundToEven(enabled bool) Option {
	return newFuncOption(func(o *options) { o.roundToEven = enabled })
}

func defaultOptions() options {
	return options{roundToEven: true}
}

// Stringify converts x to a string in the given radix and pushes the
// result onto host. digits is reserved for a future fixed-precision
// mode and is currently ignored; the algorithm always produces the
// shortest round-tripping form.
func Stringify(host numhost.Host, x float64, radix int, digits int, opts ...Option) {
	if radix < 2 || radix > 36 {
		panic(&bigint.ContractError{Op: "Stringify", Msg: "radix out of range [2, 36]"})
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	if math.IsNaN(x) {
		host.PushLiteral(numhost.LitNaN)
		return
	}

	neg := math.Signbit(x)
	if neg {
		x = -x
	}

	if math.IsInf(x, 0) {
		if neg {
			host.PushLiteral(numhost.LitNegInfinity)
		} else {
			host.PushLiteral(numhost.LitInfinity)
		}
		return
	}

	if x == 0 {
		host.PushLiteral(numhost.LitZero)
		return
	}

	if radix == 10 {
		if uval := uint32(x); float64(uval) == x {
			host.PushFormattedUnsigned(neg, uval)
			return
		}
	}

	var st state
	st.radix = radix
	st.outFirst = true

	st.f, st.e = decompose(x)
	st.prepare(o.roundToEven)
	st.scale()

	if neg {
		st.putByte('-')
	}
	st.generate()

	host.PushString(string(st.outBuf[:st.outLen]))
}

// Format is a convenience wrapper around Stringify for callers that
// just want a string back, using the reference numhost.Builder host.
func Format(x float64, radix int, opts ...Option) string {
	var b numhost.Builder
	Stringify(&b, x, radix, 0, opts...)
	return b.String()
}
