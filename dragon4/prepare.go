package dragon4

import "github.com/BasixKOR/numconv/bigint"

// prepare initializes r, s, m+, m- from (f, e) following the four
// Burger-Dybvig cases (Figure 1), and sets the round-to-even boundary
// flags from the parity of f. t1 is used as scratch.
func (st *state) prepare(roundToEven bool) {
	if roundToEven {
		st.lowOK = bigint.IsEven(&st.f)
	} else {
		st.lowOK = false
	}
	st.highOK = st.lowOK

	switch {
	case st.e >= 0 && bigint.Is2To52(&st.f):
		// Smallest mantissa of its binade: gaps to the neighboring
		// doubles are unequal, the upper one twice the lower one.
		bigint.TwoExp(&st.t1, st.e+2)
		bigint.Mul(&st.f, &st.t1, &st.r)
		bigint.SetSmall(&st.s, 4)
		bigint.TwoExp(&st.mp, st.e+1)
		bigint.TwoExp(&st.mm, st.e)

	case st.e >= 0:
		bigint.TwoExp(&st.t1, st.e+1)
		bigint.Mul(&st.f, &st.t1, &st.r)
		bigint.SetSmall(&st.s, 2)
		bigint.TwoExp(&st.t1, st.e)
		bigint.Copy(&st.t1, &st.mp)
		bigint.Copy(&st.t1, &st.mm)

	case st.e > -1074 && bigint.Is2To52(&st.f):
		bigint.MulSmall(&st.f, 4, &st.r)
		bigint.TwoExp(&st.s, 2-st.e)
		bigint.SetSmall(&st.mp, 2)
		bigint.SetSmall(&st.mm, 1)

	default:
		bigint.MulSmall(&st.f, 2, &st.r)
		bigint.TwoExp(&st.s, 1-st.e)
		bigint.SetSmall(&st.mp, 1)
		bigint.SetSmall(&st.mm, 1)
	}
}
