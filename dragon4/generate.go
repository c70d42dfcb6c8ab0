package dragon4

import "github.com/BasixKOR/numconv/bigint"

// generate produces the digit stream by repeated quotient/remainder in
// base radix, stopping once a rounding boundary is crossed, with
// round-to-even tie-breaking, and writes each digit through output.
//
// duktape's C source (duk_numconv.c) compares tc2 against the *address*
// of high_ok instead of its boolean value (`&nc_ctx->high_ok` where
// `nc_ctx->high_ok` was meant) -- a pointer is always "true", so that line
// effectively hard-codes tc2's threshold to the high_ok=true case. Honoring the
// intended boolean comparison is mandatory for correctness and is what
// this port does.
func (st *state) generate() {
	count := 0

	for {
		// quotient-remainder of r*B by s via repeated subtraction.
		bigint.MulSmall(&st.r, uint32(st.radix), &st.t1)
		d := 0
		for bigint.Compare(&st.t1, &st.s) >= 0 {
			bigint.SubCopy(&st.t1, &st.s, &st.t2)
			d++
		}
		bigint.Copy(&st.t1, &st.r)

		bigint.MulSmallCopy(&st.mp, uint32(st.radix), &st.t2)
		bigint.MulSmallCopy(&st.mm, uint32(st.radix), &st.t2)

		lowWant := -1
		if st.lowOK {
			lowWant = 0
		}
		low := bigint.Compare(&st.r, &st.mm) <= lowWant

		bigint.Add(&st.r, &st.mp, &st.t1)
		highWant := 1
		if st.highOK {
			highWant = 0
		}
		high := bigint.Compare(&st.t1, &st.s) >= highWant

		switch {
		case low && high:
			bigint.MulSmall(&st.r, 2, &st.t1)
			if bigint.Compare(&st.t1, &st.s) < 0 {
				st.output(d, count)
			} else {
				st.output(d+1, count)
			}
			count++
			st.finish(count)
			return
		case low && !high:
			st.output(d, count)
			count++
			st.finish(count)
			return
		case !low && high:
			st.output(d+1, count)
			count++
			st.finish(count)
			return
		default: // !low && !high
			st.output(d, count)
			count++
			// r, s, m+, m- already updated above; continue.
		}
	}
}
