package dragon4

import "github.com/BasixKOR/numconv/bigint"

// scale finds the integer k such that B^(k-1) <= (r+m+)/s < B^k, with
// boundary inclusivity governed by highOK, adjusting s (if k must grow)
// or r, m+, m- (if k must shrink). No logarithm estimation is used: the
// search is the simple two-loop form from Burger-Dybvig section 3.1.
func (st *state) scale() {
	k := 0

	for {
		bigint.Add(&st.r, &st.mp, &st.t1)
		want := 1
		if st.highOK {
			want = 0
		}
		if bigint.Compare(&st.t1, &st.s) < want {
			break
		}
		bigint.MulSmallCopy(&st.s, uint32(st.radix), &st.t1)
		k++
	}

	if k == 0 {
		for {
			bigint.Add(&st.r, &st.mp, &st.t1)
			bigint.MulSmall(&st.t1, uint32(st.radix), &st.t2)
			limit := 0
			if st.highOK {
				limit = -1
			}
			if bigint.Compare(&st.t2, &st.s) > limit {
				break
			}
			bigint.MulSmallCopy(&st.r, uint32(st.radix), &st.t1)
			bigint.MulSmallCopy(&st.mp, uint32(st.radix), &st.t1)
			bigint.MulSmallCopy(&st.mm, uint32(st.radix), &st.t1)
			k--
		}
	}

	st.k = k
}
