package dragon4

import "github.com/BasixKOR/numconv/bigint"

// outBufCap is the output buffer's capacity. Radix 2 of the smallest
// subnormal needs about 1075 fraction digits plus sign/point/padding;
// 1200 bytes leaves comfortable margin (duktape's C original used
// 512, which the spec notes is too small for that case).
const outBufCap = 1200

// state is the stack-resident working record for one conversion. It
// owns every BigInt the algorithm touches; nothing here escapes to the
// heap except the final string built from outBuf.
type state struct {
	f, r, s, mp, mm, t1, t2 bigint.Int

	e     int // x = f * 2^e
	radix int
	k     int

	lowOK, highOK bool

	outBuf   [outBufCap]byte
	outLen   int
	outFirst bool
}

func (st *state) putByte(c byte) {
	if st.outLen >= len(st.outBuf) {
		panic(&bigint.ContractError{Op: "dragon4.putByte", Msg: "output buffer exhausted"})
	}
	st.outBuf[st.outLen] = c
	st.outLen++
}

func (st *state) putDigit(d int) {
	st.putByte(digitAlphabet[d])
}

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
