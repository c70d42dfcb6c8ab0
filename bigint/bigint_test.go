package bigint

import "testing"

func fromUint64(v uint64) Int {
	var x Int
	SetSmall(&x, uint32(v))
	if hi := uint32(v >> 32); hi != 0 {
		var t Int
		SetSmall(&t, hi)
		var shifted Int
		TwoExp(&shifted, 32)
		var r Int
		Mul(&t, &shifted, &r)
		Add(&x, &r, &x)
	}
	return x
}

func toUint64(x *Int) uint64 {
	var v uint64
	for i := x.n - 1; i >= 0; i-- {
		v = v<<32 | uint64(x.v[i])
	}
	return v
}

func TestAddCommutative(t *testing.T) {
	cases := []uint64{0, 1, 42, 1 << 40, 1<<63 - 1}
	for _, a := range cases {
		for _, b := range cases {
			x, y := fromUint64(a), fromUint64(b)
			var z1, z2 Int
			Add(&x, &y, &z1)
			Add(&y, &x, &z2)
			if Compare(&z1, &z2) != 0 {
				t.Fatalf("add not commutative for %d,%d", a, b)
			}
			if got := toUint64(&z1); got != a+b {
				t.Fatalf("add(%d,%d) = %d, want %d", a, b, got, a+b)
			}
		}
	}
}

func TestAddAssociative(t *testing.T) {
	a, b, c := fromUint64(123456), fromUint64(789), fromUint64(1<<30)
	var ab, abc1 Int
	Add(&a, &b, &ab)
	Add(&ab, &c, &abc1)

	var bc, abc2 Int
	Add(&b, &c, &bc)
	Add(&a, &bc, &abc2)

	if Compare(&abc1, &abc2) != 0 {
		t.Fatal("add not associative")
	}
}

func TestSubIsAddInverse(t *testing.T) {
	a, b := fromUint64(999999), fromUint64(12345)
	var sum Int
	Add(&a, &b, &sum)
	var back Int
	Sub(&sum, &b, &back)
	if Compare(&back, &a) != 0 {
		t.Fatalf("a+b-b != a: got %d, want %d", toUint64(&back), toUint64(&a))
	}
}

func TestMulCommutativeAssociativeDistributive(t *testing.T) {
	a, b, c := fromUint64(17), fromUint64(31), fromUint64(101)

	var ab, ba Int
	Mul(&a, &b, &ab)
	Mul(&b, &a, &ba)
	if Compare(&ab, &ba) != 0 {
		t.Fatal("mul not commutative")
	}

	var abC1, bc, aBC Int
	Mul(&ab, &c, &abC1)
	Mul(&b, &c, &bc)
	Mul(&a, &bc, &aBC)
	if Compare(&abC1, &aBC) != 0 {
		t.Fatal("mul not associative")
	}

	var bPlusC, aTimesBPlusC Int
	Add(&b, &c, &bPlusC)
	Mul(&a, &bPlusC, &aTimesBPlusC)
	var ac, sumACAB Int
	Mul(&a, &c, &ac)
	Add(&ab, &ac, &sumACAB)
	if Compare(&aTimesBPlusC, &sumACAB) != 0 {
		t.Fatal("mul not distributive over add")
	}
}

func TestCompareTotalOrder(t *testing.T) {
	values := []uint64{0, 1, 2, 1 << 20, 1<<20 + 1, 1 << 40}
	for i, a := range values {
		for j, b := range values {
			x, y := fromUint64(a), fromUint64(b)
			got := Compare(&x, &y)
			switch {
			case a < b && got >= 0, a > b && got <= 0, a == b && got != 0:
				t.Fatalf("Compare(%d,%d) inconsistent with numeric order (index %d,%d): got %d", a, b, i, j, got)
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	x := fromUint64(1 << 35)
	x.normalize()
	n1 := x.n
	x.normalize()
	if x.n != n1 {
		t.Fatal("normalize is not idempotent")
	}
}

func TestIsEven(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 1 << 40, 1<<40 + 1} {
		x := fromUint64(v)
		if IsEven(&x) != (v%2 == 0) {
			t.Fatalf("IsEven(%d) wrong", v)
		}
	}
}

func TestIs2To52(t *testing.T) {
	x := fromUint64(1 << 52)
	if !Is2To52(&x) {
		t.Fatal("expected 2^52 to be detected")
	}
	y := fromUint64(1<<52 + 1)
	if Is2To52(&y) {
		t.Fatal("did not expect 2^52+1 to be detected")
	}
	z := fromUint64(1 << 51)
	if Is2To52(&z) {
		t.Fatal("did not expect 2^51 to be detected")
	}
}

func TestTwoExp(t *testing.T) {
	var x Int
	TwoExp(&x, 0)
	if toUint64(&x) != 1 {
		t.Fatalf("2^0 = %d, want 1", toUint64(&x))
	}
	TwoExp(&x, 10)
	if toUint64(&x) != 1024 {
		t.Fatalf("2^10 = %d, want 1024", toUint64(&x))
	}
}

func TestAddOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on capacity overflow")
		}
	}()
	var x, y, z Int
	TwoExp(&x, 32*MaxLimbs-1)
	TwoExp(&y, 32*MaxLimbs-1)
	Add(&x, &y, &z)
}
