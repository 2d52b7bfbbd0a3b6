package component

import (
	"math"
	"math/bits"
)

// Wide is the enlarged accumulator used for weighted sums of components.
//
// Float components are held as float64. Integer components are held as a
// 128-bit two's complement integer, which is wide enough to sum several
// 64-bit components scaled by small weights without overflow.
//
// The zero value is integer zero.
type Wide struct {
	hi    int64
	lo    uint64
	f     float64
	float bool
}

// Enlarge widens v into an accumulator. The conversion is exact.
func Enlarge[T Number](v T) Wide {
	k := kindOf[T]()
	switch {
	case k.float:
		return Wide{f: float64(v), float: true}
	case k.signed:
		x := int64(v)
		return Wide{hi: x >> 63, lo: uint64(x)}
	default:
		return Wide{lo: uint64(v)}
	}
}

// Narrow converts an accumulator back to T, clamping to the component range
// of T first. It never wraps; NaN narrows to Min[T]().
func Narrow[T Number](w Wide) T {
	lo, hi := Range[T]()
	if w.float || IsFloat[T]() {
		f := w.Float64()
		switch {
		case !(f > float64(lo)):
			return lo
		case f >= float64(hi):
			return hi
		}
		return T(f)
	}
	if w.Cmp(Enlarge(lo)) <= 0 {
		return lo
	}
	if w.Cmp(Enlarge(hi)) >= 0 {
		return hi
	}
	return T(w.lo)
}

// Add returns w + o.
func (w Wide) Add(o Wide) Wide {
	if w.float || o.float {
		return Wide{f: w.Float64() + o.Float64(), float: true}
	}
	lo, carry := bits.Add64(w.lo, o.lo, 0)
	return Wide{hi: w.hi + o.hi + int64(carry), lo: lo}
}

// Mul returns w * k.
func (w Wide) Mul(k uint64) Wide {
	if w.float {
		return Wide{f: w.f * float64(k), float: true}
	}
	if w.negative() {
		return w.neg().Mul(k).neg()
	}
	hi, lo := bits.Mul64(w.lo, k)
	return Wide{hi: int64(uint64(w.hi)*k + hi), lo: lo}
}

// Quo returns w / k. Integer accumulators truncate toward zero.
// Quo panics if k is zero.
func (w Wide) Quo(k uint64) Wide {
	if w.float {
		return Wide{f: w.f / float64(k), float: true}
	}
	if w.negative() {
		return w.neg().Quo(k).neg()
	}
	qhi, r := bits.Div64(0, uint64(w.hi), k)
	qlo, _ := bits.Div64(r, w.lo, k)
	return Wide{hi: int64(qhi), lo: qlo}
}

// Cmp compares w and o and returns -1, 0 or +1.
func (w Wide) Cmp(o Wide) int {
	if w.float || o.float {
		a, b := w.Float64(), o.Float64()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	switch {
	case w.hi < o.hi:
		return -1
	case w.hi > o.hi:
		return 1
	case w.lo < o.lo:
		return -1
	case w.lo > o.lo:
		return 1
	}
	return 0
}

// Float64 returns the accumulated value as a float64, rounding if needed.
func (w Wide) Float64() float64 {
	if w.float {
		return w.f
	}
	if w.negative() {
		return -w.neg().Float64()
	}
	return math.Ldexp(float64(uint64(w.hi)), 64) + float64(w.lo)
}

func (w Wide) negative() bool {
	return !w.float && w.hi < 0
}

func (w Wide) neg() Wide {
	lo := ^w.lo + 1
	hi := ^w.hi
	if lo == 0 {
		hi++
	}
	return Wide{hi: hi, lo: lo}
}
