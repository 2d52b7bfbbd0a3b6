package component

import "math"

// Convert maps a component value of type S onto the component range of D.
//
// The mapping is total:
//   - S and D of the same numeric kind: the value is returned unchanged.
//   - uint8 to uint16: bit replication, (x << 8) | x.
//   - uint16 to uint8: (x + 128) / 257, the exact rounding of x*255/65535.
//   - float32 and float64: plain precision cast, both use [0, 1].
//   - anything else: normalized through float64 to [0, 1], clamped (NaN
//     becomes 0), scaled onto [Min[D], Max[D]] and, for integer D, rounded
//     half away from zero.
func Convert[D, S Number](v S) D {
	sk, dk := kindOf[S](), kindOf[D]()
	switch {
	case sk == dk:
		return D(v)
	case sk.float && dk.float:
		return D(v)
	case sk.isUnsigned(8) && dk.isUnsigned(16):
		x := uint16(v)
		return D(x<<8 | x)
	case sk.isUnsigned(16) && dk.isUnsigned(8):
		return D((uint32(v) + 128) / 257)
	}
	return fromUnit[D](toUnit(v))
}

// toUnit normalizes v to [0, 1].
func toUnit[S Number](v S) float64 {
	var n float64
	if IsFloat[S]() {
		n = float64(v)
	} else {
		lo, hi := Range[S]()
		n = (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
	}
	switch {
	case !(n > 0):
		return 0
	case n > 1:
		return 1
	}
	return n
}

// fromUnit scales n in [0, 1] onto the component range of D.
func fromUnit[D Number](n float64) D {
	if IsFloat[D]() {
		return D(n)
	}
	lo, hi := Range[D]()
	x := math.Round(n*(float64(hi)-float64(lo)) + float64(lo))
	switch {
	case x >= float64(hi):
		return hi
	case x <= float64(lo):
		return lo
	}
	return D(x)
}
