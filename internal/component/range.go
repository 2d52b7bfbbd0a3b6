package component

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of primitive numeric types a pixel component may have.
//
// Defined types are accepted as long as their underlying type is one of the
// built-in integer or floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// kind describes the numeric family of a component type. Two types with the
// same kind share a range and convert to each other unchanged.
type kind struct {
	float  bool
	signed bool
	bits   uint
}

func kindOf[T Number]() kind {
	var zero T
	half := 0.5
	k := kind{bits: uint(unsafe.Sizeof(zero)) * 8}
	switch {
	case T(half) != 0:
		k.float = true
		k.signed = true
	case zero-1 < zero:
		k.signed = true
	}
	return k
}

func (k kind) isUnsigned(bits uint) bool {
	return !k.float && !k.signed && k.bits == bits
}

// Min returns the smallest value of the component range of T.
//
// Integers use their full representable range; floats use 0.
func Min[T Number]() T {
	k := kindOf[T]()
	if k.float || !k.signed {
		return 0
	}
	return T(int64(-1) << (k.bits - 1))
}

// Max returns the largest value of the component range of T.
//
// Integers use their full representable range; floats use 1.
func Max[T Number]() T {
	k := kindOf[T]()
	switch {
	case k.float:
		return 1
	case k.signed:
		return T(uint64(1)<<(k.bits-1) - 1)
	default:
		return T(^uint64(0) >> (64 - k.bits))
	}
}

// Range returns the (min, max) pair used to normalize components of type T.
func Range[T Number]() (lo, hi T) {
	return Min[T](), Max[T]()
}

// IsFloat reports whether T is a floating point component type.
func IsFloat[T Number]() bool {
	return kindOf[T]().float
}

// Name returns a short name for the numeric family of T, such as "uint8" or
// "float32". Defined types report the name of their underlying type.
func Name[T Number]() string {
	k := kindOf[T]()
	switch {
	case k.float:
		return "float" + bitsName(k.bits)
	case k.signed:
		return "int" + bitsName(k.bits)
	default:
		return "uint" + bitsName(k.bits)
	}
}

func bitsName(bits uint) string {
	switch bits {
	case 8:
		return "8"
	case 16:
		return "16"
	case 32:
		return "32"
	default:
		return "64"
	}
}
