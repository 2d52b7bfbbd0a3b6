package component

import (
	"math"
	"testing"
)

type level uint8

func checkRange[T Number](t *testing.T, wantLo, wantHi T) {
	t.Helper()
	lo, hi := Range[T]()
	if lo != wantLo || hi != wantHi {
		t.Errorf("Range[%s]: got (%v,%v), want (%v,%v)", Name[T](), lo, hi, wantLo, wantHi)
	}
	if Min[T]() != wantLo {
		t.Errorf("Min[%s]: got %v, want %v", Name[T](), Min[T](), wantLo)
	}
	if Max[T]() != wantHi {
		t.Errorf("Max[%s]: got %v, want %v", Name[T](), Max[T](), wantHi)
	}
}

func TestRange(t *testing.T) {
	checkRange[uint8](t, 0, math.MaxUint8)
	checkRange[uint16](t, 0, math.MaxUint16)
	checkRange[uint32](t, 0, math.MaxUint32)
	checkRange[uint64](t, 0, math.MaxUint64)
	checkRange[uint](t, 0, math.MaxUint)
	checkRange[int8](t, math.MinInt8, math.MaxInt8)
	checkRange[int16](t, math.MinInt16, math.MaxInt16)
	checkRange[int32](t, math.MinInt32, math.MaxInt32)
	checkRange[int64](t, math.MinInt64, math.MaxInt64)
	checkRange[int](t, math.MinInt, math.MaxInt)
	checkRange[float32](t, 0, 1)
	checkRange[float64](t, 0, 1)
}

func TestRange_DefinedType(t *testing.T) {
	checkRange[level](t, 0, 255)
}

func TestName(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Name[uint8](), "uint8"},
		{Name[level](), "uint8"},
		{Name[uint16](), "uint16"},
		{Name[int32](), "int32"},
		{Name[int64](), "int64"},
		{Name[float32](), "float32"},
		{Name[float64](), "float64"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Name: got %s, want %s", tt.got, tt.want)
		}
	}
}

func TestIsFloat(t *testing.T) {
	if IsFloat[uint8]() || IsFloat[int64]() {
		t.Error("integer types reported as float")
	}
	if !IsFloat[float32]() || !IsFloat[float64]() {
		t.Error("float types not reported as float")
	}
}
