package pixel

import (
	"reflect"
	"testing"
)

func TestComponents_StorageOrder(t *testing.T) {
	tests := []struct {
		name string
		got  []uint8
		want []uint8
	}{
		{"RGB", RGB[uint8]{R: 10, G: 20, B: 30}.Components(), []uint8{10, 20, 30}},
		{"BGR", BGR[uint8]{B: 10, G: 20, R: 30}.Components(), []uint8{10, 20, 30}},
		{"GRB", GRB[uint8]{G: 10, R: 20, B: 30}.Components(), []uint8{10, 20, 30}},
		{"RGBA", RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}.Components(), []uint8{1, 2, 3, 4}},
		{"ARGB", ARGB[uint8]{A: 1, R: 2, G: 3, B: 4}.Components(), []uint8{1, 2, 3, 4}},
		{"BGRA", BGRA[uint8]{B: 1, G: 2, R: 3, A: 4}.Components(), []uint8{1, 2, 3, 4}},
		{"ABGR", ABGR[uint8]{A: 1, B: 2, G: 3, R: 4}.Components(), []uint8{1, 2, 3, 4}},
		{"Gray", Gray[uint8]{Y: 7}.Components(), []uint8{7}},
		{"GrayAlpha", GrayAlpha[uint8]{Y: 7, A: 8}.Components(), []uint8{7, 8}},
	}

	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s components: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestColors_ExcludeAlpha(t *testing.T) {
	tests := []struct {
		name string
		got  []uint8
		want []uint8
	}{
		{"RGB", RGB[uint8]{R: 10, G: 20, B: 30}.Colors(), []uint8{10, 20, 30}},
		{"RGBA", RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}.Colors(), []uint8{1, 2, 3}},
		{"ARGB", ARGB[uint8]{A: 1, R: 2, G: 3, B: 4}.Colors(), []uint8{2, 3, 4}},
		{"BGRA", BGRA[uint8]{B: 1, G: 2, R: 3, A: 4}.Colors(), []uint8{1, 2, 3}},
		{"ABGR", ABGR[uint8]{A: 1, B: 2, G: 3, R: 4}.Colors(), []uint8{2, 3, 4}},
		{"GrayAlpha", GrayAlpha[uint8]{Y: 7, A: 8}.Colors(), []uint8{7}},
	}

	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s colors: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWithComponents_RoundTrip(t *testing.T) {
	argb := ARGB[int16]{A: -1, R: 2, G: -3, B: 4}
	if got := (ARGB[int16]{}).WithComponents(argb.Components()); got != argb {
		t.Errorf("ARGB: got %+v, want %+v", got, argb)
	}

	bgr := BGR[float32]{B: 0.1, G: 0.2, R: 0.3}
	if got := (BGR[float32]{}).WithComponents(bgr.Components()); got != bgr {
		t.Errorf("BGR: got %+v, want %+v", got, bgr)
	}

	ga := GrayAlpha[uint64]{Y: 1 << 60, A: 5}
	if got := (GrayAlpha[uint64]{}).WithComponents(ga.Components()); got != ga {
		t.Errorf("GrayAlpha: got %+v, want %+v", got, ga)
	}
}

func TestWithColors(t *testing.T) {
	colors := []uint8{1, 2, 3}

	if got := (RGB[uint8]{}).WithColors(colors, 99); got != (RGB[uint8]{R: 1, G: 2, B: 3}) {
		t.Errorf("RGB discards alpha: got %+v", got)
	}
	if got := (GRB[uint8]{}).WithColors(colors, 99); got != (GRB[uint8]{G: 1, R: 2, B: 3}) {
		t.Errorf("GRB discards alpha: got %+v", got)
	}
	if got := (RGBA[uint8]{}).WithColors(colors, 99); got != (RGBA[uint8]{R: 1, G: 2, B: 3, A: 99}) {
		t.Errorf("RGBA: got %+v", got)
	}
	if got := (ABGR[uint8]{}).WithColors(colors, 99); got != (ABGR[uint8]{A: 99, B: 1, G: 2, R: 3}) {
		t.Errorf("ABGR: got %+v", got)
	}
	if got := (Gray[uint8]{}).WithColors(colors[:1], 99); got != (Gray[uint8]{Y: 1}) {
		t.Errorf("Gray discards alpha: got %+v", got)
	}
	if got := (GrayAlpha[uint8]{}).WithColors(colors[:1], 99); got != (GrayAlpha[uint8]{Y: 1, A: 99}) {
		t.Errorf("GrayAlpha: got %+v", got)
	}
}

func TestWithComponents_ShortSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short component slice")
		}
	}()
	_ = RGBA[uint8]{}.WithComponents([]uint8{1, 2, 3})
}

func TestMapColors_KeepsAlpha(t *testing.T) {
	double := func(v uint8) uint8 { return v * 2 }

	if got := (RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}).MapColors(double); got != (RGBA[uint8]{R: 2, G: 4, B: 6, A: 4}) {
		t.Errorf("RGBA: got %+v", got)
	}
	if got := (ARGB[uint8]{A: 4, R: 1, G: 2, B: 3}).MapColors(double); got != (ARGB[uint8]{A: 4, R: 2, G: 4, B: 6}) {
		t.Errorf("ARGB: got %+v", got)
	}
	if got := (GrayAlpha[uint8]{Y: 5, A: 6}).MapColors(double); got != (GrayAlpha[uint8]{Y: 10, A: 6}) {
		t.Errorf("GrayAlpha: got %+v", got)
	}
	if got := (GRB[uint8]{G: 1, R: 2, B: 3}).MapColors(double); got != (GRB[uint8]{G: 2, R: 4, B: 6}) {
		t.Errorf("GRB: got %+v", got)
	}
}

func TestMapAlpha(t *testing.T) {
	half := func(v uint8) uint8 { return v / 2 }

	if got := (BGRA[uint8]{B: 1, G: 2, R: 3, A: 200}).MapAlpha(half); got != (BGRA[uint8]{B: 1, G: 2, R: 3, A: 100}) {
		t.Errorf("BGRA: got %+v", got)
	}
	if got := (GrayAlpha[uint8]{Y: 9, A: 200}).MapAlpha(half); got != (GrayAlpha[uint8]{Y: 9, A: 100}) {
		t.Errorf("GrayAlpha: got %+v", got)
	}

	rgb := RGB[uint8]{R: 200, G: 200, B: 200}
	if got := rgb.MapAlpha(half); got != rgb {
		t.Errorf("RGB MapAlpha should be identity: got %+v", got)
	}
}

func TestFormat_OfPixel(t *testing.T) {
	tests := []struct {
		got  Format
		want Format
	}{
		{RGB[uint8]{}.Format(), FormatRGB},
		{BGR[uint8]{}.Format(), FormatBGR},
		{GRB[uint8]{}.Format(), FormatGRB},
		{RGBA[uint8]{}.Format(), FormatRGBA},
		{ARGB[uint8]{}.Format(), FormatARGB},
		{BGRA[uint8]{}.Format(), FormatBGRA},
		{ABGR[uint8]{}.Format(), FormatABGR},
		{Gray[uint8]{}.Format(), FormatGray},
		{GrayAlpha[uint8]{}.Format(), FormatGrayAlpha},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Format: got %v, want %v", tt.got, tt.want)
		}
	}
}

func TestFormat_ChannelsMatchComponents(t *testing.T) {
	lengths := map[Format]int{
		FormatRGB:       len(RGB[uint8]{}.Components()),
		FormatBGR:       len(BGR[uint8]{}.Components()),
		FormatGRB:       len(GRB[uint8]{}.Components()),
		FormatRGBA:      len(RGBA[uint8]{}.Components()),
		FormatARGB:      len(ARGB[uint8]{}.Components()),
		FormatBGRA:      len(BGRA[uint8]{}.Components()),
		FormatABGR:      len(ABGR[uint8]{}.Components()),
		FormatGray:      len(Gray[uint8]{}.Components()),
		FormatGrayAlpha: len(GrayAlpha[uint8]{}.Components()),
	}

	for f, n := range lengths {
		if f.Channels() != n {
			t.Errorf("%s: Channels() = %d, components = %d", f, f.Channels(), n)
		}
	}
}
