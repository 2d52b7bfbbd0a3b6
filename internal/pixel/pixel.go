package pixel

import "github.com/ironsheep/pixel-tools-mcp/internal/component"

// RGB is an opaque pixel stored as red, green, blue.
type RGB[T component.Number] struct {
	R T `json:"r"`
	G T `json:"g"`
	B T `json:"b"`
}

// BGR is an opaque pixel stored as blue, green, red.
type BGR[T component.Number] struct {
	B T `json:"b"`
	G T `json:"g"`
	R T `json:"r"`
}

// GRB is an opaque pixel stored as green, red, blue.
//
// GRB has no alpha counterpart and only converts to and from the other
// opaque formats and the gray formats.
type GRB[T component.Number] struct {
	G T `json:"g"`
	R T `json:"r"`
	B T `json:"b"`
}

// RGBA is a pixel stored as red, green, blue, alpha. Alpha is straight
// (not premultiplied).
type RGBA[T component.Number] struct {
	R T `json:"r"`
	G T `json:"g"`
	B T `json:"b"`
	A T `json:"a"`
}

// ARGB is a pixel stored as alpha, red, green, blue.
type ARGB[T component.Number] struct {
	A T `json:"a"`
	R T `json:"r"`
	G T `json:"g"`
	B T `json:"b"`
}

// BGRA is a pixel stored as blue, green, red, alpha.
type BGRA[T component.Number] struct {
	B T `json:"b"`
	G T `json:"g"`
	R T `json:"r"`
	A T `json:"a"`
}

// ABGR is a pixel stored as alpha, blue, green, red.
type ABGR[T component.Number] struct {
	A T `json:"a"`
	B T `json:"b"`
	G T `json:"g"`
	R T `json:"r"`
}

// Gray is a single luma component.
type Gray[T component.Number] struct {
	Y T `json:"y"`
}

// GrayAlpha is a luma component followed by alpha.
type GrayAlpha[T component.Number] struct {
	Y T `json:"y"`
	A T `json:"a"`
}
