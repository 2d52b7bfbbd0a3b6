package pixel

import (
	"image/color"

	"github.com/ironsheep/pixel-tools-mcp/internal/component"
)

// premultiply returns r, g, b, a as 16-bit alpha-premultiplied values, the
// contract of color.Color.
func premultiply[T component.Number](r, g, b, a T) (uint32, uint32, uint32, uint32) {
	a16 := uint32(component.Convert[uint16](a))
	mul := func(v T) uint32 {
		return uint32(component.Convert[uint16](v)) * a16 / 0xffff
	}
	return mul(r), mul(g), mul(b), a16
}

// RGBA implements color.Color.
func (p RGB[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p BGR[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p GRB[T]) RGBA() (r, g, b, a uint32) {
	return premultiply(p.R, p.G, p.B, component.Max[T]())
}

// RGBA implements color.Color.
func (p RGBA[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p ARGB[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p BGRA[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p ABGR[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p Gray[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// RGBA implements color.Color.
func (p GrayAlpha[T]) RGBA() (r, g, b, a uint32) { return premultiply[T](p.colorView()) }

// straight returns c as non-premultiplied 16-bit components.
func straight(c color.Color) RGBA[uint16] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA[uint16]{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromColor converts any color.Color into the color format Q with component
// type D. The color is read as straight (non-premultiplied) 16-bit RGBA and
// then converted like any other RGBA[uint16] pixel. Fully transparent colors
// have no recoverable color and come back as transparent black.
func FromColor[Q Target[D, Q], D component.Number](c color.Color) Q {
	return Convert[Q, D, uint16](straight(c))
}

// FromColorGray converts any color.Color to Gray, dropping alpha.
func FromColorGray[D component.Number](c color.Color) Gray[D] {
	return ConvertGray[D, uint16](straight(c))
}

// Model returns a color.Model that converts into Q with component type D.
// It can be used wherever image/draw expects a model, e.g. to ask an image
// for its colors in a specific layout.
func Model[Q Target[D, Q], D component.Number]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return FromColor[Q, D](c)
	})
}
