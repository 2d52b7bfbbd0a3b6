package pixel

import (
	"image/color"

	"github.com/ironsheep/pixel-tools-mcp/internal/component"
)

// Source is satisfied by every format that can be read as straight
// (r, g, b, a): the RGB family with or without alpha, Gray and GrayAlpha.
// Opaque formats report a fully opaque alpha; gray formats broadcast luma.
// GRB does not satisfy Source.
type Source[T component.Number] interface {
	colorView() (r, g, b, a T)
}

// OpaqueSource is satisfied by RGB, BGR, GRB and Gray.
type OpaqueSource[T component.Number] interface {
	opaqueView() (r, g, b T)
}

// LumaSource is satisfied by every format. Color formats collapse to luma at
// their own component precision.
type LumaSource[T component.Number] interface {
	lumaView() (y, a T)
}

// Target is satisfied by RGB, BGR, RGBA, ARGB, BGRA and ABGR. Opaque targets
// drop the alpha they are given.
type Target[T component.Number, Self any] interface {
	color.Color
	build(r, g, b, a T) Self
}

// OpaqueTarget is satisfied by RGB, BGR and GRB.
type OpaqueTarget[T component.Number, Self any] interface {
	color.Color
	buildOpaque(r, g, b T) Self
}

// Convert converts p into the color format Q with component type D.
//
// Type arguments are the destination format, its component type and the
// source component type; the source format is inferred:
//
//	px := pixel.Convert[pixel.BGRA[uint16], uint16, uint8](pixel.RGB[uint8]{R: 255})
//
// Components are reordered by role and rescaled with component.Convert.
// Opaque sources gain a fully opaque alpha, gray sources are expanded by
// broadcasting luma, and opaque destinations drop alpha.
func Convert[Q Target[D, Q], D, S component.Number, P Source[S]](p P) Q {
	r, g, b, a := p.colorView()
	var q Q
	return q.build(
		component.Convert[D](r),
		component.Convert[D](g),
		component.Convert[D](b),
		component.Convert[D](a),
	)
}

// ConvertOpaque converts between the opaque formats, GRB included. Gray
// sources are expanded by broadcasting luma.
func ConvertOpaque[Q OpaqueTarget[D, Q], D, S component.Number, P OpaqueSource[S]](p P) Q {
	r, g, b := p.opaqueView()
	var q Q
	return q.buildOpaque(
		component.Convert[D](r),
		component.Convert[D](g),
		component.Convert[D](b),
	)
}

// ConvertGray converts any pixel to Gray. Luma is computed at the source
// component precision before rescaling; alpha is dropped.
func ConvertGray[D, S component.Number, P LumaSource[S]](p P) Gray[D] {
	y, _ := p.lumaView()
	return Gray[D]{Y: component.Convert[D](y)}
}

// ConvertGrayAlpha converts any pixel except GRB to GrayAlpha. Luma is
// computed at the source component precision; opaque sources gain a fully
// opaque alpha.
func ConvertGrayAlpha[D, S component.Number, P interface {
	Source[S]
	LumaSource[S]
}](p P) GrayAlpha[D] {
	y, a := p.lumaView()
	return GrayAlpha[D]{Y: component.Convert[D](y), A: component.Convert[D](a)}
}

func (p RGB[T]) colorView() (r, g, b, a T) { return p.R, p.G, p.B, component.Max[T]() }
func (p BGR[T]) colorView() (r, g, b, a T) { return p.R, p.G, p.B, component.Max[T]() }
func (p RGBA[T]) colorView() (r, g, b, a T) { return p.R, p.G, p.B, p.A }
func (p ARGB[T]) colorView() (r, g, b, a T) { return p.R, p.G, p.B, p.A }
func (p BGRA[T]) colorView() (r, g, b, a T) { return p.R, p.G, p.B, p.A }
func (p ABGR[T]) colorView() (r, g, b, a T) { return p.R, p.G, p.B, p.A }
func (p Gray[T]) colorView() (r, g, b, a T) { return p.Y, p.Y, p.Y, component.Max[T]() }
func (p GrayAlpha[T]) colorView() (r, g, b, a T) { return p.Y, p.Y, p.Y, p.A }

func (p RGB[T]) opaqueView() (r, g, b T) { return p.R, p.G, p.B }
func (p BGR[T]) opaqueView() (r, g, b T) { return p.R, p.G, p.B }
func (p GRB[T]) opaqueView() (r, g, b T) { return p.R, p.G, p.B }
func (p Gray[T]) opaqueView() (r, g, b T) { return p.Y, p.Y, p.Y }

func (p RGB[T]) lumaView() (y, a T) { return p.ToGray().Y, component.Max[T]() }
func (p BGR[T]) lumaView() (y, a T) { return p.ToGray().Y, component.Max[T]() }
func (p GRB[T]) lumaView() (y, a T) { return p.ToGray().Y, component.Max[T]() }

func (p RGBA[T]) lumaView() (y, a T) {
	g := p.ToGray()
	return g.Y, g.A
}

func (p ARGB[T]) lumaView() (y, a T) {
	g := p.ToGray()
	return g.Y, g.A
}

func (p BGRA[T]) lumaView() (y, a T) {
	g := p.ToGray()
	return g.Y, g.A
}

func (p ABGR[T]) lumaView() (y, a T) {
	g := p.ToGray()
	return g.Y, g.A
}

func (p Gray[T]) lumaView() (y, a T) { return p.Y, component.Max[T]() }
func (p GrayAlpha[T]) lumaView() (y, a T) { return p.Y, p.A }

func (p RGB[T]) build(r, g, b, _ T) RGB[T] { return RGB[T]{R: r, G: g, B: b} }
func (p BGR[T]) build(r, g, b, _ T) BGR[T] { return BGR[T]{B: b, G: g, R: r} }
func (p RGBA[T]) build(r, g, b, a T) RGBA[T] { return RGBA[T]{R: r, G: g, B: b, A: a} }
func (p ARGB[T]) build(r, g, b, a T) ARGB[T] { return ARGB[T]{A: a, R: r, G: g, B: b} }
func (p BGRA[T]) build(r, g, b, a T) BGRA[T] { return BGRA[T]{B: b, G: g, R: r, A: a} }
func (p ABGR[T]) build(r, g, b, a T) ABGR[T] { return ABGR[T]{A: a, B: b, G: g, R: r} }

func (p RGB[T]) buildOpaque(r, g, b T) RGB[T] { return RGB[T]{R: r, G: g, B: b} }
func (p BGR[T]) buildOpaque(r, g, b T) BGR[T] { return BGR[T]{B: b, G: g, R: r} }
func (p GRB[T]) buildOpaque(r, g, b T) GRB[T] { return GRB[T]{G: g, R: r, B: b} }
