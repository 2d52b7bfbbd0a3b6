package pixel

import "github.com/ironsheep/pixel-tools-mcp/internal/component"

// Alpha synthesis. Opaque formats with an alpha counterpart gain a fully
// opaque alpha (component.Max); formats that already carry alpha return
// themselves. WithoutAlpha is the inverse where a counterpart exists.

// WithAlpha returns p as a fully opaque RGBA.
func (p RGB[T]) WithAlpha() RGBA[T] {
	return RGBA[T]{R: p.R, G: p.G, B: p.B, A: component.Max[T]()}
}

// WithAlpha returns p as a fully opaque BGRA.
func (p BGR[T]) WithAlpha() BGRA[T] {
	return BGRA[T]{B: p.B, G: p.G, R: p.R, A: component.Max[T]()}
}

// WithAlpha returns p as a fully opaque GrayAlpha.
func (p Gray[T]) WithAlpha() GrayAlpha[T] {
	return GrayAlpha[T]{Y: p.Y, A: component.Max[T]()}
}

// WithAlpha returns p unchanged.
func (p RGBA[T]) WithAlpha() RGBA[T] { return p }

// WithAlpha returns p unchanged.
func (p ARGB[T]) WithAlpha() ARGB[T] { return p }

// WithAlpha returns p unchanged.
func (p BGRA[T]) WithAlpha() BGRA[T] { return p }

// WithAlpha returns p unchanged.
func (p ABGR[T]) WithAlpha() ABGR[T] { return p }

// WithAlpha returns p unchanged.
func (p GrayAlpha[T]) WithAlpha() GrayAlpha[T] { return p }

// WithoutAlpha drops alpha.
func (p RGBA[T]) WithoutAlpha() RGB[T] { return RGB[T]{R: p.R, G: p.G, B: p.B} }

// WithoutAlpha drops alpha.
func (p BGRA[T]) WithoutAlpha() BGR[T] { return BGR[T]{B: p.B, G: p.G, R: p.R} }

// WithoutAlpha drops alpha.
func (p GrayAlpha[T]) WithoutAlpha() Gray[T] { return Gray[T]{Y: p.Y} }

// WithoutAlpha returns p unchanged.
func (p RGB[T]) WithoutAlpha() RGB[T] { return p }

// WithoutAlpha returns p unchanged.
func (p BGR[T]) WithoutAlpha() BGR[T] { return p }

// WithoutAlpha returns p unchanged.
func (p GRB[T]) WithoutAlpha() GRB[T] { return p }

// WithoutAlpha returns p unchanged.
func (p Gray[T]) WithoutAlpha() Gray[T] { return p }
