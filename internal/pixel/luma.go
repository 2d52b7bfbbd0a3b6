package pixel

import "github.com/ironsheep/pixel-tools-mcp/internal/component"

// Rec. 709 / sRGB luma weights, scaled by lumaScale.
const (
	lumaR     = 2126
	lumaG     = 7152
	lumaB     = 722
	lumaScale = 10000
)

// luma computes the weighted sum of r, g and b in the enlarged accumulator
// and clamps it back to T. Integer sums truncate toward zero.
func luma[T component.Number](r, g, b T) T {
	l := component.Enlarge(r).Mul(lumaR).
		Add(component.Enlarge(g).Mul(lumaG)).
		Add(component.Enlarge(b).Mul(lumaB))
	return component.Narrow[T](l.Quo(lumaScale))
}

// ToGray collapses p to luma.
func (p RGB[T]) ToGray() Gray[T] { return Gray[T]{Y: luma(p.R, p.G, p.B)} }

// ToGray collapses p to luma.
func (p BGR[T]) ToGray() Gray[T] { return Gray[T]{Y: luma(p.R, p.G, p.B)} }

// ToGray collapses p to luma.
func (p GRB[T]) ToGray() Gray[T] { return Gray[T]{Y: luma(p.R, p.G, p.B)} }

// ToGray collapses the colors of p to luma and keeps alpha.
func (p RGBA[T]) ToGray() GrayAlpha[T] { return GrayAlpha[T]{Y: luma(p.R, p.G, p.B), A: p.A} }

// ToGray collapses the colors of p to luma and keeps alpha.
func (p ARGB[T]) ToGray() GrayAlpha[T] { return GrayAlpha[T]{Y: luma(p.R, p.G, p.B), A: p.A} }

// ToGray collapses the colors of p to luma and keeps alpha.
func (p BGRA[T]) ToGray() GrayAlpha[T] { return GrayAlpha[T]{Y: luma(p.R, p.G, p.B), A: p.A} }

// ToGray collapses the colors of p to luma and keeps alpha.
func (p ABGR[T]) ToGray() GrayAlpha[T] { return GrayAlpha[T]{Y: luma(p.R, p.G, p.B), A: p.A} }

// ToRGB broadcasts y to r, g and b.
func (p Gray[T]) ToRGB() RGB[T] { return RGB[T]{R: p.Y, G: p.Y, B: p.Y} }

// ToRGB broadcasts y to r, g and b and keeps alpha.
func (p GrayAlpha[T]) ToRGB() RGBA[T] { return RGBA[T]{R: p.Y, G: p.Y, B: p.Y, A: p.A} }
