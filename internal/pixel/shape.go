package pixel

// Every format exposes the same shape methods:
//
//	Format()                 the layout tag
//	Components()             all components in storage order
//	Colors()                 color components in storage order, alpha excluded
//	WithComponents(c)        rebuild from a full component list
//	WithColors(c, a)         rebuild from colors plus alpha; opaque formats drop a
//	MapColors(f)             apply f to every color component, alpha kept
//	MapAlpha(f)              apply f to alpha; identity on opaque formats
//
// WithComponents and WithColors panic if c is shorter than the format needs.

// Format returns FormatRGB.
func (p RGB[T]) Format() Format { return FormatRGB }

// Components returns [r, g, b].
func (p RGB[T]) Components() []T { return []T{p.R, p.G, p.B} }

// Colors returns [r, g, b].
func (p RGB[T]) Colors() []T { return []T{p.R, p.G, p.B} }

// WithComponents builds an RGB from [r, g, b].
func (p RGB[T]) WithComponents(c []T) RGB[T] { return RGB[T]{R: c[0], G: c[1], B: c[2]} }

// WithColors builds an RGB from [r, g, b]. The alpha argument is discarded.
func (p RGB[T]) WithColors(c []T, _ T) RGB[T] { return p.WithComponents(c) }

// MapColors applies f to each component.
func (p RGB[T]) MapColors(f func(T) T) RGB[T] { return RGB[T]{R: f(p.R), G: f(p.G), B: f(p.B)} }

// MapAlpha returns p unchanged.
func (p RGB[T]) MapAlpha(func(T) T) RGB[T] { return p }

// Format returns FormatBGR.
func (p BGR[T]) Format() Format { return FormatBGR }

// Components returns [b, g, r].
func (p BGR[T]) Components() []T { return []T{p.B, p.G, p.R} }

// Colors returns [b, g, r].
func (p BGR[T]) Colors() []T { return []T{p.B, p.G, p.R} }

// WithComponents builds a BGR from [b, g, r].
func (p BGR[T]) WithComponents(c []T) BGR[T] { return BGR[T]{B: c[0], G: c[1], R: c[2]} }

// WithColors builds a BGR from [b, g, r]. The alpha argument is discarded.
func (p BGR[T]) WithColors(c []T, _ T) BGR[T] { return p.WithComponents(c) }

// MapColors applies f to each component.
func (p BGR[T]) MapColors(f func(T) T) BGR[T] { return BGR[T]{B: f(p.B), G: f(p.G), R: f(p.R)} }

// MapAlpha returns p unchanged.
func (p BGR[T]) MapAlpha(func(T) T) BGR[T] { return p }

// Format returns FormatGRB.
func (p GRB[T]) Format() Format { return FormatGRB }

// Components returns [g, r, b].
func (p GRB[T]) Components() []T { return []T{p.G, p.R, p.B} }

// Colors returns [g, r, b].
func (p GRB[T]) Colors() []T { return []T{p.G, p.R, p.B} }

// WithComponents builds a GRB from [g, r, b].
func (p GRB[T]) WithComponents(c []T) GRB[T] { return GRB[T]{G: c[0], R: c[1], B: c[2]} }

// WithColors builds a GRB from [g, r, b]. The alpha argument is discarded.
func (p GRB[T]) WithColors(c []T, _ T) GRB[T] { return p.WithComponents(c) }

// MapColors applies f to each component.
func (p GRB[T]) MapColors(f func(T) T) GRB[T] { return GRB[T]{G: f(p.G), R: f(p.R), B: f(p.B)} }

// MapAlpha returns p unchanged.
func (p GRB[T]) MapAlpha(func(T) T) GRB[T] { return p }

// Format returns FormatRGBA.
func (p RGBA[T]) Format() Format { return FormatRGBA }

// Components returns [r, g, b, a].
func (p RGBA[T]) Components() []T { return []T{p.R, p.G, p.B, p.A} }

// Colors returns [r, g, b].
func (p RGBA[T]) Colors() []T { return []T{p.R, p.G, p.B} }

// WithComponents builds an RGBA from [r, g, b, a].
func (p RGBA[T]) WithComponents(c []T) RGBA[T] {
	return RGBA[T]{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// WithColors builds an RGBA from [r, g, b] and a.
func (p RGBA[T]) WithColors(c []T, a T) RGBA[T] {
	return RGBA[T]{R: c[0], G: c[1], B: c[2], A: a}
}

// MapColors applies f to r, g and b.
func (p RGBA[T]) MapColors(f func(T) T) RGBA[T] {
	return RGBA[T]{R: f(p.R), G: f(p.G), B: f(p.B), A: p.A}
}

// MapAlpha applies f to a.
func (p RGBA[T]) MapAlpha(f func(T) T) RGBA[T] {
	p.A = f(p.A)
	return p
}

// Format returns FormatARGB.
func (p ARGB[T]) Format() Format { return FormatARGB }

// Components returns [a, r, g, b].
func (p ARGB[T]) Components() []T { return []T{p.A, p.R, p.G, p.B} }

// Colors returns [r, g, b].
func (p ARGB[T]) Colors() []T { return []T{p.R, p.G, p.B} }

// WithComponents builds an ARGB from [a, r, g, b].
func (p ARGB[T]) WithComponents(c []T) ARGB[T] {
	return ARGB[T]{A: c[0], R: c[1], G: c[2], B: c[3]}
}

// WithColors builds an ARGB from [r, g, b] and a.
func (p ARGB[T]) WithColors(c []T, a T) ARGB[T] {
	return ARGB[T]{A: a, R: c[0], G: c[1], B: c[2]}
}

// MapColors applies f to r, g and b.
func (p ARGB[T]) MapColors(f func(T) T) ARGB[T] {
	return ARGB[T]{A: p.A, R: f(p.R), G: f(p.G), B: f(p.B)}
}

// MapAlpha applies f to a.
func (p ARGB[T]) MapAlpha(f func(T) T) ARGB[T] {
	p.A = f(p.A)
	return p
}

// Format returns FormatBGRA.
func (p BGRA[T]) Format() Format { return FormatBGRA }

// Components returns [b, g, r, a].
func (p BGRA[T]) Components() []T { return []T{p.B, p.G, p.R, p.A} }

// Colors returns [b, g, r].
func (p BGRA[T]) Colors() []T { return []T{p.B, p.G, p.R} }

// WithComponents builds a BGRA from [b, g, r, a].
func (p BGRA[T]) WithComponents(c []T) BGRA[T] {
	return BGRA[T]{B: c[0], G: c[1], R: c[2], A: c[3]}
}

// WithColors builds a BGRA from [b, g, r] and a.
func (p BGRA[T]) WithColors(c []T, a T) BGRA[T] {
	return BGRA[T]{B: c[0], G: c[1], R: c[2], A: a}
}

// MapColors applies f to b, g and r.
func (p BGRA[T]) MapColors(f func(T) T) BGRA[T] {
	return BGRA[T]{B: f(p.B), G: f(p.G), R: f(p.R), A: p.A}
}

// MapAlpha applies f to a.
func (p BGRA[T]) MapAlpha(f func(T) T) BGRA[T] {
	p.A = f(p.A)
	return p
}

// Format returns FormatABGR.
func (p ABGR[T]) Format() Format { return FormatABGR }

// Components returns [a, b, g, r].
func (p ABGR[T]) Components() []T { return []T{p.A, p.B, p.G, p.R} }

// Colors returns [b, g, r].
func (p ABGR[T]) Colors() []T { return []T{p.B, p.G, p.R} }

// WithComponents builds an ABGR from [a, b, g, r].
func (p ABGR[T]) WithComponents(c []T) ABGR[T] {
	return ABGR[T]{A: c[0], B: c[1], G: c[2], R: c[3]}
}

// WithColors builds an ABGR from [b, g, r] and a.
func (p ABGR[T]) WithColors(c []T, a T) ABGR[T] {
	return ABGR[T]{A: a, B: c[0], G: c[1], R: c[2]}
}

// MapColors applies f to b, g and r.
func (p ABGR[T]) MapColors(f func(T) T) ABGR[T] {
	return ABGR[T]{A: p.A, B: f(p.B), G: f(p.G), R: f(p.R)}
}

// MapAlpha applies f to a.
func (p ABGR[T]) MapAlpha(f func(T) T) ABGR[T] {
	p.A = f(p.A)
	return p
}

// Format returns FormatGray.
func (p Gray[T]) Format() Format { return FormatGray }

// Components returns [y].
func (p Gray[T]) Components() []T { return []T{p.Y} }

// Colors returns [y].
func (p Gray[T]) Colors() []T { return []T{p.Y} }

// WithComponents builds a Gray from [y].
func (p Gray[T]) WithComponents(c []T) Gray[T] { return Gray[T]{Y: c[0]} }

// WithColors builds a Gray from [y]. The alpha argument is discarded.
func (p Gray[T]) WithColors(c []T, _ T) Gray[T] { return Gray[T]{Y: c[0]} }

// MapColors applies f to y.
func (p Gray[T]) MapColors(f func(T) T) Gray[T] { return Gray[T]{Y: f(p.Y)} }

// MapAlpha returns p unchanged.
func (p Gray[T]) MapAlpha(func(T) T) Gray[T] { return p }

// Format returns FormatGrayAlpha.
func (p GrayAlpha[T]) Format() Format { return FormatGrayAlpha }

// Components returns [y, a].
func (p GrayAlpha[T]) Components() []T { return []T{p.Y, p.A} }

// Colors returns [y].
func (p GrayAlpha[T]) Colors() []T { return []T{p.Y} }

// WithComponents builds a GrayAlpha from [y, a].
func (p GrayAlpha[T]) WithComponents(c []T) GrayAlpha[T] { return GrayAlpha[T]{Y: c[0], A: c[1]} }

// WithColors builds a GrayAlpha from [y] and a.
func (p GrayAlpha[T]) WithColors(c []T, a T) GrayAlpha[T] { return GrayAlpha[T]{Y: c[0], A: a} }

// MapColors applies f to y.
func (p GrayAlpha[T]) MapColors(f func(T) T) GrayAlpha[T] { return GrayAlpha[T]{Y: f(p.Y), A: p.A} }

// MapAlpha applies f to a.
func (p GrayAlpha[T]) MapAlpha(f func(T) T) GrayAlpha[T] { return GrayAlpha[T]{Y: p.Y, A: f(p.A)} }
