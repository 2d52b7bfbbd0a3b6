package pixel

// Format identifies one of the fixed pixel layouts.
type Format uint8

const (
	// FormatGray is a single luma component.
	FormatGray Format = iota

	// FormatGrayAlpha is luma followed by alpha.
	FormatGrayAlpha

	// FormatRGB is red, green, blue.
	FormatRGB

	// FormatBGR is blue, green, red.
	// Common for buffers shared with Windows and OpenCV.
	FormatBGR

	// FormatGRB is green, red, blue. It has no alpha counterpart.
	FormatGRB

	// FormatRGBA is red, green, blue, alpha.
	FormatRGBA

	// FormatARGB is alpha, red, green, blue.
	FormatARGB

	// FormatBGRA is blue, green, red, alpha.
	FormatBGRA

	// FormatABGR is alpha, blue, green, red.
	FormatABGR

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the display name of the format.
	Name string `json:"name"`

	// Channels is the number of components, alpha included.
	Channels int `json:"channels"`

	// HasAlpha indicates if the format has an alpha component.
	HasAlpha bool `json:"has_alpha"`

	// IsGrayscale indicates if the color is a single luma component.
	IsGrayscale bool `json:"is_grayscale"`

	// Layout lists the component roles in storage order, e.g. "b,g,r,a".
	Layout string `json:"layout"`

	alpha  Format
	opaque Format
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray: {
		Name:        "Gray",
		Channels:    1,
		IsGrayscale: true,
		Layout:      "y",
		alpha:       FormatGrayAlpha,
		opaque:      FormatGray,
	},
	FormatGrayAlpha: {
		Name:        "GrayAlpha",
		Channels:    2,
		HasAlpha:    true,
		IsGrayscale: true,
		Layout:      "y,a",
		alpha:       FormatGrayAlpha,
		opaque:      FormatGray,
	},
	FormatRGB: {
		Name:     "RGB",
		Channels: 3,
		Layout:   "r,g,b",
		alpha:    FormatRGBA,
		opaque:   FormatRGB,
	},
	FormatBGR: {
		Name:     "BGR",
		Channels: 3,
		Layout:   "b,g,r",
		alpha:    FormatBGRA,
		opaque:   FormatBGR,
	},
	FormatGRB: {
		Name:     "GRB",
		Channels: 3,
		Layout:   "g,r,b",
		alpha:    FormatGRB,
		opaque:   FormatGRB,
	},
	FormatRGBA: {
		Name:     "RGBA",
		Channels: 4,
		HasAlpha: true,
		Layout:   "r,g,b,a",
		alpha:    FormatRGBA,
		opaque:   FormatRGB,
	},
	FormatARGB: {
		Name:     "ARGB",
		Channels: 4,
		HasAlpha: true,
		Layout:   "a,r,g,b",
		alpha:    FormatARGB,
		opaque:   FormatARGB,
	},
	FormatBGRA: {
		Name:     "BGRA",
		Channels: 4,
		HasAlpha: true,
		Layout:   "b,g,r,a",
		alpha:    FormatBGRA,
		opaque:   FormatBGR,
	},
	FormatABGR: {
		Name:     "ABGR",
		Channels: 4,
		HasAlpha: true,
		Layout:   "a,b,g,r",
		alpha:    FormatABGR,
		opaque:   FormatABGR,
	},
}

// Formats returns every known format in declaration order.
func Formats() []Format {
	out := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of components, alpha included.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha component.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// Layout returns the component roles in storage order.
func (f Format) Layout() string {
	return f.Info().Layout
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].Name
}

// MarshalText encodes the format by name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// WithAlpha returns the alpha-bearing counterpart of this format.
// Returns the same format if it already has alpha or has no counterpart.
func (f Format) WithAlpha() Format {
	if !f.IsValid() {
		return f
	}
	return formatInfoTable[f].alpha
}

// WithoutAlpha returns the opaque counterpart of this format.
// Returns the same format if it is already opaque or has no counterpart.
func (f Format) WithoutAlpha() Format {
	if !f.IsValid() {
		return f
	}
	return formatInfoTable[f].opaque
}
