package imaging

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-tools-mcp/internal/component"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains one color in a fixed set of pixel formats.
//
// Every field is derived from a single straight-alpha RGBA[uint16] value with
// the pixel conversion functions, so all representations agree:
//   - Hex: "#RRGGBB" for CSS/web usage (alpha excluded)
//   - HSL: perceptual representation computed with go-colorful
//   - RGB, RGBA, BGR, BGRA, ARGB, ABGR, GRB: 8-bit components in each layout
//   - RGBA16 and RGBAFloat: the same color at 16 bits and as unit floats
//   - Gray, GrayAlpha, Gray16, GrayFloat: sRGB luma at each precision
type ColorResult struct {
	Hex       string                 `json:"hex"`
	HSL       HSLColor               `json:"hsl"`
	RGB       pixel.RGB[uint8]       `json:"rgb"`
	RGBA      pixel.RGBA[uint8]      `json:"rgba"`
	BGR       pixel.BGR[uint8]       `json:"bgr"`
	BGRA      pixel.BGRA[uint8]      `json:"bgra"`
	ARGB      pixel.ARGB[uint8]      `json:"argb"`
	ABGR      pixel.ABGR[uint8]      `json:"abgr"`
	GRB       pixel.GRB[uint8]       `json:"grb"`
	RGBA16    pixel.RGBA[uint16]     `json:"rgba16"`
	RGBAFloat pixel.RGBA[float32]    `json:"rgba_float"`
	Gray      pixel.Gray[uint8]      `json:"gray"`
	GrayAlpha pixel.GrayAlpha[uint8] `json:"gray_alpha"`
	Gray16    pixel.Gray[uint16]     `json:"gray16"`
	GrayFloat pixel.Gray[float32]    `json:"gray_float"`
}

// Describe builds a ColorResult for a straight-alpha 16-bit color.
func Describe(c pixel.RGBA[uint16]) *ColorResult {
	rgb := pixel.Convert[pixel.RGB[uint8], uint8, uint16](c)

	// colorful works on straight components in [0, 1], which is the float
	// range of the component package.
	cf := colorful.Color{
		R: component.Convert[float64](rgb.R),
		G: component.Convert[float64](rgb.G),
		B: component.Convert[float64](rgb.B),
	}
	h, s, l := cf.Hsl()

	return &ColorResult{
		Hex: strings.ToUpper(cf.Hex()),
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		RGB:       rgb,
		RGBA:      pixel.Convert[pixel.RGBA[uint8], uint8, uint16](c),
		BGR:       pixel.Convert[pixel.BGR[uint8], uint8, uint16](c),
		BGRA:      pixel.Convert[pixel.BGRA[uint8], uint8, uint16](c),
		ARGB:      pixel.Convert[pixel.ARGB[uint8], uint8, uint16](c),
		ABGR:      pixel.Convert[pixel.ABGR[uint8], uint8, uint16](c),
		GRB:       pixel.ConvertOpaque[pixel.GRB[uint8], uint8, uint8](rgb),
		RGBA16:    c,
		RGBAFloat: pixel.Convert[pixel.RGBA[float32], float32, uint16](c),
		Gray:      pixel.ConvertGray[uint8, uint16](c),
		GrayAlpha: pixel.ConvertGrayAlpha[uint8, uint16](c),
		Gray16:    pixel.ConvertGray[uint16, uint16](c),
		GrayFloat: pixel.ConvertGray[float32, uint16](c),
	}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The native color is read as straight (non-premultiplied) 16-bit RGBA and
// every representation is converted from that. 16-bit images are rounded to
// 8 bits rather than truncated. Fully transparent pixels have no color and
// are reported as transparent black.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	return Describe(pixel.FromColor[pixel.RGBA[uint16], uint16](img.At(x, y))), nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// Parameters:
//   - img: The source image to sample from.
//   - points: Slice of coordinates to sample. Each point may have an optional label.
//
// Returns:
//   - *MultiColorResult: Colors at all requested points, in the same order as input.
//   - error: Non-nil if any coordinate is outside the image bounds. On error, no
//     partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ParseColor parses a CSS-style hex color with an alpha in [0, 1].
//
// Parameters:
//   - hex: "#RGB" or "#RRGGBB"; the leading '#' is optional.
//   - alpha: Opacity from 0 (transparent) to 1 (opaque).
//
// Returns:
//   - pixel.RGBA[uint16]: The color as straight 16-bit RGBA.
//   - error: Non-nil if hex is malformed or alpha is out of range.
func ParseColor(hex string, alpha float64) (pixel.RGBA[uint16], error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return pixel.RGBA[uint16]{}, fmt.Errorf("alpha %v outside [0, 1]", alpha)
	}

	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return pixel.RGBA[uint16]{}, fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", hex)
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return pixel.RGBA[uint16]{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	c := pixel.RGBA[float64]{R: cf.R, G: cf.G, B: cf.B, A: alpha}
	return pixel.Convert[pixel.RGBA[uint16], uint16, float64](c), nil
}

// ConvertHex parses a hex color and describes it in every reported format.
func ConvertHex(hex string, alpha float64) (*ColorResult, error) {
	c, err := ParseColor(hex, alpha)
	if err != nil {
		return nil, err
	}
	return Describe(c), nil
}
