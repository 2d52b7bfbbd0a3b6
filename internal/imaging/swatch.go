package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// MaxSwatchSize is the largest accepted swatch panel edge in pixels.
const MaxSwatchSize = 1024

// SwatchResult contains a rendered swatch image.
type SwatchResult struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	ImageBase64 string       `json:"image_base64"`
	MimeType    string       `json:"mime_type"`
	Color       *ColorResult `json:"color"`
}

// RenderSwatch draws a color next to its luma as a PNG.
//
// The image is two size x size panels side by side: the left panel is c,
// the right panel is c collapsed to GrayAlpha, so the pair shows how the
// color reads in grayscale. Alpha is kept in both panels. Panels wide enough
// for it carry the hex code in the lower left corner, drawn in black or
// white depending on the luma.
//
// Parameters:
//   - c: The color as straight 16-bit RGBA.
//   - size: Panel edge in pixels, 1 to MaxSwatchSize.
//
// Returns:
//   - *SwatchResult: The base64 PNG and the color description.
//   - error: Non-nil if size is out of range or encoding fails.
func RenderSwatch(c pixel.RGBA[uint16], size int) (*SwatchResult, error) {
	if size < 1 || size > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size %d outside 1..%d", size, MaxSwatchSize)
	}

	luma := pixel.ConvertGrayAlpha[uint16, uint16](c)

	canvas := imaging.New(2*size, size, color.Transparent)
	canvas = imaging.Paste(canvas, imaging.New(size, size, c), image.Pt(0, 0))
	canvas = imaging.Paste(canvas, imaging.New(size, size, luma), image.Pt(size, 0))

	desc := Describe(c)
	drawHexLabel(canvas, desc.Hex, size, desc.Gray.Y)

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Color:       desc,
	}, nil
}

// labelFace is the fixed 7x13 face used for swatch labels.
var labelFace = basicfont.Face7x13

// drawHexLabel writes hex along the bottom of the color panel when the panel
// is large enough to hold it with a 3 pixel margin.
func drawHexLabel(dst *image.NRGBA, hex string, size int, gray uint8) {
	const margin = 3
	width := font.MeasureString(labelFace, hex).Ceil()
	if width+2*margin > size || labelFace.Height+2*margin > size {
		return
	}

	ink := color.Color(color.Black)
	if gray < 128 {
		ink = color.White
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: labelFace,
		Dot:  fixed.P(margin, size-margin-labelFace.Descent),
	}
	d.DrawString(hex)
}
