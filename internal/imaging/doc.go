// Package imaging loads images and reports pixel colors for the MCP server.
//
// This package bridges decoded image.Image values and the pixel format family:
// it samples single pixels, describes each sample in a fixed set of pixel
// formats and component types, parses CSS-style hex colors, and renders
// color/luma swatches. Coordinates use the standard convention where (0,0) is
// the top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless and can be called concurrently.
//
// # Color Representation
//
// ColorResult reports one color in every layout the server exposes:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - RGB, BGR, GRB, RGBA, ARGB, BGRA, ABGR: 8-bit components
//   - RGBA16, RGBAFloat: 16-bit and unit float components
//   - Gray, GrayAlpha, Gray16, GrayFloat: sRGB luma
//
// All of them are produced from one straight-alpha 16-bit sample through
// the pixel package, so they never disagree by more than rounding.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Malformed hex colors or alpha outside [0, 1]
//   - Swatch sizes outside 1..MaxSwatchSize
//   - File I/O errors during image loading
//   - Encoding errors during image output
package imaging
