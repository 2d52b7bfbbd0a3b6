// Package pixel provides fixed-layout pixel color formats and conversions
// between them.
//
// Each format is a generic struct whose field order is the storage order of
// its components. All components of one pixel share one component type, any
// type satisfying component.Number. Pixels are small values: every operation
// returns a new pixel and never modifies its receiver.
//
// # Formats
//
//   - Gray{Y}, GrayAlpha{Y, A}
//   - RGB{R, G, B}, BGR{B, G, R}, GRB{G, R, B}
//   - RGBA{R, G, B, A}, ARGB{A, R, G, B}, BGRA{B, G, R, A}, ABGR{A, B, G, R}
//
// The Format type describes each layout at runtime (channels, alpha, layout
// string) for callers that need to report on them.
//
// # Conversion
//
// Conversions are resolved entirely at compile time:
//   - Convert: any color or gray format, except GRB, into RGB, BGR, RGBA,
//     ARGB, BGRA or ABGR
//   - ConvertOpaque: between RGB, BGR and GRB, or from Gray
//   - ConvertGray: any format into Gray
//   - ConvertGrayAlpha: any format except GRB into GrayAlpha
//
// A pair that is not supported, such as GRB into RGBA, does not compile.
// Component values are rescaled with component.Convert. Missing alpha is
// synthesized as fully opaque; luma is computed with the sRGB weights
// 0.2126, 0.7152 and 0.0722 at the source component precision before any
// rescaling; gray expands to color by copying luma into every channel.
//
// # Color Interop
//
// Every format implements color.Color, so pixels can be drawn with
// image/draw or compared with colors from decoded images. FromColor and
// Model go the other way.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package pixel
