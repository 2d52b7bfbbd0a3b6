// Package component converts single pixel components between primitive
// numeric types.
//
// Every component type has a range pair used as the normalization anchor:
//   - Integers use their full representable range (uint8: 0..255,
//     int8: -128..127, ...).
//   - Floats use the closed unit interval [0, 1].
//
// # Conversion
//
// [Convert] maps a value from one range onto another. Values of the same
// numeric kind pass through unchanged, uint8 and uint16 convert through exact
// integer shortcuts, float32 and float64 cast directly, and every other pair is
// normalized through float64. Conversion never fails: out-of-range and NaN
// float input is clamped before it reaches an integer type.
//
// # Accumulation
//
// [Wide] is an enlarged accumulator for weighted sums of components. Values
// enter with [Enlarge] (exact) and leave with [Narrow] (clamped to the
// destination range).
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package component
