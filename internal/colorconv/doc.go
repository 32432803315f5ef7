// Package colorconv converts colors between the RGB, CMYK and HLS models.
//
// RGB is the canonical representation. CMYK and HLS values are always
// derived from an RGB triple, and converting them back to RGB reproduces the
// original triple up to integer rounding. The other direction is not
// lossless: CMYK and HLS carry redundant degrees of freedom (pure black, for
// instance, has no hue).
//
// # Ranges
//
//   - RGB: R, G, B in 0-255
//   - CMYK: C, M, Y, K in 0-100 (percent)
//   - HLS: H in 0-359 (degrees, wraps modulo 360), L and S in 0-100 (percent)
//
// # Rounding
//
// Every conversion computes in float64 and rounds the result to an integer.
// The rule used for exact .5 cases is configurable through Converter:
//   - RoundHalfEven (default): 0.5 -> 0, 1.5 -> 2, 2.5 -> 2
//   - RoundHalfAwayFromZero: 0.5 -> 1, 1.5 -> 2, 2.5 -> 3
//
// The package-level functions use a Converter with RoundHalfEven.
//
// # Saturation Guard
//
// The HLS saturation formula delta / (1 - |2L - 1|) is singular at L == 0
// and L == 1. Converter.Saturation picks the fallback:
//   - GuardDenominator (default): S = 1 only where the denominator is zero
//   - GuardReference: S = 1 whenever L is exactly 0.5, as older HLS pickers
//     do; RGB(200, 55, 100) then reports S = 100 instead of 57
//
// The round-trip bounds below hold for GuardDenominator only.
//
// # Round-trip Tolerance
//
// Because CMYK and HLS components are whole percentages, a round trip
// through them cannot always land on the starting RGB triple. Over the full
// RGB cube the per-channel error is at most CMYKRoundTripTolerance for
// RGB->CMYK->RGB and HLSRoundTripTolerance for RGB->HLS->RGB, under either
// rounding rule with the default saturation guard.
//
// # Input Validation
//
// The conversions are total functions and never return errors. Callers are
// expected to clamp inputs first (see the Clamp methods); outputs are clamped
// to their documented ranges regardless.
package colorconv
