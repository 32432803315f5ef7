package colorconv

import (
	"fmt"
	"math"
	"strings"
)

// SaturationGuard selects how RGBToHLS computes saturation at the lightness
// where the HLS saturation formula becomes singular.
type SaturationGuard int

const (
	// GuardDenominator sets S = 1 only when 1 - |2L - 1| is zero, i.e. at
	// L == 0 or L == 1. Every other lightness uses delta / (1 - |2L - 1|).
	GuardDenominator SaturationGuard = iota

	// GuardReference sets S = 1 whenever L is exactly 0.5, regardless of
	// chroma. Round trips through HLS can then miss by far more than
	// HLSRoundTripTolerance.
	GuardReference
)

func (g SaturationGuard) String() string {
	switch g {
	case GuardDenominator:
		return "denominator"
	case GuardReference:
		return "reference"
	default:
		return fmt.Sprintf("SaturationGuard(%d)", int(g))
	}
}

// ParseSaturationGuard accepts "denominator" and "reference".
func ParseSaturationGuard(s string) (SaturationGuard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "denominator":
		return GuardDenominator, nil
	case "reference":
		return GuardReference, nil
	default:
		return GuardDenominator, fmt.Errorf("unknown saturation guard: %q", s)
	}
}

// saturation computes HLS saturation from chroma delta (non-zero) and
// lightness l.
func (g SaturationGuard) saturation(delta, l float64) float64 {
	if g == GuardReference && l == 0.5 {
		return 1
	}
	den := 1 - math.Abs(2*l-1)
	if den == 0 {
		return 1
	}
	return delta / den
}

