package colorconv

import (
	"fmt"
	"math"
	"strings"
)

// Rounding selects how exact half-integers are rounded.
type Rounding int

const (
	// RoundHalfEven rounds .5 to the nearest even integer (banker's rounding).
	RoundHalfEven Rounding = iota

	// RoundHalfAwayFromZero rounds .5 up in magnitude.
	RoundHalfAwayFromZero
)

func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfAwayFromZero:
		return "half-away"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding accepts "half-even" (or "even", "bankers") and "half-away"
// (or "away", "half-up").
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half-even", "even", "bankers":
		return RoundHalfEven, nil
	case "half-away", "away", "half-up":
		return RoundHalfAwayFromZero, nil
	default:
		return RoundHalfEven, fmt.Errorf("unknown rounding mode: %q", s)
	}
}

// Round rounds x to the nearest integer using r.
func (r Rounding) Round(x float64) int {
	if r == RoundHalfAwayFromZero {
		return int(math.Round(x))
	}
	return int(math.RoundToEven(x))
}
