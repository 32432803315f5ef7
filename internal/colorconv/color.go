package colorconv

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Component ranges.
const (
	MaxRGB     = 255
	MaxPercent = 100
	HueDegrees = 360
)

// Per-channel round-trip error bounds over the whole RGB cube.
const (
	CMYKRoundTripTolerance = 2
	HLSRoundTripTolerance  = 5
)

// ErrInvalidHex is returned by ParseHex for strings that are not "#RRGGBB"
// or "#RGB".
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is an additive color with 8-bit channels. It is the canonical
// representation from which CMYK and HLS are derived.
type RGB struct {
	R int `json:"r"` // Red: 0-255
	G int `json:"g"` // Green: 0-255
	B int `json:"b"` // Blue: 0-255
}

// CMYK is a subtractive color with percentage channels.
type CMYK struct {
	C int `json:"c"` // Cyan: 0-100
	M int `json:"m"` // Magenta: 0-100
	Y int `json:"y"` // Yellow: 0-100
	K int `json:"k"` // Key (black): 0-100
}

// HLS is a cylindrical color: hue in degrees, lightness and saturation in
// percent. Positional contracts order the components H, L, S.
type HLS struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=pure, 100=white)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapHue maps any hue in degrees onto [0, 360).
func WrapHue(h int) int {
	h %= HueDegrees
	if h < 0 {
		h += HueDegrees
	}
	return h
}

// Clamp returns c with every channel limited to 0-255.
func (c RGB) Clamp() RGB {
	return RGB{
		R: Clamp(c.R, 0, MaxRGB),
		G: Clamp(c.G, 0, MaxRGB),
		B: Clamp(c.B, 0, MaxRGB),
	}
}

// Clamp returns c with every channel limited to 0-100.
func (c CMYK) Clamp() CMYK {
	return CMYK{
		C: Clamp(c.C, 0, MaxPercent),
		M: Clamp(c.M, 0, MaxPercent),
		Y: Clamp(c.Y, 0, MaxPercent),
		K: Clamp(c.K, 0, MaxPercent),
	}
}

// Clamp returns c with the hue wrapped into [0, 360) and lightness and
// saturation limited to 0-100.
func (c HLS) Clamp() HLS {
	return HLS{
		H: WrapHue(c.H),
		L: Clamp(c.L, 0, MaxPercent),
		S: Clamp(c.S, 0, MaxPercent),
	}
}

// Components returns the channels in R, G, B order.
func (c RGB) Components() []int { return []int{c.R, c.G, c.B} }

// Components returns the channels in C, M, Y, K order.
func (c CMYK) Components() []int { return []int{c.C, c.M, c.Y, c.K} }

// Components returns the channels in H, L, S order.
func (c HLS) Components() []int { return []int{c.H, c.L, c.S} }

func (c RGB) String() string {
	return fmt.Sprintf("RGB: (%d, %d, %d)", c.R, c.G, c.B)
}

func (c CMYK) String() string {
	return fmt.Sprintf("CMYK: (%d, %d, %d, %d)", c.C, c.M, c.Y, c.K)
}

func (c HLS) String() string {
	return fmt.Sprintf("HLS: (%d, %d, %d)", c.H, c.L, c.S)
}

// Hex formats c as an upper-case "#RRGGBB" string.
func (c RGB) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// Color converts c to an opaque image/color value.
func (c RGB) Color() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

func (c RGB) colorful() colorful.Color {
	c = c.Clamp()
	return colorful.Color{
		R: float64(c.R) / MaxRGB,
		G: float64(c.G) / MaxRGB,
		B: float64(c.B) / MaxRGB,
	}
}

// FromColor converts any image/color value to 8-bit RGB, dropping alpha.
// Premultiplied colors are converted to straight alpha first so that
// translucent pixels keep their hue.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: int(n.R), G: int(n.G), B: int(n.B)}
}

// ParseHex parses "#RRGGBB" or "#RGB" (case-insensitive, leading '#'
// optional) into an RGB triple.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 || strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}
