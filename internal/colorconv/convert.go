package colorconv

import "math"

// Converter performs the four conversions with a fixed rounding rule and
// saturation guard. The zero value uses RoundHalfEven and GuardDenominator.
type Converter struct {
	Rounding   Rounding
	Saturation SaturationGuard
}

// NewConverter returns a Converter using the given rounding rule and the
// default saturation guard.
func NewConverter(r Rounding) Converter {
	return Converter{Rounding: r}
}

// WithSaturationGuard returns a copy of cv using g.
func (cv Converter) WithSaturationGuard(g SaturationGuard) Converter {
	cv.Saturation = g
	return cv
}

var defaultConverter Converter

// RGBToCMYK converts with the default (half-even) converter.
func RGBToCMYK(c RGB) CMYK { return defaultConverter.RGBToCMYK(c) }

// CMYKToRGB converts with the default (half-even) converter.
func CMYKToRGB(c CMYK) RGB { return defaultConverter.CMYKToRGB(c) }

// RGBToHLS converts with the default (half-even) converter.
func RGBToHLS(c RGB) HLS { return defaultConverter.RGBToHLS(c) }

// HLSToRGB converts with the default (half-even) converter.
func HLSToRGB(c HLS) RGB { return defaultConverter.HLSToRGB(c) }

// RGBToCMYK converts an RGB triple to CMYK percentages.
//
// Pure black maps to (0, 0, 0, 100). Otherwise K = 1 - max(R, G, B) and each
// of C, M, Y is (1 - channel - K) / (1 - K), all scaled to percent.
func (cv Converter) RGBToCMYK(c RGB) CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{K: MaxPercent}
	}

	r := float64(c.R) / MaxRGB
	g := float64(c.G) / MaxRGB
	b := float64(c.B) / MaxRGB

	k := 1 - math.Max(r, math.Max(g, b))
	inv := 1 - k

	ink := func(ch float64) float64 {
		if inv == 0 {
			return 0
		}
		return (1 - ch - k) / inv
	}

	return CMYK{
		C: cv.percent(ink(r)),
		M: cv.percent(ink(g)),
		Y: cv.percent(ink(b)),
		K: cv.percent(k),
	}
}

// CMYKToRGB converts CMYK percentages to an RGB triple.
// Each channel is 255 * (1 - ink) * (1 - K), rounded and clamped.
func (cv Converter) CMYKToRGB(c CMYK) RGB {
	cc := float64(c.C) / MaxPercent
	m := float64(c.M) / MaxPercent
	y := float64(c.Y) / MaxPercent
	k := float64(c.K) / MaxPercent

	return RGB{
		R: cv.channel(MaxRGB * (1 - cc) * (1 - k)),
		G: cv.channel(MaxRGB * (1 - m) * (1 - k)),
		B: cv.channel(MaxRGB * (1 - y) * (1 - k)),
	}
}

// RGBToHLS converts an RGB triple to hue, lightness and saturation.
//
// Achromatic input (R == G == B) yields H = 0 and S = 0. The hue sector is
// picked by the largest channel, testing red, then green, then blue.
// Saturation at the singular lightness follows cv.Saturation.
func (cv Converter) RGBToHLS(c RGB) HLS {
	r := float64(c.R) / MaxRGB
	g := float64(c.G) / MaxRGB
	b := float64(c.B) / MaxRGB

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	l := (cmax + cmin) / 2

	var h, s float64
	if delta != 0 {
		s = cv.Saturation.saturation(delta, l)

		switch cmax {
		case r:
			h = 60 * floorMod((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		default:
			h = 60 * ((r-g)/delta + 4)
		}
	}

	return HLS{
		H: WrapHue(cv.Rounding.Round(floorMod(h, HueDegrees))),
		L: cv.percent(l),
		S: cv.percent(s),
	}
}

// HLSToRGB converts hue, lightness and saturation to an RGB triple.
//
// Zero saturation is achromatic regardless of hue: every channel equals the
// lightness.
func (cv Converter) HLSToRGB(c HLS) RGB {
	h := float64(c.H) / HueDegrees
	l := float64(c.L) / MaxPercent
	s := float64(c.S) / MaxPercent

	if s == 0 {
		v := cv.channel(l * MaxRGB)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: cv.channel(hueToRGB(p, q, h+1.0/3) * MaxRGB),
		G: cv.channel(hueToRGB(p, q, h) * MaxRGB),
		B: cv.channel(hueToRGB(p, q, h-1.0/3) * MaxRGB),
	}
}

// hueToRGB evaluates one channel of the HLS piecewise transform at hue
// position t (in turns).
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// floorMod is the modulo whose result takes the sign of m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

func (cv Converter) percent(x float64) int {
	return Clamp(cv.Rounding.Round(x*MaxPercent), 0, MaxPercent)
}

func (cv Converter) channel(x float64) int {
	return Clamp(cv.Rounding.Round(x), 0, MaxRGB)
}
