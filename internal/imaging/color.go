package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

// ColorResult is one color expressed in every supported model.
type ColorResult struct {
	Hex   string         `json:"hex"`   // "#RRGGBB" (no alpha)
	RGB   colorconv.RGB  `json:"rgb"`   // canonical components
	CMYK  colorconv.CMYK `json:"cmyk"`  // derived from RGB
	HLS   colorconv.HLS  `json:"hls"`   // derived from RGB
	Alpha int            `json:"alpha"` // 0 = transparent, 255 = opaque
}

// NewColorResult derives the CMYK and HLS views of rgb with conv.
func NewColorResult(conv colorconv.Converter, rgb colorconv.RGB, alpha int) ColorResult {
	return ColorResult{
		Hex:   rgb.Hex(),
		RGB:   rgb,
		CMYK:  conv.RGBToCMYK(rgb),
		HLS:   conv.RGBToHLS(rgb),
		Alpha: alpha,
	}
}

func resultFromColor(conv colorconv.Converter, c color.Color) ColorResult {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColorResult(conv, colorconv.FromColor(n), int(n.A))
}

// SampleColor picks the color of the pixel at (x, y).
//
// Returns an error if the coordinates lie outside the image bounds.
// Translucent pixels are reported un-premultiplied, so their RGB shows the
// hue the pixel was painted with; Alpha carries the transparency.
func SampleColor(img image.Image, conv colorconv.Converter, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	result := resultFromColor(conv, img.At(x, y))
	return &result, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult is a sampled color together with where it came from.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point. It fails as a whole if any point is
// out of bounds; no partial results are returned.
func SampleColorsMulti(img image.Image, conv colorconv.Converter, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, conv, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle within an image; (X1,Y1) inclusive, (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts r to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// bounds resolves an optional region against img, validating it.
func bounds(img image.Image, region *Region) (image.Rectangle, error) {
	b := img.Bounds()
	if region == nil {
		return b, nil
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	r := region.Rect()
	if !r.In(b) {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
	return r, nil
}

// AverageColor returns the mean color of region (or the whole image when
// region is nil). The region is cropped and box-filtered down to a single
// pixel.
func AverageColor(img image.Image, conv colorconv.Converter, region *Region) (*ColorResult, error) {
	r, err := bounds(img, region)
	if err != nil {
		return nil, err
	}

	cropped := imaging.Crop(img, r)
	pixel := imaging.Resize(cropped, 1, 1, imaging.Box)

	result := resultFromColor(conv, pixel.At(0, 0))
	return &result, nil
}

// ColorFrequency is one entry of a dominant-color palette.
type ColorFrequency struct {
	ColorResult
	Percentage float64 `json:"percentage"` // share of pixels, 0-100
}

// DominantColorsResult is a palette sorted by frequency, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most frequent colors in region
// (or the whole image when region is nil).
//
// Channels are quantized to multiples of 16 before counting so that near
// identical shades are grouped:
//
//	quantized = (original / 16) * 16
//
// Ties are broken by hex string so results are deterministic.
func DominantColors(img image.Image, conv colorconv.Converter, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	r, err := bounds(img, region)
	if err != nil {
		return nil, err
	}

	counts := make(map[colorconv.RGB]int)
	total := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := colorconv.FromColor(img.At(x, y))
			c = colorconv.RGB{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			counts[c]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			ColorResult: NewColorResult(conv, c, 0xff),
			Percentage:  float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
