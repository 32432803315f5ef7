package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

// Swatch defaults: a 200x200 square with a 2 pixel black border.
const (
	DefaultSwatchSize   = 200
	DefaultSwatchBorder = 2
	MaxSwatchSize       = 2048
)

// SwatchOptions controls the rendered swatch. Zero values select defaults;
// a negative Border disables the border.
type SwatchOptions struct {
	Width  int
	Height int
	Border int
}

func (o SwatchOptions) withDefaults() SwatchOptions {
	if o.Width == 0 {
		o.Width = DefaultSwatchSize
	}
	if o.Height == 0 {
		o.Height = DefaultSwatchSize
	}
	if o.Border == 0 {
		o.Border = DefaultSwatchBorder
	}
	if o.Border < 0 {
		o.Border = 0
	}
	return o
}

// SwatchResult contains a rendered swatch as base64 PNG.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Hex         string `json:"hex"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch draws a solid rectangle of rgb framed by a black border.
func RenderSwatch(rgb colorconv.RGB, opts SwatchOptions) (*SwatchResult, error) {
	img, err := SwatchImage(rgb, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	b := img.Bounds()
	return &SwatchResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Hex:         rgb.Hex(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SwatchImage builds the swatch image without encoding it.
func SwatchImage(rgb colorconv.RGB, opts SwatchOptions) (*image.NRGBA, error) {
	o := opts.withDefaults()
	if o.Width < 1 || o.Height < 1 || o.Width > MaxSwatchSize || o.Height > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size %dx%d outside 1-%d", o.Width, o.Height, MaxSwatchSize)
	}
	if 2*o.Border >= o.Width || 2*o.Border >= o.Height {
		return nil, fmt.Errorf("border %d too wide for %dx%d swatch", o.Border, o.Width, o.Height)
	}

	fill := rgb.Color()
	if o.Border == 0 {
		return imaging.New(o.Width, o.Height, fill), nil
	}

	frame := imaging.New(o.Width, o.Height, color.Black)
	inner := imaging.New(o.Width-2*o.Border, o.Height-2*o.Border, fill)
	return imaging.Paste(frame, inner, image.Pt(o.Border, o.Border)), nil
}
