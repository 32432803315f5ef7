package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

var testConv = colorconv.NewConverter(colorconv.RoundHalfEven)

// createInMemoryImage creates a solid-color image.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with a different color in each quadrant.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			switch {
			case x < width/2 && y < height/2:
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			case x >= width/2 && y < height/2:
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			case x < width/2:
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			default:
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, testConv, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (colorconv.RGB{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v, want (255,128,64)", result.RGB)
	}
	if result.CMYK != (colorconv.CMYK{C: 0, M: 50, Y: 75, K: 0}) {
		t.Errorf("CMYK: got %v, want (0,50,75,0)", result.CMYK)
	}
	if result.HLS != (colorconv.HLS{H: 20, L: 63, S: 100}) {
		t.Errorf("HLS: got %v, want (20,63,100)", result.HLS)
	}
	if result.Alpha != 255 {
		t.Errorf("Alpha: got %d, want 255", result.Alpha)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHue int
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000", 0},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00FF00", 120},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FF", 240},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", 0},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", 0},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, testConv, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HLS.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HLS.H, tt.wantHue)
			}
		})
	}
}

func TestSampleColor_Translucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{0, 0, 255, 64})

	result, err := SampleColor(img, testConv, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#0000FF" {
		t.Errorf("Hex: got %s, want #0000FF", result.Hex)
	}
	if result.Alpha != 64 {
		t.Errorf("Alpha: got %d, want 64", result.Alpha)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, testConv, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}

	for _, p := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if _, err := SampleColor(img, testConv, p.X, p.Y); err != nil {
			t.Errorf("SampleColor failed for valid edge coordinate %v: %v", p, err)
		}
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(img, testConv, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	expected := []struct {
		hex  string
		cmyk colorconv.CMYK
	}{
		{"#FF0000", colorconv.CMYK{C: 0, M: 100, Y: 100, K: 0}},
		{"#00FF00", colorconv.CMYK{C: 100, M: 0, Y: 100, K: 0}},
		{"#0000FF", colorconv.CMYK{C: 100, M: 100, Y: 0, K: 0}},
		{"#FFFFFF", colorconv.CMYK{}},
	}
	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
		if sample.Color.Hex != expected[i].hex {
			t.Errorf("sample %d (%s) hex: got %s, want %s", i, sample.Label, sample.Color.Hex, expected[i].hex)
		}
		if sample.Color.CMYK != expected[i].cmyk {
			t.Errorf("sample %d (%s) cmyk: got %v, want %v", i, sample.Label, sample.Color.CMYK, expected[i].cmyk)
		}
	}
}

func TestSampleColorsMulti_EmptyAndInvalid(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := SampleColorsMulti(img, testConv, nil)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != 0 {
		t.Errorf("expected 0 samples, got %d", len(result.Samples))
	}

	points := []LabeledPoint{{X: 50, Y: 50, Label: "valid"}, {X: 200, Y: 50, Label: "invalid"}}
	if _, err := SampleColorsMulti(img, testConv, points); err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestAverageColor(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name    string
		region  *Region
		wantHex string
	}{
		{"red quadrant", &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, "#FF0000"},
		{"white quadrant", &Region{X1: 50, Y1: 50, X2: 100, Y2: 100}, "#FFFFFF"},
		{"single pixel", &Region{X1: 80, Y1: 10, X2: 81, Y2: 11}, "#00FF00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AverageColor(img, testConv, tt.region)
			if err != nil {
				t.Fatalf("AverageColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
		})
	}
}

func TestAverageColor_WholeImageMixes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}

	result, err := AverageColor(img, testConv, nil)
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	if abs(result.RGB.R-128) > 2 || result.RGB.G > 2 || abs(result.RGB.B-128) > 2 {
		t.Errorf("average of red and blue halves: got %v, want about (128,0,128)", result.RGB)
	}
}

func TestAverageColor_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	for name, r := range map[string]*Region{
		"empty":       {X1: 5, Y1: 5, X2: 5, Y2: 10},
		"inverted":    {X1: 10, Y1: 10, X2: 5, Y2: 5},
		"outside":     {X1: 0, Y1: 0, X2: 30, Y2: 10},
		"negative x1": {X1: -1, Y1: 0, X2: 5, Y2: 5},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := AverageColor(img, testConv, r); err == nil {
				t.Error("AverageColor should fail for invalid region")
			}
		})
	}
}

func TestDominantColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	result, err := DominantColors(img, testConv, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}

	// 255 quantizes to 240.
	first := result.Colors[0]
	if first.Hex != "#F00000" || first.Percentage != 80 {
		t.Errorf("first: got %s at %.1f%%, want #F00000 at 80%%", first.Hex, first.Percentage)
	}
	if first.HLS.H != 0 || first.CMYK.M != 100 {
		t.Errorf("first derived views: got %v %v", first.HLS, first.CMYK)
	}
	if result.Colors[1].Hex != "#00F000" {
		t.Errorf("second: got %s, want #00F000", result.Colors[1].Hex)
	}
}

func TestDominantColors_WithRegionAndLimit(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, testConv, 5, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Percentage != 100 {
		t.Errorf("expected a single 100%% color, got %+v", result.Colors)
	}

	result, err = DominantColors(img, testConv, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("expected count limit of 2, got %d", len(result.Colors))
	}

	if _, err := DominantColors(img, testConv, 0, nil); err == nil {
		t.Error("DominantColors should reject a zero count")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
