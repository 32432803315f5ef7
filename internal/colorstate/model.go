package colorstate

import (
	"fmt"
	"strings"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

// Model identifies one of the three color representations.
type Model int

const (
	ModelRGB Model = iota
	ModelCMYK
	ModelHLS
)

// Models lists every model in display order.
var Models = []Model{ModelRGB, ModelCMYK, ModelHLS}

func (m Model) String() string {
	switch m {
	case ModelRGB:
		return "rgb"
	case ModelCMYK:
		return "cmyk"
	case ModelHLS:
		return "hls"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel accepts "rgb", "cmyk" or "hls" in any case.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return ModelRGB, nil
	case "cmyk":
		return ModelCMYK, nil
	case "hls":
		return ModelHLS, nil
	default:
		return 0, fmt.Errorf("unknown color model: %q", s)
	}
}

// Channel describes one slider of a model: its label, inclusive range and
// current value. It is a plain value; changing it has no effect on State.
type Channel struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Value int    `json:"value"`
}

var channelSpecs = map[Model][]Channel{
	ModelRGB: {
		{Label: "Red", Max: colorconv.MaxRGB},
		{Label: "Green", Max: colorconv.MaxRGB},
		{Label: "Blue", Max: colorconv.MaxRGB},
	},
	ModelCMYK: {
		{Label: "Cyan", Max: colorconv.MaxPercent},
		{Label: "Magenta", Max: colorconv.MaxPercent},
		{Label: "Yellow", Max: colorconv.MaxPercent},
		{Label: "Black", Max: colorconv.MaxPercent},
	},
	ModelHLS: {
		{Label: "Hue", Max: colorconv.HueDegrees - 1},
		{Label: "Lightness", Max: colorconv.MaxPercent},
		{Label: "Saturation", Max: colorconv.MaxPercent},
	},
}

// Width returns the number of components of m.
func (m Model) Width() int {
	return len(channelSpecs[m])
}

// Snapshot is the color as seen through all three models at one instant.
type Snapshot struct {
	RGB  colorconv.RGB  `json:"rgb"`
	CMYK colorconv.CMYK `json:"cmyk"`
	HLS  colorconv.HLS  `json:"hls"`
	Hex  string         `json:"hex"`
}

func newSnapshot(conv colorconv.Converter, rgb colorconv.RGB) Snapshot {
	return Snapshot{
		RGB:  rgb,
		CMYK: conv.RGBToCMYK(rgb),
		HLS:  conv.RGBToHLS(rgb),
		Hex:  rgb.Hex(),
	}
}

// Values returns the components of m in positional order.
func (s Snapshot) Values(m Model) []int {
	switch m {
	case ModelCMYK:
		return s.CMYK.Components()
	case ModelHLS:
		return s.HLS.Components()
	default:
		return s.RGB.Components()
	}
}

// Channels returns the sliders of m populated with the snapshot's values.
func (s Snapshot) Channels(m Model) []Channel {
	values := s.Values(m)
	out := make([]Channel, len(channelSpecs[m]))
	for i, ch := range channelSpecs[m] {
		ch.Value = values[i]
		out[i] = ch
	}
	return out
}

// Info renders the three models on separate lines.
func (s Snapshot) Info() string {
	return s.RGB.String() + "\n" + s.CMYK.String() + "\n" + s.HLS.String()
}
