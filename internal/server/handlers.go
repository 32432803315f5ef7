package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/ironsheep/color-convert-mcp/internal/colorstate"
	"github.com/ironsheep/color-convert-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_set_rgb").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Swatches additionally carry an image content item so clients can show the
// preview directly. Tool execution errors return a JSON-RPC error response
// with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	content := []map[string]interface{}{}
	if sw, ok := result.(*imaging.SwatchResult); ok {
		content = append(content, map[string]interface{}{
			"type":     "image",
			"data":     sw.ImageBase64,
			"mimeType": sw.MimeType,
		})
	}
	content = append(content, map[string]interface{}{
		"type": "text",
		"text": mustMarshalJSON(result),
	})

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Conversions
	case "color_rgb_to_cmyk":
		return s.handleRGBToCMYK(args)
	case "color_cmyk_to_rgb":
		return s.handleCMYKToRGB(args)
	case "color_rgb_to_hls":
		return s.handleRGBToHLS(args)
	case "color_hls_to_rgb":
		return s.handleHLSToRGB(args)

	// Current color
	case "color_get":
		return s.stateResult(s.state.Snapshot()), nil
	case "color_set_rgb":
		return s.handleSetRGB(args)
	case "color_set_cmyk":
		return s.handleSetCMYK(args)
	case "color_set_hls":
		return s.handleSetHLS(args)
	case "color_set_component":
		return s.handleSetComponent(args)
	case "color_set_hex":
		return s.handleSetHex(args)
	case "color_pick_from_image":
		return s.handlePickFromImage(args)
	case "color_swatch":
		return s.handleSwatch(args)

	// Image sampling
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// required dereferences a mandatory integer argument.
func required(name string, v *int) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("missing required argument: %s", name)
	}
	return *v, nil
}

// === Argument types ===

type rgbArgs struct {
	R *int `json:"r"`
	G *int `json:"g"`
	B *int `json:"b"`
}

func (a rgbArgs) color() (colorconv.RGB, error) {
	var c colorconv.RGB
	var err error
	if c.R, err = required("r", a.R); err != nil {
		return c, err
	}
	if c.G, err = required("g", a.G); err != nil {
		return c, err
	}
	if c.B, err = required("b", a.B); err != nil {
		return c, err
	}
	return c, nil
}

type cmykArgs struct {
	C *int `json:"c"`
	M *int `json:"m"`
	Y *int `json:"y"`
	K *int `json:"k"`
}

func (a cmykArgs) color() (colorconv.CMYK, error) {
	var c colorconv.CMYK
	var err error
	if c.C, err = required("c", a.C); err != nil {
		return c, err
	}
	if c.M, err = required("m", a.M); err != nil {
		return c, err
	}
	if c.Y, err = required("y", a.Y); err != nil {
		return c, err
	}
	if c.K, err = required("k", a.K); err != nil {
		return c, err
	}
	return c, nil
}

type hlsArgs struct {
	H *int `json:"h"`
	L *int `json:"l"`
	S *int `json:"s"`
}

func (a hlsArgs) color() (colorconv.HLS, error) {
	var c colorconv.HLS
	var err error
	if c.H, err = required("h", a.H); err != nil {
		return c, err
	}
	if c.L, err = required("l", a.L); err != nil {
		return c, err
	}
	if c.S, err = required("s", a.S); err != nil {
		return c, err
	}
	return c, nil
}

func decodeRGB(args json.RawMessage) (colorconv.RGB, error) {
	var a rgbArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return colorconv.RGB{}, err
	}
	return a.color()
}

func decodeCMYK(args json.RawMessage) (colorconv.CMYK, error) {
	var a cmykArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return colorconv.CMYK{}, err
	}
	return a.color()
}

func decodeHLS(args json.RawMessage) (colorconv.HLS, error) {
	var a hlsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return colorconv.HLS{}, err
	}
	return a.color()
}

// === Conversion Handlers ===

func (s *Server) handleRGBToCMYK(args json.RawMessage) (interface{}, error) {
	c, err := decodeRGB(args)
	if err != nil {
		return nil, err
	}
	return s.conv.RGBToCMYK(c.Clamp()), nil
}

func (s *Server) handleCMYKToRGB(args json.RawMessage) (interface{}, error) {
	c, err := decodeCMYK(args)
	if err != nil {
		return nil, err
	}
	return s.conv.CMYKToRGB(c.Clamp()), nil
}

func (s *Server) handleRGBToHLS(args json.RawMessage) (interface{}, error) {
	c, err := decodeRGB(args)
	if err != nil {
		return nil, err
	}
	return s.conv.RGBToHLS(c.Clamp()), nil
}

func (s *Server) handleHLSToRGB(args json.RawMessage) (interface{}, error) {
	c, err := decodeHLS(args)
	if err != nil {
		return nil, err
	}
	return s.conv.HLSToRGB(c.Clamp()), nil
}

// === Current Color Handlers ===

// StateResult is the current color as reported by every color_* tool that
// reads or changes it.
type StateResult struct {
	colorstate.Snapshot

	// Info is the three models on separate lines.
	Info string `json:"info"`

	// Channels lists the sliders of each model with their current values.
	Channels map[string][]colorstate.Channel `json:"channels"`

	// Reverted is set when typed text could not be parsed and the field
	// should show its last valid value again.
	Reverted bool   `json:"reverted,omitempty"`
	Value    *int   `json:"value,omitempty"`
	Message  string `json:"message,omitempty"`

	// Picked is the raw sample when the color came from an image.
	Picked *imaging.ColorResult `json:"picked,omitempty"`
}

func (s *Server) stateResult(snap colorstate.Snapshot) *StateResult {
	channels := make(map[string][]colorstate.Channel, len(colorstate.Models))
	for _, m := range colorstate.Models {
		channels[m.String()] = snap.Channels(m)
	}
	return &StateResult{
		Snapshot: snap,
		Info:     snap.Info(),
		Channels: channels,
	}
}

func (s *Server) handleSetRGB(args json.RawMessage) (interface{}, error) {
	c, err := decodeRGB(args)
	if err != nil {
		return nil, err
	}
	return s.stateResult(s.state.SetRGB(c)), nil
}

func (s *Server) handleSetCMYK(args json.RawMessage) (interface{}, error) {
	c, err := decodeCMYK(args)
	if err != nil {
		return nil, err
	}
	return s.stateResult(s.state.SetCMYK(c)), nil
}

func (s *Server) handleSetHLS(args json.RawMessage) (interface{}, error) {
	c, err := decodeHLS(args)
	if err != nil {
		return nil, err
	}
	return s.stateResult(s.state.SetHLS(c)), nil
}

type setComponentArgs struct {
	Model string  `json:"model"`
	Index *int    `json:"index"`
	Value *int    `json:"value"`
	Text  *string `json:"text"`
}

func (s *Server) handleSetComponent(args json.RawMessage) (interface{}, error) {
	var a setComponentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	m, err := colorstate.ParseModel(a.Model)
	if err != nil {
		return nil, err
	}
	index, err := required("index", a.Index)
	if err != nil {
		return nil, err
	}

	switch {
	case a.Text != nil:
		snap, err := s.state.SetComponentText(m, index, *a.Text)
		if errors.Is(err, colorstate.ErrInvalidNumber) {
			res := s.stateResult(snap)
			res.Reverted = true
			res.Message = err.Error()
			if index >= 0 && index < m.Width() {
				v := snap.Values(m)[index]
				res.Value = &v
			}
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		return s.stateResult(snap), nil
	case a.Value != nil:
		snap, err := s.state.SetComponent(m, index, *a.Value)
		if err != nil {
			return nil, err
		}
		return s.stateResult(snap), nil
	default:
		return nil, fmt.Errorf("one of value or text is required")
	}
}

type setHexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleSetHex(args json.RawMessage) (interface{}, error) {
	var a setHexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	snap, err := s.state.SetHex(a.Hex)
	if err != nil {
		return nil, err
	}
	return s.stateResult(snap), nil
}

type regionArg struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r *regionArg) region() *imaging.Region {
	if r == nil {
		return nil
	}
	return &imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

type pickArgs struct {
	Path   string     `json:"path"`
	X      *int       `json:"x"`
	Y      *int       `json:"y"`
	Region *regionArg `json:"region"`
}

func (s *Server) handlePickFromImage(args json.RawMessage) (interface{}, error) {
	var a pickArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var picked *imaging.ColorResult
	if a.Region != nil {
		picked, err = imaging.AverageColor(img, s.conv, a.Region.region())
	} else {
		picked, err = s.samplePixel(img, a.X, a.Y)
	}
	if err != nil {
		return nil, err
	}

	res := s.stateResult(s.state.SetRGB(picked.RGB))
	res.Picked = picked
	return res, nil
}

func (s *Server) samplePixel(img image.Image, x, y *int) (*imaging.ColorResult, error) {
	px, err := required("x", x)
	if err != nil {
		return nil, err
	}
	py, err := required("y", y)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, s.conv, px, py)
}

type swatchArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Border int `json:"border"`
}

func (s *Server) handleSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(s.state.Snapshot().RGB, imaging.SwatchOptions{
		Width:  a.Width,
		Height: a.Height,
		Border: a.Border,
	})
}

// === Image Sampling Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    *int   `json:"x"`
	Y    *int   `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.samplePixel(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, s.conv, points)
}

type imageRegionArgs struct {
	Path   string     `json:"path"`
	Count  int        `json:"count"`
	Region *regionArg `json:"region"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AverageColor(img, s.conv, a.Region.region())
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, s.conv, a.Count, a.Region.region())
}
