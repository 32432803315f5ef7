package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func intProp(description string, min, max int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
		"minimum":     min,
		"maximum":     max,
	}
}

func rgbProps() map[string]interface{} {
	return map[string]interface{}{
		"r": intProp("Red (0-255)", 0, 255),
		"g": intProp("Green (0-255)", 0, 255),
		"b": intProp("Blue (0-255)", 0, 255),
	}
}

func cmykProps() map[string]interface{} {
	return map[string]interface{}{
		"c": intProp("Cyan percent (0-100)", 0, 100),
		"m": intProp("Magenta percent (0-100)", 0, 100),
		"y": intProp("Yellow percent (0-100)", 0, 100),
		"k": intProp("Black (key) percent (0-100)", 0, 100),
	}
}

func hlsProps() map[string]interface{} {
	return map[string]interface{}{
		"h": intProp("Hue in degrees (0-359, wraps modulo 360)", 0, 359),
		"l": intProp("Lightness percent (0-100)", 0, 100),
		"s": intProp("Saturation percent (0-100)", 0, 100),
	}
}

var pathProp = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to a PNG, JPEG, GIF, BMP, TIFF or WebP file",
}

var regionProp = map[string]interface{}{
	"type":        "object",
	"description": "Rectangle to analyze: (x1,y1) inclusive, (x2,y2) exclusive. Whole image if omitted.",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversions
		{
			Name:        "color_rgb_to_cmyk",
			Description: "Convert an RGB color to CMYK percentages. Out-of-range inputs are clamped first. Does not change the current color.",
			InputSchema: objectSchema(rgbProps(), "r", "g", "b"),
		},
		{
			Name:        "color_cmyk_to_rgb",
			Description: "Convert CMYK percentages to an RGB color. Out-of-range inputs are clamped first. Does not change the current color.",
			InputSchema: objectSchema(cmykProps(), "c", "m", "y", "k"),
		},
		{
			Name:        "color_rgb_to_hls",
			Description: "Convert an RGB color to hue, lightness and saturation. Does not change the current color.",
			InputSchema: objectSchema(rgbProps(), "r", "g", "b"),
		},
		{
			Name:        "color_hls_to_rgb",
			Description: "Convert hue, lightness and saturation to an RGB color. Does not change the current color.",
			InputSchema: objectSchema(hlsProps(), "h", "l", "s"),
		},

		// Current color
		{
			Name:        "color_get",
			Description: "Get the current color in RGB, CMYK and HLS together with slider ranges for each model.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "color_set_rgb",
			Description: "Set the current color from RGB. CMYK and HLS are recomputed from it.",
			InputSchema: objectSchema(rgbProps(), "r", "g", "b"),
		},
		{
			Name:        "color_set_cmyk",
			Description: "Set the current color from CMYK. The color is converted to RGB and HLS is derived from that RGB.",
			InputSchema: objectSchema(cmykProps(), "c", "m", "y", "k"),
		},
		{
			Name:        "color_set_hls",
			Description: "Set the current color from HLS. The color is converted to RGB and CMYK is derived from that RGB.",
			InputSchema: objectSchema(hlsProps(), "h", "l", "s"),
		},
		{
			Name:        "color_set_component",
			Description: "Move a single slider of one model. Provide either an integer value or raw text as typed into the field; text that is not a number leaves the color unchanged and reports the value to revert to.",
			InputSchema: objectSchema(map[string]interface{}{
				"model": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"rgb", "cmyk", "hls"},
					"description": "Color model the component belongs to",
				},
				"index": map[string]interface{}{
					"type":        "integer",
					"description": "Component position: rgb 0=R 1=G 2=B; cmyk 0=C 1=M 2=Y 3=K; hls 0=H 1=L 2=S",
				},
				"value": map[string]interface{}{
					"type":        "integer",
					"description": "New value; clamped to the component range",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw field text, parsed as an integer",
				},
			}, "model", "index"),
		},
		{
			Name:        "color_set_hex",
			Description: "Set the current color from a hex string such as #FF8040 or #F84.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": map[string]interface{}{
					"type":        "string",
					"description": "Hex color, '#RRGGBB' or '#RGB'",
				},
			}, "hex"),
		},
		{
			Name:        "color_pick_from_image",
			Description: "Set the current color from an image file: the pixel at (x, y), or the average of a region when one is given.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":   pathProp,
				"x":      map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
				"y":      map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
				"region": regionProp,
			}, "path"),
		},
		{
			Name:        "color_swatch",
			Description: "Render the current color as a PNG swatch with a black border.",
			InputSchema: objectSchema(map[string]interface{}{
				"width":  intProp("Width in pixels (default 200)", 1, 2048),
				"height": intProp("Height in pixels (default 200)", 1, 2048),
				"border": map[string]interface{}{
					"type":        "integer",
					"description": "Border width in pixels (default 2, negative for none)",
				},
			}),
		},

		// Image sampling
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The image is cached for later sampling.",
			InputSchema: objectSchema(map[string]interface{}{"path": pathProp}, "path"),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of one pixel in RGB, CMYK and HLS without changing the current color.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp,
				"x":    map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
				"y":    map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
			}, "path", "x", "y"),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get the colors of several pixels in a single call.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp,
				"points": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x":     map[string]interface{}{"type": "integer"},
							"y":     map[string]interface{}{"type": "integer"},
							"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
						},
						"required": []string{"x", "y"},
					},
					"description": "Array of points to sample",
				},
			}, "path", "points"),
		},
		{
			Name:        "image_average_color",
			Description: "Get the mean color of a region (or the whole image).",
			InputSchema: objectSchema(map[string]interface{}{
				"path":   pathProp,
				"region": regionProp,
			}, "path"),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors (quantized to steps of 16) of an image or region.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp,
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of colors to return (default 5)",
					"default":     5,
				},
				"region": regionProp,
			}, "path"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
