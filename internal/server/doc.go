// Package server implements the MCP (Model Context Protocol) server for the
// color converter.
//
// The server holds one current color and exposes it, together with the
// stateless RGB, CMYK and HLS conversions, as MCP tools. A client plays the
// role of the three slider panels: it sets the color through any model and
// receives all three views back in every response.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversions (do not touch the current color):
//   - color_rgb_to_cmyk, color_cmyk_to_rgb
//   - color_rgb_to_hls, color_hls_to_rgb
//
// Current color:
//   - color_get: All three models plus slider ranges
//   - color_set_rgb, color_set_cmyk, color_set_hls: Set through one model
//   - color_set_component: Move one slider, by value or by typed text
//   - color_set_hex: Set from "#RRGGBB"
//   - color_pick_from_image: Set from a pixel or region of an image
//   - color_swatch: Render the current color as PNG
//
// Image sampling:
//   - image_load, image_sample_color, image_sample_colors_multi
//   - image_average_color, image_dominant_colors
//
// # Invalid Input
//
// Numeric arguments outside a component's range are clamped. Text passed to
// color_set_component that is not an integer is not an error: the color is
// left as it was and the result has "reverted" set together with the value
// the field should show again.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.NewWithConfig(server.DefaultConfig())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
