// Package imaging renders color swatches and picks colors out of image files.
//
// It stands in for the eyedropper and preview panel of a desktop color
// picker: a color can be sampled from any pixel (or averaged over a region)
// of a PNG, JPEG, GIF, BMP, TIFF or WebP file, and the current color can be
// rendered as a bordered PNG swatch.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Color Representation
//
// Sampled colors are reported in every model the converter supports:
//   - Hex: "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255), un-premultiplied
//   - CMYK: percentages (0-100)
//   - HLS: Hue (0-359), Lightness (0-100), Saturation (0-100)
//   - Alpha: 0-255, reported separately
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
