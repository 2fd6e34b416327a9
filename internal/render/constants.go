package render

// PixelsPerUnit converts crosshair units (gap, thickness, length) to output
// pixels. It is fixed so that a code always renders to the same image.
const PixelsPerUnit = 2.0

// Canvas bounds, inclusive
const (
	MinCanvasSize = 1
	MaxCanvasSize = 2048
)

// DefaultCanvasSize is the preview size served by the HTTP layer.
const DefaultCanvasSize = 64

// Outline color; its alpha follows the crosshair alpha
const (
	outlineRed   = 0
	outlineGreen = 0
	outlineBlue  = 0
)
