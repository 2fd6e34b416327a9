package render

import (
	"image"
	"math"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// Layout is the pixel geometry of a crosshair on a square canvas. All
// rectangles are already clipped to the canvas; empty ones are dropped.
type Layout struct {
	Arms     []image.Rectangle
	Dot      image.Rectangle
	HasDot   bool
	Outlines []image.Rectangle
}

// ComputeLayout places the crosshair around the canvas center.
//
// The arms and the dot share a band of the line thickness centered on
// size/2. Each arm starts gap pixels beyond the band edge and runs length
// pixels outward; a negative gap pulls the arms across the band.
func ComputeLayout(s domain.CrosshairSettings, size int) Layout {
	canvas := image.Rect(0, 0, size, size)

	thickness := max(1, toPixels(s.Thickness))
	gap := toPixels(s.Gap)
	length := toPixels(s.Length)
	if s.InnerLinesEnabled() {
		length = max(1, length)
	}

	b0 := size/2 - thickness/2
	b1 := b0 + thickness

	var shapes []image.Rectangle
	if s.InnerLinesEnabled() {
		shapes = append(shapes,
			image.Rect(b1+gap, b0, b1+gap+length, b1), // right
			image.Rect(b0-gap-length, b0, b0-gap, b1), // left
			image.Rect(b0, b1+gap, b1, b1+gap+length), // bottom
		)
		if !s.TStyleEnabled {
			shapes = append(shapes, image.Rect(b0, b0-gap-length, b1, b0-gap)) // top
		}
	}

	var l Layout
	for _, r := range shapes {
		if c := r.Intersect(canvas); !c.Empty() {
			l.Arms = append(l.Arms, c)
		}
	}

	dot := image.Rect(b0, b0, b1, b1)
	if s.CenterDotEnabled {
		shapes = append(shapes, dot)
		if c := dot.Intersect(canvas); !c.Empty() {
			l.Dot, l.HasDot = c, true
		}
	}

	if outline := outlinePixels(s); outline > 0 {
		for _, r := range shapes {
			if c := r.Inset(-outline).Intersect(canvas); !c.Empty() {
				l.Outlines = append(l.Outlines, c)
			}
		}
	}

	return l
}

func toPixels(units float64) int {
	return int(math.Round(units * PixelsPerUnit))
}

// outlinePixels is the outline width on each side of a shape.
func outlinePixels(s domain.CrosshairSettings) int {
	if !s.OutlineEnabled {
		return 0
	}
	return int(math.Ceil(s.OutlineThickness))
}
