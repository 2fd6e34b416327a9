package render

import (
	"image/color"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// presetColors holds the built-in cl_crosshaircolor values, indexed by preset.
var presetColors = [...]color.NRGBA{
	domain.ColorRed:    {R: 250, G: 50, B: 50, A: 255},
	domain.ColorGreen:  {R: 50, G: 250, B: 50, A: 255},
	domain.ColorYellow: {R: 250, G: 250, B: 50, A: 255},
	domain.ColorBlue:   {R: 50, G: 50, B: 250, A: 255},
	domain.ColorCyan:   {R: 50, G: 250, B: 250, A: 255},
}

// CrosshairColor resolves the fill color for s. Alpha only applies when
// ColorAlphaEnabled is set; otherwise the crosshair is opaque.
func CrosshairColor(s domain.CrosshairSettings) color.NRGBA {
	c := color.NRGBA{R: s.Red, G: s.Green, B: s.Blue, A: 255}
	if int(s.ColorPreset) < len(presetColors) {
		c = presetColors[s.ColorPreset]
	}
	if s.ColorAlphaEnabled {
		c.A = s.Alpha
	}
	return c
}

// OutlineColor is black with the crosshair's alpha.
func OutlineColor(s domain.CrosshairSettings) color.NRGBA {
	return color.NRGBA{R: outlineRed, G: outlineGreen, B: outlineBlue, A: CrosshairColor(s).A}
}
