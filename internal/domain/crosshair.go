package domain

import "math"

// ColorPreset selects one of the built-in crosshair colors or the custom RGB.
type ColorPreset uint8

// Color presets, in cl_crosshaircolor order
const (
	ColorRed ColorPreset = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorCustom
)

var colorPresetNames = [...]string{"red", "green", "yellow", "blue", "cyan", "custom"}

// String returns the lowercase preset name.
func (p ColorPreset) String() string {
	if int(p) < len(colorPresetNames) {
		return colorPresetNames[p]
	}
	return "unknown"
}

// CrosshairStyle mirrors cl_crosshairstyle.
type CrosshairStyle uint8

// Crosshair styles
const (
	StyleDefault CrosshairStyle = iota
	StyleDefaultStatic
	StyleClassic
	StyleClassicDynamic
	StyleClassicStatic
	StyleLegacy
)

var styleNames = [...]string{"default", "default_static", "classic", "classic_dynamic", "classic_static", "legacy"}

func (s CrosshairStyle) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// CrosshairSettings is a decoded crosshair configuration.
//
// Values are passed by copy and never modified after construction. Fixed-point
// fields hold the scaled value (Gap 1.5 is stored as raw 15 in the payload).
type CrosshairSettings struct {
	FormatVersion uint8 `json:"format_version"`

	Gap               float64 `json:"gap"`
	FixedCrosshairGap float64 `json:"fixed_crosshair_gap"`
	Thickness         float64 `json:"thickness"`
	Length            float64 `json:"length"`

	OutlineEnabled   bool    `json:"outline_enabled"`
	OutlineThickness float64 `json:"outline_thickness"`

	ColorPreset       ColorPreset `json:"color_preset"`
	Red               uint8       `json:"red"`
	Green             uint8       `json:"green"`
	Blue              uint8       `json:"blue"`
	Alpha             uint8       `json:"alpha"`
	ColorAlphaEnabled bool        `json:"color_alpha_enabled"`

	SplitDistance   uint8   `json:"split_distance"`
	InnerSplitAlpha float64 `json:"inner_split_alpha"`
	OuterSplitAlpha float64 `json:"outer_split_alpha"`
	SplitSizeRatio  float64 `json:"split_size_ratio"`

	Style                    CrosshairStyle `json:"style"`
	CenterDotEnabled         bool           `json:"center_dot_enabled"`
	TStyleEnabled            bool           `json:"t_style_enabled"`
	FollowRecoilEnabled      bool           `json:"follow_recoil_enabled"`
	DeployedWeaponGapEnabled bool           `json:"deployed_weapon_gap_enabled"`
}

// InnerLinesEnabled reports whether the four crosshair arms are drawn.
// A zero length leaves only the center dot.
func (s CrosshairSettings) InnerLinesEnabled() bool {
	return s.Length > 0
}

// Validate checks every field against its documented range and its
// fixed-point step. It never adjusts a value.
func (s CrosshairSettings) Validate() error {
	if s.FormatVersion != CurrentFormatVersion {
		return ErrUnsupportedVersion
	}

	checks := []struct {
		field    string
		value    float64
		min, max float64
		step     float64
	}{
		{FieldGap, s.Gap, GapMin, GapMax, 0.1},
		{FieldFixedCrosshairGap, s.FixedCrosshairGap, GapMin, GapMax, 0.1},
		{FieldOutlineThickness, s.OutlineThickness, 0, OutlineThicknessMax, 0.5},
		{FieldThickness, s.Thickness, 0, ThicknessMax, 0.1},
		{FieldLength, s.Length, 0, LengthMax, 0.1},
		{FieldInnerSplitAlpha, s.InnerSplitAlpha, 0, 1, 0.1},
		{FieldOuterSplitAlpha, s.OuterSplitAlpha, 0, 1, 0.1},
		{FieldSplitSizeRatio, s.SplitSizeRatio, 0, 1, 0.1},
		{FieldSplitDistance, float64(s.SplitDistance), 0, SplitDistanceMax, 1},
		{FieldColorPreset, float64(s.ColorPreset), 0, float64(ColorCustom), 1},
		{FieldStyle, float64(s.Style), 0, float64(StyleLegacy), 1},
	}

	for _, c := range checks {
		if math.IsNaN(c.value) || c.value < c.min || c.value > c.max || !onStep(c.value, c.step) {
			return NewFieldOutOfRange(c.field, c.value)
		}
	}
	return nil
}

// onStep reports whether v is an integer multiple of step.
func onStep(v, step float64) bool {
	n := v / step
	return math.Abs(n-math.Round(n)) < 1e-6
}
