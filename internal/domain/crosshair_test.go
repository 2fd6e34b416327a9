package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() CrosshairSettings {
	return CrosshairSettings{
		FormatVersion:    CurrentFormatVersion,
		Gap:              -2,
		Thickness:        1,
		Length:           3,
		OutlineEnabled:   true,
		OutlineThickness: 1,
		ColorPreset:      ColorGreen,
		Alpha:            200,
		Style:            StyleClassicStatic,
	}
}

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *CrosshairSettings)
	}{
		{"baseline", func(s *CrosshairSettings) {}},
		{"minimum gap", func(s *CrosshairSettings) { s.Gap = GapMin }},
		{"maximum gap", func(s *CrosshairSettings) { s.Gap = GapMax }},
		{"zero thickness", func(s *CrosshairSettings) { s.Thickness = 0 }},
		{"maximum thickness", func(s *CrosshairSettings) { s.Thickness = ThicknessMax }},
		{"maximum length", func(s *CrosshairSettings) { s.Length = LengthMax }},
		{"half outline", func(s *CrosshairSettings) { s.OutlineThickness = 2.5 }},
		{"tenths", func(s *CrosshairSettings) { s.Thickness = 4.1; s.SplitSizeRatio = 0.3 }},
		{"custom color", func(s *CrosshairSettings) { s.ColorPreset = ColorCustom }},
		{"legacy style", func(s *CrosshairSettings) { s.Style = StyleLegacy }},
		{"split distance", func(s *CrosshairSettings) { s.SplitDistance = SplitDistanceMax }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.modify(&s)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *CrosshairSettings)
		field  string
	}{
		{"gap too small", func(s *CrosshairSettings) { s.Gap = -12.9 }, FieldGap},
		{"gap off step", func(s *CrosshairSettings) { s.Gap = 1.05 }, FieldGap},
		{"thickness 6.1", func(s *CrosshairSettings) { s.Thickness = 6.1 }, FieldThickness},
		{"negative length", func(s *CrosshairSettings) { s.Length = -0.1 }, FieldLength},
		{"length above max", func(s *CrosshairSettings) { s.Length = 100.1 }, FieldLength},
		{"outline quarter step", func(s *CrosshairSettings) { s.OutlineThickness = 0.25 }, FieldOutlineThickness},
		{"outline above max", func(s *CrosshairSettings) { s.OutlineThickness = 3.5 }, FieldOutlineThickness},
		{"split ratio above one", func(s *CrosshairSettings) { s.SplitSizeRatio = 1.1 }, FieldSplitSizeRatio},
		{"split distance", func(s *CrosshairSettings) { s.SplitDistance = 128 }, FieldSplitDistance},
		{"color preset 6", func(s *CrosshairSettings) { s.ColorPreset = 6 }, FieldColorPreset},
		{"style 6", func(s *CrosshairSettings) { s.Style = 6 }, FieldStyle},
		{"nan thickness", func(s *CrosshairSettings) { s.Thickness = math.NaN() }, FieldThickness},
		{"infinite length", func(s *CrosshairSettings) { s.Length = math.Inf(1) }, FieldLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.modify(&s)
			err := s.Validate()
			require.ErrorIs(t, err, ErrFieldOutOfRange)

			var rangeErr *FieldOutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.field, rangeErr.Field)
			assert.Contains(t, err.Error(), ErrMsgFieldOutOfRange)
		})
	}
}

func TestValidate_Version(t *testing.T) {
	s := validSettings()
	s.FormatVersion = 2
	assert.ErrorIs(t, s.Validate(), ErrUnsupportedVersion)

	s.FormatVersion = 0
	assert.ErrorIs(t, s.Validate(), ErrUnsupportedVersion)
}

func TestInnerLinesEnabled(t *testing.T) {
	s := validSettings()
	assert.True(t, s.InnerLinesEnabled())
	s.Length = 0
	assert.False(t, s.InnerLinesEnabled())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "green", ColorGreen.String())
	assert.Equal(t, "custom", ColorCustom.String())
	assert.Equal(t, "classic_static", StyleClassicStatic.String())
}
