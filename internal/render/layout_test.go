package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

func plainCrosshair() domain.CrosshairSettings {
	return domain.CrosshairSettings{
		FormatVersion: domain.CurrentFormatVersion,
		Thickness:     1,
		Length:        5,
		ColorPreset:   domain.ColorGreen,
		Alpha:         255,
		Style:         domain.StyleClassicStatic,
	}
}

func TestComputeLayout_Arms(t *testing.T) {
	l := ComputeLayout(plainCrosshair(), 64)

	assert.Equal(t, []image.Rectangle{
		image.Rect(33, 31, 43, 33), // right
		image.Rect(21, 31, 31, 33), // left
		image.Rect(31, 33, 33, 43), // bottom
		image.Rect(31, 21, 33, 31), // top
	}, l.Arms)
	assert.False(t, l.HasDot)
	assert.Empty(t, l.Outlines)
}

func TestComputeLayout_Variants(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(s *domain.CrosshairSettings)
		arms     int
		hasDot   bool
		outlines int
	}{
		{"t-style drops top arm", func(s *domain.CrosshairSettings) { s.TStyleEnabled = true }, 3, false, 0},
		{"center dot", func(s *domain.CrosshairSettings) { s.CenterDotEnabled = true }, 4, true, 0},
		{"dot only", func(s *domain.CrosshairSettings) { s.Length = 0; s.CenterDotEnabled = true }, 0, true, 0},
		{"nothing visible", func(s *domain.CrosshairSettings) { s.Length = 0 }, 0, false, 0},
		{"outline per shape", func(s *domain.CrosshairSettings) {
			s.OutlineEnabled = true
			s.OutlineThickness = 1
			s.CenterDotEnabled = true
		}, 4, true, 5},
		{"outline disabled ignores thickness", func(s *domain.CrosshairSettings) { s.OutlineThickness = 3 }, 4, false, 0},
		{"zero outline thickness", func(s *domain.CrosshairSettings) { s.OutlineEnabled = true }, 4, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := plainCrosshair()
			tt.modify(&s)
			l := ComputeLayout(s, 64)
			assert.Len(t, l.Arms, tt.arms)
			assert.Equal(t, tt.hasDot, l.HasDot)
			assert.Len(t, l.Outlines, tt.outlines)
		})
	}
}

func TestComputeLayout_Geometry(t *testing.T) {
	t.Run("zero thickness keeps one pixel", func(t *testing.T) {
		s := plainCrosshair()
		s.Thickness = 0
		s.CenterDotEnabled = true
		l := ComputeLayout(s, 64)
		assert.Equal(t, image.Rect(32, 32, 33, 33), l.Dot)
	})

	t.Run("shortest length keeps one pixel", func(t *testing.T) {
		s := plainCrosshair()
		s.Length = 0.1
		require.True(t, s.InnerLinesEnabled())
		l := ComputeLayout(s, 64)
		require.Len(t, l.Arms, 4)
		assert.Equal(t, image.Rect(33, 31, 34, 33), l.Arms[0])
	})

	t.Run("negative gap overlaps the band", func(t *testing.T) {
		s := plainCrosshair()
		s.Gap = -2
		l := ComputeLayout(s, 64)
		assert.Equal(t, image.Rect(29, 31, 39, 33), l.Arms[0])
	})

	t.Run("outline rounds up and surrounds the arm", func(t *testing.T) {
		s := plainCrosshair()
		s.OutlineEnabled = true
		s.OutlineThickness = 0.5
		l := ComputeLayout(s, 64)
		assert.Equal(t, image.Rect(32, 30, 44, 34), l.Outlines[0])
	})

	t.Run("long arms are clipped to the canvas", func(t *testing.T) {
		s := plainCrosshair()
		s.Length = domain.LengthMax
		l := ComputeLayout(s, 64)
		canvas := image.Rect(0, 0, 64, 64)
		for _, r := range l.Arms {
			assert.True(t, r.In(canvas), "arm %v outside canvas", r)
		}
		assert.Equal(t, image.Rect(33, 31, 64, 33), l.Arms[0])
	})

	t.Run("gap wider than the canvas hides the arms", func(t *testing.T) {
		s := plainCrosshair()
		s.Gap = domain.GapMax
		l := ComputeLayout(s, 16)
		assert.Empty(t, l.Arms)
	})
}

func TestCrosshairColor(t *testing.T) {
	t.Run("preset ignores custom channels", func(t *testing.T) {
		s := plainCrosshair()
		s.ColorPreset = domain.ColorRed
		s.Red, s.Green, s.Blue = 1, 2, 3
		c := CrosshairColor(s)
		assert.Equal(t, [4]uint8{250, 50, 50, 255}, [4]uint8{c.R, c.G, c.B, c.A})
	})

	t.Run("custom uses channels", func(t *testing.T) {
		s := plainCrosshair()
		s.ColorPreset = domain.ColorCustom
		s.Red, s.Green, s.Blue = 1, 2, 3
		c := CrosshairColor(s)
		assert.Equal(t, [4]uint8{1, 2, 3, 255}, [4]uint8{c.R, c.G, c.B, c.A})
	})

	t.Run("alpha only when enabled", func(t *testing.T) {
		s := plainCrosshair()
		s.Alpha = 80
		assert.Equal(t, uint8(255), CrosshairColor(s).A)

		s.ColorAlphaEnabled = true
		assert.Equal(t, uint8(80), CrosshairColor(s).A)
		assert.Equal(t, uint8(80), OutlineColor(s).A)
	})
}
