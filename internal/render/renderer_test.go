package render

import (
	"bytes"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

func TestRenderImage_CanvasSize(t *testing.T) {
	for _, size := range []int{0, -1, MaxCanvasSize + 1, 4096} {
		_, err := RenderImage(plainCrosshair(), size)
		assert.ErrorIs(t, err, domain.ErrInvalidCanvasSize, "size %d", size)
	}

	for _, size := range []int{MinCanvasSize, DefaultCanvasSize, MaxCanvasSize} {
		img, err := RenderImage(plainCrosshair(), size)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestRender_Deterministic(t *testing.T) {
	s, err := sharecode.Decode("CSGO-O4Jsi-V36wY-rTMGK-9w7qF-jQ8WB")
	require.NoError(t, err)

	a, err := Render(s, 64)
	require.NoError(t, err)
	b, err := Render(s, 64)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	img, err := png.Decode(bytes.NewReader(a))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestRenderImage_SharedCode(t *testing.T) {
	// Custom color, T-style, center dot, thickness 4.1, gap 1, length 33
	s, err := sharecode.Decode("CSGO-O4Jsi-V36wY-rTMGK-9w7qF-jQ8WB")
	require.NoError(t, err)

	img, err := RenderImage(s, 64)
	require.NoError(t, err)

	center := img.NRGBAAt(32, 32)
	assert.InDelta(t, 255, int(center.A), 1)
	assert.InDelta(t, 50, int(center.R), 1)
	assert.InDelta(t, 250, int(center.G), 1)
	assert.InDelta(t, 84, int(center.B), 1)

	assert.Zero(t, img.NRGBAAt(0, 0).A, "corner")
	assert.Zero(t, img.NRGBAAt(63, 63).A, "corner")
	assert.Zero(t, img.NRGBAAt(32, 10).A, "top arm is omitted")
	assert.NotZero(t, img.NRGBAAt(32, 50).A, "bottom arm")
	assert.NotZero(t, img.NRGBAAt(5, 32).A, "left arm")
	assert.NotZero(t, img.NRGBAAt(60, 32).A, "right arm")
}

func TestRenderImage_Pixels(t *testing.T) {
	t.Run("gap is transparent", func(t *testing.T) {
		s := plainCrosshair()
		s.Gap = 3
		s.CenterDotEnabled = true
		img, err := RenderImage(s, 64)
		require.NoError(t, err)

		// band 31..33, gap 6px, arm 10px
		assert.NotZero(t, img.NRGBAAt(32, 32).A, "dot")
		assert.Zero(t, img.NRGBAAt(36, 32).A, "gap")
		assert.NotZero(t, img.NRGBAAt(42, 32).A, "arm")
		assert.Zero(t, img.NRGBAAt(50, 32).A, "beyond arm")
	})

	t.Run("outline surrounds arms in black", func(t *testing.T) {
		s := plainCrosshair()
		s.OutlineEnabled = true
		s.OutlineThickness = 1
		img, err := RenderImage(s, 64)
		require.NoError(t, err)

		edge := img.NRGBAAt(40, 30)
		assert.InDelta(t, 255, int(edge.A), 1)
		assert.LessOrEqual(t, edge.R, uint8(1))
		assert.LessOrEqual(t, edge.G, uint8(1))

		arm := img.NRGBAAt(40, 31)
		assert.InDelta(t, 250, int(arm.G), 1)

		assert.Zero(t, img.NRGBAAt(40, 28).A)
	})

	t.Run("alpha applies when enabled", func(t *testing.T) {
		s := plainCrosshair()
		s.Alpha = 100
		s.ColorAlphaEnabled = true
		img, err := RenderImage(s, 64)
		require.NoError(t, err)
		assert.InDelta(t, 100, int(img.NRGBAAt(40, 32).A), 1)
	})

	t.Run("translucent arm keeps its straight color", func(t *testing.T) {
		img, err := RenderImage(translucentCrosshair(), 64)
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 250, G: 100, B: 20, A: 100}, img.NRGBAAt(40, 32))
		assert.Zero(t, img.NRGBAAt(40, 30).A)
	})

	t.Run("translucent arm replaces its outline", func(t *testing.T) {
		s := translucentCrosshair()
		s.OutlineEnabled = true
		s.OutlineThickness = 1
		img, err := RenderImage(s, 64)
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 250, G: 100, B: 20, A: 100}, img.NRGBAAt(40, 32))
		assert.Equal(t, color.NRGBA{A: 100}, img.NRGBAAt(40, 30), "outline")
	})

	t.Run("alpha ignored when disabled", func(t *testing.T) {
		s := plainCrosshair()
		s.Alpha = 100
		img, err := RenderImage(s, 64)
		require.NoError(t, err)
		assert.InDelta(t, 255, int(img.NRGBAAt(40, 32).A), 1)
	})

	t.Run("zero alpha draws nothing", func(t *testing.T) {
		s := plainCrosshair()
		s.Alpha = 0
		s.ColorAlphaEnabled = true
		s.CenterDotEnabled = true
		img, err := RenderImage(s, 64)
		require.NoError(t, err)
		for _, v := range img.Pix {
			if v != 0 {
				t.Fatal("expected a fully transparent canvas")
			}
		}
	})
}

func TestRender_Concurrent(t *testing.T) {
	outlined := plainCrosshair()
	outlined.OutlineEnabled = true
	outlined.OutlineThickness = 1
	outlined.CenterDotEnabled = true
	settings := []domain.CrosshairSettings{plainCrosshair(), translucentCrosshair(), outlined}

	want := make([][]byte, len(settings))
	for i, s := range settings {
		b, err := Render(s, DefaultCanvasSize)
		require.NoError(t, err)
		want[i] = b
	}

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := i % len(settings)
			got, err := Render(settings[k], DefaultCanvasSize)
			if assert.NoError(t, err) {
				assert.True(t, bytes.Equal(want[k], got), "render %d differs", i)
			}
		}(i)
	}
	wg.Wait()
}

// translucentCrosshair is a custom orange crosshair at alpha 100.
func translucentCrosshair() domain.CrosshairSettings {
	s := plainCrosshair()
	s.ColorPreset = domain.ColorCustom
	s.Red, s.Green, s.Blue = 250, 100, 20
	s.Alpha = 100
	s.ColorAlphaEnabled = true
	return s
}

func BenchmarkRender(b *testing.B) {
	s := plainCrosshair()
	s.OutlineEnabled = true
	s.OutlineThickness = 1
	s.CenterDotEnabled = true

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Render(s, DefaultCanvasSize); err != nil {
			b.Fatal(err)
		}
	}
}
