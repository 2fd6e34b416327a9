// Package render draws crosshair settings onto a square, transparent canvas.
//
// Output is deterministic: the same settings and size always produce the same
// pixels and the same PNG bytes.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/gogpu/gg"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// RenderImage rasterizes s onto a size x size canvas. Outlines form the
// bottom layer; the arms and the center dot replace the outline pixels they
// cover, so a translucent crosshair keeps its own color over the outline.
func RenderImage(s domain.CrosshairSettings, size int) (*image.NRGBA, error) {
	if size < MinCanvasSize || size > MaxCanvasSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", domain.ErrInvalidCanvasSize, size, MinCanvasSize, MaxCanvasSize)
	}

	layout := ComputeLayout(s, size)

	outline, err := coverage(size, layout.Outlines...)
	if err != nil {
		return nil, err
	}

	shapes := layout.Arms
	if layout.HasDot {
		shapes = append(append([]image.Rectangle(nil), shapes...), layout.Dot)
	}
	body, err := coverage(size, shapes...)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	paint(img, outline, OutlineColor(s))
	paint(img, body, CrosshairColor(s))
	return img, nil
}

// Render rasterizes s and encodes the result as PNG.
func Render(s domain.CrosshairSettings, size int) ([]byte, error) {
	img, err := RenderImage(s, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// coverage fills rects as one opaque path and returns the covered pixels.
// Pixel-aligned rectangles are covered either fully or not at all.
func coverage(size int, rects ...image.Rectangle) (*image.Alpha, error) {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	if len(rects) == 0 {
		return mask, nil
	}

	pm := gg.NewPixmap(size, size)
	dc := gg.NewContext(size, size, gg.WithPixmap(pm))
	defer dc.Close()

	dc.Clear()
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetRGBA(1, 1, 1, 1)
	for _, r := range rects {
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill shapes: %w", err)
	}

	// Only alpha is read, so gg's premultiplied storage does not matter here.
	data := pm.Data()
	for i := range mask.Pix {
		mask.Pix[i] = data[4*i+3]
	}
	return mask, nil
}

// paint sets every pixel covered by mask to c, replacing what is below.
func paint(img *image.NRGBA, mask *image.Alpha, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	for i, a := range mask.Pix {
		if a == 0 {
			continue
		}
		img.Pix[4*i+0] = c.R
		img.Pix[4*i+1] = c.G
		img.Pix[4*i+2] = c.B
		img.Pix[4*i+3] = c.A
	}
}
