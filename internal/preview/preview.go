// Package preview draws rendered crosshairs in a terminal using half-block
// cells, two image rows per terminal row.
package preview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// UpperHalfBlock is drawn with the top pixel as foreground and the bottom
// pixel as background.
const UpperHalfBlock = '▀'

// Background stands in for transparent pixels, roughly a dark game scene.
var Background = color.NRGBA{R: 0x2b, G: 0x2d, B: 0x31, A: 0xff}

// Cell is one terminal cell: two vertically stacked opaque pixels.
type Cell struct {
	Top    color.NRGBA
	Bottom color.NRGBA
}

// HalfBlocks flattens img onto bg and pairs rows. An odd last row is
// paired with bg.
func HalfBlocks(img *image.NRGBA, bg color.NRGBA) [][]Cell {
	b := img.Bounds()
	rows := make([][]Cell, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		row := make([]Cell, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = over(img.NRGBAAt(x, y+1), bg)
			}
			row[x-b.Min.X] = Cell{Top: over(img.NRGBAAt(x, y), bg), Bottom: bottom}
		}
		rows = append(rows, row)
	}
	return rows
}

// over composites c onto the opaque bg.
func over(c, bg color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	mix := func(fg, back uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(back)*(255-a) + 127) / 255)
	}
	return color.NRGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 0xff}
}

// Style returns the tcell style that paints c.
func Style(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Top)).
		Background(tcellColor(c.Bottom))
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints img centered on screen without calling Show.
func Draw(screen tcell.Screen, img *image.NRGBA) {
	screen.Clear()
	cells := HalfBlocks(img, Background)

	w, h := screen.Size()
	y0 := (h - len(cells)) / 2
	for dy, row := range cells {
		x0 := (w - len(row)) / 2
		for dx, c := range row {
			x, y := x0+dx, y0+dy
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			screen.SetContent(x, y, UpperHalfBlock, nil, Style(c))
		}
	}
}

// Run shows img on an initialized screen until a key is pressed,
// redrawing on resize. The caller owns Init and Fini.
func Run(screen tcell.Screen, img *image.NRGBA) {
	Draw(screen, img)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			Draw(screen, img)
			screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}
