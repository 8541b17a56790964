package face

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// LogicalWidth returns the narrowed composition width for a terminal of the
// given width and a character-cell aspect ratio (cell height over width).
// The face is composed at this width and stretched back out, which is what
// makes the circle read as a circle instead of a tall ellipse.
func LogicalWidth(termWidth int, ratio float64) (int, error) {
	if ratio <= 0 {
		return 0, fmt.Errorf("aspect ratio must be positive, got %g", ratio)
	}
	w := int(float64(termWidth) / ratio)
	if w < 1 {
		w = 1
	}
	return w, nil
}

// Stretch resamples g horizontally to targetWidth with nearest-neighbor
// filtering, leaving the vertical extent untouched. Nearest-neighbor keeps
// every output cell an exact copy of some input cell, so no colors are
// invented and re-running the correction on the same source is stable.
func Stretch(g *Grid, targetWidth int) *Grid {
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetWidth == g.width {
		out := NewGrid(g.width, g.height)
		copy(out.cells, g.cells)
		return out
	}

	src := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if c := g.At(x, y); c.On {
				i := src.PixOffset(x, y)
				src.Pix[i+0] = c.Color.R
				src.Pix[i+1] = c.Color.G
				src.Pix[i+2] = c.Color.B
				src.Pix[i+3] = 0xFF
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, g.height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := NewGrid(targetWidth, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < targetWidth; x++ {
			i := dst.PixOffset(x, y)
			if dst.Pix[i+3] != 0 {
				out.Set(x, y, Color{R: dst.Pix[i+0], G: dst.Pix[i+1], B: dst.Pix[i+2]})
			}
		}
	}
	return out
}
