// Package face turns an abstract clock state (three hand angles, a
// palette, visibility flags) into a colored character grid, and corrects
// that grid for the non-square shape of terminal character cells.
package face

// Color is a 24-bit RGB cell color.
type Color struct {
	R, G, B uint8
}

// Cell is one character position in a frame. The zero Cell is empty.
// Within a frame's construction a cell may be overwritten by a later draw
// step; later draws win, which is how hands end up on top of the face.
type Cell struct {
	On    bool
	Color Color
}

// Grid is a row-major frame of cells, row 0 at the top. A Grid is built
// fresh each tick and never mutated after it leaves the compositor.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the cell at column x, row y. Positions outside the grid read
// as empty.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// Set paints the cell at column x, row y. Positions outside the grid are
// dropped rather than wrapped; hand endpoints can land a cell past the edge
// after rounding.
func (g *Grid) Set(x, y int, c Color) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = Cell{On: true, Color: c}
}
