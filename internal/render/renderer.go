package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/termtick/termtick/internal/face"
)

// block is the glyph used for every painted cell; color carries all the
// information.
const block = '█'

// Renderer writes frames to a tcell screen, repainting only the cells that
// changed since the previous frame. The retained previous frame is swapped
// wholesale at the end of each render, never partially updated.
type Renderer struct {
	screen tcell.Screen
	prev   *face.Grid
}

// NewRenderer returns a renderer for the given screen. The first Render
// call clears and paints the whole screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Invalidate drops the retained previous frame, forcing the next Render to
// clear and repaint everything. Called after a resize, where diffing
// against the old dimensions would be meaningless.
func (r *Renderer) Invalidate() {
	r.prev = nil
}

// Render displays next. With a previous frame of matching dimensions only
// the changed cells are written; without one the screen is cleared and
// fully painted. Either way the output is flushed once.
func (r *Renderer) Render(next *face.Grid) error {
	if r.prev == nil {
		r.screen.Clear()
		for y := 0; y < next.Height(); y++ {
			for x := 0; x < next.Width(); x++ {
				if cell := next.At(x, y); cell.On {
					r.put(CellUpdate{X: x, Y: y, Cell: cell})
				}
			}
		}
		r.screen.Show()
		r.prev = next
		return nil
	}

	updates, err := Diff(r.prev, next)
	if err != nil {
		return err
	}
	for _, u := range updates {
		r.put(u)
	}
	r.screen.Show()
	r.prev = next
	return nil
}

func (r *Renderer) put(u CellUpdate) {
	if !u.Cell.On {
		r.screen.SetContent(u.X, u.Y, ' ', nil, tcell.StyleDefault)
		return
	}
	color := tcell.NewRGBColor(int32(u.Cell.Color.R), int32(u.Cell.Color.G), int32(u.Cell.Color.B))
	r.screen.SetContent(u.X, u.Y, block, nil, tcell.StyleDefault.Foreground(color))
}
