// Package render owns the terminal side of the clock: diffing successive
// frames, applying the changed cells to a tcell screen, and the tick loop
// that drives both.
package render

import (
	"fmt"

	"github.com/termtick/termtick/internal/face"
)

// CellUpdate is one changed position between two frames. An update with an
// empty Cell means the position must be blanked.
type CellUpdate struct {
	X, Y int
	Cell face.Cell
}

// Diff returns the updates needed to turn prev into next, in row-major
// order. Frames of different dimensions cannot be diffed; the loop discards
// the previous frame whenever the terminal resizes, so a mismatch reaching
// this function is a programming error and reported as such.
func Diff(prev, next *face.Grid) ([]CellUpdate, error) {
	if prev.Width() != next.Width() || prev.Height() != next.Height() {
		return nil, fmt.Errorf("cannot diff %dx%d frame against %dx%d frame",
			next.Width(), next.Height(), prev.Width(), prev.Height())
	}

	var updates []CellUpdate
	for y := 0; y < next.Height(); y++ {
		for x := 0; x < next.Width(); x++ {
			if prev.At(x, y) != next.At(x, y) {
				updates = append(updates, CellUpdate{X: x, Y: y, Cell: next.At(x, y)})
			}
		}
	}
	return updates, nil
}
