package render

import (
	"testing"

	"github.com/termtick/termtick/internal/face"
)

var (
	red  = face.Color{R: 0xFF}
	blue = face.Color{B: 0xFF}
)

// TestDiff_IdenticalFrames verifies the efficiency contract's base case:
// nothing changed, nothing to write.
func TestDiff_IdenticalFrames(t *testing.T) {
	a := face.NewGrid(20, 10)
	b := face.NewGrid(20, 10)
	for _, g := range []*face.Grid{a, b} {
		g.Set(3, 4, red)
		g.Set(5, 6, blue)
	}

	updates, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("diff of identical frames yielded %d updates, want 0", len(updates))
	}
}

// TestDiff_AgainstEmptyFrame verifies that every painted cell of the new
// frame produces exactly one update when the previous frame is blank.
func TestDiff_AgainstEmptyFrame(t *testing.T) {
	prev := face.NewGrid(20, 10)
	next := face.NewGrid(20, 10)
	painted := map[[2]int]face.Color{
		{0, 0}:  red,
		{19, 9}: blue,
		{7, 3}:  red,
	}
	for pos, c := range painted {
		next.Set(pos[0], pos[1], c)
	}

	updates, err := Diff(prev, next)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	if len(updates) != len(painted) {
		t.Fatalf("got %d updates, want one per painted cell (%d)", len(updates), len(painted))
	}
	for _, u := range updates {
		want, ok := painted[[2]int{u.X, u.Y}]
		if !ok {
			t.Errorf("unexpected update at (%d,%d)", u.X, u.Y)
			continue
		}
		if !u.Cell.On || u.Cell.Color != want {
			t.Errorf("update at (%d,%d) carries %+v, want color %+v", u.X, u.Y, u.Cell, want)
		}
	}
}

// TestDiff_ClearedCell verifies that a cell painted previously but empty
// now yields a blanking update.
func TestDiff_ClearedCell(t *testing.T) {
	prev := face.NewGrid(20, 10)
	prev.Set(4, 4, red)
	next := face.NewGrid(20, 10)

	updates, err := Diff(prev, next)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	u := updates[0]
	if u.X != 4 || u.Y != 4 || u.Cell.On {
		t.Errorf("got update %+v, want blanking update at (4,4)", u)
	}
}

// TestDiff_RowMajorOrder verifies that updates come out ordered by row then
// column, so cursor movement during rendering is monotonic.
func TestDiff_RowMajorOrder(t *testing.T) {
	prev := face.NewGrid(20, 10)
	next := face.NewGrid(20, 10)
	next.Set(9, 7, red)
	next.Set(2, 1, red)
	next.Set(15, 1, blue)
	next.Set(0, 3, blue)

	updates, err := Diff(prev, next)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	for i := 1; i < len(updates); i++ {
		a, b := updates[i-1], updates[i]
		if a.Y > b.Y || (a.Y == b.Y && a.X >= b.X) {
			t.Errorf("updates out of row-major order: %+v before %+v", a, b)
		}
	}
}

// TestDiff_DimensionMismatch verifies that frames of different sizes are
// rejected rather than diffed; the loop must never let this happen across
// a resize.
func TestDiff_DimensionMismatch(t *testing.T) {
	testCases := []struct {
		name         string
		prevW, prevH int
		nextW, nextH int
	}{
		{"narrower", 30, 10, 20, 10},
		{"shorter", 20, 12, 20, 10},
		{"both", 30, 12, 20, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Diff(face.NewGrid(tc.prevW, tc.prevH), face.NewGrid(tc.nextW, tc.nextH))
			if err == nil {
				t.Error("diff of mismatched frames succeeded")
			}
		})
	}
}
