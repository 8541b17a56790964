package face

import (
	"testing"
	"time"
)

// TestLogicalWidth verifies the narrowed composition width and the
// degenerate-ratio guard.
func TestLogicalWidth(t *testing.T) {
	testCases := []struct {
		name      string
		termWidth int
		ratio     float64
		want      int
		wantErr   bool
	}{
		{"default ratio", 80, 2.0, 40, false},
		{"square cells", 80, 1.0, 80, false},
		{"fractional ratio", 100, 2.5, 40, false},
		{"never collapses to zero", 10, 100.0, 1, false},
		{"zero ratio rejected", 80, 0, 0, true},
		{"negative ratio rejected", 80, -1.5, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LogicalWidth(tc.termWidth, tc.ratio)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("LogicalWidth(%d, %g) succeeded, expected error", tc.termWidth, tc.ratio)
				}
				return
			}
			if err != nil {
				t.Fatalf("LogicalWidth(%d, %g) returned error: %v", tc.termWidth, tc.ratio, err)
			}
			if got != tc.want {
				t.Errorf("LogicalWidth(%d, %g) = %d, want %d", tc.termWidth, tc.ratio, got, tc.want)
			}
		})
	}
}

// TestStretch_PreservesVerticalExtent verifies the corrector's core
// invariant: only the horizontal axis is resampled.
func TestStretch_PreservesVerticalExtent(t *testing.T) {
	a := AnglesAt(time.Date(2026, time.August, 29, 9, 15, 0, 0, time.UTC), time.Second)

	for _, targetWidth := range []int{20, 40, 80, 81, 200} {
		g := Compose(40, 24, a, testPalette, allVisible)
		out := Stretch(g, targetWidth)

		if out.Height() != g.Height() {
			t.Errorf("target width %d: height changed from %d to %d", targetWidth, g.Height(), out.Height())
		}
		if out.Width() != targetWidth {
			t.Errorf("stretched width is %d, want %d", out.Width(), targetWidth)
		}
	}
}

// TestStretch_Deterministic verifies that stretching the same source twice
// produces identical output, which the per-tick diff relies on: an
// unchanged logical frame must yield an unchanged corrected frame.
func TestStretch_Deterministic(t *testing.T) {
	a := AnglesAt(time.Date(2026, time.August, 29, 9, 15, 0, 0, time.UTC), time.Second)
	g := Compose(40, 24, a, testPalette, allVisible)

	first := Stretch(g, 80)
	second := Stretch(g, 80)
	if !gridsEqual(first, second) {
		t.Error("two stretches of the same frame differ")
	}
}

// TestStretch_SameWidthIsIdentity verifies that a no-op stretch copies the
// frame cell for cell.
func TestStretch_SameWidthIsIdentity(t *testing.T) {
	a := AnglesAt(time.Date(2026, time.August, 29, 9, 15, 0, 0, time.UTC), time.Second)
	g := Compose(40, 24, a, testPalette, allVisible)

	out := Stretch(g, 40)
	if !gridsEqual(g, out) {
		t.Error("stretching to the source width altered the frame")
	}
}

// TestStretch_IntroducesNoColors verifies that nearest-neighbor resampling
// only copies source cells: every color in the output must exist in the
// input, and an all-empty frame stays empty.
func TestStretch_IntroducesNoColors(t *testing.T) {
	a := AnglesAt(time.Date(2026, time.August, 29, 9, 15, 0, 0, time.UTC), time.Second)
	g := Compose(40, 24, a, testPalette, allVisible)

	srcColors := make(map[Color]bool)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c := g.At(x, y); c.On {
				srcColors[c.Color] = true
			}
		}
	}

	out := Stretch(g, 80)
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if c := out.At(x, y); c.On && !srcColors[c.Color] {
				t.Fatalf("cell (%d,%d) has color %+v absent from the source frame", x, y, c.Color)
			}
		}
	}

	empty := Stretch(NewGrid(40, 24), 80)
	for y := 0; y < empty.Height(); y++ {
		for x := 0; x < empty.Width(); x++ {
			if empty.At(x, y).On {
				t.Fatalf("stretching an empty frame painted cell (%d,%d)", x, y)
			}
		}
	}
}
