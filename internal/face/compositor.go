package face

import (
	"math"

	"github.com/termtick/termtick/internal/config"
	"github.com/termtick/termtick/internal/geometry"
)

// Anchor selects whether a hand is drawn outward from the hub or inward
// from the rim.
type Anchor int

const (
	// FromCenter draws from the midpoint out to radius*length.
	FromCenter Anchor = iota
	// FromCircumference draws from radius*(1-length) out to the rim,
	// producing a tick mark rather than a spoke.
	FromCircumference
)

// Hand describes one line on the face: a hand proper or a rim tick.
type Hand struct {
	Degree float64
	Bold   bool
	Length float64 // fraction of the radius, 0 hub to 1 rim
	Anchor Anchor
	Color  Color
}

// Palette carries the four face colors, already resolved from a theme.
type Palette struct {
	Hour   Color
	Minute Color
	Second Color
	Face   Color
}

// Options selects which face elements are drawn.
type Options struct {
	ShowSecondHand   bool
	ShowHourLabels   bool
	ShowMinuteLabels bool
}

// Compose paints one complete frame at the given grid dimensions. The draw
// order is load-bearing: later elements overpaint earlier ones, so the
// hands sit on top of the face and rim ticks, the hour hand covers the
// minute hand at the hub, and the second hand, when shown, is topmost.
func Compose(width, height int, a Angles, pal Palette, opts Options) *Grid {
	g := NewGrid(width, height)

	midX := float64(g.width) / 2
	midY := float64(g.height) / 2
	radius := math.Min(midX, midY) / config.RadiusMargin

	g.drawCircle(midX, midY, radius, pal.Face)

	if opts.ShowHourLabels {
		for n := 0; n < 12; n++ {
			g.drawHand(midX, midY, radius, Hand{
				Degree: float64(n) / 12 * 360,
				Length: config.HourTickLength,
				Anchor: FromCircumference,
				Color:  pal.Face,
			})
		}
	}

	if opts.ShowMinuteLabels {
		tick := Color{R: config.MinuteTickR, G: config.MinuteTickG, B: config.MinuteTickB}
		for n := 0; n < 60; n++ {
			g.drawHand(midX, midY, radius, Hand{
				Degree: float64(n) / 60 * 360,
				Length: config.MinuteTickLength,
				Anchor: FromCircumference,
				Color:  tick,
			})
		}
	}

	g.drawHand(midX, midY, radius, Hand{
		Degree: a.Minute,
		Bold:   true,
		Length: config.MinuteHandLength,
		Anchor: FromCenter,
		Color:  pal.Minute,
	})
	g.drawHand(midX, midY, radius, Hand{
		Degree: a.Hour,
		Bold:   true,
		Length: config.HourHandLength,
		Anchor: FromCenter,
		Color:  pal.Hour,
	})

	if opts.ShowSecondHand {
		g.drawHand(midX, midY, radius, Hand{
			Degree: a.Second,
			Length: config.SecondHandLength,
			Anchor: FromCenter,
			Color:  pal.Second,
		})
	}

	return g
}

// drawCircle paints the rim. The ring is symmetric about the midpoint, so
// unlike the hands it needs no coordinate flip.
func (g *Grid) drawCircle(midX, midY, radius float64, c Color) {
	center := geometry.Point{X: int(midX), Y: int(midY)}
	for _, p := range geometry.Circle(center, int(radius)) {
		g.Set(p.X, p.Y, c)
	}
}

// boldStencil restamps a line from the nine cells of a 3x3 block around its
// anchor. This is a cheap approximation of a thicker stroke, not a uniform
// line width.
var boldStencil = []geometry.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

var thinStencil = []geometry.Point{{X: 0, Y: 0}}

// drawHand rasterizes one hand or rim tick. The endpoints are computed in a
// Cartesian frame where y grows upward and 0 degrees points up; every
// generated point is flipped to the grid's top-down rows exactly once, at
// the Set call.
func (g *Grid) drawHand(midX, midY, radius float64, h Hand) {
	// 0° is 12 o'clock and degrees run clockwise, so the Cartesian angle
	// is 90° minus the hand's degree.
	radian := math.Pi/2 - h.Degree*math.Pi/180
	cos, sin := math.Cos(radian), math.Sin(radian)

	var start, end geometry.Point
	switch h.Anchor {
	case FromCenter:
		start = geometry.Point{X: int(midX), Y: int(midY)}
		end = geometry.Point{
			X: int(midX + radius*h.Length*cos),
			Y: int(midY + radius*h.Length*sin),
		}
	case FromCircumference:
		inner := radius * (1 - h.Length)
		start = geometry.Point{
			X: int(midX + inner*cos),
			Y: int(midY + inner*sin),
		}
		end = geometry.Point{
			X: int(midX + radius*cos),
			Y: int(midY + radius*sin),
		}
	}

	stencil := thinStencil
	if h.Bold {
		stencil = boldStencil
	}

	for _, off := range stencil {
		s := geometry.Point{X: start.X + off.X, Y: start.Y + off.Y}
		e := geometry.Point{X: end.X + off.X, Y: end.Y + off.Y}
		for _, p := range geometry.Line(s, e) {
			g.Set(p.X, g.height-p.Y, h.Color)
		}
	}
}
