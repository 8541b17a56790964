// Package geometry rasterizes circles and line segments onto an integer
// grid. It knows nothing about terminals or colors; callers translate the
// returned points into whatever coordinate convention they store cells in.
package geometry

// Point is a position on the integer raster grid.
type Point struct {
	X, Y int
}

// Circle returns the boundary points of a circle using the midpoint circle
// algorithm. One octant is walked with integer arithmetic and mirrored into
// the other seven, so the ring is single-pixel wide with no gaps for any
// radius >= 1. Points at octant seams appear more than once; callers treat
// the result as a set.
// See: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func Circle(center Point, radius int) []Point {
	if radius < 1 {
		return nil
	}

	pts := make([]Point, 0, 8*radius)
	x, y := radius, 0
	d := 1 - radius // decision parameter

	for x >= y {
		pts = append(pts,
			Point{center.X + x, center.Y + y},
			Point{center.X + y, center.Y + x},
			Point{center.X - y, center.Y + x},
			Point{center.X - x, center.Y + y},
			Point{center.X - x, center.Y - y},
			Point{center.X - y, center.Y - x},
			Point{center.X + y, center.Y - x},
			Point{center.X + x, center.Y - y},
		)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}

	return pts
}

// Line returns the points of the segment from p0 to p1 inclusive, using
// Bresenham's algorithm in its all-octant error form. The path is ordered
// from p0 to p1 and every consecutive pair of points is 8-connected,
// whichever axis dominates and whatever the slope sign.
func Line(p0, p1 Point) []Point {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)

	sx := 1
	if p0.X > p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y > p1.Y {
		sy = -1
	}

	pts := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := p0.X, p0.Y

	for {
		pts = append(pts, Point{x, y})
		if x == p1.X && y == p1.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
