package shoal

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// HeadingTo returns the heading, in radians, from a toward b.
//
// Headings use atan2(dx, dy): 0 points along +Y, so sin(heading) scales the X
// delta and cos(heading) scales the Y delta. Advance relies on this.
func HeadingTo(a, b Point) float64 {
	return math.Atan2(b.X-a.X, b.Y-a.Y)
}

// Advance returns p moved dist units along heading.
func Advance(p Point, heading, dist float64) Point {
	return Point{
		X: p.X + math.Sin(heading)*dist,
		Y: p.Y + math.Cos(heading)*dist,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePoint(p Point) bool {
	return finite(p.X) && finite(p.Y)
}
