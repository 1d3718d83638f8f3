package pathd

import "math"

// Point is a single 2D coordinate of a path. Coordinates are integers -
// the path description language has no floating point.
type Point struct {
	X, Y int
}

// Pt is image.Pt but for our Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by delta.
func (p Point) Add(delta Point) Point {
	return Point{p.X + delta.X, p.Y + delta.Y}
}

// IsPointArray reports whether raw is a usable path payload:
// at least 2 entries, every entry exactly 2 components, every component
// finite and without a fractional part. This is the single gate for
// untyped point data - FromFloats and the SVG importer both go through it.
func IsPointArray(raw [][]float64) bool {
	if len(raw) < 2 {
		return false
	}

	for _, pair := range raw {
		if len(pair) != 2 {
			return false
		}

		for _, v := range pair {
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
				return false
			}
		}
	}

	return true
}
