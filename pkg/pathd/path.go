// Package pathd implements a restricted SVG-style path description language
// (moveto, lineto, closepath - integer coordinates only) and the Path value
// type built on it.
package pathd

import "fmt"

// Path is an ordered, connected sequence of at least 2 integer points
// together with its cached canonical description. A Path is only ever
// produced by a constructor or by a transformation of an existing Path,
// and both re-validate their output, so every Path in existence is valid.
// Treat instances as immutable once built.
type Path struct {
	pts []Point
	str string
}

// newPath takes ownership of pts. Every construction path funnels through
// here so the length invariant and the cached string stay in one place.
func newPath(pts []Point) (*Path, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidPath, len(pts))
	}

	return &Path{pts: pts, str: StringFromPoints(pts)}, nil
}

// Parse builds a Path from a path description string.
func Parse(s string) (*Path, error) {
	pts, err := PointsFromString(s)
	if err != nil {
		return nil, err
	}

	return newPath(pts)
}

// FromPoints builds a Path from an already-typed point sequence.
// The sequence is copied; the caller keeps ownership of pts.
func FromPoints(pts []Point) (*Path, error) {
	return newPath(append([]Point(nil), pts...))
}

// FromFloats builds a Path from raw coordinate pairs (e.g. decoded JSON or
// SVG importer output), routed through IsPointArray.
func FromFloats(raw [][]float64) (*Path, error) {
	if !IsPointArray(raw) {
		return nil, fmt.Errorf("%w: not a point array", ErrInvalidPath)
	}

	pts := make([]Point, len(raw))
	for i, pair := range raw {
		pts[i] = Pt(int(pair[0]), int(pair[1]))
	}

	return newPath(pts)
}

// String returns the cached canonical description. No recomputation.
func (p *Path) String() string {
	return p.str
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.pts)
}

// At returns the i-th point.
func (p *Path) At(i int) Point {
	return p.pts[i]
}

// Points returns a copy of the point sequence.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.pts...)
}

// Pairs returns the point sequence in raw pair form, e.g. for JSON output.
func (p *Path) Pairs() [][2]int {
	pairs := make([][2]int, len(p.pts))
	for i, pt := range p.pts {
		pairs[i] = [2]int{pt.X, pt.Y}
	}

	return pairs
}

// Closed reports whether the path ends where it starts.
func (p *Path) Closed() bool {
	return p.pts[0] == p.pts[len(p.pts)-1]
}

// Clone returns an independent copy. No state is shared with p.
func (p *Path) Clone() *Path {
	return &Path{pts: append([]Point(nil), p.pts...), str: p.str}
}

// Map applies fn to every point and rebuilds a Path from the result.
// fn receives the point, its index and the whole sequence. The result goes
// back through the constructor, so mapping below 2 points is impossible by
// construction but the contract still returns an error for symmetry with
// Filter and Slice.
func (p *Path) Map(fn func(pt Point, i int, pts []Point) Point) (*Path, error) {
	out := make([]Point, len(p.pts))
	for i, pt := range p.pts {
		out[i] = fn(pt, i, p.pts)
	}

	return newPath(out)
}

// Filter keeps the points fn accepts and rebuilds a Path from them.
// Filtering down to fewer than 2 points fails with ErrInvalidPath - the
// source Path is left untouched.
func (p *Path) Filter(fn func(pt Point, i int, pts []Point) bool) (*Path, error) {
	out := make([]Point, 0, len(p.pts))
	for i, pt := range p.pts {
		if fn(pt, i, p.pts) {
			out = append(out, pt)
		}
	}

	return newPath(out)
}

// Slice extracts [start, end) and rebuilds a Path from the sub-range.
// Negative indices count from the end; out-of-range indices clamp. Same
// semantics as slicing the underlying sequence in any host language with
// end-exclusive ranges.
func (p *Path) Slice(start, end int) (*Path, error) {
	lo := clampIndex(start, len(p.pts))
	hi := clampIndex(end, len(p.pts))
	if hi < lo {
		hi = lo
	}

	return newPath(append([]Point(nil), p.pts[lo:hi]...))
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}

	switch {
	case i < 0:
		return 0
	case i > n:
		return n
	}

	return i
}
