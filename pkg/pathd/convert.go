package pathd

import (
	"fmt"
	"strings"
)

// PointsFromString resolves a path description into its point sequence:
// opener, every lineto target (relative pairs resolved cumulatively), and a
// duplicated opener if the description ends with a closepath.
func PointsFromString(s string) ([]Point, error) {
	return parsePoints(s)
}

// StringFromPoints renders pts as the canonical path description: absolute
// coordinates, an explicit command letter per point, single-space separated.
// A sequence ending where it starts is emitted as closed - the duplicated
// final point becomes a trailing Z instead of a literal lineto.
func StringFromPoints(pts []Point) string {
	closed := len(pts) > 1 && pts[0] == pts[len(pts)-1]
	if closed {
		pts = pts[:len(pts)-1]
	}

	var b strings.Builder
	for i, p := range pts {
		switch {
		case i == 0:
			fmt.Fprintf(&b, "M%d %d", p.X, p.Y)
		default:
			fmt.Fprintf(&b, " L%d %d", p.X, p.Y)
		}
	}

	if closed {
		b.WriteString(" Z")
	}

	return b.String()
}
