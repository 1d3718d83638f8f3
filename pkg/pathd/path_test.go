package pathd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// box is the 100x100 square used across the container tests.
func box(t *testing.T) *Path {
	t.Helper()

	p, err := FromPoints([]Point{{100, 100}, {100, 200}, {200, 200}, {200, 100}, {100, 100}})
	require.NoError(t, err)

	return p
}

func TestParse(t *testing.T) {
	p, err := Parse("m100 100 L100 200 Z")
	require.NoError(t, err)
	require.Equal(t, "M100 100 L100 200 Z", p.String())
	require.Equal(t, 3, p.Len())
	require.Equal(t, Pt(100, 100), p.At(0))
	require.True(t, p.Closed())
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "m100", "m100 100", "l100 100", "m100z", "M1 2L3.5 4"} {
		_, err := Parse(input)
		require.ErrorIs(t, err, ErrInvalidPath, "input %q", input)
	}
}

func TestFromPoints(t *testing.T) {
	p, err := FromPoints([]Point{{100, 100}, {100, 200}})
	require.NoError(t, err)
	require.Equal(t, "M100 100 L100 200", p.String())
	require.False(t, p.Closed())

	_, err = FromPoints(nil)
	require.ErrorIs(t, err, ErrInvalidPath)

	_, err = FromPoints([]Point{{1, 1}})
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestFromPoints_CopiesInput(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	p, err := FromPoints(pts)
	require.NoError(t, err)

	pts[0] = Pt(9, 9)
	require.Equal(t, Pt(0, 0), p.At(0))
}

func TestFromFloats(t *testing.T) {
	p, err := FromFloats([][]float64{{100, 100}, {100, 200}, {100, 100}})
	require.NoError(t, err)
	require.Equal(t, "M100 100 L100 200 Z", p.String())

	for _, raw := range [][][]float64{
		nil,
		{{1, 1}},
		{{1, 2}, {math.NaN(), 4}},
		{{1, 2}, {3.5, 4}},
		{{1, 2}, {3}},
	} {
		_, err := FromFloats(raw)
		require.ErrorIs(t, err, ErrInvalidPath)
	}
}

func TestClone(t *testing.T) {
	p := box(t)
	c := p.Clone()

	require.NotSame(t, p, c)
	require.Equal(t, p.String(), c.String())
	require.Equal(t, p.Len(), c.Len())
	require.Equal(t, p.Points(), c.Points())
}

func TestSlice(t *testing.T) {
	p := box(t)

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"drop closing duplicate", 0, -1, "M100 100 L100 200 L200 200 L200 100"},
		{"inner range", 1, -1, "M100 200 L200 200 L200 100"},
		{"full range", 0, 5, "M100 100 L100 200 L200 200 L200 100 Z"},
		{"end clamps", 0, 99, "M100 100 L100 200 L200 200 L200 100 Z"},
		{"negative start", -3, 5, "M200 200 L200 100 L100 100"},
		{"start clamps", -99, 2, "M100 100 L100 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Slice(tt.start, tt.end)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestSlice_TooShort(t *testing.T) {
	p := box(t)

	_, err := p.Slice(0, 1)
	require.ErrorIs(t, err, ErrInvalidPath)

	_, err = p.Slice(3, 2)
	require.ErrorIs(t, err, ErrInvalidPath)

	// the source survives a failed transformation
	require.Equal(t, "M100 100 L100 200 L200 200 L200 100 Z", p.String())
}

func TestMap(t *testing.T) {
	p := box(t)

	swapped, err := p.Map(func(pt Point, _ int, _ []Point) Point {
		return Pt(pt.Y, pt.X)
	})
	require.NoError(t, err)
	require.Equal(t, "M100 100 L200 100 L200 200 L100 200 Z", swapped.String())

	// the source is untouched
	require.Equal(t, "M100 100 L100 200 L200 200 L200 100 Z", p.String())
}

func TestMap_Arguments(t *testing.T) {
	p, err := FromPoints([]Point{{1, 1}, {2, 2}})
	require.NoError(t, err)

	var indexes []int
	_, err = p.Map(func(pt Point, i int, pts []Point) Point {
		indexes = append(indexes, i)
		require.Len(t, pts, 2)
		require.Equal(t, pts[i], pt)
		return pt
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, indexes)
}

func TestFilter(t *testing.T) {
	p := box(t)

	kept, err := p.Filter(func(_ Point, i int, _ []Point) bool {
		return i%2 == 0
	})
	require.NoError(t, err)
	require.Equal(t, "M100 100 L200 200 Z", kept.String())

	_, err = p.Filter(func(Point, int, []Point) bool { return false })
	require.ErrorIs(t, err, ErrInvalidPath)

	_, err = p.Filter(func(_ Point, i int, _ []Point) bool { return i == 0 })
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestPairs(t *testing.T) {
	p, err := Parse("M1 2L3 4")
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}}, p.Pairs())
}
