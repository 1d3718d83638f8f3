package pathline

import (
	"errors"
	"fmt"
	"math"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/pathline/pkg/pathd"
)

// Importer extracts line geometry from a parsed SVG document and converts
// it into pathd.Path values. The full SVG syntax is much wider than the
// restricted path description language, so everything the language cannot
// express (curves, circles, paint) is skipped with a warning.
type Importer struct {
	scale float64
	round bool
	svg   *svg.Svg
}

func NewImporter() *Importer {
	return &Importer{
		scale: 1.0,
	}
}

// Scale multiplies every imported coordinate by s.
func (im *Importer) Scale(s float64) *Importer {
	im.scale = s
	return im
}

// Round makes the importer round non-integer coordinates (with a warning)
// instead of failing the whole import.
func (im *Importer) Round() *Importer {
	im.round = true
	return im
}

// Paths walks the SVG drawing instructions and collects every subpath with
// at least 2 line points.
func (im *Importer) Paths() ([]*pathd.Path, error) {
	parsedData, parsedErr := im.svg.ParseDrawingInstructions()
	if parsedData == nil || parsedErr == nil {
		return nil, errors.New("nil parsedData or parsedErr")
	}

	var instructions []*svg.DrawingInstruction
reading:
	for {
		select {
		case cmd := <-parsedData:
			if cmd == nil {
				break reading
			}

			instructions = append(instructions, cmd)
		case err := <-parsedErr:
			if err != nil {
				return nil, err
			}
		}
	}

	return im.convert(instructions)
}

// convert folds drawing instructions into paths. A move starts a new
// subpath, a line extends it, a close duplicates the subpath's opener.
func (im *Importer) convert(instructions []*svg.DrawingInstruction) ([]*pathd.Path, error) {
	var result []*pathd.Path
	var raw [][]float64

	// 1.0: flush the current subpath into a Path
	flush := func() error {
		if raw == nil {
			return nil
		}

		if len(raw) < 2 {
			glg.Warnf("dropping subpath with %d point(s)", len(raw))
			raw = nil
			return nil
		}

		path, err := pathd.FromFloats(raw)
		if err != nil {
			return fmt.Errorf("cant convert subpath: %w", err)
		}

		result = append(result, path)
		raw = nil

		return nil
	}

	// 2.0: fold instructions
	for _, cmd := range instructions {
		switch cmd.Kind {
		case svg.MoveInstruction:
			if err := flush(); err != nil {
				return nil, err
			}

			pt, err := im.coords(cmd.M[0], cmd.M[1])
			if err != nil {
				return nil, err
			}

			raw = append(raw, pt)
		case svg.LineInstruction:
			pt, err := im.coords(cmd.M[0], cmd.M[1])
			if err != nil {
				return nil, err
			}

			raw = append(raw, pt)
		case svg.CloseInstruction:
			if len(raw) == 0 {
				glg.Warn("closepath without a subpath")
				continue
			}

			raw = append(raw, []float64{raw[0][0], raw[0][1]})
		case svg.CircleInstruction:
			glg.Warn("Circle not supported")
		case svg.CurveInstruction:
			glg.Warn("Curve not supported")
		case svg.PaintInstruction:
			// paint carries no geometry
		default:
			glg.Warnf("unsupported drawing instruction %v", cmd.Kind)
		}
	}

	// 3.0: flush the trailing subpath
	if err := flush(); err != nil {
		return nil, err
	}

	return result, nil
}

// coords scales a raw coordinate pair and enforces integrality.
func (im *Importer) coords(x, y float64) ([]float64, error) {
	pt := make([]float64, 2)
	for i, v := range []float64{x * im.scale, y * im.scale} {
		if v != math.Trunc(v) {
			if !im.round {
				return nil, fmt.Errorf("%w: non-integer coordinate %v", pathd.ErrInvalidPath, v)
			}

			glg.Warnf("rounding non-integer coordinate %v", v)
			v = math.Round(v)
		}

		pt[i] = v
	}

	return pt, nil
}
