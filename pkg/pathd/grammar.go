package pathd

import (
	"fmt"
	"regexp"
	"strconv"
)

// The restricted grammar accepted here is a small subset of SVG path syntax:
// one moveto, at least one lineto group, an optional trailing closepath.
//
//	[Mm] int int ([Ll] int int (int int)*)+ [Zz]?
//
// Lowercase lineto means coordinates relative to the previously resolved
// point; once a command letter is seen its relativity applies to every
// following pair until the next letter. Integers only - a decimal point
// anywhere makes the whole string invalid.

// tokenRe splits a path description into command letters, integers and
// whitespace runs. Anything it cannot match is a grammar violation.
var tokenRe = regexp.MustCompile(`[MmLlZz]|[+-]?[0-9]+|\s+`)

type token struct {
	cmd byte // command letter, or 0 for an integer token
	val int
	gap bool // whitespace directly before this token
}

// tokenize returns the token list or false on any character that belongs
// to neither a command, an integer nor whitespace.
func tokenize(s string) ([]token, bool) {
	var toks []token

	prevEnd := 0
	gap := false
	for _, loc := range tokenRe.FindAllStringIndex(s, -1) {
		if loc[0] != prevEnd {
			return nil, false
		}
		prevEnd = loc[1]

		text := s[loc[0]:loc[1]]
		switch c := text[0]; c {
		case 'M', 'm', 'L', 'l', 'Z', 'z':
			toks = append(toks, token{cmd: c, gap: gap})
			gap = false
		case ' ', '\t', '\n', '\r', '\f':
			gap = true
		default:
			v, err := strconv.Atoi(text)
			if err != nil {
				return nil, false
			}

			toks = append(toks, token{val: v, gap: gap})
			gap = false
		}
	}

	if prevEnd != len(s) {
		return nil, false
	}

	return toks, true
}

// readPair consumes two integer tokens starting at i. The first one needs
// leading whitespace only if gapFirst is set (it follows another integer);
// the second always does.
func readPair(toks []token, i int, gapFirst bool) (x, y, next int, ok bool) {
	if i+1 >= len(toks) || toks[i].cmd != 0 || toks[i+1].cmd != 0 {
		return 0, 0, i, false
	}

	if gapFirst && !toks[i].gap {
		return 0, 0, i, false
	}

	if !toks[i+1].gap {
		return 0, 0, i, false
	}

	return toks[i].val, toks[i+1].val, i + 2, true
}

// parsePoints is the single parser behind IsPathString and
// PointsFromString. All state is local to the call.
func parsePoints(s string) ([]Point, error) {
	toks, ok := tokenize(s)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected character in %q", ErrInvalidPath, s)
	}

	// 1.0: moveto - always resolved as an absolute pair.
	if len(toks) == 0 || (toks[0].cmd != 'M' && toks[0].cmd != 'm') {
		return nil, fmt.Errorf("%w: missing moveto in %q", ErrInvalidPath, s)
	}

	x, y, i, ok := readPair(toks, 1, false)
	if !ok {
		return nil, fmt.Errorf("%w: malformed moveto in %q", ErrInvalidPath, s)
	}

	opener := Pt(x, y)
	pts := []Point{opener}
	current := opener

	// 1.1: lineto groups. A pair with no letter reuses the last relativity.
	rel := false
	sawLineto := false
	for i < len(toks) {
		switch t := toks[i]; t.cmd {
		case 'L', 'l':
			rel = t.cmd == 'l'

			x, y, i, ok = readPair(toks, i+1, false)
			if !ok {
				return nil, fmt.Errorf("%w: malformed lineto in %q", ErrInvalidPath, s)
			}

			current = resolve(current, x, y, rel)
			pts = append(pts, current)
			sawLineto = true
		case 0:
			if !sawLineto {
				return nil, fmt.Errorf("%w: coordinates without a lineto in %q", ErrInvalidPath, s)
			}

			x, y, i, ok = readPair(toks, i, true)
			if !ok {
				return nil, fmt.Errorf("%w: malformed coordinate pair in %q", ErrInvalidPath, s)
			}

			current = resolve(current, x, y, rel)
			pts = append(pts, current)
		case 'Z', 'z':
			// 1.2: closepath - legal only as the very last token. It appends
			// an exact duplicate of the opener, not a computed delta.
			if !sawLineto || i != len(toks)-1 {
				return nil, fmt.Errorf("%w: misplaced closepath in %q", ErrInvalidPath, s)
			}

			pts = append(pts, opener)
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected command %q in %q", ErrInvalidPath, t.cmd, s)
		}
	}

	if !sawLineto {
		return nil, fmt.Errorf("%w: moveto without lineto in %q", ErrInvalidPath, s)
	}

	return pts, nil
}

// resolve turns a raw coordinate pair into an absolute point. Relative
// pairs chain from the previously resolved point, not from the opener.
func resolve(current Point, x, y int, rel bool) Point {
	if rel {
		return current.Add(Pt(x, y))
	}

	return Pt(x, y)
}

// IsPathString reports whether s is a valid restricted path description.
func IsPathString(s string) bool {
	_, err := parsePoints(s)
	return err == nil
}
