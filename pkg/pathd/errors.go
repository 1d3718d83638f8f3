package pathd

import "errors"

var (
	// ErrInvalidPath indicates input that is neither a valid path description
	// nor a valid point sequence.
	ErrInvalidPath = errors.New("invalid path")
)
