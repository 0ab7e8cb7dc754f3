package htree

import "errors"

var (
	// ErrCountOverflow is returned when a segment count does not fit in
	// a uint64.
	ErrCountOverflow = errors.New("htree: segment count overflows uint64")

	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is zero.
	ErrSingularMatrix = errors.New("htree: matrix is not invertible")
)
