package mathutil

import "errors"

var (
	// ErrInvalidArgument reports an out-of-range index, a non-positive size or a
	// size mismatch between operands.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSingular reports an inverse requested on a matrix whose determinant is zero.
	ErrSingular = errors.New("matrix has no inverse")
)
