package matrix

import "errors"

// Common errors.
var (
	// ErrSingularMatrix is reported when a pivot magnitude falls below the
	// elimination tolerance. No row exchanges are attempted, so a matrix
	// with a zero on the natural diagonal is singular for this kernel even
	// when a row swap would recover it.
	ErrSingularMatrix = errors.New("matrix is singular")
)

// ShapeError reports operand shapes incompatible with the requested
// operation. It is always returned before any computation begins or an
// output buffer is allocated.
type ShapeError struct {
	Op      string // operation that rejected the shapes
	Details string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return e.Op + ": " + e.Details
}
