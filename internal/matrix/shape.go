package matrix

import "fmt"

// Shape represents the dimensions of a 2-D matrix.
type Shape struct {
	Rows, Cols int
}

// Vec returns the shape of a 1×n row vector.
func Vec(n int) Shape {
	return Shape{Rows: 1, Cols: n}
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// IsVector reports whether the shape has a single row or a single column.
func (s Shape) IsVector() bool {
	return s.Rows == 1 || s.Cols == 1
}

// IsSquare reports whether the shape has as many rows as columns.
func (s Shape) IsSquare() bool {
	return s.Rows == s.Cols
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("invalid shape %v (dimensions must be > 0)", s)
	}
	return nil
}

// String returns the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
