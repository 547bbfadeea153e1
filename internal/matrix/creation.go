package matrix

import "fmt"

// Zeros creates a matrix of the given shape filled with zeros in the
// requested element kind.
func Zeros(shape Shape, dtype DataType) (*Matrix, error) {
	// Buffers are already zero-initialized by make().
	return New(shape, dtype)
}

// Ones creates a matrix of the given shape filled with ones in the
// requested element kind.
func Ones(shape Shape, dtype DataType) (*Matrix, error) {
	return Full(shape, 1, dtype)
}

// Full creates a matrix filled with value, narrowed to the requested
// element kind.
func Full(shape Shape, value float64, dtype DataType) (*Matrix, error) {
	m, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < shape.Rows; i++ {
		for j := 0; j < shape.Cols; j++ {
			m.Set(i, j, value)
		}
	}
	return m, nil
}

// Arange creates a 1×n vector with values from start to stop (exclusive)
// in steps of one.
func Arange(start, stop float64, dtype DataType) (*Matrix, error) {
	n := int(stop - start)
	if n <= 0 {
		return nil, &ShapeError{
			Op:      "arange",
			Details: fmt.Sprintf("empty range [%v, %v)", start, stop),
		}
	}
	m, err := New(Vec(n), dtype)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		m.Set(0, j, start+float64(j))
	}
	return m, nil
}

// Eye creates an m×n matrix of the requested element kind, all zero except
// for a diagonal of ones offset by k columns: k > 0 shifts the diagonal
// up/right, k < 0 down/left. m == 0 selects a square n×n matrix. A diagonal
// shifted entirely off the matrix is valid and leaves it all zero.
func Eye(n, m, k int, dtype DataType) (*Matrix, error) {
	if m == 0 {
		m = n
	}
	out, err := New(Shape{Rows: m, Cols: n}, dtype)
	if err != nil {
		return nil, err
	}
	if k >= 0 {
		for i := 0; i < m && k+i < n; i++ {
			out.Set(i, k+i, 1)
		}
	} else {
		for i := 0; i < n && -k+i < m; i++ {
			out.Set(-k+i, i, 1)
		}
	}
	return out, nil
}
