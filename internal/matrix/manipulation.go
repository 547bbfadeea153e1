package matrix

import "fmt"

// Transpose transposes the matrix in place, keeping the same buffer.
//
// A vector only needs its dimensions swapped. A general matrix cannot be
// transposed in place, so elements are shuffled through a scratch buffer
// first: the element at (i, j), offset i*cols+j, moves to (j, i), offset
// j*rows+i in the new layout. Rectangular shapes are handled; square
// matrices take the same path.
func (m *Matrix) Transpose() {
	if !m.shape.IsVector() {
		rows, cols := m.shape.Rows, m.shape.Cols
		es := m.dtype.Size()
		tmp := make([]byte, len(m.data))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				src := es * (i*cols + j)
				dst := es * (j*rows + i)
				copy(tmp[dst:dst+es], m.data[src:src+es])
			}
		}
		copy(m.data, tmp)
	}
	m.shape.Rows, m.shape.Cols = m.shape.Cols, m.shape.Rows
}

// Reshape reinterprets the buffer under a new shape without moving data.
// Row-major layout is invariant under a size-preserving reshape, so only
// the shape metadata changes. Fails with a ShapeError if the element
// counts differ.
func (m *Matrix) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return &ShapeError{Op: "reshape", Details: err.Error()}
	}
	if shape.NumElements() != m.shape.NumElements() {
		return &ShapeError{
			Op:      "reshape",
			Details: fmt.Sprintf("cannot reshape %v into %v (element counts differ)", m.shape, shape),
		}
	}
	m.shape = shape
	return nil
}
