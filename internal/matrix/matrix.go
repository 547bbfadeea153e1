package matrix

import (
	"fmt"
	"unsafe"
)

// Matrix is a dense 2-D matrix over a contiguous row-major buffer.
// Element (i, j) of an R×C matrix lives at linear offset i*C + j.
type Matrix struct {
	shape Shape
	dtype DataType
	data  []byte
}

// New creates a zero-initialized matrix with the given shape and element kind.
func New(shape Shape, dtype DataType) (*Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, &ShapeError{Op: "new", Details: err.Error()}
	}
	return &Matrix{
		shape: shape,
		dtype: dtype,
		data:  make([]byte, shape.NumElements()*dtype.Size()),
	}, nil
}

// FromSlice creates a matrix from a Go slice.
// The slice is copied into the matrix's buffer; the element kind is inferred
// from the slice type.
func FromSlice[T Elem](data []T, shape Shape) (*Matrix, error) {
	if shape.NumElements() != len(data) {
		return nil, &ShapeError{
			Op:      "fromslice",
			Details: fmt.Sprintf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data)),
		}
	}

	var dummy T
	m, err := New(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	switch src := any(data).(type) {
	case []uint8:
		copy(m.AsUint8(), src)
	case []int8:
		copy(m.AsInt8(), src)
	case []uint16:
		copy(m.AsUint16(), src)
	case []int16:
		copy(m.AsInt16(), src)
	case []float32:
		copy(m.AsFloat32(), src)
	default:
		panic("unsupported type")
	}
	return m, nil
}

// Shape returns the matrix's shape.
func (m *Matrix) Shape() Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.shape.Rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.shape.Cols
}

// DType returns the matrix's element kind.
func (m *Matrix) DType() DataType {
	return m.dtype
}

// NumElements returns the total number of elements.
func (m *Matrix) NumElements() int {
	return m.shape.NumElements()
}

// ByteSize returns the total buffer size in bytes.
func (m *Matrix) ByteSize() int {
	return len(m.data)
}

// Data returns the raw byte buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (m *Matrix) Data() []byte {
	return m.data
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the matrix's dtype is not Float32.
func (m *Matrix) AsFloat32() []float32 {
	if m.dtype != Float32 {
		panic(fmt.Sprintf("matrix dtype is %s, not float32", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsInt16 interprets the buffer as []int16.
// Panics if the matrix's dtype is not Int16.
func (m *Matrix) AsInt16() []int16 {
	if m.dtype != Int16 {
		panic(fmt.Sprintf("matrix dtype is %s, not int16", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int16)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsUint16 interprets the buffer as []uint16.
// Panics if the matrix's dtype is not Uint16.
func (m *Matrix) AsUint16() []uint16 {
	if m.dtype != Uint16 {
		panic(fmt.Sprintf("matrix dtype is %s, not uint16", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsInt8 interprets the buffer as []int8.
// Panics if the matrix's dtype is not Int8.
func (m *Matrix) AsInt8() []int8 {
	if m.dtype != Int8 {
		panic(fmt.Sprintf("matrix dtype is %s, not int8", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int8)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsUint8 interprets the buffer as []uint8.
// Panics if the matrix's dtype is not Uint8.
func (m *Matrix) AsUint8() []uint8 {
	if m.dtype != Uint8 {
		panic(fmt.Sprintf("matrix dtype is %s, not uint8", m.dtype))
	}
	return m.data // Already []byte = []uint8
}

// offset computes the linear offset of element (i, j).
// Panics if the indices are out of bounds.
func (m *Matrix) offset(i, j int) int {
	if i < 0 || i >= m.shape.Rows {
		panic(fmt.Sprintf("row index %d out of bounds for shape %v", i, m.shape))
	}
	if j < 0 || j >= m.shape.Cols {
		panic(fmt.Sprintf("column index %d out of bounds for shape %v", j, m.shape))
	}
	return i*m.shape.Cols + j
}

// At returns the element at (i, j) widened to float64.
// Panics if the indices are out of bounds.
func (m *Matrix) At(i, j int) float64 {
	off := m.offset(i, j)
	switch m.dtype {
	case Uint8:
		return float64(m.data[off])
	case Int8:
		return float64(int8(m.data[off]))
	case Uint16:
		return float64(m.AsUint16()[off])
	case Int16:
		return float64(m.AsInt16()[off])
	case Float32:
		return float64(m.AsFloat32()[off])
	default:
		panic("unknown data type")
	}
}

// Set stores value at (i, j), narrowed to the matrix's element kind.
// Panics if the indices are out of bounds.
func (m *Matrix) Set(i, j int, value float64) {
	off := m.offset(i, j)
	switch m.dtype {
	case Uint8:
		m.data[off] = uint8(value)
	case Int8:
		m.AsInt8()[off] = int8(value)
	case Uint16:
		m.AsUint16()[off] = uint16(value)
	case Int16:
		m.AsInt16()[off] = int16(value)
	case Float32:
		m.AsFloat32()[off] = float32(value)
	default:
		panic("unknown data type")
	}
}

// Clone creates a deep copy of the matrix with its own buffer.
func (m *Matrix) Clone() *Matrix {
	clone := &Matrix{
		shape: m.shape,
		dtype: m.dtype,
		data:  make([]byte, len(m.data)),
	}
	copy(clone.data, m.data)
	return clone
}

// String returns a human-readable representation of the matrix.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix[%s]%v", m.dtype, m.shape)
}
