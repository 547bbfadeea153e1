// Package matrix implements a dense 2-D matrix kernel over flat, row-major
// numeric buffers.
package matrix

// Elem is a constraint for supported matrix element types.
type Elem interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~float32
}

// DataType represents runtime element-kind information for matrices.
type DataType int

// Supported element kinds.
const (
	Uint8 DataType = iota
	Int8
	Uint16
	Int16
	Float32
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Float32:
		return 4
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Elem](dummy T) DataType {
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case float32:
		return Float32
	default:
		panic("unsupported type")
	}
}
