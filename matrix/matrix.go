// Copyright 2026 The densemat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for dense 2-D matrix operations.
//
// The package operates on flat, row-major numeric buffers with a runtime
// element-kind tag:
//   - Matrix: shape + element kind over a contiguous buffer
//   - Structured constructors: Zeros, Ones, Full, Eye, Arange
//   - Shape transforms: Transpose (in place), Reshape (metadata only)
//   - Algebra: MatMul, Invert, Det — always computed and returned in
//     single-precision float regardless of the operand kinds
//
// Inversion and determinant use Gauss-Jordan elimination with a fixed
// tolerance and no partial pivoting: a matrix with a zero on the natural
// diagonal is reported singular even when a row exchange would recover it.
//
// Example:
//
//	m, _ := matrix.FromSlice([]float32{4, 7, 2, 6}, matrix.Shape{Rows: 2, Cols: 2})
//	inv, err := matrix.Invert(m)
package matrix

import (
	"github.com/densemat/densemat/internal/matrix"
)

// Type aliases for public API

// Matrix is a dense 2-D matrix over a contiguous row-major buffer.
type Matrix = matrix.Matrix

// Shape represents the dimensions of a 2-D matrix.
type Shape = matrix.Shape

// DataType represents the element kind of a matrix.
type DataType = matrix.DataType

// Supported element kinds.
const (
	Uint8   DataType = matrix.Uint8
	Int8    DataType = matrix.Int8
	Uint16  DataType = matrix.Uint16
	Int16   DataType = matrix.Int16
	Float32 DataType = matrix.Float32
)

// Elem is a constraint for supported matrix element types.
type Elem = matrix.Elem

// ShapeError reports operand shapes incompatible with the requested
// operation.
type ShapeError = matrix.ShapeError

// ErrSingularMatrix is reported by Invert and Det when a pivot magnitude
// falls below the elimination tolerance.
var ErrSingularMatrix = matrix.ErrSingularMatrix

// Vec returns the shape of a 1×n row vector.
func Vec(n int) Shape {
	return matrix.Vec(n)
}

// Creation functions

// New creates a zero-initialized matrix with the given shape and element kind.
func New(shape Shape, dtype DataType) (*Matrix, error) {
	return matrix.New(shape, dtype)
}

// FromSlice creates a matrix from a Go slice, copying the data and
// inferring the element kind from the slice type.
//
// Example:
//
//	m, err := matrix.FromSlice([]float32{1, 2, 3, 4, 5, 6}, matrix.Shape{Rows: 2, Cols: 3})
func FromSlice[T Elem](data []T, shape Shape) (*Matrix, error) {
	return matrix.FromSlice(data, shape)
}

// Zeros creates a matrix filled with zeros in the requested element kind.
func Zeros(shape Shape, dtype DataType) (*Matrix, error) {
	return matrix.Zeros(shape, dtype)
}

// Ones creates a matrix filled with ones in the requested element kind.
func Ones(shape Shape, dtype DataType) (*Matrix, error) {
	return matrix.Ones(shape, dtype)
}

// Full creates a matrix filled with a specific value, narrowed to the
// requested element kind.
func Full(shape Shape, value float64, dtype DataType) (*Matrix, error) {
	return matrix.Full(shape, value, dtype)
}

// Arange creates a 1×n vector with values from start to stop (exclusive).
func Arange(start, stop float64, dtype DataType) (*Matrix, error) {
	return matrix.Arange(start, stop, dtype)
}

// Eye creates an m×n matrix with ones on the diagonal offset by k columns
// and zeros elsewhere. m == 0 selects a square n×n matrix.
//
// Example:
//
//	e, _ := matrix.Eye(3, 0, 1, matrix.Float32)
//	// [[0 1 0]
//	//  [0 0 1]
//	//  [0 0 0]]
func Eye(n, m, k int, dtype DataType) (*Matrix, error) {
	return matrix.Eye(n, m, k, dtype)
}

// Algebra functions

// MatMul computes the matrix product a×b. Requires a.Cols == b.Rows; the
// result has shape (a.Rows, b.Cols) and is always Float32.
func MatMul(a, b *Matrix) (*Matrix, error) {
	return matrix.MatMul(a, b)
}

// Invert returns the inverse of the square matrix a as a new Float32
// matrix, or ErrSingularMatrix if a pivot falls below the elimination
// tolerance.
func Invert(a *Matrix) (*Matrix, error) {
	return matrix.Invert(a)
}

// Det computes the determinant of the square matrix a in single precision,
// or ErrSingularMatrix if a pivot falls below the elimination tolerance.
func Det(a *Matrix) (float32, error) {
	return matrix.Det(a)
}
