package matrix

import "fmt"

// Invert returns the inverse of the square matrix a.
// The result is always a new Float32 matrix regardless of a's element kind.
// Fails with a ShapeError for non-square input and wraps ErrSingularMatrix
// when a pivot falls below the elimination tolerance.
func Invert(a *Matrix) (*Matrix, error) {
	if !a.shape.IsSquare() {
		return nil, &ShapeError{
			Op:      "invert",
			Details: fmt.Sprintf("only square matrices can be inverted, got %v", a.shape),
		}
	}

	out, err := New(a.shape, Float32)
	if err != nil {
		return nil, err
	}
	data := out.AsFloat32()
	n := a.shape.Rows
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = float32(a.At(i, j))
		}
	}

	if err := invertBuffer(data, n); err != nil {
		return nil, fmt.Errorf("invert: %w", err)
	}
	return out, nil
}

// MatMul computes the matrix product a×b: C[i,j] = Σ_k A[i,k] * B[k,j].
// Requires a.Cols == b.Rows; the result has shape (a.Rows, b.Cols) and is
// always Float32 regardless of the operand kinds.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a.shape.Cols != b.shape.Rows {
		return nil, &ShapeError{
			Op:      "matmul",
			Details: fmt.Sprintf("shape mismatch %v × %v (inner dimensions differ)", a.shape, b.shape),
		}
	}

	m, k, n := a.shape.Rows, a.shape.Cols, b.shape.Cols
	out, err := New(Shape{Rows: m, Cols: n}, Float32)
	if err != nil {
		return nil, err
	}

	if a.dtype == Float32 && b.dtype == Float32 {
		matmulFloat32(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	} else {
		matmulWiden(out.AsFloat32(), a, b, m, k, n)
	}
	return out, nil
}

// matmulFloat32 is the fast path for Float32 operands.
func matmulFloat32(c, a, b []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for kk := 0; kk < k; kk++ {
				sum += a[i*k+kk] * b[kk*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// matmulWiden upcasts each operand element to float32 on access, covering
// the integer element kinds.
func matmulWiden(c []float32, a, b *Matrix, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for kk := 0; kk < k; kk++ {
				sum += float32(a.At(i, kk)) * float32(b.At(kk, j))
			}
			c[i*n+j] = sum
		}
	}
}

// Det computes the determinant of the square matrix a in single precision.
// Elements are copied into a float32 working buffer, forward elimination
// runs over it, and the determinant is the product of the resulting
// diagonal. Fails with a ShapeError for non-square input and wraps
// ErrSingularMatrix when a pivot falls below the elimination tolerance.
func Det(a *Matrix) (float32, error) {
	if !a.shape.IsSquare() {
		return 0, &ShapeError{
			Op:      "det",
			Details: fmt.Sprintf("determinant is defined for square matrices only, got %v", a.shape),
		}
	}

	n := a.shape.Rows
	work := make([]float32, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			work[i*n+j] = float32(a.At(i, j))
		}
	}

	if err := eliminate(work, nil, n); err != nil {
		return 0, fmt.Errorf("det: %w", err)
	}

	det := float32(1)
	for m := 0; m < n; m++ {
		det *= work[m*(n+1)]
	}
	return det, nil
}
