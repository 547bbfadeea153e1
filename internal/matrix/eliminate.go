package matrix

// epsilon is the singularity tolerance: a pivot with magnitude below it
// aborts elimination with ErrSingularMatrix. No partial pivoting is
// performed, so a zero on the natural diagonal is reported singular even
// when a row exchange would recover it.
const epsilon = 1e-6

// eliminate runs Gauss-Jordan reduction on the n×n row-major buffer data.
//
// When unit is non-nil it is reduced in lockstep with data; initialized to
// the identity it becomes the inverse (the companion matrix). A nil unit
// selects the variant used by Det, which only needs the reduced diagonal.
//
// For every pivot row, the pivot's row is subtracted from all other rows
// scaled by factor = data[r][m] / pivot, zeroing column m outside the pivot
// row. Rows are never exchanged and no sign bookkeeping is needed.
func eliminate(data, unit []float32, n int) error {
	for m := 0; m < n; m++ {
		pivot := data[m*(n+1)]
		if pivot < epsilon && pivot > -epsilon {
			return ErrSingularMatrix
		}
		for r := 0; r < n; r++ {
			if r == m {
				continue
			}
			factor := data[r*n+m] / pivot
			for k := 0; k < n; k++ {
				data[r*n+k] -= factor * data[m*n+k]
			}
			if unit == nil {
				continue
			}
			for k := 0; k < n; k++ {
				unit[r*n+k] -= factor * unit[m*n+k]
			}
		}
	}
	return nil
}

// invertBuffer replaces the n×n buffer data with its inverse.
// The companion starts as the identity; after the pivot sweep each row of
// data holds a multiple of an identity row, so dividing both buffers by the
// diagonal finishes the reduction and the companion is the inverse.
func invertBuffer(data []float32, n int) error {
	unit := make([]float32, n*n)
	for m := 0; m < n; m++ {
		unit[m*(n+1)] = 1
	}
	if err := eliminate(data, unit, n); err != nil {
		return err
	}
	for m := 0; m < n; m++ {
		d := data[m*(n+1)]
		for k := 0; k < n; k++ {
			data[m*n+k] /= d
			unit[m*n+k] /= d
		}
	}
	copy(data, unit)
	return nil
}
