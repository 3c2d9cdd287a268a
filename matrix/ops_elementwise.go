// SPDX-License-Identifier: MIT

// Package matrix: private element-wise comparison kernels behind AllClose/Equal.
// Each kernel has a *Dense fast path over flat slices and an At-based fallback.
package matrix

import (
	"fmt"
	"math"
)

// ewAllClose implements AllClose; see its contract in api.go.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var (
		av, bv float64
		err    error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar predicate shared by both AllClose paths.
func closeTo(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities
		return true
	}
	diff := math.Abs(a - b) // NaN if either side is NaN; comparison below is then false

	return diff <= atol+rtol*math.Abs(b)
}

// ewEqual implements Equal: exact comparison, false on shape mismatch.
func ewEqual(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	return ewAllClose(a, b, 0, 0)
}
