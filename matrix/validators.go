// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - Single source of truth for structural checks shared by calculators, tests and the harness.
//   - Every validator returns a sentinel wrapped with its own tag; callers may wrap again.
//
// Determinism:
//   - Fixed i→j scan order; the first violation found is always the same one.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have identical shapes.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRange ensures every entry lies in the closed window [lo, hi].
// MAIN DESCRIPTION:
//   - Range invariant for iteration matrices: counts are never negative and
//     never exceed the iteration limit.
//
// Errors:
//   - ErrNilMatrix on nil input.
//   - ErrValueOutOfRange wrapped with the coordinates of the first offending entry.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ValidateRange(m *Dense, lo, hi int32) error {
	if m == nil {
		return validatorErrorf("ValidateRange", ErrNilMatrix)
	}
	for off, v := range m.data {
		if v < lo || v > hi {
			return validatorErrorf("ValidateRange",
				fmt.Errorf("(%d,%d)=%d not in [%d,%d]: %w", off/m.c, off%m.c, v, lo, hi, ErrValueOutOfRange))
		}
	}

	return nil
}

// ValidateMirrorSymmetric ensures row r equals row rows-1-r for every r.
// MAIN DESCRIPTION:
//   - Checks the horizontal-midline symmetry of escape-time matrices computed
//     over an imaginary range centred on the real axis.
//
// Errors:
//   - ErrNilMatrix on nil input.
//   - ErrAsymmetry wrapped with the first mismatching row pair.
//
// Complexity:
//   - Time O(r*c/2), Space O(1).
func ValidateMirrorSymmetric(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateMirrorSymmetric", ErrNilMatrix)
	}
	for top := 0; top < m.r/2; top++ {
		bottom := m.r - 1 - top
		a := m.data[top*m.c : (top+1)*m.c]
		b := m.data[bottom*m.c : (bottom+1)*m.c]
		for j := range a {
			if a[j] != b[j] {
				return validatorErrorf("ValidateMirrorSymmetric",
					fmt.Errorf("rows %d/%d differ at column %d: %w", top, bottom, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// FirstDifference returns the coordinates of the first entry where a and b differ.
// found is false when the matrices are identical.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape check precedes the scan).
func FirstDifference(a, b *Dense) (row, col int, found bool, err error) {
	if err = ValidateSameShape(a, b); err != nil {
		return 0, 0, false, validatorErrorf("FirstDifference", err)
	}
	for off, v := range a.data {
		if b.data[off] != v {
			return off / a.c, off % a.c, true, nil
		}
	}

	return 0, 0, false, nil
}
