// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Summaries over iteration matrices used by reports and tests.
//
// Exposed API:
//   - Histogram(m, limit) -> counts[0..limit]  // how many pixels escaped at each iteration
//   - CountEqual(m, v)    -> n                 // e.g. pixels that never escaped (v == limit)
//   - MinMax(m)           -> (lo, hi)
//
// Determinism & Performance:
//   - Single flat pass over the row-major buffer; no At/Set in the loops.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opHistogram = "Histogram"
	opMinMax    = "MinMax"
	opCount     = "CountEqual"
)

// Histogram counts entries per value in [0, limit].
// Implementation:
//   - Stage 1: validate m and limit.
//   - Stage 2: one pass over data; any entry outside [0, limit] aborts with ErrValueOutOfRange.
//
// Returns:
//   - []int of length limit+1; counts[k] = number of entries equal to k.
//
// Errors:
//   - ErrNilMatrix, ErrValueOutOfRange (also for a negative limit).
//
// Complexity:
//   - Time O(r*c + limit), Space O(limit).
func Histogram(m *Dense, limit int32) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opHistogram, err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%s: limit %d: %w", opHistogram, limit, ErrValueOutOfRange)
	}
	counts := make([]int, int(limit)+1)
	for _, v := range m.data {
		if v < 0 || v > limit {
			return nil, fmt.Errorf("%s: entry %d: %w", opHistogram, v, ErrValueOutOfRange)
		}
		counts[v]++
	}

	return counts, nil
}

// CountEqual returns how many entries equal v.
// Complexity: O(r*c).
func CountEqual(m *Dense, v int32) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opCount, err)
	}
	n := 0
	for _, x := range m.data {
		if x == v {
			n++
		}
	}

	return n, nil
}

// MinMax returns the smallest and largest entry.
// Complexity: O(r*c).
func MinMax(m *Dense) (lo, hi int32, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opMinMax, err)
	}
	lo, hi = m.data[0], m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}
