// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every function returns these sentinels (optionally wrapped with call
// context) and tests match them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Wrap at the detection site with fmt.Errorf("Ctx: %w", ErrX); callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimensions/shape -> index -> value range -> structural (asymmetry).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that rows*cols does not fit in an int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/RowView/CopyRow) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices with different shapes were combined.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrValueOutOfRange indicates an entry outside the admissible [lo, hi] window,
	// e.g. an iteration count below zero or above the iteration limit.
	ErrValueOutOfRange = errors.New("matrix: value out of range")

	// ErrAsymmetry signals that row r and its mirror row (rows-1-r) differ.
	ErrAsymmetry = errors.New("matrix: rows are not mirror-symmetric")
)
