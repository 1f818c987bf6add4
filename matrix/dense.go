// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/RowView return errors instead of panicking.
//   - Expose no-copy row views so hot kernels can work on contiguous slices.
//
// AI-Hints:
//   - Kernels should grab RowView once per row and index the slice directly.
//   - Data() returns the backing buffer itself; treat it as borrowed.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/RowView: O(1); CopyRow: O(c); Clone/Equal/Fill: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRowView = "RowView" // method tag used in error wrappers
	ctxCopyRow = "CopyRow" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int32 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense returned by a calculator is owned by the caller; nothing else keeps
// a reference to its buffer.
type Dense struct {
	r, c int     // row and column counts (> 0)
	data []int32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols does not overflow.
//   - Stage 2: allocate zero-filled buffer.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Allocation failure is not an error value: the runtime aborts the process,
//     and there is no meaningful partial matrix to hand back anyway.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]int32, rows*cols),
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of entries (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RowView returns row i as a slice sharing the matrix buffer (no copy).
// MAIN DESCRIPTION:
//   - Zero-copy window onto one row; writes through the slice mutate the matrix.
//
// Behavior highlights:
//   - The returned slice has len == cap == Cols(), so appends never bleed into row i+1.
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RowView(i int) ([]int32, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}
	lo := i * m.c

	return m.data[lo : lo+m.c : lo+m.c], nil
}

// CopyRow overwrites row dst with the contents of row src.
// dst == src is legal and leaves the matrix unchanged.
// Complexity: O(c).
func (m *Dense) CopyRow(dst, src int) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf(ctxCopyRow, dst, src, ErrOutOfRange)
	}
	if src < 0 || src >= m.r {
		return denseErrorf(ctxCopyRow, dst, src, ErrOutOfRange)
	}
	if dst == src {
		return nil
	}
	copy(m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c])

	return nil
}

// Fill sets every entry to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v int32) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Data returns the flat row-major backing buffer (borrowed, not copied).
func (m *Dense) Data() []int32 { return m.data }

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and identical entries.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, test failures and small grids.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(int64(m.data[i*m.c+j]), 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
