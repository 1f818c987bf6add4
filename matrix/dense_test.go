// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense iteration matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mandelcalc/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds an r×c matrix whose entry (i,j) is i*c + j.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, int32(i*c+j)))
		}
	}

	return m
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive and overflowing shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(math.MaxInt/2+1, 2)         // rows*cols overflows int
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestShape verifies that Rows, Cols, Shape and Len agree and start zeroed.
func TestShape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Equal(t, 12, m.Len())
	require.Equal(t, make([]int32, 12), m.Data())
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1)                          // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
	require.Contains(t, err.Error(), "Dense.Set(2,0)")

	err = m.Set(0, -1, 4)                         // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGetRowMajor validates Set/At and the i*c + j layout of Data.
func TestSetGetRowMajor(t *testing.T) {
	m := mustDense(t, 2, 3)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int32(5), v)
	require.Equal(t, []int32{0, 1, 2, 3, 4, 5}, m.Data())
}

// TestRowView checks that views alias the buffer and cannot grow into the next row.
func TestRowView(t *testing.T) {
	m := mustDense(t, 3, 2)

	row, err := m.RowView(1)
	require.NoError(t, err)
	require.Equal(t, []int32{2, 3}, row)
	require.Equal(t, 2, cap(row))

	row[0] = 42
	v, _ := m.At(1, 0)
	require.Equal(t, int32(42), v, "writes through the view reach the matrix")

	row = append(row, 99)
	v, _ = m.At(2, 0)
	require.Equal(t, int32(4), v, "append must reallocate instead of clobbering row 2")

	_, err = m.RowView(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowView(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCopyRow covers the mirror copy, the self copy and bad indices.
func TestCopyRow(t *testing.T) {
	m := mustDense(t, 3, 3)

	require.NoError(t, m.CopyRow(2, 0))
	row, _ := m.RowView(2)
	require.Equal(t, []int32{0, 1, 2}, row)

	require.NoError(t, m.CopyRow(1, 1))
	row, _ = m.RowView(1)
	require.Equal(t, []int32{3, 4, 5}, row)

	require.ErrorIs(t, m.CopyRow(3, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.CopyRow(0, -1), matrix.ErrOutOfRange)
}

// TestFill sets every entry.
func TestFill(t *testing.T) {
	m := mustDense(t, 2, 2)
	m.Fill(7)
	require.Equal(t, []int32{7, 7, 7, 7}, m.Data())
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2)
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 9))
	orig, _ := m.At(0, 0)
	require.Equal(t, int32(0), orig) // original unchanged
	require.False(t, m.Equal(clone))
}

// TestEqual covers nil handling and shape differences with equal buffers.
func TestEqual(t *testing.T) {
	var nilA, nilB *matrix.Dense
	require.True(t, nilA.Equal(nilB))

	a := mustDense(t, 2, 3)
	require.False(t, a.Equal(nil))
	require.False(t, nilA.Equal(a))

	// same six values, transposed shape
	b, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	copy(b.Data(), a.Data())
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(a.Clone()))
}

// TestString checks the row-per-line dump.
func TestString(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.Equal(t, "[0, 1]\n[2, 3]\n", m.String())

	one, _ := matrix.NewDense(1, 1)
	one.Fill(-3)
	require.Equal(t, "[-3]\n", one.String())
}
