// Package matrix provides the dense iteration matrix produced by the
// escape-time calculators in package mandel.
//
// The matrix package provides:
//
//   - Dense, a row-major int32 grid with bounds-checked accessors and
//     zero-copy row views for hot kernels.
//   - Validators for the invariants calculators promise: value range
//     [0, limit] and mirror symmetry about the horizontal midline.
//   - Small statistics (Histogram, CountEqual, MinMax) used by reports.
//
// All errors are package sentinels (see errors.go), matchable with errors.Is.
package matrix
