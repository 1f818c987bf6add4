// Package mandelcalc computes Mandelbrot escape-time matrices: for every pixel
// of a grid over the complex plane it records the iteration at which the orbit
// of z = z² + c left the disc of radius 2.
//
// 🚀 What is inside?
//
//	Three interchangeable strategies that produce bit-identical results:
//		• Reference: one pixel at a time, the oracle for everything else
//		• Line: one whole row per pass, with early exit when the row is done
//		• Batch: rows split into fixed-width chunks that stay in L1
//
// ✨ Why use it?
//
//   - Deterministic: float32 arithmetic with explicit rounding, same answer on every GOARCH
//   - Symmetric grids evaluate only the top half and mirror the rest
//   - Row workers scale across cores without locks
//   - Results are plain int32 matrices you own
//
// Packages:
//
//	mandel/: geometry, calculators, options, package logger
//	matrix/: row-major int32 matrix, validators, histograms
//	render/: grayscale PNG/BMP/TIFF images, zstd raw dumps
//	internal/config/: layered configuration (defaults, YAML, env, flags)
//	cmd/mandelcalc/: command-line harness: run, compare, config
//
// Quick example (5×5 over [-2, 0.5] × [-1.25, 1.25], limit 50):
//
//	[0, 1, 2, 2, 1]
//	[0, 2, 4, 50, 3]
//	[50, 50, 50, 50, 4]
//	[0, 2, 4, 50, 3]
//	[0, 1, 2, 2, 1]
//
// Entries equal to the limit never escaped.
//
//	go install github.com/katalvlaran/mandelcalc/cmd/mandelcalc@latest
package mandelcalc
