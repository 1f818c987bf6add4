// Package mandel computes Mandelbrot escape-time matrices.
//
// Every pixel (col, row) of a Geometry is mapped to c = x + iy and iterated
// with z ← z² + c starting from z = c; the matrix entry is the iteration
// index at which |z|² first exceeds 4, or the iteration limit if it never
// does. Arithmetic is single precision.
//
// Three interchangeable strategies implement the Calculator contract and
// produce bit-identical matrices:
//
//	Reference: per-pixel scalar loop, no temporaries
//	Line: whole-row temporaries, row-level early exit
//	Batch: fixed-size chunk temporaries (WithChunkSize), chunk-level early exit
//
// When the imaginary range is centred on the real axis (Geometry.Mirrored),
// only the top ⌈Height/2⌉ rows are iterated and each is copied onto its
// mirror row. WithWorkers spreads rows over goroutines; rows write disjoint
// slices of the matrix, so no locking is involved.
//
// Quick start:
//
//	g, _ := mandel.GeometryFromBase(1024, mandel.DefaultRegion)
//	calc, _ := mandel.New(mandel.KindBatch, g, 256, mandel.WithWorkers(8))
//	m := calc.Compute()
package mandel
