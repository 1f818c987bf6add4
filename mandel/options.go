// SPDX-License-Identifier: MIT

// Package mandel: functional configuration for calculators.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: options never change the computed matrix, only
//     how the work is laid out (chunk width, worker count, symmetry shortcut).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package mandel

import "github.com/sirupsen/logrus"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultChunkSize is the Batch strategy's chunk width in pixels.
	// 64 float32 lanes = 256 bytes per temporary buffer, a few cache lines.
	DefaultChunkSize = 64

	// DefaultWorkers keeps a single thread of control per Compute.
	DefaultWorkers = 1

	// DefaultSymmetry enables the mirror shortcut (evaluate the top half only)
	// whenever the geometry is symmetric about the real axis.
	DefaultSymmetry = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicChunkSizeInvalid = "mandel: WithChunkSize: size must be > 0"
	panicWorkersInvalid   = "mandel: WithWorkers: workers must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	chunkSize int            // DefaultChunkSize; Batch only
	workers   int            // DefaultWorkers
	symmetry  bool           // DefaultSymmetry
	logger    *logrus.Logger // nil ⇒ package Logger() at Compute time
}

// WithChunkSize sets the Batch strategy's chunk width.
// Implementation:
//   - Stage 1: validate n > 0 (panic otherwise).
//   - Stage 2: return a setter writing chunkSize.
//
// Behavior highlights:
//   - Rows whose width is not a multiple of n end with a shorter, partial chunk.
//   - Ignored by the Reference and Line strategies.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithChunkSize(n int) Option {
	if n <= 0 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

// WithWorkers sets how many goroutines share the rows of one Compute call.
// Values above the number of evaluated rows are clamped at Compute time.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSymmetry enables the mirror shortcut (default).
// It only takes effect when Geometry.Mirrored() reports true.
func WithSymmetry() Option {
	return func(o *Options) { o.symmetry = true }
}

// WithoutSymmetry forces numeric evaluation of every row.
func WithoutSymmetry() Option {
	return func(o *Options) { o.symmetry = false }
}

// WithLogger routes this calculator's diagnostics to l instead of the package logger.
// A nil l restores the package logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		chunkSize: DefaultChunkSize,
		workers:   DefaultWorkers,
		symmetry:  DefaultSymmetry,
	}
}

// gatherOptions applies opts in order over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
