// SPDX-License-Identifier: MIT

package mandel

// Test bridge: exposes unexported kernels and the resolved option set to the
// mandel_test package without widening the production API.

var (
	ExportedEscapeStep = escapeStep
	ExportedEscapeTime = escapeTime
	ExportedEvalSpan   = evalSpan
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	ChunkSize int
	Workers   int
	Symmetry  bool
	HasLogger bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		ChunkSize: o.chunkSize,
		Workers:   o.workers,
		Symmetry:  o.symmetry,
		HasLogger: o.logger != nil,
	}
}

// EvaluatedRows reports how many rows Compute iterates numerically.
func EvaluatedRows(c Calculator) int {
	switch v := c.(type) {
	case *Reference:
		return v.p.evalRows()
	case *Line:
		return v.p.evalRows()
	case *Batch:
		return v.p.evalRows()
	}

	return -1
}
