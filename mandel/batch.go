// SPDX-License-Identifier: MIT

package mandel

import "github.com/katalvlaran/mandelcalc/matrix"

// Batch splits every evaluated row into contiguous chunks of ChunkSize
// columns and runs the Line recurrence on one chunk at a time.
//
// Boundary policy: when Width is not a multiple of ChunkSize the last chunk
// of each row is shorter (clipped at the row end, never padded), so no
// temporary ever covers a column outside [0, Width).
//
// Each chunk keeps its own live count and stops once all of its columns
// escaped; chunks never share state, which keeps the temporaries small
// enough to stay in L1 at the cost of re-entering the iteration loop once
// per chunk.
type Batch struct {
	p params
}

var _ Calculator = (*Batch)(nil)

// NewBatch validates g and limit and returns a chunked calculator.
// The chunk width comes from WithChunkSize (default DefaultChunkSize).
// Errors: ErrInvalidSize, ErrInvalidRegion, ErrInvalidLimit.
func NewBatch(g Geometry, limit int, opts ...Option) (*Batch, error) {
	p, err := newParams("NewBatch", g, limit, opts)
	if err != nil {
		return nil, err
	}

	return &Batch{p: p}, nil
}

// Compute returns the iteration matrix.
func (c *Batch) Compute() *matrix.Dense {
	xs := c.p.geom.realAxis()
	limit := c.p.limit
	chunk := c.ChunkSize()

	return c.p.sweep(KindBatch, min(chunk, c.p.geom.Width), func(row []int32, y float32, s *scratch) {
		for lo := 0; lo < len(row); lo += chunk {
			hi := min(lo+chunk, len(row))
			evalSpan(row[lo:hi], xs[lo:hi], y, s.zx, s.zy, limit)
		}
	})
}

// ChunkSize returns the configured chunk width.
func (c *Batch) ChunkSize() int { return c.p.opts.chunkSize }

// Geometry returns the grid geometry.
func (c *Batch) Geometry() Geometry { return c.p.geom }

// Limit returns the iteration limit.
func (c *Batch) Limit() int { return int(c.p.limit) }

// Kind returns KindBatch.
func (c *Batch) Kind() Kind { return KindBatch }
