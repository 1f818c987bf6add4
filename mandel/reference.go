// SPDX-License-Identifier: MIT

package mandel

import "github.com/katalvlaran/mandelcalc/matrix"

// Reference is the straightforward strategy: each pixel runs its own scalar
// escape loop to completion before the next pixel starts. It keeps no
// temporary buffers and is the oracle the other strategies are checked against.
type Reference struct {
	p params
}

var _ Calculator = (*Reference)(nil)

// NewReference validates g and limit and returns a per-pixel calculator.
// Errors: ErrInvalidSize, ErrInvalidRegion, ErrInvalidLimit.
func NewReference(g Geometry, limit int, opts ...Option) (*Reference, error) {
	p, err := newParams("NewReference", g, limit, opts)
	if err != nil {
		return nil, err
	}

	return &Reference{p: p}, nil
}

// Compute evaluates every pixel of the evaluated rows independently.
// Complexity: O(W·H'·limit) worst case, H' = evaluated rows.
func (c *Reference) Compute() *matrix.Dense {
	xs := c.p.geom.realAxis()
	limit := c.p.limit

	return c.p.sweep(KindReference, 0, func(row []int32, y float32, _ *scratch) {
		for i, x := range xs {
			row[i] = escapeTime(x, y, limit)
		}
	})
}

// Geometry returns the grid geometry.
func (c *Reference) Geometry() Geometry { return c.p.geom }

// Limit returns the iteration limit.
func (c *Reference) Limit() int { return int(c.p.limit) }

// Kind returns KindReference.
func (c *Reference) Kind() Kind { return KindReference }
