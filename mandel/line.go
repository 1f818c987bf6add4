// SPDX-License-Identifier: MIT

package mandel

import "github.com/katalvlaran/mandelcalc/matrix"

// Line evaluates a whole row per iteration step.
//
// Algorithm Outline (per evaluated row r):
//  1. y = Imag(r).
//  2. Seed zx[c] = Real(c), zy[c] = y for every column c in [0, Width).
//  3. For it in [0, limit): for every column still equal to limit, test
//     zx²+zy² > 4; on escape write it into the matrix, else advance z.
//  4. Stop the row once every column has escaped (live count reaches zero).
//  5. Copy row r onto row Height-1-r when the symmetry shortcut applies.
//
// Memory: two float32 buffers of Width entries per worker.
type Line struct {
	p params
}

var _ Calculator = (*Line)(nil)

// NewLine validates g and limit and returns a row-oriented calculator.
// Errors: ErrInvalidSize, ErrInvalidRegion, ErrInvalidLimit.
func NewLine(g Geometry, limit int, opts ...Option) (*Line, error) {
	p, err := newParams("NewLine", g, limit, opts)
	if err != nil {
		return nil, err
	}

	return &Line{p: p}, nil
}

// Compute returns the iteration matrix. See the type comment for the loop layout.
func (c *Line) Compute() *matrix.Dense {
	xs := c.p.geom.realAxis()
	limit := c.p.limit

	return c.p.sweep(KindLine, c.p.geom.Width, func(row []int32, y float32, s *scratch) {
		evalSpan(row, xs, y, s.zx, s.zy, limit)
	})
}

// Geometry returns the grid geometry.
func (c *Line) Geometry() Geometry { return c.p.geom }

// Limit returns the iteration limit.
func (c *Line) Limit() int { return int(c.p.limit) }

// Kind returns KindLine.
func (c *Line) Kind() Kind { return KindLine }
