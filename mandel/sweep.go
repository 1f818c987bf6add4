// SPDX-License-Identifier: MIT

package mandel

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/mandelcalc/matrix"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// scratch holds one worker's per-pixel iteration state. It is allocated once
// per worker per Compute and reused for every row that worker evaluates.
type scratch struct {
	zx, zy []float32
}

func newScratch(n int) *scratch {
	return &scratch{zx: make([]float32, n), zy: make([]float32, n)}
}

// rowFunc evaluates one matrix row in place. row is prefilled with the limit
// and y is the row's imaginary coordinate.
type rowFunc func(row []int32, y float32, s *scratch)

// params is the state every strategy shares: validated geometry, limit and
// resolved options.
type params struct {
	geom  Geometry
	limit int32
	opts  Options
}

// newParams validates the construction inputs for the strategy tagged op.
// Errors: ErrInvalidSize, ErrInvalidRegion, ErrInvalidLimit.
func newParams(op string, g Geometry, limit int, opts []Option) (params, error) {
	if err := g.Validate(); err != nil {
		return params{}, mandelErrorf(op, err)
	}
	if limit <= 0 || limit > math.MaxInt32 {
		return params{}, mandelErrorf(op, ErrInvalidLimit)
	}
	p := params{geom: g, limit: int32(limit), opts: gatherOptions(opts...)}
	p.logger().WithFields(logrus.Fields{
		"op":       op,
		"width":    g.Width,
		"height":   g.Height,
		"limit":    limit,
		"mirrored": g.Mirrored(),
	}).Debug("calculator constructed")

	return p, nil
}

func (p params) logger() *logrus.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}

	return Logger()
}

// mirror reports whether only the top half of the rows is evaluated.
func (p params) mirror() bool {
	return p.opts.symmetry && p.geom.Mirrored()
}

// evalRows returns how many rows, counted from row 0, need numeric evaluation.
func (p params) evalRows() int {
	if p.mirror() {
		return (p.geom.Height + 1) / 2
	}

	return p.geom.Height
}

// sweep allocates the result matrix, prefills it with the limit and evaluates
// rows [0, evalRows()) with eval, copying each finished row onto its mirror
// when the symmetry shortcut applies.
//
// With more than one worker, row r goes to worker r mod workers (interleaved,
// so the expensive rows near the real axis spread evenly). Every worker owns
// its scratch buffers and writes only rows r and Height-1-r, so rows are
// disjoint across workers and no locking is needed.
func (p params) sweep(kind Kind, scratchLen int, eval rowFunc) *matrix.Dense {
	start := time.Now()
	g := p.geom

	m, err := matrix.NewDense(g.Height, g.Width)
	if err != nil {
		// Geometry was validated at construction.
		panic(fmt.Sprintf("mandel: %s.Compute: %v", kind, err))
	}
	m.Fill(p.limit)

	mirror := p.mirror()
	rows := p.evalRows()
	workers := min(p.opts.workers, rows)
	log := p.logger()
	trace := log.IsLevelEnabled(logrus.TraceLevel)

	evalOne := func(r int, s *scratch) {
		row, _ := m.RowView(r) // r < Height by construction
		eval(row, g.Imag(r), s)
		if mirror {
			_ = m.CopyRow(g.Height-1-r, r)
		}
		if trace {
			log.WithFields(logrus.Fields{"strategy": kind.String(), "row": r}).Trace("row done")
		}
	}

	if workers <= 1 {
		s := newScratch(scratchLen)
		for r := 0; r < rows; r++ {
			evalOne(r, s)
		}
	} else {
		var eg errgroup.Group
		for w := 0; w < workers; w++ {
			eg.Go(func() error {
				s := newScratch(scratchLen)
				for r := w; r < rows; r += workers {
					evalOne(r, s)
				}
				return nil
			})
		}
		_ = eg.Wait() // workers never fail
	}

	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"strategy":  kind.String(),
			"evaluated": rows,
			"mirrored":  mirror,
			"workers":   max(workers, 1),
			"elapsed":   time.Since(start),
		}).Debug("compute finished")
	}

	return m
}
