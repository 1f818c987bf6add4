// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"time"

	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/katalvlaran/mandelcalc/matrix"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// result is one timed Compute.
type result struct {
	kind    mandel.Kind
	elapsed time.Duration
	m       *matrix.Dense
}

// writeReport prints one line per result: wall time, throughput, and how many
// pixels stayed inside versus escaped. Numbers use English digit grouping.
func writeReport(w io.Writer, g mandel.Geometry, limit int, results []result) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "grid %d x %d (%d pixels), limit %d\n", g.Width, g.Height, g.Pixels(), limit); err != nil {
		return err
	}
	for _, r := range results {
		inside, err := matrix.CountEqual(r.m, int32(limit))
		if err != nil {
			return err
		}
		elapsed := max(r.elapsed, time.Nanosecond)
		rate := float64(r.m.Len()) / elapsed.Seconds()
		if _, err = p.Fprintf(w, "%-10s %12v %16.0f px/s %12d inside %12d escaped\n",
			r.kind, elapsed.Round(time.Microsecond), rate, inside, r.m.Len()-inside); err != nil {
			return err
		}
	}

	return nil
}
