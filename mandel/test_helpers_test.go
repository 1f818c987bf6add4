// SPDX-License-Identifier: MIT
// Package mandel_test contains test helpers
//
// Purpose:
//   • Build geometries and calculators or fail the test early.
//   • Keep fixtures on grids whose coordinates are exactly representable, so
//     mirrored and fully evaluated matrices can be compared bit for bit.

package mandel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/katalvlaran/mandelcalc/matrix"
	"github.com/stretchr/testify/require"
)

// exactGeometry is 33×17 over DefaultRegion: Dx = 2.5/32, Dy = 2.5/16, both
// powers-of-two fractions, so every pixel coordinate is exact in float32.
func exactGeometry(t testing.TB) mandel.Geometry {
	t.Helper()
	g, err := mandel.NewGeometry(33, 17, mandel.DefaultRegion)
	require.NoError(t, err)

	return g
}

// scenarioGeometry is the 5×5 grid over [-2, 0.5] × [-1.25, 1.25].
func scenarioGeometry(t testing.TB) mandel.Geometry {
	t.Helper()
	g, err := mandel.NewGeometry(5, 5, mandel.DefaultRegion)
	require.NoError(t, err)

	return g
}

// mustCompute builds the calculator for kind and runs it once.
func mustCompute(t testing.TB, kind mandel.Kind, g mandel.Geometry, limit int, opts ...mandel.Option) *matrix.Dense {
	t.Helper()
	c, err := mandel.New(kind, g, limit, opts...)
	require.NoError(t, err)
	m := c.Compute()
	require.NotNil(t, m)
	require.Equal(t, g.Height, m.Rows())
	require.Equal(t, g.Width, m.Cols())

	return m
}

// requireSameMatrix fails with the first differing pixel for readable output.
func requireSameMatrix(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	r, c, diff, err := matrix.FirstDifference(want, got)
	require.NoError(t, err)
	if diff {
		w, _ := want.At(r, c)
		g, _ := got.At(r, c)
		t.Fatalf("matrices differ at (%d,%d): want %d, got %d", r, c, w, g)
	}
}

// escapeTime64 is an independent double-precision escape loop with the same
// seeding (z = c) and the same index convention.
func escapeTime64(cx, cy float64, limit int) int {
	zx, zy := cx, cy
	for it := 0; it < limit; it++ {
		zx2, zy2 := zx*zx, zy*zy
		if zx2+zy2 > 4 {
			return it
		}
		zx, zy = zx2-zy2+cx, 2*zx*zy+cy
	}

	return limit
}

// escapeTrace32 replays the float32 recurrence and returns |z|² before each step.
func escapeTrace32(cx, cy float32, steps int) []float32 {
	out := make([]float32, 0, steps)
	zx, zy := cx, cy
	for i := 0; i < steps; i++ {
		zx2 := float32(zx * zx)
		zy2 := float32(zy * zy)
		out = append(out, zx2+zy2)
		zx, zy = zx2-zy2+cx, float32(2*zx*zy)+cy
	}

	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
