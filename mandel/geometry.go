// SPDX-License-Identifier: MIT

package mandel

import "math"

// Region is a rectangle of the complex plane: [RealMin, RealMax] × [ImagMin, ImagMax].
type Region struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64
}

// DefaultRegion frames the whole set with a square aspect and an imaginary
// range centred on the real axis, so the mirror shortcut applies.
var DefaultRegion = Region{
	RealMin: -2.0,
	RealMax: 0.5,
	ImagMin: -1.25,
	ImagMax: 1.25,
}

// RealSpan returns RealMax - RealMin.
func (r Region) RealSpan() float64 { return r.RealMax - r.RealMin }

// ImagSpan returns ImagMax - ImagMin.
func (r Region) ImagSpan() float64 { return r.ImagMax - r.ImagMin }

// Validate reports ErrInvalidRegion for non-finite bounds or empty/inverted ranges.
func (r Region) Validate() error {
	for _, v := range [...]float64{r.RealMin, r.RealMax, r.ImagMin, r.ImagMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return mandelErrorf("Region.Validate", ErrInvalidRegion)
		}
	}
	if !(r.RealMax > r.RealMin) || !(r.ImagMax > r.ImagMin) {
		return mandelErrorf("Region.Validate", ErrInvalidRegion)
	}

	return nil
}

// Geometry maps pixel (col, row) onto the complex plane:
//
//	real = RealStart + col·Dx
//	imag = ImagStart + row·Dy
//
// It is a plain value; calculators copy it at construction and never mutate it.
type Geometry struct {
	Width, Height        int     // pixel columns, pixel rows
	RealStart, ImagStart float64 // coordinate of pixel (0, 0)
	Dx, Dy               float64 // per-pixel step along each axis
}

// NewGeometry lays a width×height grid over region so that the first and last
// pixel of each axis sit exactly on the region bounds (step = span/(n-1)).
// An axis with a single pixel gets step 0 and sits on the lower bound.
//
// Errors: ErrInvalidSize, ErrInvalidRegion.
func NewGeometry(width, height int, region Region) (Geometry, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return Geometry{}, mandelErrorf("NewGeometry", ErrInvalidSize)
	}
	if err := region.Validate(); err != nil {
		return Geometry{}, mandelErrorf("NewGeometry", err)
	}

	return Geometry{
		Width:     width,
		Height:    height,
		RealStart: region.RealMin,
		ImagStart: region.ImagMin,
		Dx:        axisStep(region.RealSpan(), width),
		Dy:        axisStep(region.ImagSpan(), height),
	}, nil
}

// GeometryFromBase derives the grid from one base size under a fixed aspect
// convention: Width = base, Height = round(base · ImagSpan/RealSpan), at least 1.
func GeometryFromBase(base int, region Region) (Geometry, error) {
	if base <= 0 {
		return Geometry{}, mandelErrorf("GeometryFromBase", ErrInvalidSize)
	}
	if err := region.Validate(); err != nil {
		return Geometry{}, mandelErrorf("GeometryFromBase", err)
	}
	h := math.Round(float64(base) * region.ImagSpan() / region.RealSpan())
	if h > float64(math.MaxInt32) {
		return Geometry{}, mandelErrorf("GeometryFromBase", ErrInvalidSize)
	}

	return NewGeometry(base, max(1, int(h)), region)
}

func axisStep(span float64, n int) float64 {
	if n == 1 {
		return 0
	}

	return span / float64(n-1)
}

// Validate checks a Geometry built as a literal rather than through NewGeometry.
// Errors: ErrInvalidSize, ErrInvalidRegion.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 || g.Width > math.MaxInt/g.Height {
		return mandelErrorf("Geometry.Validate", ErrInvalidSize)
	}
	for _, v := range [...]float64{g.RealStart, g.ImagStart, g.Dx, g.Dy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return mandelErrorf("Geometry.Validate", ErrInvalidRegion)
		}
	}
	if g.Dx < 0 || g.Dy < 0 {
		return mandelErrorf("Geometry.Validate", ErrInvalidRegion)
	}

	return nil
}

// Pixels returns Width·Height.
func (g Geometry) Pixels() int { return g.Width * g.Height }

// Real returns the single-precision real coordinate of column col.
func (g Geometry) Real(col int) float32 { return float32(g.RealStart + float64(col)*g.Dx) }

// Imag returns the single-precision imaginary coordinate of row row.
func (g Geometry) Imag(row int) float32 { return float32(g.ImagStart + float64(row)*g.Dy) }

// ImagEnd returns the imaginary coordinate of the last row (double precision).
func (g Geometry) ImagEnd() float64 { return g.ImagStart + float64(g.Height-1)*g.Dy }

// Mirrored reports whether the rows are laid out symmetrically about the real
// axis, i.e. row r and row Height-1-r have opposite imaginary parts. Escape
// times are symmetric under conjugation, so such grids only need their top half.
func (g Geometry) Mirrored() bool {
	end := g.ImagEnd()
	tol := 1e-12 * max(math.Abs(g.ImagStart), math.Abs(end), 1)

	return math.Abs(g.ImagStart+end) <= tol
}

// realAxis returns Real(col) for every column, computed once per Compute and
// shared read-only by all workers.
func (g Geometry) realAxis() []float32 {
	xs := make([]float32, g.Width)
	for i := range xs {
		xs[i] = g.Real(i)
	}

	return xs
}
