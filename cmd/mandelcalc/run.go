// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/katalvlaran/mandelcalc/matrix"
	"github.com/katalvlaran/mandelcalc/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rawSuffix selects the raw dump writer instead of an image encoder.
const rawSuffix = ".zst"

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute one iteration matrix",
		Long: `run computes the iteration matrix with the configured strategy and prints a
timing report. With --output it writes a grayscale image (.png, .bmp, .tif,
.tiff) or a zstd raw dump (.zst). With --reference it fails unless the result
equals the stored dump pixel for pixel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			return a.run()
		},
	}
	addGridFlags(cmd)
	f := cmd.Flags()
	f.String("strategy", "batch", fmt.Sprintf("calculation strategy %v", mandel.Kinds()))
	f.StringP("output", "o", "", "artifact to write (.png, .bmp, .tif, .tiff or .zst)")
	f.String("reference", "", "raw dump the result must match")

	return cmd
}

func (a *app) run() error {
	cfg := a.cfg
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	calc, err := mandel.New(kind, g, cfg.Grid.Limit, cfg.Options()...)
	if err != nil {
		return err
	}

	res := timeCompute(calc)
	a.log.WithFields(logrus.Fields{
		"strategy": kind.String(),
		"width":    g.Width,
		"height":   g.Height,
		"elapsed":  res.elapsed,
	}).Info("matrix computed")

	if err = writeReport(a.out, g, cfg.Grid.Limit, []result{res}); err != nil {
		return err
	}
	if p := cfg.Output.Path; p != "" {
		if err = writeArtifact(p, res.m, int32(cfg.Grid.Limit)); err != nil {
			return err
		}
		a.log.WithField("path", p).Info("artifact written")
	}
	if p := cfg.Output.Reference; p != "" {
		if err = checkReference(p, res.m, int32(cfg.Grid.Limit)); err != nil {
			return err
		}
		a.log.WithField("path", p).Info("reference matched")
	}

	return nil
}

// timeCompute runs one Compute and measures it.
func timeCompute(c mandel.Calculator) result {
	start := time.Now()
	m := c.Compute()

	return result{kind: c.Kind(), elapsed: time.Since(start), m: m}
}

// writeArtifact writes m to path, picking the writer from the extension.
func writeArtifact(path string, m *matrix.Dense, limit int32) (err error) {
	var write func(f *os.File) error
	if strings.HasSuffix(strings.ToLower(path), rawSuffix) {
		write = func(f *os.File) error { return render.WriteRaw(f, m, limit) }
	} else {
		format, ferr := render.FormatFromPath(path)
		if ferr != nil {
			return ferr
		}
		img, gerr := render.ToGray(m, limit)
		if gerr != nil {
			return gerr
		}
		write = func(f *os.File) error { return render.Encode(f, img, format) }
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeArtifact: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("writeArtifact: %w", cerr)
		}
	}()

	return write(f)
}

// checkReference compares m with the raw dump at path.
func checkReference(path string, m *matrix.Dense, limit int32) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("checkReference: %w", err)
	}
	defer f.Close()

	ref, refLimit, err := render.ReadRaw(f)
	if err != nil {
		return fmt.Errorf("checkReference(%s): %w", path, err)
	}
	if refLimit != limit {
		return fmt.Errorf("checkReference(%s): limit %d, reference %d: %w", path, limit, refLimit, errMismatch)
	}

	return compareMatrices("reference", ref, m)
}

// compareMatrices returns errMismatch describing the first differing pixel.
func compareMatrices(name string, want, got *matrix.Dense) error {
	row, col, found, err := matrix.FirstDifference(want, got)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", name, errMismatch, err)
	}
	if found {
		w, _ := want.At(row, col)
		g, _ := got.At(row, col)
		return fmt.Errorf("%s: pixel (%d,%d) is %d, want %d: %w", name, row, col, g, w, errMismatch)
	}

	return nil
}
