// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy on the same grid and verify identical output",
		Long: `compare runs the reference, line and batch strategies with the same geometry,
limit and options, prints one timing line per strategy and fails unless all
matrices are identical to the reference result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			return a.compare()
		},
	}
	addGridFlags(cmd)

	return cmd
}

func (a *app) compare() error {
	cfg := a.cfg
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	results := make([]result, 0, len(mandel.Kinds()))
	for _, kind := range mandel.Kinds() {
		calc, err := mandel.New(kind, g, cfg.Grid.Limit, cfg.Options()...)
		if err != nil {
			return err
		}
		res := timeCompute(calc)
		a.log.WithFields(logrus.Fields{"strategy": kind.String(), "elapsed": res.elapsed}).Debug("strategy finished")
		results = append(results, res)
	}

	if err = writeReport(a.out, g, cfg.Grid.Limit, results); err != nil {
		return err
	}
	for _, res := range results[1:] {
		if err = compareMatrices(res.kind.String(), results[0].m, res.m); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(a.out, "all %d strategies identical\n", len(results))

	return err
}
