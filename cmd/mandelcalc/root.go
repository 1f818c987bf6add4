// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"strings"

	"github.com/katalvlaran/mandelcalc/internal/config"
	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errMismatch is returned when two matrices that must be identical differ.
var errMismatch = errors.New("mandelcalc: matrices differ")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgPath string
	out     io.Writer
	errOut  io.Writer
	cfg     config.Config
	log     *logrus.Logger
}

// newRootCmd builds the command tree. Each call gets its own viper instance,
// so tests can run several invocations in one process.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "mandelcalc",
		Short: "Mandelbrot escape-time calculator",
		Long: `mandelcalc evaluates the Mandelbrot recurrence z = z² + c over a grid of the
complex plane and records, per pixel, the iteration at which |z| exceeded 2.

Configuration is layered: built-in defaults, then the YAML file given with
--config, then MANDEL_* environment variables, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "configuration file (YAML)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.Bool("verbose", false, "verbose output (same as --log-level debug)")

	root.AddCommand(newRunCmd(a), newCompareCmd(a), newConfigCmd(a))

	return root
}

// addGridFlags registers the flags shared by run and compare.
func addGridFlags(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.Flags()
	f.Int("size", d.Grid.Size, "grid base width in pixels (height follows the region aspect)")
	f.Int("limit", d.Grid.Limit, "iteration limit")
	f.Float64("real-min", d.Grid.Region.RealMin, "lower bound of the real axis")
	f.Float64("real-max", d.Grid.Region.RealMax, "upper bound of the real axis")
	f.Float64("imag-min", d.Grid.Region.ImagMin, "lower bound of the imaginary axis")
	f.Float64("imag-max", d.Grid.Region.ImagMax, "upper bound of the imaginary axis")
	f.Int("chunk-size", d.Calc.ChunkSize, "batch strategy chunk width")
	f.Int("workers", d.Calc.Workers, "row workers (0 = GOMAXPROCS)")
	f.Bool("symmetry", d.Calc.Symmetry, "mirror rows across the real axis when the region allows it")
}

// load resolves the configuration for cmd and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = setupLogger(a.errOut, cfg.Output)
	mandel.SetLogger(a.log)
	a.log.WithFields(logrus.Fields{
		"config":   a.v.ConfigFileUsed(),
		"strategy": cfg.Calc.Strategy,
		"size":     cfg.Grid.Size,
		"limit":    cfg.Grid.Limit,
	}).Debug("configuration loaded")

	return nil
}

// setupLogger builds the harness logger from the output section.
func setupLogger(w io.Writer, cfg config.OutputConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch strings.ToLower(cfg.LogLevel) {
	case "trace":
		logger.SetLevel(logrus.TraceLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	if cfg.Verbose && !logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
