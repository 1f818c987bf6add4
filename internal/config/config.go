// SPDX-License-Identifier: MIT

// Package config loads the harness configuration for mandelcalc.
//
// Sources are layered, later ones winning:
//
//	defaults → YAML file (optional) → MANDEL_* environment → bound command-line flags
//
// Keys are dotted paths (grid.size, calc.chunk_size, ...); the environment
// form upper-cases them and replaces dots with underscores, e.g.
// MANDEL_CALC_CHUNK_SIZE.
package config

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "MANDEL"

// Config is the fully resolved harness configuration.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid" yaml:"grid"`
	Calc   CalcConfig   `mapstructure:"calc" yaml:"calc"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// GridConfig describes the sampled grid.
type GridConfig struct {
	// Size is the base width in pixels; the height follows the region aspect.
	Size   int          `mapstructure:"size" yaml:"size"`
	Limit  int          `mapstructure:"limit" yaml:"limit"`
	Region RegionConfig `mapstructure:"region" yaml:"region"`
}

// RegionConfig is the rectangle of the complex plane to sample.
type RegionConfig struct {
	RealMin float64 `mapstructure:"real_min" yaml:"real_min"`
	RealMax float64 `mapstructure:"real_max" yaml:"real_max"`
	ImagMin float64 `mapstructure:"imag_min" yaml:"imag_min"`
	ImagMax float64 `mapstructure:"imag_max" yaml:"imag_max"`
}

// CalcConfig selects and tunes the calculator.
type CalcConfig struct {
	Strategy  string `mapstructure:"strategy" yaml:"strategy"`
	ChunkSize int    `mapstructure:"chunk_size" yaml:"chunk_size"`
	// Workers is the number of row workers; 0 means GOMAXPROCS.
	Workers  int  `mapstructure:"workers" yaml:"workers"`
	Symmetry bool `mapstructure:"symmetry" yaml:"symmetry"`
}

// OutputConfig controls artifacts and logging.
type OutputConfig struct {
	// Path is the artifact to write: .png/.bmp/.tif/.tiff for an image,
	// .zst for a raw dump. Empty writes nothing.
	Path string `mapstructure:"path" yaml:"path"`
	// Reference is a raw dump the computed matrix must match exactly.
	Reference string `mapstructure:"reference" yaml:"reference"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	r := mandel.DefaultRegion

	return Config{
		Grid: GridConfig{
			Size:  1024,
			Limit: 256,
			Region: RegionConfig{
				RealMin: r.RealMin,
				RealMax: r.RealMax,
				ImagMin: r.ImagMin,
				ImagMax: r.ImagMax,
			},
		},
		Calc: CalcConfig{
			Strategy:  mandel.KindBatch.String(),
			ChunkSize: mandel.DefaultChunkSize,
			Workers:   mandel.DefaultWorkers,
			Symmetry:  mandel.DefaultSymmetry,
		},
		Output: OutputConfig{
			LogLevel: "info",
		},
	}
}

// SetDefaults registers every key of Default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("grid.size", d.Grid.Size)
	v.SetDefault("grid.limit", d.Grid.Limit)
	v.SetDefault("grid.region.real_min", d.Grid.Region.RealMin)
	v.SetDefault("grid.region.real_max", d.Grid.Region.RealMax)
	v.SetDefault("grid.region.imag_min", d.Grid.Region.ImagMin)
	v.SetDefault("grid.region.imag_max", d.Grid.Region.ImagMax)
	v.SetDefault("calc.strategy", d.Calc.Strategy)
	v.SetDefault("calc.chunk_size", d.Calc.ChunkSize)
	v.SetDefault("calc.workers", d.Calc.Workers)
	v.SetDefault("calc.symmetry", d.Calc.Symmetry)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.reference", d.Output.Reference)
	v.SetDefault("output.log_level", d.Output.LogLevel)
	v.SetDefault("output.verbose", d.Output.Verbose)
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"size":       "grid.size",
	"limit":      "grid.limit",
	"real-min":   "grid.region.real_min",
	"real-max":   "grid.region.real_max",
	"imag-min":   "grid.region.imag_min",
	"imag-max":   "grid.region.imag_max",
	"strategy":   "calc.strategy",
	"chunk-size": "calc.chunk_size",
	"workers":    "calc.workers",
	"symmetry":   "calc.symmetry",
	"output":     "output.path",
	"reference":  "output.reference",
	"log-level":  "output.log_level",
	"verbose":    "output.verbose",
}

// BindFlags binds every known flag present in fs to its key.
// Flags that are absent from fs are skipped, so commands may expose a subset.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("BindFlags(%s): %w", name, err)
		}
	}

	return nil
}

// Load resolves the configuration from v. path names an optional YAML file;
// an empty path skips the file layer. Flags must already be bound.
//
// Errors: ErrReadConfig for an unreadable or undecodable file, ErrInvalidConfig
// for values that fail Validate.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func invalid(key string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, key, fmt.Sprintf(format, args...))
}

// Validate checks every value the calculators would otherwise reject or panic on.
func (c Config) Validate() error {
	if c.Grid.Size <= 0 {
		return invalid("grid.size", "must be > 0, got %d", c.Grid.Size)
	}
	if c.Grid.Limit <= 0 || c.Grid.Limit > math.MaxInt32 {
		return invalid("grid.limit", "must be in [1, %d], got %d", math.MaxInt32, c.Grid.Limit)
	}
	if err := c.Region().Validate(); err != nil {
		return invalid("grid.region", "%v", err)
	}
	if _, err := mandel.ParseKind(c.Calc.Strategy); err != nil {
		return invalid("calc.strategy", "%q is not one of %v", c.Calc.Strategy, mandel.Kinds())
	}
	if c.Calc.ChunkSize <= 0 {
		return invalid("calc.chunk_size", "must be > 0, got %d", c.Calc.ChunkSize)
	}
	if c.Calc.Workers < 0 {
		return invalid("calc.workers", "must be >= 0, got %d", c.Calc.Workers)
	}
	switch strings.ToLower(c.Output.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return invalid("output.log_level", "unknown level %q", c.Output.LogLevel)
	}

	return nil
}

// Region converts the configured rectangle.
func (c Config) Region() mandel.Region {
	r := c.Grid.Region

	return mandel.Region{RealMin: r.RealMin, RealMax: r.RealMax, ImagMin: r.ImagMin, ImagMax: r.ImagMax}
}

// Geometry derives the sampling grid from grid.size and the region aspect.
func (c Config) Geometry() (mandel.Geometry, error) {
	return mandel.GeometryFromBase(c.Grid.Size, c.Region())
}

// Kind parses calc.strategy.
func (c Config) Kind() (mandel.Kind, error) {
	return mandel.ParseKind(c.Calc.Strategy)
}

// Workers resolves calc.workers, mapping 0 to GOMAXPROCS.
func (c Config) Workers() int {
	if c.Calc.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return c.Calc.Workers
}

// Options translates the calc section into calculator options.
// Call Validate first: the option constructors panic on non-positive values.
func (c Config) Options() []mandel.Option {
	opts := []mandel.Option{
		mandel.WithChunkSize(c.Calc.ChunkSize),
		mandel.WithWorkers(c.Workers()),
	}
	if c.Calc.Symmetry {
		opts = append(opts, mandel.WithSymmetry())
	} else {
		opts = append(opts, mandel.WithoutSymmetry())
	}

	return opts
}
