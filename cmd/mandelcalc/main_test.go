// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/mandelcalc/internal/config"
	"github.com/katalvlaran/mandelcalc/mandel"
	"github.com/katalvlaran/mandelcalc/render"
	"github.com/stretchr/testify/require"
)

// execute runs one CLI invocation and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	orig := mandel.Logger()
	t.Cleanup(func() { mandel.SetLogger(orig) })

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_WritesImageAndRaw(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "set.png")
	raw := filepath.Join(dir, "set.mtx.zst")

	out, _, err := execute(t, "run", "--size", "48", "--limit", "60", "--output", png)
	require.NoError(t, err)
	require.Contains(t, out, "grid 48 x 48 (2,304 pixels), limit 60")
	require.Contains(t, out, "batch")
	require.FileExists(t, png)

	_, _, err = execute(t, "run", "--size", "48", "--limit", "60", "--strategy", "reference", "-o", raw)
	require.NoError(t, err)

	f, err := os.Open(raw)
	require.NoError(t, err)
	defer f.Close()
	m, limit, err := render.ReadRaw(f)
	require.NoError(t, err)
	require.Equal(t, int32(60), limit)
	require.Equal(t, 48, m.Rows())
}

func TestRun_ReferenceCheck(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "ref.zst")
	_, _, err := execute(t, "run", "--size", "40", "--limit", "80", "--strategy", "reference", "--output", raw)
	require.NoError(t, err)

	for _, kind := range []string{"line", "batch", "row"} {
		_, _, err = execute(t, "run", "--size", "40", "--limit", "80", "--strategy", kind,
			"--chunk-size", "7", "--workers", "3", "--reference", raw)
		require.NoError(t, err, kind)
	}

	// a different limit changes the matrix
	_, _, err = execute(t, "run", "--size", "40", "--limit", "81", "--reference", raw)
	require.ErrorIs(t, err, errMismatch)
}

func TestRun_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "run", "--size", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--size", "8", "--strategy", "gpu")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--size", "8", "--output", filepath.Join(t.TempDir(), "x.jpg"))
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestRun_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "mandel.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("grid:\n  size: 20\n  limit: 30\n"), 0o644))
	t.Setenv("MANDEL_GRID_LIMIT", "25")

	out, _, err := execute(t, "--config", cfgPath, "run")
	require.NoError(t, err)
	require.Contains(t, out, "grid 20 x 20 (400 pixels), limit 25")
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	_, errOut, err := execute(t, "run", "--size", "16", "--limit", "10", "--verbose")
	require.NoError(t, err)
	require.Contains(t, errOut, "configuration loaded")
	require.Contains(t, errOut, "compute finished")
	require.Contains(t, errOut, "matrix computed")
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare", "--size", "36", "--limit", "40", "--chunk-size", "5", "--workers", "2")
	require.NoError(t, err)
	for _, k := range mandel.Kinds() {
		require.Contains(t, out, k.String())
	}
	require.Contains(t, out, "all 3 strategies identical")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandelcalc.yaml")

	out, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)

	_, _, err = execute(t, "config", "init", path)
	require.Error(t, err)
	_, _, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)

	out, _, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "strategy: batch")
	require.Contains(t, out, "limit: 256")
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	l := setupLogger(&buf, config.OutputConfig{LogLevel: "warn"})
	require.Equal(t, "warning", l.GetLevel().String())

	l = setupLogger(&buf, config.OutputConfig{LogLevel: "warn", Verbose: true})
	require.Equal(t, "debug", l.GetLevel().String())

	l = setupLogger(&buf, config.OutputConfig{LogLevel: "trace", Verbose: true})
	require.Equal(t, "trace", l.GetLevel().String())

	l = setupLogger(&buf, config.OutputConfig{})
	require.Equal(t, "info", l.GetLevel().String())
}
