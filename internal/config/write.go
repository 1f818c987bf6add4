// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes cfg as YAML with two-space indentation.
func WriteYAML(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// WriteDefaultFile writes Default to path. Without overwrite an existing file
// is left untouched and the error wraps fs.ErrExist.
func WriteDefaultFile(path string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("WriteDefaultFile(%s): %w", path, fs.ErrExist)
		}
		return fmt.Errorf("WriteDefaultFile(%s): %w", path, err)
	}
	if err = WriteYAML(f, Default()); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
