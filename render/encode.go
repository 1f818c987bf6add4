// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects an image encoder.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// FormatFromPath picks the format from the file extension (case-insensitive).
// Accepted: .png, .bmp, .tif, .tiff.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}

	return 0, fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
}

// Encode writes img to w in the requested format.
// TIFF output is Deflate-compressed; PNG uses the default compression level.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("Encode(%v): %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Encode(%v): %w", f, err)
	}

	return nil
}
