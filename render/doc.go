// SPDX-License-Identifier: MIT

// Package render turns iteration matrices into artifacts: grayscale images in
// PNG, BMP or TIFF, and zstd-compressed raw dumps that can be read back for
// bit-exact comparison between runs.
//
//	img, _ := render.ToGray(m, limit)
//	_ = render.Encode(f, img, render.FormatPNG)
//
//	_ = render.WriteRaw(dump, m, limit)
//	ref, refLimit, err := render.ReadRaw(dump)
//
// There are no color palettes: escape counts map linearly to gray levels and
// points of the set are black.
package render
