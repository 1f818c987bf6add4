// SPDX-License-Identifier: MIT
// Package render: sentinel error set.
// Every message is prefixed with "render: "; callers match with errors.Is.

package render

import "errors"

var (
	// ErrUnknownFormat indicates an image format or file extension that has no encoder.
	ErrUnknownFormat = errors.New("render: unknown image format")

	// ErrInvalidLimit indicates a non-positive iteration limit passed to a converter or dump.
	ErrInvalidLimit = errors.New("render: limit must be > 0")

	// ErrBadDump indicates a raw dump whose header or body is malformed.
	ErrBadDump = errors.New("render: malformed raw dump")
)
