// SPDX-License-Identifier: MIT
// Package mandel: sentinel error set.
// Constructors return these sentinels (wrapped with the constructor tag) and
// tests match them via errors.Is. Compute never returns an error: inputs are
// validated at construction and running out of memory aborts the process.

package mandel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive width, height or base size,
	// or a grid whose pixel count does not fit in an int.
	ErrInvalidSize = errors.New("mandel: grid size must be > 0")

	// ErrInvalidLimit indicates an iteration limit outside [1, math.MaxInt32].
	ErrInvalidLimit = errors.New("mandel: iteration limit must be in [1, MaxInt32]")

	// ErrInvalidRegion indicates a non-finite, empty or inverted coordinate range,
	// or a geometry with non-finite origin or negative steps.
	ErrInvalidRegion = errors.New("mandel: invalid complex-plane region")

	// ErrUnknownStrategy indicates a strategy name or Kind that is not registered.
	ErrUnknownStrategy = errors.New("mandel: unknown calculation strategy")
)

// mandelErrorf wraps err with an operation tag, keeping the sentinel reachable.
func mandelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
