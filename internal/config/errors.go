// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig wraps every validation failure; the message names the key.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrReadConfig indicates the configuration file could not be read or decoded.
	ErrReadConfig = errors.New("config: cannot read configuration")
)
