// SPDX-License-Identifier: MIT
package imprint

import "errors"

var (
	// ErrColumnNil is returned when Build is called with a nil column.
	ErrColumnNil = errors.New("imprint: column is nil")

	// ErrInvalidK is returned when a configured bin count is not one of
	// the supported K values (8, 16, 32, 64).
	ErrInvalidK = errors.New("imprint: K must be one of 8, 16, 32, 64")
)
