// SPDX-License-Identifier: MIT
package dispatch

import "errors"

// ErrColumnNil is returned by EmitDense/EmitSorted when col is nil.
var ErrColumnNil = errors.New("dispatch: column is nil")
