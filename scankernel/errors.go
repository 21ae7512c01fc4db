// SPDX-License-Identifier: MIT
package scankernel

import "errors"

// ErrColumnNil is returned when Scan is called with a nil column.
var ErrColumnNil = errors.New("scankernel: column is nil")
