// SPDX-License-Identifier: MIT
package hashindex

import "errors"

// ErrColumnNil is returned when Build is called with a nil column.
var ErrColumnNil = errors.New("hashindex: column is nil")
