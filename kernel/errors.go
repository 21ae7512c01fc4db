// SPDX-License-Identifier: MIT
package kernel

import "errors"

// The three error kinds the kernel specification names (§7). Every error
// Select/ThetaSelect returns wraps exactly one of these via fmt.Errorf's
// %w, so callers can classify failures with errors.Is regardless of the
// originating collaborator package.
var (
	// ErrInvalidArgument covers bad flags, an unsorted candidate list, or
	// any malformed argument caught before dispatch.
	ErrInvalidArgument = errors.New("kernel: invalid argument")
	// ErrOutOfMemory covers an allocation failure in a collaborator.
	ErrOutOfMemory = errors.New("kernel: out of memory")
	// ErrUnsupported covers an unrecognized ThetaSelect operator string.
	ErrUnsupported = errors.New("kernel: unsupported operator")
)
