// SPDX-License-Identifier: MIT
package column

import "errors"

// Sentinel errors for column construction and candidate-list validation.
var (
	// ErrNonPositiveCount is returned by Column.Validate when a column's
	// element count is negative.
	ErrNonPositiveCount = errors.New("column: element count must be >= 0")

	// ErrDataLengthMismatch is returned when a materialized column's
	// Data slice length does not match N.
	ErrDataLengthMismatch = errors.New("column: len(Data) does not match N")

	// ErrCandidatesUnsorted is returned when a materialized candidate
	// list is not strictly ascending.
	ErrCandidatesUnsorted = errors.New("column: candidate list is not strictly ascending")

	// ErrParentNil is returned when View is called with a nil parent.
	ErrParentNil = errors.New("column: parent column is nil")

	// ErrViewOutOfRange is returned when a view's [offset, offset+n)
	// range does not fit within its parent's element count.
	ErrViewOutOfRange = errors.New("column: view range exceeds parent bounds")
)
