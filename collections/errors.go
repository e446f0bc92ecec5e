package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNoMatchingItems is returned by FirstOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")
)
