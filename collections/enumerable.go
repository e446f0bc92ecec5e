package collections

import "github.com/hasbyte1/go-iterable/iterable"

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable when a function needs both lazy iteration and random
// access over already materialized data.
type Enumerable[T any] interface {
	iterable.Sequence[T]
	iterable.Indexable[T]

	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)
}

var _ Enumerable[int] = (*Collection[int])(nil)
