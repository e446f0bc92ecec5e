package iterable

import "iter"

// Reduce folds s from the left, starting from initial. It walks s to
// completion and therefore never returns for an infinite sequence. fn is not
// called for an empty sequence.
//
//	sum := iterable.Reduce(iterable.Of(1, 2, 3), func(acc, n int) int { return acc + n }, 0) // → 6
func Reduce[T, R any](s Sequence[T], fn func(R, T) R, initial R) R {
	acc := initial
	cur := From(s).Cursor()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		acc = fn(acc, v)
	}
	return acc
}

// Collect walks s to completion and returns its elements as a new slice.
// The result is never nil.
func Collect[T any](s Sequence[T]) []T {
	return Reduce(s, func(acc []T, v T) []T { return append(acc, v) }, make([]T, 0))
}

// Values adapts s to an [iter.Seq]. Each range loop takes a new cursor from
// s; breaking out of the loop simply abandons it.
//
//	for v := range iterable.Values(seq) { ... }
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := From(s).Cursor()
		for v, ok := cur.Next(); ok; v, ok = cur.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
