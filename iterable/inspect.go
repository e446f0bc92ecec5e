package iterable

// IsEmpty reports whether s is nil or its first advance reports done.
//
// IsEmpty takes a cursor and advances it once. On a one-shot source the
// element it reads is consumed and will not be seen by a later walk.
func IsEmpty[T any](s Sequence[T]) bool {
	if s == nil {
		return true
	}
	_, ok := s.Cursor().Next()
	return !ok
}

// First returns the first element of s. The boolean is false when s is nil
// or immediately done. Like [IsEmpty], it advances a cursor exactly once.
func First[T any](s Sequence[T]) (T, bool) {
	return From(s).Cursor().Next()
}

// Some reports whether any element satisfies pred. It stops at the first
// match; elements up to and including the match are consumed.
func Some[T any](s Sequence[T], pred func(T) bool) bool {
	cur := From(s).Cursor()
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether all elements satisfy pred, stopping at the first
// element that does not. An empty sequence satisfies every predicate.
func Every[T any](s Sequence[T], pred func(T) bool) bool {
	return !Some(s, func(v T) bool { return !pred(v) })
}
