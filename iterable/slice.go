package iterable

// Slice returns a lazy sequence over src[from:to] with the index rules of
// conventional array slicing rather than Go's panicking slice expressions:
//
//   - a negative from or to counts back from the end (length+from);
//   - to defaults to the length and is clamped to it;
//   - from below the start is clamped to 0;
//   - when from >= to after normalization the result is empty.
//
// Out-of-range indices are never an error. Indices are normalized once per
// cursor, on its first advance, reading src.Len() at that moment.
//
//	iterable.Collect(iterable.Slice(iterable.Of(0, 1, 2, 3, 4), 1, -1)) // → [1 2 3]
func Slice[T any](src Indexable[T], from int, to ...int) Sequence[T] {
	if src == nil {
		return Empty[T]()
	}
	end, hasEnd := 0, len(to) > 0
	if hasEnd {
		end = to[0]
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &sliceCursor[T]{src: src, from: from, to: end, hasTo: hasEnd}
	})
}

type sliceCursor[T any] struct {
	src   Indexable[T]
	from  int
	to    int
	hasTo bool
	walk  *indexCursor[T]
}

func (c *sliceCursor[T]) Next() (T, bool) {
	if c.walk == nil {
		start, end := sliceBounds(c.src.Len(), c.from, c.to, c.hasTo)
		c.walk = &indexCursor[T]{src: c.src, pos: start, end: end}
	}
	return c.walk.Next()
}

// sliceBounds normalizes from/to against length. The returned range is
// always valid for indexing, and empty when start >= end.
func sliceBounds(length, from, to int, hasTo bool) (start, end int) {
	if from < 0 {
		from = max(length+from, 0)
	}
	if !hasTo {
		to = length
	}
	if to < 0 {
		to += length
	} else if to > length {
		to = length
	}
	if from >= to {
		return 0, 0
	}
	return from, to
}
