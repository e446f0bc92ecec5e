package iterable

// Filter returns a lazy sequence of the elements of s for which pred returns
// true, in their original order.
//
// pred runs inside the advance that needs it, so a panicking predicate
// surfaces there and never at construction.
func Filter[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return SequenceFunc[T](func() Cursor[T] {
		return &filterCursor[T]{src: s, pred: pred}
	})
}

type filterCursor[T any] struct {
	src  Sequence[T]
	cur  Cursor[T]
	pred func(T) bool
	done bool
}

func (c *filterCursor[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	if c.cur == nil {
		c.cur = From(c.src).Cursor()
	}
	for {
		v, ok := c.cur.Next()
		if !ok {
			c.done, c.cur = true, nil
			return zero, false
		}
		if c.pred(v) {
			return v, true
		}
	}
}

// Map returns a lazy sequence yielding fn(v) for each element v of s. Every
// advance pulls exactly one element from s.
func Map[T, U any](s Sequence[T], fn func(T) U) Sequence[U] {
	return SequenceFunc[U](func() Cursor[U] {
		return &mapCursor[T, U]{src: s, fn: fn}
	})
}

type mapCursor[T, U any] struct {
	src  Sequence[T]
	cur  Cursor[T]
	fn   func(T) U
	done bool
}

func (c *mapCursor[T, U]) Next() (U, bool) {
	var zero U
	if c.done {
		return zero, false
	}
	if c.cur == nil {
		c.cur = From(c.src).Cursor()
	}
	v, ok := c.cur.Next()
	if !ok {
		c.done, c.cur = true, nil
		return zero, false
	}
	return c.fn(v), true
}
