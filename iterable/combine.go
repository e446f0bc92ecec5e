package iterable

import "slices"

// Concat returns a lazy sequence that drains each source in argument order.
// With no arguments the result is immediately done. A nil source counts as
// empty.
func Concat[T any](sources ...Sequence[T]) Sequence[T] {
	return ConcatNested[T](List[Sequence[T]](slices.Clone(sources)))
}

// ConcatNested is [Concat] with the sources themselves supplied lazily.
// Exactly one level is flattened: elements that are sequences in their own
// right are yielded as they are.
//
//	nested := iterable.Of[iterable.Sequence[int]](iterable.Of(1, 2), iterable.Of(3))
//	iterable.Collect(iterable.ConcatNested(nested)) // → [1 2 3]
func ConcatNested[T any](sources Sequence[Sequence[T]]) Sequence[T] {
	return SequenceFunc[T](func() Cursor[T] {
		return &concatCursor[T]{src: sources}
	})
}

type concatCursor[T any] struct {
	src   Sequence[Sequence[T]]
	outer Cursor[Sequence[T]]
	inner Cursor[T]
	done  bool
}

func (c *concatCursor[T]) Next() (T, bool) {
	var zero T
	if c.outer == nil && !c.done {
		c.outer = From(c.src).Cursor()
	}
	for !c.done {
		if c.inner != nil {
			if v, ok := c.inner.Next(); ok {
				return v, true
			}
			c.inner = nil
		}
		next, ok := c.outer.Next()
		if !ok {
			c.done, c.outer = true, nil
			break
		}
		c.inner = From(next).Cursor()
	}
	return zero, false
}
