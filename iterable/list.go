package iterable

// Indexable is a length-known source addressable by position.
type Indexable[T any] interface {
	Len() int
	At(i int) T
}

// List is a re-iterable, indexable sequence over a Go slice. Every Cursor
// call starts again from index 0.
//
// A List shares its backing array with the slice it was converted from; it
// does not copy.
type List[T any] []T

// Of returns the given values as a [List].
func Of[T any](values ...T) List[T] { return List[T](values) }

// Len returns the number of elements.
func (l List[T]) Len() int { return len(l) }

// At returns the element at index i. It panics when i is out of range.
func (l List[T]) At(i int) T { return l[i] }

// Cursor returns a fresh cursor positioned before the first element.
func (l List[T]) Cursor() Cursor[T] { return &indexCursor[T]{src: l, end: len(l)} }

// indexCursor walks src from pos up to (not including) end.
type indexCursor[T any] struct {
	src Indexable[T]
	pos int
	end int
}

func (c *indexCursor[T]) Next() (T, bool) {
	if c.pos >= c.end {
		var zero T
		return zero, false
	}
	v := c.src.At(c.pos)
	c.pos++
	return v, true
}
