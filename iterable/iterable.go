package iterable

// Cursor is a stateful, forward-only view over a sequence.
//
// Next returns the next element and true, or the zero value and false when
// the sequence is done. Cursors produced by this package stay done once they
// have reported done.
type Cursor[T any] interface {
	Next() (T, bool)
}

// Sequence is anything that can produce a [Cursor] on demand.
type Sequence[T any] interface {
	Cursor() Cursor[T]
}

// CursorFunc adapts a plain function to the [Cursor] interface.
type CursorFunc[T any] func() (T, bool)

// Next calls f.
func (f CursorFunc[T]) Next() (T, bool) { return f() }

// SequenceFunc adapts a cursor factory to the [Sequence] interface.
//
//	counter := iterable.SequenceFunc[int](func() iterable.Cursor[int] {
//	    n := 0
//	    return iterable.CursorFunc[int](func() (int, bool) { n++; return n, true })
//	})
type SequenceFunc[T any] func() Cursor[T]

// Cursor calls f.
func (f SequenceFunc[T]) Cursor() Cursor[T] { return f() }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// empty is zero-sized and stateless, so every Empty[T]() is the same
// immutable value and compares equal to every other.
type empty[T any] struct{}

func (empty[T]) Cursor() Cursor[T] { return empty[T]{} }

func (empty[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// Empty returns the shared empty sequence. It is re-iterable and always done.
func Empty[T any]() Sequence[T] { return empty[T]{} }

// Is reports whether thing can produce cursors of T.
//
// Code that already holds a Sequence[T] never needs this; it exists for
// values of unknown origin such as an any-typed payload.
func Is[T any](thing any) bool {
	_, ok := thing.(Sequence[T])
	return ok
}

// From returns s unchanged, or the shared empty sequence when s is nil.
// It never copies.
func From[T any](s Sequence[T]) Sequence[T] {
	if s == nil {
		return Empty[T]()
	}
	return s
}

// oneShot is a sequence that is its own cursor. Every Cursor call returns the
// same state, so the elements can be observed at most once in total.
type oneShot[T any] struct {
	next func() (T, bool)
	done bool
}

func (o *oneShot[T]) Cursor() Cursor[T] { return o }

func (o *oneShot[T]) Next() (T, bool) {
	var zero T
	if o.done {
		return zero, false
	}
	v, ok := o.next()
	if !ok {
		o.done = true
		o.next = nil
		return zero, false
	}
	return v, true
}

// Generate returns a one-shot sequence that pulls its elements from next
// until next reports false. Nothing is pulled until the first advance, and
// next is never called again after it has reported false.
func Generate[T any](next func() (T, bool)) Sequence[T] {
	return &oneShot[T]{next: next}
}

// Single returns a new one-shot sequence yielding v exactly once.
//
// Each call returns an independent sequence, but walking the returned handle
// a second time yields nothing.
func Single[T any](v T) Sequence[T] {
	taken := false
	return Generate(func() (T, bool) {
		if taken {
			var zero T
			return zero, false
		}
		taken = true
		return v, true
	})
}
