package collections

import "github.com/hasbyte1/go-iterable/iterable"

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U), plus helpers that
// bridge arbitrary sequences into collections.

// Map applies fn to every item and returns a new Collection[U].
//
//	labels := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	i := -1
	return Collect(iterable.Map[T](c, func(item T) U {
		i++
		return fn(item, i)
	}))
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	i := -1
	return iterable.Reduce[T](c, func(acc U, item T) U {
		i++
		return fn(acc, item, i)
	}, initial)
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	nested := iterable.Map[[]T](c, func(chunk []T) iterable.Sequence[T] {
		return iterable.List[T](chunk)
	})
	return Collect(iterable.ConcatNested(nested))
}

// Split reads at most atMost elements of s into a Collection and returns the
// rest as a lazy sequence continuing the same cursor. Omitting atMost reads
// everything. See [iterable.Consume] for the exact remainder rules.
//
//	head, rest := collections.Split(iterable.Of(1, 2, 3, 4), 2)
//	// head → [1 2], rest yields 3, 4
func Split[T any](s iterable.Sequence[T], atMost ...int) (*Collection[T], iterable.Sequence[T]) {
	head, rest := iterable.Consume(s, atMost...)
	return &Collection[T]{items: head}, rest
}

// Flatten is an alias for [Collapse].
func Flatten[T any](c *Collection[[]T]) *Collection[T] { return Collapse(c) }

// FlatMap maps each item to a slice and flattens the result one level.
//
//	words := collections.FlatMap(collections.New("a b", "c"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["a", "b", "c"]
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	i := -1
	nested := iterable.Map[T](c, func(item T) iterable.Sequence[U] {
		i++
		return iterable.List[U](fn(item, i))
	})
	return Collect(iterable.ConcatNested(nested))
}

// Pluck extracts a single field from every item.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Collect(iterable.Map[T](c, fn))
}

// GroupBy groups items by the comparable key returned by fn. Items within a
// group keep their original order.
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	return iterable.Reduce[T](c, func(groups map[K]*Collection[T], item T) map[K]*Collection[T] {
		k := fn(item)
		g, ok := groups[k]
		if !ok {
			g = Empty[T]()
			groups[k] = g
		}
		g.items = append(g.items, item)
		return groups
	}, make(map[K]*Collection[T]))
}

// KeyBy indexes items by the comparable key returned by fn.
// If multiple items share a key the last one wins.
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	return iterable.Reduce[T](c, func(index map[K]T, item T) map[K]T {
		index[fn(item)] = item
		return index
	}, make(map[K]T, c.Count()))
}
