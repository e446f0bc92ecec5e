// Package collections provides [Collection][T], the eager, materialized
// counterpart of the lazy sequences in package iterable.
//
// # Overview
//
// A Collection is an immutable ordered list. It is also a re-iterable
// [iterable.Sequence] and an [iterable.Indexable], so it can be handed to any
// combinator directly, and any sequence can be materialized back with
// [Collect]:
//
//	evens := collections.Collect(iterable.Filter(
//	    collections.New(1, 2, 3, 4, 5, 6),
//	    func(n int) bool { return n%2 == 0 },
//	)) // → [2 4 6]
//
// Fluent methods run the same lazy combinators and materialize once:
//
//	collections.New(1, 2, 3, 4, 5).Skip(1).Take(3).All() // → [2 3 4]
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Collection values are safe to read from several goroutines; the
// cursors they hand out are not.
//
// # Type-transforming operations
//
// Methods cannot introduce type parameters, so operations that change the
// element type are package-level functions: [Map], [Reduce], [Collapse].
//
// # Splitting a sequence
//
// [Split] reads a bounded prefix of any sequence into a Collection and returns
// the untouched rest lazily:
//
//	head, rest := collections.Split(lines, 10)
package collections
