// Package iterable provides lazy, composable operations over sequences that
// may be infinite or single-use.
//
// # Overview
//
// The central abstraction is [Sequence][T]: anything that can hand out a
// [Cursor][T]. A cursor has one operation, Next, which returns the next value
// and true, or the zero value and false once the sequence is done:
//
//	evens := iterable.Filter(iterable.Of(1, 2, 3, 4), func(n int) bool { return n%2 == 0 })
//	doubled := iterable.Map(evens, func(n int) int { return n * 2 })
//	fmt.Println(iterable.Collect(doubled)) // → [4 8]
//
// No combinator materializes an intermediate collection. Work happens inside
// the caller's Next call and nowhere else: building a pipeline never touches
// the source, and abandoning a cursor needs no notification.
//
// # Re-iterability
//
// Whether a sequence can be walked twice is a property of its source:
//
//   - [List] and [Empty] hand out a fresh cursor on every request.
//   - [Single], [Generate] and the remainder returned by [Consume] are
//     one-shot: every request returns the same cursor, so once it is drained
//     walking again yields nothing.
//
// Combinators built here ([Filter], [Map], [Concat], [ConcatNested], [Slice])
// build fresh state on every Cursor call and are therefore exactly as
// re-iterable as their inputs. The type system does not track the
// distinction; callers must know which kind of source they hold.
//
// [IsEmpty] and [First] advance a fresh cursor once. On a one-shot source that
// read is destructive: the element is gone for any later walk.
//
// # Eager operations
//
// [Reduce], [Collect], [Some], [Every] and the prefix half of [Consume] walk
// the source immediately. On an infinite source Reduce and Collect never
// return.
//
// # Concurrency
//
// Cursors mutate in place on every advance and are not safe for concurrent
// use. The shared empty sequence is immutable and may be used anywhere.
//
// # Interop
//
// [Values] adapts a Sequence to an [iter.Seq] for range-over-func loops.
package iterable
