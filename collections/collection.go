package collections

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hasbyte1/go-iterable/iterable"
)

// Collection is an immutable, materialized list of T.
//
// Every method that transforms the collection returns a *new* Collection.
// A Collection is a re-iterable [iterable.Sequence]: each Cursor call starts
// from the first item.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(iterable.Single(42))
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// Collect walks s to completion and materializes it. A nil s yields an empty
// collection. Collect never returns for an infinite sequence.
func Collect[T any](s iterable.Sequence[T]) *Collection[T] {
	return &Collection[T]{items: iterable.Collect(s)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence surface
// ─────────────────────────────────────────────────────────────────────────────

// Cursor returns a fresh cursor over the items.
func (c *Collection[T]) Cursor() iterable.Cursor[T] { return c.Lazy().Cursor() }

// Lazy returns the items as a re-iterable sequence without copying.
func (c *Collection[T]) Lazy() iterable.Sequence[T] { return iterable.List[T](c.items) }

// Len is an alias for [Collection.Count].
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the item at index i. It panics when i is out of range; use
// [Collection.Get] for a checked lookup.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Values returns a clean copy of the collection.
func (c *Collection[T]) Values() *Collection[T] { return From(c.items) }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// Has reports whether index is a valid position in the collection.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// Keys returns the integer indices of the collection (0 … Count()-1).
func (c *Collection[T]) Keys() []int {
	i := -1
	return iterable.Collect(iterable.Map[T](c, func(T) int {
		i++
		return i
	}))
}

// GetOrFail returns the item at index, or [ErrIndexOutOfRange].
func (c *Collection[T]) GetOrFail(index int) (T, error) {
	item, ok := c.Get(index)
	if !ok {
		return item, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return item, nil
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return iterable.First(iterable.Filter[T](c, fns[0]))
	}
	return iterable.First[T](c)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	return iterable.Some[T](c, fn)
}

// Every reports whether all items satisfy fn.
func (c *Collection[T]) Every(fn func(T) bool) bool {
	return iterable.Every[T](c, fn)
}

// match carries the running result of a search fold.
type match[T any] struct {
	item T
	val  float64
	ok   bool
}

// Last returns the last item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		return iterable.First(iterable.Slice[T](c, -1))
	}
	last := iterable.Reduce(iterable.Filter[T](c, fns[0]), func(_ match[T], item T) match[T] {
		return match[T]{item: item, ok: true}
	}, match[T]{})
	return last.item, last.ok
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Search returns the index of the first item for which fn returns true, or -1.
func (c *Collection[T]) Search(fn func(T) bool) int {
	i := -1
	if iterable.Some[T](c, func(item T) bool {
		i++
		return fn(item)
	}) {
		return i
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	i := -1
	return Collect(iterable.Filter[T](c, func(item T) bool {
		i++
		return fn(item, i)
	}))
}

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Where is an alias for [Collection.Filter].
func (c *Collection[T]) Where(fn func(T, int) bool) *Collection[T] {
	return c.Filter(fn)
}

// WhereNot is an alias for [Collection.Reject].
func (c *Collection[T]) WhereNot(fn func(T, int) bool) *Collection[T] {
	return c.Reject(fn)
}

// Unique returns a new collection with duplicates removed, keeping the first
// occurrence. fn extracts the comparison key; pass nil to use
// fmt.Sprintf("%v") for any T.
func (c *Collection[T]) Unique(fn func(T) any) *Collection[T] {
	if fn == nil {
		fn = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	seen := make(map[any]struct{}, len(c.items))
	return c.Filter(func(item T, _ int) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Diff returns items in c whose key, as extracted by fn, is not present in
// other.
func (c *Collection[T]) Diff(other iterable.Sequence[T], fn func(T) any) *Collection[T] {
	set := keySet(other, fn)
	return c.Filter(func(item T, _ int) bool {
		_, found := set[fn(item)]
		return !found
	})
}

// Intersect returns items in c whose key, as extracted by fn, is also
// present in other.
func (c *Collection[T]) Intersect(other iterable.Sequence[T], fn func(T) any) *Collection[T] {
	set := keySet(other, fn)
	return c.Filter(func(item T, _ int) bool {
		_, found := set[fn(item)]
		return found
	})
}

func keySet[T any](s iterable.Sequence[T], fn func(T) any) map[any]struct{} {
	return iterable.Reduce(s, func(set map[any]struct{}, item T) map[any]struct{} {
		set[fn(item)] = struct{}{}
		return set
	}, make(map[any]struct{}))
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	return Collect(iterable.Generate(func() (T, bool) {
		if n == 0 {
			var zero T
			return zero, false
		}
		n--
		return c.items[n], true
	}))
}

// Sort returns a new collection sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Collection[T]{items: out}
}

// SortBy returns a new collection sorted in ascending order by the float64
// value extracted by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) < fn(b) })
}

// SortByDesc returns a new collection sorted in descending order by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) > fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return c.Concat(iterable.List[T](items))
}

// Append is an alias for [Collection.Push].
func (c *Collection[T]) Append(items ...T) *Collection[T] { return c.Push(items...) }

// Prepend returns a new collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	return Collect(iterable.Concat[T](iterable.List[T](items), c))
}

// Merge returns a new collection with the items of other appended.
func (c *Collection[T]) Merge(other *Collection[T]) *Collection[T] { return c.Concat(other) }

// Pop returns the last item together with the remaining collection.
// Returns the zero value, c, and false if the collection is empty.
func (c *Collection[T]) Pop() (T, *Collection[T], bool) {
	item, ok := c.Last()
	if !ok {
		return item, c, false
	}
	return item, c.Slice(0, -1), true
}

// Shift returns the first item together with the remaining collection.
// Returns the zero value, c, and false if the collection is empty.
func (c *Collection[T]) Shift() (T, *Collection[T], bool) {
	head, rest := iterable.Consume[T](c, 1)
	if len(head) == 0 {
		var zero T
		return zero, c, false
	}
	return head[0], Collect(rest), true
}

// Pull returns the item at index together with the remaining collection.
// Returns the zero value, c, and false if index is out of range.
func (c *Collection[T]) Pull(index int) (T, *Collection[T], bool) {
	item, ok := c.Get(index)
	if !ok {
		return item, c, false
	}
	rest := iterable.Concat(iterable.Slice[T](c, 0, index), iterable.Slice[T](c, index+1))
	return item, Collect(rest), true
}

// Forget returns a new collection with the item at index removed.
// Returns c unchanged if index is out of range.
func (c *Collection[T]) Forget(index int) *Collection[T] {
	_, col, _ := c.Pull(index)
	return col
}

// Concat returns a new collection with the items of every other sequence
// appended in order. Others must be finite.
func (c *Collection[T]) Concat(others ...iterable.Sequence[T]) *Collection[T] {
	return Collect(iterable.Concat(append([]iterable.Sequence[T]{c}, others...)...))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return c.Slice(n)
	}
	head, _ := iterable.Consume[T](c, n)
	return &Collection[T]{items: head}
}

// TakeUntil returns items from the start until fn returns true (exclusive).
// Items after the first match are never passed to fn.
func (c *Collection[T]) TakeUntil(fn func(T) bool) *Collection[T] {
	cur := c.Cursor()
	return Collect(iterable.Generate(func() (T, bool) {
		item, ok := cur.Next()
		if !ok || fn(item) {
			var zero T
			return zero, false
		}
		return item, true
	}))
}

// TakeWhile returns items from the start while fn returns true.
func (c *Collection[T]) TakeWhile(fn func(T) bool) *Collection[T] {
	return c.TakeUntil(func(item T) bool { return !fn(item) })
}

// Skip returns a new collection skipping the first n items.
// A negative n drops items counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n < 0 {
		return c.Slice(0, n)
	}
	return c.Slice(n)
}

// SkipUntil skips items until fn returns true, then returns the rest,
// starting with the matching item.
func (c *Collection[T]) SkipUntil(fn func(T) bool) *Collection[T] {
	cur := c.Cursor()
	for item, ok := cur.Next(); ok; item, ok = cur.Next() {
		if fn(item) {
			return Collect(iterable.Concat(iterable.Single(item), iterable.Generate(cur.Next)))
		}
	}
	return Empty[T]()
}

// SkipWhile skips items while fn returns true, then returns the rest.
func (c *Collection[T]) SkipWhile(fn func(T) bool) *Collection[T] {
	return c.SkipUntil(func(item T) bool { return !fn(item) })
}

// Slice returns the items in [from, to) with array-slice index rules: negative
// indices count from the end and out-of-range indices are clamped. Omitting
// to means "to the end".
//
//	collections.New(0, 1, 2, 3, 4).Slice(1, -1) // → [1 2 3]
func (c *Collection[T]) Slice(from int, to ...int) *Collection[T] {
	return Collect(iterable.Slice[T](c, from, to...))
}

// Chunk splits the collection into consecutive groups of size, returning a
// plain [][]T. The last group may contain fewer than size items.
// Returns an empty [][]T if size <= 0 or the collection is empty.
func (c *Collection[T]) Chunk(size int) [][]T {
	chunks := [][]T{}
	if size <= 0 {
		return chunks
	}
	var rest iterable.Sequence[T] = c
	for {
		var head []T
		head, rest = iterable.Consume(rest, size)
		if len(head) > 0 {
			chunks = append(chunks, head)
		}
		if len(head) < size {
			return chunks
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	return iterable.Reduce[T](c, func(sum float64, item T) float64 { return sum + fn(item) }, float64(0))
}

// Average returns the arithmetic mean of all items, or 0 for an empty
// collection.
func (c *Collection[T]) Average(fn func(T) float64) float64 {
	if len(c.items) == 0 {
		return 0
	}
	return c.Sum(fn) / float64(len(c.items))
}

// Min returns the first item with the smallest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Min(fn func(T) float64) (T, bool) {
	return c.extreme(fn, func(v, best float64) bool { return v < best })
}

// Max returns the first item with the largest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Max(fn func(T) float64) (T, bool) {
	return c.extreme(fn, func(v, best float64) bool { return v > best })
}

func (c *Collection[T]) extreme(fn func(T) float64, better func(v, best float64) bool) (T, bool) {
	best := iterable.Reduce[T](c, func(acc match[T], item T) match[T] {
		if v := fn(item); !acc.ok || better(v, acc.val) {
			return match[T]{item: item, val: v, ok: true}
		}
		return acc
	}, match[T]{})
	return best.item, best.ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping / Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the collection into two:
// the first contains items for which fn returns true; the second the rest.
// fn is called twice per item.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	return Collect(iterable.Filter[T](c, fn)),
		Collect(iterable.Filter[T](c, func(item T) bool { return !fn(item) }))
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return strings.Join(iterable.Collect(iterable.Map[T](c, fn)), sep)
}

// Flip returns a map from each item's string representation to its index.
// Later duplicates overwrite earlier ones.
func (c *Collection[T]) Flip() map[string]int {
	i := -1
	return iterable.Reduce[T](c, func(out map[string]int, item T) map[string]int {
		i++
		out[fmt.Sprintf("%v", item)] = i
		return out
	}, make(map[string]int, len(c.items)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects and returns c unchanged for further
// chaining. For per-element tracing of a lazy pipeline use seqlog.Trace.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}
