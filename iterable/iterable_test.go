package iterable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iterable/iterable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// oneShot returns a single-use sequence over values.
func oneShot[T any](values ...T) iterable.Sequence[T] {
	i := 0
	return iterable.Generate(func() (T, bool) {
		if i >= len(values) {
			var zero T
			return zero, false
		}
		i++
		return values[i-1], true
	})
}

// counting wraps s and records how many times any of its cursors advanced.
func counting[T any](s iterable.Sequence[T], pulls *int) iterable.Sequence[T] {
	return iterable.SequenceFunc[T](func() iterable.Cursor[T] {
		cur := s.Cursor()
		return iterable.CursorFunc[T](func() (T, bool) {
			*pulls++
			return cur.Next()
		})
	})
}

// naturals is an infinite sequence 1, 2, 3, ...
func naturals() iterable.Sequence[int] {
	return iterable.SequenceFunc[int](func() iterable.Cursor[int] {
		n := 0
		return iterable.CursorFunc[int](func() (int, bool) {
			n++
			return n, true
		})
	})
}

func isEven(n int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestEmpty(t *testing.T) {
	a, b := iterable.Empty[int](), iterable.Empty[int]()
	assert.Equal(t, a, b)
	assert.True(t, a == b, "Empty must return the shared instance")

	for range 3 {
		_, ok := a.Cursor().Next()
		assert.False(t, ok)
	}
	cur := a.Cursor()
	for range 3 {
		_, ok := cur.Next()
		assert.False(t, ok)
	}

	allocs := testing.AllocsPerRun(100, func() {
		iterable.Empty[int]().Cursor().Next()
	})
	assert.Zero(t, allocs, "Empty and its cursor must not allocate")
}

func TestSingle(t *testing.T) {
	s := iterable.Single("v")
	assert.Equal(t, []string{"v"}, iterable.Collect(s))
	assert.Empty(t, iterable.Collect(s), "second walk of the same handle yields nothing")

	assert.Equal(t, []string{"v"}, iterable.Collect(iterable.Single("v")),
		"a fresh call is unaffected by the first one")
}

func TestSingle_IsNotShared(t *testing.T) {
	a, b := iterable.Single(1), iterable.Single(1)
	assert.False(t, a == b)
	assert.False(t, a == iterable.Empty[int]())
}

func TestFrom(t *testing.T) {
	assert.True(t, iterable.From[int](nil) == iterable.Empty[int]())

	var nilSeq iterable.Sequence[int]
	assert.True(t, iterable.From(nilSeq) == iterable.Empty[int]())

	s := oneShot(1, 2)
	assert.True(t, iterable.From(s) == s, "From must return its argument unchanged")
}

func TestIs(t *testing.T) {
	assert.True(t, iterable.Is[int](iterable.Of(1, 2)))
	assert.True(t, iterable.Is[int](iterable.Empty[int]()))
	assert.True(t, iterable.Is[string](iterable.Single("x")))
	assert.False(t, iterable.Is[int](iterable.Of("a")))
	assert.False(t, iterable.Is[int]([]int{1, 2}))
	assert.False(t, iterable.Is[int](nil))
	assert.False(t, iterable.Is[int](42))
}

func TestGenerate_LatchesDone(t *testing.T) {
	calls := 0
	s := iterable.Generate(func() (int, bool) {
		calls++
		if calls == 1 {
			return 7, true
		}
		return 0, false
	})
	assert.Zero(t, calls, "Generate must not pull before the first advance")

	assert.Equal(t, []int{7}, iterable.Collect(s))
	assert.Equal(t, 2, calls)
	assert.Empty(t, iterable.Collect(s))
	assert.Equal(t, 2, calls, "next must not be called again once it reported false")
}

func TestList_Reiterable(t *testing.T) {
	l := iterable.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, iterable.Collect(l))
	assert.Equal(t, []int{1, 2, 3}, iterable.Collect(l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.At(1))
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestIsEmpty(t *testing.T) {
	assert.True(t, iterable.IsEmpty[int](nil))
	assert.True(t, iterable.IsEmpty(iterable.Empty[int]()))
	assert.True(t, iterable.IsEmpty(iterable.Of[int]()))
	assert.False(t, iterable.IsEmpty(iterable.Of(1)))
	assert.False(t, iterable.IsEmpty(naturals()))
}

func TestIsEmpty_DestructiveOnOneShot(t *testing.T) {
	s := oneShot(1)
	assert.False(t, iterable.IsEmpty(s))
	assert.Empty(t, iterable.Collect(s), "the element read by IsEmpty is gone")

	l := iterable.Of(1)
	assert.False(t, iterable.IsEmpty(l))
	assert.Equal(t, []int{1}, iterable.Collect(l), "re-iterable sources are unaffected")
}

func TestFirst(t *testing.T) {
	v, ok := iterable.First(iterable.Of(4, 5))
	require.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = iterable.First(iterable.Empty[int]())
	assert.False(t, ok)
	assert.Zero(t, v)

	_, ok = iterable.First[int](nil)
	assert.False(t, ok)

	v, ok = iterable.First(naturals())
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSome(t *testing.T) {
	assert.True(t, iterable.Some(iterable.Of(1, 3, 4), isEven))
	assert.False(t, iterable.Some(iterable.Of(1, 3, 5), isEven))
	assert.False(t, iterable.Some(iterable.Empty[int](), isEven))
	assert.True(t, iterable.Some(naturals(), func(n int) bool { return n > 100 }))
}

func TestSome_ShortCircuits(t *testing.T) {
	s := oneShot(1, 2, 3, 4)
	assert.True(t, iterable.Some(s, isEven))
	assert.Equal(t, []int{3, 4}, iterable.Collect(s), "elements after the match stay unread")
}

func TestEvery(t *testing.T) {
	assert.True(t, iterable.Every(iterable.Of(2, 4), isEven))
	assert.False(t, iterable.Every(iterable.Of(2, 3, 4), isEven))
	assert.True(t, iterable.Every(iterable.Empty[int](), isEven))
	assert.False(t, iterable.Every(naturals(), func(n int) bool { return n < 10 }))
}

// ─────────────────────────────────────────────────────────────────────────────
// Transforms
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, iterable.Collect(iterable.Filter(iterable.Of(1, 2, 3, 4), isEven)))
	assert.Empty(t, iterable.Collect(iterable.Filter(iterable.Of(1, 3), isEven)))
	assert.Empty(t, iterable.Collect(iterable.Filter[int](nil, isEven)))
}

func TestFilter_IsLazy(t *testing.T) {
	pulls := 0
	src := counting(iterable.Of(1, 2, 3, 4), &pulls)
	boom := func(int) bool { panic("boom") }

	var s iterable.Sequence[int]
	require.NotPanics(t, func() { s = iterable.Filter(src, boom) })
	require.NotPanics(t, func() { s.Cursor() })
	assert.Zero(t, pulls)

	assert.PanicsWithValue(t, "boom", func() { s.Cursor().Next() })
}

func TestFilter_PullsOnlyWhatItNeeds(t *testing.T) {
	pulls := 0
	cur := iterable.Filter(counting(iterable.Of(1, 2, 3, 4), &pulls), isEven).Cursor()

	v, ok := cur.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, pulls)
}

func TestFilter_Infinite(t *testing.T) {
	prefix, _ := iterable.Consume(iterable.Filter(naturals(), isEven), 3)
	assert.Equal(t, []int{2, 4, 6}, prefix)
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, []int{2, 4, 6}, iterable.Collect(iterable.Map(iterable.Of(1, 2, 3), double)))

	labels := iterable.Map(iterable.Of(1, 2), func(n int) string { return string(rune('a' + n - 1)) })
	assert.Equal(t, []string{"a", "b"}, iterable.Collect(labels))
}

func TestMap_IsLazy(t *testing.T) {
	pulls := 0
	calls := 0
	s := iterable.Map(counting(iterable.Of(1, 2, 3), &pulls), func(n int) int {
		calls++
		return n
	})
	assert.Zero(t, pulls)
	assert.Zero(t, calls)

	cur := s.Cursor()
	_, _ = cur.Next()
	assert.Equal(t, 1, pulls, "one advance pulls exactly one element")
	assert.Equal(t, 1, calls)

	boom := iterable.Map(iterable.Of(1), func(int) int { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() { iterable.Collect(boom) })
}

func TestTransforms_ReiterableOverReiterableSource(t *testing.T) {
	s := iterable.Map(iterable.Filter(iterable.Of(1, 2, 3, 4), isEven), func(n int) int { return n + 1 })
	assert.Equal(t, []int{3, 5}, iterable.Collect(s))
	assert.Equal(t, []int{3, 5}, iterable.Collect(s))
}

func TestTransforms_DoNotTouchSource(t *testing.T) {
	src := iterable.Of(3, 1, 2)
	_ = iterable.Collect(iterable.Filter(src, isEven))
	_ = iterable.Collect(iterable.Map(src, func(n int) int { return -n }))
	assert.Equal(t, iterable.List[int]{3, 1, 2}, src)
}

// ─────────────────────────────────────────────────────────────────────────────
// Combination
// ─────────────────────────────────────────────────────────────────────────────

func TestConcat(t *testing.T) {
	got := iterable.Concat[int](iterable.Of(1, 2), iterable.Of[int](), iterable.Of(3))
	assert.Equal(t, []int{1, 2, 3}, iterable.Collect(got))
	assert.Equal(t, []int{1, 2, 3}, iterable.Collect(got), "re-iterable over lists")

	assert.Empty(t, iterable.Collect(iterable.Concat[int]()))
	assert.Equal(t, []int{1}, iterable.Collect(iterable.Concat[int](nil, iterable.Single(1), nil)))
}

func TestConcat_CopiesArguments(t *testing.T) {
	sources := []iterable.Sequence[int]{iterable.Of(1), iterable.Of(2)}
	s := iterable.Concat(sources...)
	sources[0] = iterable.Of(9)
	assert.Equal(t, []int{1, 2}, iterable.Collect(s))
}

func TestConcat_IsLazy(t *testing.T) {
	pulls := 0
	s := iterable.Concat(counting(iterable.Of(1, 2), &pulls), naturals())
	assert.Zero(t, pulls)

	prefix, _ := iterable.Consume(s, 4)
	assert.Equal(t, []int{1, 2, 1, 2}, prefix)
	assert.Equal(t, 3, pulls, "the first source is drained once, then abandoned")
}

func TestConcatNested(t *testing.T) {
	nested := iterable.Of[iterable.Sequence[int]](iterable.Of(1, 2), iterable.Of(3))
	assert.Equal(t, []int{1, 2, 3}, iterable.Collect(iterable.ConcatNested(nested)))

	assert.Empty(t, iterable.Collect(iterable.ConcatNested[int](nil)))
	assert.Empty(t, iterable.Collect(iterable.ConcatNested(iterable.Empty[iterable.Sequence[int]]())))
}

func TestConcatNested_OneLevelOnly(t *testing.T) {
	inner := iterable.Of[any](1)
	nested := iterable.Of[iterable.Sequence[any]](
		iterable.Of[any](inner),
		iterable.Of[any](2),
	)
	got := iterable.Collect(iterable.ConcatNested(nested))
	require.Len(t, got, 2)
	assert.Equal(t, inner, got[0], "inner sequences are yielded, not flattened")
	assert.Equal(t, 2, got[1])
}

func TestConcatNested_LazyOuter(t *testing.T) {
	produced := 0
	outer := iterable.Map(naturals(), func(n int) iterable.Sequence[int] {
		produced++
		return iterable.Of(n, n)
	})
	prefix, _ := iterable.Consume(iterable.ConcatNested(outer), 3)
	assert.Equal(t, []int{1, 1, 2}, prefix)
	assert.Equal(t, 2, produced)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

func TestReduce(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	assert.Equal(t, 6, iterable.Reduce(iterable.Of(1, 2, 3), sum, 0))

	called := false
	got := iterable.Reduce(iterable.Empty[int](), func(a, b int) int {
		called = true
		return a + b
	}, 10)
	assert.Equal(t, 10, got)
	assert.False(t, called)
}

func TestReduce_LeftFoldOrder(t *testing.T) {
	got := iterable.Reduce(iterable.Of("a", "b", "c"), func(acc, s string) string { return acc + s }, ">")
	assert.Equal(t, ">abc", got)

	lengths := iterable.Reduce(iterable.Of("ab", "cde"), func(acc int, s string) int { return acc + len(s) }, 0)
	assert.Equal(t, 5, lengths)
}

func TestCollect_NeverNil(t *testing.T) {
	got := iterable.Collect(iterable.Empty[int]())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestValues(t *testing.T) {
	var got []int
	for v := range iterable.Values(iterable.Of(1, 2, 3)) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	got = got[:0]
	for v := range iterable.Values(naturals()) {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

func TestSlice(t *testing.T) {
	src := iterable.Of(0, 1, 2, 3, 4)

	cases := []struct {
		name string
		from int
		to   []int
		want []int
	}{
		{"negative from", -2, nil, []int{3, 4}},
		{"negative to", 1, []int{-1}, []int{1, 2, 3}},
		{"from after to", 3, []int{1}, []int{}},
		{"whole", 0, nil, []int{0, 1, 2, 3, 4}},
		{"to past end", 2, []int{99}, []int{2, 3, 4}},
		{"from past end", 7, nil, []int{}},
		{"from before start", -99, []int{2}, []int{0, 1}},
		{"to before start", 0, []int{-99}, []int{}},
		{"equal bounds", 2, []int{2}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := iterable.Collect(iterable.Slice(src, tc.from, tc.to...))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlice_NilSource(t *testing.T) {
	assert.Empty(t, iterable.Collect(iterable.Slice[int](nil, 0)))
}

// lengthProbe is an Indexable that counts Len calls.
type lengthProbe struct {
	iterable.List[int]
	lens int
}

func (p *lengthProbe) Len() int {
	p.lens++
	return p.List.Len()
}

func TestSlice_NormalizesLazilyOnce(t *testing.T) {
	p := &lengthProbe{List: iterable.Of(0, 1, 2, 3)}
	s := iterable.Slice[int](p, -3)
	assert.Zero(t, p.lens, "construction must not read the source")

	cur := s.Cursor()
	assert.Zero(t, p.lens)
	for _, ok := cur.Next(); ok; _, ok = cur.Next() {
	}
	assert.Equal(t, 1, p.lens, "length is read once per cursor")

	assert.Equal(t, []int{1, 2, 3}, iterable.Collect(s))
}

// ─────────────────────────────────────────────────────────────────────────────
// Partial consumption
// ─────────────────────────────────────────────────────────────────────────────

func TestConsume(t *testing.T) {
	prefix, rest := iterable.Consume(iterable.Of(1, 2, 3, 4), 2)
	assert.Equal(t, []int{1, 2}, prefix)
	assert.Equal(t, []int{3, 4}, iterable.Collect(rest))
	assert.Empty(t, iterable.Collect(rest), "the remainder continues a single cursor")
}

func TestConsume_SourceRunsOut(t *testing.T) {
	prefix, rest := iterable.Consume(iterable.Of(1, 2), 5)
	assert.Equal(t, []int{1, 2}, prefix)
	assert.True(t, rest == iterable.Empty[int]())
}

func TestConsume_Zero(t *testing.T) {
	pulls := 0
	src := iterable.Generate(func() (int, bool) {
		pulls++
		return pulls, true
	})
	prefix, rest := iterable.Consume(src, 0)
	assert.NotNil(t, prefix)
	assert.Empty(t, prefix)
	assert.True(t, rest == src, "atMost 0 hands back the original handle")
	assert.Zero(t, pulls)
}

func TestConsume_Unbounded(t *testing.T) {
	prefix, rest := iterable.Consume(iterable.Of(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, prefix)
	assert.True(t, rest == iterable.Empty[int]())
}

func TestConsume_ExactLength(t *testing.T) {
	prefix, rest := iterable.Consume(iterable.Of(1, 2), 2)
	assert.Equal(t, []int{1, 2}, prefix)
	assert.Empty(t, iterable.Collect(rest))
}

func TestConsume_Negative(t *testing.T) {
	prefix, rest := iterable.Consume(iterable.Of(1, 2), -1)
	assert.Empty(t, prefix)
	assert.Equal(t, []int{1, 2}, iterable.Collect(rest))
}

func TestConsume_RemainderIsSameCursor(t *testing.T) {
	pulls := 0
	prefix, rest := iterable.Consume(counting(naturals(), &pulls), 3)
	assert.Equal(t, []int{1, 2, 3}, prefix)
	assert.Equal(t, 3, pulls)

	v, ok := iterable.First(rest)
	require.True(t, ok)
	assert.Equal(t, 4, v, "the remainder is not rewound")

	v, _ = iterable.First(rest)
	assert.Equal(t, 5, v)
}

func TestConsume_OneShot(t *testing.T) {
	s := oneShot(1, 2, 3)
	prefix, rest := iterable.Consume(s, 1)
	assert.Equal(t, []int{1}, prefix)
	assert.Equal(t, []int{2, 3}, iterable.Collect(rest))
	assert.Empty(t, iterable.Collect(s))
}
