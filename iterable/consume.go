package iterable

// Consume splits s into an eagerly read prefix of at most atMost elements and
// a lazy remainder. Omitting atMost reads until s is done.
//
// Both halves come from one cursor:
//
//   - atMost == 0 returns an empty prefix and s itself; no cursor is taken.
//   - If s runs out first, the remainder is the shared [Empty] sequence.
//   - Otherwise the remainder is a one-shot sequence that continues the very
//     cursor the prefix was read from. It is not rewound.
//
// A negative atMost reads nothing but still takes the cursor, so the
// remainder covers all of s. Consume never fails.
func Consume[T any](s Sequence[T], atMost ...int) ([]T, Sequence[T]) {
	consumed := make([]T, 0)
	limit, bounded := 0, len(atMost) > 0
	if bounded {
		limit = atMost[0]
		if limit == 0 {
			return consumed, s
		}
	}

	cur := From(s).Cursor()
	for i := 0; !bounded || i < limit; i++ {
		v, ok := cur.Next()
		if !ok {
			return consumed, Empty[T]()
		}
		consumed = append(consumed, v)
	}
	return consumed, resumed[T]{cur: cur}
}

// resumed hands out the same, already advanced cursor on every request.
type resumed[T any] struct {
	cur Cursor[T]
}

func (r resumed[T]) Cursor() Cursor[T] { return r.cur }
