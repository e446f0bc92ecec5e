package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-iterable/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n, _ int) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n, _ int) int { return n * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(acc, n, _ int) int { return acc + n }, 0)
	}
}

func BenchmarkChunk(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Chunk(64)
	}
}
