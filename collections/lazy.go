package collections

import (
	"fmt"
	"iter"
	"strings"
)

// LazyCollection is a deferred pipeline over a possibly infinite source, the
// counterpart of Laravel's LazyCollection.
//
// Stages (Map, Filter, Take, …) only record the step and return a new
// LazyCollection; nothing is pulled until a terminal method (All, Count,
// First, …) walks the chain. Each walk builds a fresh chain of [Iterator]
// stages from the outermost stage down to the source, pulls only what it
// needs and stops the chain when done.
//
// # Restartability
//
// Sources built from slices, collections, [Range], [Times], [Iterate] and
// [MakeRestartable] start over on every walk. A generator passed to [Make]
// is run once: the first walk consumes it, later walks see no values.
// [LazyCollection.Restartable] reports which kind l is, and
// [LazyCollection.Remember] turns a one-shot pipeline into a replayable one.
//
//	naturals := collections.Make(func(yield func(int) bool) {
//	    for i := 0; ; i++ {
//	        if !yield(i) {
//	            return
//	        }
//	    }
//	})
//	naturals.Take(10).ToSlice() // [0 1 2 3 4 5 6 7 8 9]
//
// Terminal methods that must see every value (Count, Last, Sum, …) never
// return on an infinite source; bound it with Take or TakeWhile first.
type LazyCollection[V any] struct {
	open        func() Iterator[V]
	restartable bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Sources
// ─────────────────────────────────────────────────────────────────────────────

// Make wraps a generator. The generator is not invoked until the first
// terminal operation, and only that walk sees its values.
func Make[V any](gen iter.Seq[V]) *LazyCollection[V] {
	src := &oneShot[V]{gen: gen}
	return &LazyCollection[V]{open: src.open}
}

// MakeRestartable wraps a generator that is invoked afresh on every walk.
func MakeRestartable[V any](gen iter.Seq[V]) *LazyCollection[V] {
	return &LazyCollection[V]{
		open:        func() Iterator[V] { return newSeqIter(gen) },
		restartable: true,
	}
}

// LazyOf creates a restartable lazy collection over items.
func LazyOf[V any](items ...V) *LazyCollection[V] {
	return New(items...).Lazy()
}

// LazyFrom creates a restartable lazy collection over a copy of items.
func LazyFrom[V any](items []V) *LazyCollection[V] {
	return From(items).Lazy()
}

// Lazy returns a restartable lazy view over a snapshot of c's entries.
// Later mutations of c are not seen by the pipeline.
func (c *Collection[V]) Lazy() *LazyCollection[V] {
	entries := c.All()
	return &LazyCollection[V]{
		open:        func() Iterator[V] { return &sliceIter[V]{entries: entries} },
		restartable: true,
	}
}

// Range yields every integer from from to to inclusive, counting down when
// from > to.
func Range(from, to int) *LazyCollection[int] {
	step := 1
	if from > to {
		step = -1
	}
	return MakeRestartable(func(yield func(int) bool) {
		for i := from; ; i += step {
			if !yield(i) || i == to {
				return
			}
		}
	})
}

// Times yields fn(1), fn(2), …, fn(n).
func Times[V any](n int, fn func(int) V) *LazyCollection[V] {
	return MakeRestartable(func(yield func(V) bool) {
		for i := 1; i <= n; i++ {
			if !yield(fn(i)) {
				return
			}
		}
	})
}

// Iterate yields seed, fn(seed), fn(fn(seed)), … without end.
func Iterate[V any](seed V, fn func(V) V) *LazyCollection[V] {
	return MakeRestartable(func(yield func(V) bool) {
		for v := seed; yield(v); v = fn(v) {
		}
	})
}

// Restartable reports whether every walk of l starts from the beginning of
// its source.
func (l *LazyCollection[V]) Restartable() bool { return l.restartable }

// Iter opens a new walk over l. The caller must Stop it.
func (l *LazyCollection[V]) Iter() Iterator[V] { return l.open() }

// ─────────────────────────────────────────────────────────────────────────────
// Stages
// ─────────────────────────────────────────────────────────────────────────────

func stage[V, U any](l *LazyCollection[V], wrap func(Iterator[V]) Iterator[U]) *LazyCollection[U] {
	return &LazyCollection[U]{
		open:        func() Iterator[U] { return wrap(l.open()) },
		restartable: l.restartable,
	}
}

// MapLazy defers fn over every entry of l, keeping keys.
func MapLazy[V, U any](l *LazyCollection[V], fn func(V, Key) U) *LazyCollection[U] {
	return stage(l, func(src Iterator[V]) Iterator[U] {
		return &mapIter[V, U]{source: src, fn: fn}
	})
}

// Map defers fn over every entry, keeping keys. For a typed result use
// [MapLazy].
func (l *LazyCollection[V]) Map(fn func(V, Key) any) *LazyCollection[any] {
	return MapLazy(l, fn)
}

// Filter keeps the entries for which fn holds, with their original keys.
func (l *LazyCollection[V]) Filter(fn func(V, Key) bool) *LazyCollection[V] {
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &filterIter[V]{source: src, fn: fn}
	})
}

// Reject is the complement of [LazyCollection.Filter].
func (l *LazyCollection[V]) Reject(fn func(V, Key) bool) *LazyCollection[V] {
	return l.Filter(func(v V, k Key) bool { return !fn(v, k) })
}

// Take yields at most n entries and pulls no more than n from upstream, so
// it is safe on infinite sources. A negative n yields the last |n| entries,
// which requires draining a finite upstream.
func (l *LazyCollection[V]) Take(n int) *LazyCollection[V] {
	if n < 0 {
		return stage(l, func(src Iterator[V]) Iterator[V] {
			return &takeLastIter[V]{source: src, n: -n}
		})
	}
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &takeIter[V]{source: src, limit: n}
	})
}

// TakeWhile yields entries while fn holds.
func (l *LazyCollection[V]) TakeWhile(fn func(V, Key) bool) *LazyCollection[V] {
	return l.TakeUntil(func(v V, k Key) bool { return !fn(v, k) })
}

// TakeUntil yields entries until fn holds; that entry is not yielded.
func (l *LazyCollection[V]) TakeUntil(fn func(V, Key) bool) *LazyCollection[V] {
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &takeUntilIter[V]{source: src, fn: fn}
	})
}

// Skip drops the first n entries. Keys are kept.
func (l *LazyCollection[V]) Skip(n int) *LazyCollection[V] {
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &skipIter[V]{source: src, n: max(n, 0)}
	})
}

// SkipWhile drops entries while fn holds and yields the rest.
func (l *LazyCollection[V]) SkipWhile(fn func(V, Key) bool) *LazyCollection[V] {
	return l.SkipUntil(func(v V, k Key) bool { return !fn(v, k) })
}

// SkipUntil drops entries until fn holds and yields the rest, starting with
// that entry.
func (l *LazyCollection[V]) SkipUntil(fn func(V, Key) bool) *LazyCollection[V] {
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &skipUntilIter[V]{source: src, fn: fn}
	})
}

// ChunkLazy groups consecutive entries of l into collections of at most
// size, keeping member keys. Only one chunk is buffered at a time. A size
// <= 0 yields nothing.
func ChunkLazy[V any](l *LazyCollection[V], size int) *LazyCollection[*Collection[V]] {
	if size <= 0 {
		return &LazyCollection[*Collection[V]]{
			open:        func() Iterator[*Collection[V]] { return emptyIter[*Collection[V]]{} },
			restartable: true,
		}
	}
	return stage(l, func(src Iterator[V]) Iterator[*Collection[V]] {
		return &chunkIter[V]{source: src, size: size}
	})
}

// Values renumbers keys from 0.
func (l *LazyCollection[V]) Values() *LazyCollection[V] {
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &valuesIter[V]{source: src}
	})
}

// Tap calls fn for every entry as it flows past.
func (l *LazyCollection[V]) Tap(fn func(V, Key)) *LazyCollection[V] {
	return stage(l, func(src Iterator[V]) Iterator[V] {
		return &tapIter[V]{source: src, fn: fn}
	})
}

// Remember caches entries as they are pulled so that every walk replays the
// same values, even over a one-shot generator. The source is pulled no
// further than the longest walk so far.
//
// A generator behind Remember stays suspended until some walk drains it;
// walks that stop early do not release it. Callbacks of stages before
// Remember must not walk the remembered collection itself, as that
// deadlocks.
func (l *LazyCollection[V]) Remember() *LazyCollection[V] {
	m := &memo[V]{open: l.open}
	return &LazyCollection[V]{
		open:        func() Iterator[V] { return &memoIter[V]{memo: m} },
		restartable: true,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

// walk pulls entries into fn until fn returns false or l is exhausted.
func (l *LazyCollection[V]) walk(fn func(Entry[V]) bool) {
	it := l.open()
	defer it.Stop()
	for {
		e, ok := it.Next()
		if !ok || !fn(e) {
			return
		}
	}
}

// All materialises every entry, keys included.
func (l *LazyCollection[V]) All() []Entry[V] {
	var out []Entry[V]
	l.walk(func(e Entry[V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// ToSlice materialises the values.
func (l *LazyCollection[V]) ToSlice() []V {
	var out []V
	l.walk(func(e Entry[V]) bool {
		out = append(out, e.Value)
		return true
	})
	return out
}

// Collect materialises l into an eager [Collection], keys included.
func (l *LazyCollection[V]) Collect() *Collection[V] {
	return Of(l.All()...)
}

// Seq returns a range-over-func view; breaking out of the loop stops the
// pipeline.
func (l *LazyCollection[V]) Seq() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		l.walk(func(e Entry[V]) bool { return yield(e.Key, e.Value) })
	}
}

// Each calls fn for every entry.
func (l *LazyCollection[V]) Each(fn func(V, Key)) {
	l.walk(func(e Entry[V]) bool {
		fn(e.Value, e.Key)
		return true
	})
}

// Count returns the number of entries.
func (l *LazyCollection[V]) Count() int {
	n := 0
	l.walk(func(Entry[V]) bool {
		n++
		return true
	})
	return n
}

// First returns the first value, optionally the first matching fns[0],
// pulling no further than the match.
func (l *LazyCollection[V]) First(fns ...func(V, Key) bool) (V, bool) {
	var (
		found V
		ok    bool
	)
	l.walk(func(e Entry[V]) bool {
		if len(fns) == 0 || fns[0](e.Value, e.Key) {
			found, ok = e.Value, true
			return false
		}
		return true
	})
	return found, ok
}

// Last returns the last value, optionally the last matching fns[0].
func (l *LazyCollection[V]) Last(fns ...func(V, Key) bool) (V, bool) {
	var (
		found V
		ok    bool
	)
	l.walk(func(e Entry[V]) bool {
		if len(fns) == 0 || fns[0](e.Value, e.Key) {
			found, ok = e.Value, true
		}
		return true
	})
	return found, ok
}

// Contains reports whether some entry satisfies fn, stopping at the first.
func (l *LazyCollection[V]) Contains(fn func(V, Key) bool) bool {
	_, ok := l.First(fn)
	return ok
}

// ContainsValue reports whether some value is structurally equal to v.
func (l *LazyCollection[V]) ContainsValue(v V) bool {
	return l.Contains(func(item V, _ Key) bool { return Equal(item, v) })
}

// IsEmpty reports whether l yields nothing, pulling at most one entry.
func (l *LazyCollection[V]) IsEmpty() bool {
	_, ok := l.First()
	return !ok
}

// IsNotEmpty reports whether l yields at least one entry.
func (l *LazyCollection[V]) IsNotEmpty() bool { return !l.IsEmpty() }

// Reduce folds the values like [Collection.Reduce]. Without an initial
// value the first value seeds the fold; an empty pipeline then yields
// [ErrEmptyReduce].
func (l *LazyCollection[V]) Reduce(fn func(carry, item V) V, initial ...V) (V, error) {
	var carry V
	seeded := len(initial) > 0
	if seeded {
		carry = initial[0]
	}
	l.walk(func(e Entry[V]) bool {
		if !seeded {
			carry, seeded = e.Value, true
			return true
		}
		carry = fn(carry, e.Value)
		return true
	})
	if !seeded {
		return carry, ErrEmptyReduce
	}
	return carry, nil
}

// Sum returns the sum of the numbers extracted by fn; 0 when empty.
func (l *LazyCollection[V]) Sum(fn func(V) float64) float64 {
	var sum float64
	l.walk(func(e Entry[V]) bool {
		sum += fn(e.Value)
		return true
	})
	return sum
}

// Average returns the mean of the numbers extracted by fn; 0 when empty.
func (l *LazyCollection[V]) Average(fn func(V) float64) float64 {
	var (
		sum float64
		n   int
	)
	l.walk(func(e Entry[V]) bool {
		sum += fn(e.Value)
		n++
		return true
	})
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Min returns the value with the smallest number extracted by fn.
// An empty pipeline yields [ErrEmptyAggregate].
func (l *LazyCollection[V]) Min(fn func(V) float64) (V, error) {
	return extreme(l.ToSlice(), fn, func(a, b float64) bool { return a < b })
}

// Max returns the value with the largest number extracted by fn.
// An empty pipeline yields [ErrEmptyAggregate].
func (l *LazyCollection[V]) Max(fn func(V) float64) (V, error) {
	return extreme(l.ToSlice(), fn, func(a, b float64) bool { return a > b })
}

// Join concatenates the values like [Collection.Join].
func (l *LazyCollection[V]) Join(glue string, finalGlue ...string) string {
	var parts []string
	l.walk(func(e Entry[V]) bool {
		parts = append(parts, fmt.Sprint(e.Value))
		return true
	})
	return joinParts(parts, glue, finalGlue...)
}

// Implode joins all values using sep, converting each with fn.
func (l *LazyCollection[V]) Implode(sep string, fn func(V) string) string {
	var parts []string
	l.walk(func(e Entry[V]) bool {
		parts = append(parts, fn(e.Value))
		return true
	})
	return strings.Join(parts, sep)
}
