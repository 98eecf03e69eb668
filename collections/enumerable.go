package collections

// Enumerable is the read-side surface shared by [Collection][V] and
// [LazyCollection][V].
//
// Accept Enumerable in your own functions when they only need to consume
// values, so callers can hand over either an eager collection or a lazy
// pipeline. On a LazyCollection every method is a terminal operation that
// walks the pipeline.
type Enumerable[V any] interface {
	// All returns every entry, keys included, in order.
	All() []Entry[V]

	// ToSlice returns the values in order.
	ToSlice() []V

	// Count returns the number of entries.
	Count() int

	// Each calls fn(value, key) for every entry.
	Each(fn func(V, Key))

	// First returns the first value, optionally matching fns[0].
	// Returns the zero value and false when nothing matches.
	First(fns ...func(V, Key) bool) (V, bool)

	// Last returns the last value, optionally matching fns[0].
	// Returns the zero value and false when nothing matches.
	Last(fns ...func(V, Key) bool) (V, bool)

	// Contains reports whether some entry satisfies fn.
	Contains(fn func(V, Key) bool) bool

	// ContainsValue reports whether some value is structurally equal to v.
	ContainsValue(v V) bool

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool

	// IsNotEmpty reports whether there is at least one entry.
	IsNotEmpty() bool

	// Sum returns the sum of the numbers extracted by fn.
	Sum(fn func(V) float64) float64

	// Join concatenates the values, see [Collection.Join].
	Join(glue string, finalGlue ...string) string
}

var (
	_ Enumerable[int] = (*Collection[int])(nil)
	_ Enumerable[int] = (*LazyCollection[int])(nil)
)
