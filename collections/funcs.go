package collections

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-laravel-collections/arr"
)

// This file contains package-level generic functions for operations that
// transform a Collection[V] to a Collection[U] (V ≠ U), that need a
// constraint on V that methods cannot express, or that nest collections:
// a method of Collection[V] cannot return Collection[*Collection[V]].
//
// They compose with method chains:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) },
//	)

// Number is satisfied by every integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// KeyType is satisfied by types whose values can become collection keys.
type KeyType interface {
	constraints.Integer | ~string
}

// Constructor builds a U from a single V, rejecting values of the wrong shape.
type Constructor[V, U any] func(V) (U, error)

// Map applies fn to every entry and returns a Collection[U] with the same keys.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ collections.Key) int { return n * 2 })
func Map[V, U any](c *Collection[V], fn func(V, Key) U) *Collection[U] {
	out := withCapacity[U](len(c.entries))
	for _, e := range c.entries {
		out.add(e.Key, fn(e.Value, e.Key))
	}
	return out
}

// MapInto wraps every value with ctor, keeping keys. The first rejected
// value stops the mapping; the error wraps [ErrConstruction] and the
// constructor's own error.
//
//	people, err := collections.MapInto(names, NewPerson)
func MapInto[V, U any](c *Collection[V], ctor Constructor[V, U]) (*Collection[U], error) {
	out := withCapacity[U](len(c.entries))
	for _, e := range c.entries {
		u, err := ctor(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %s: %w", ErrConstruction, e.Key, err)
		}
		out.add(e.Key, u)
	}
	return out, nil
}

// MapSpread spreads every row's elements as the arguments of fn.
func MapSpread[V, U any](c *Collection[[]V], fn func(args ...V) U) *Collection[U] {
	return Map(c, func(row []V, _ Key) U { return fn(row...) })
}

// MapSpread2 spreads the first two elements of every row as the arguments of
// fn; extra elements are ignored. A row shorter than two elements yields
// [ErrIndexOutOfRange].
//
//	people, err := collections.MapSpread2(names, func(first, last string) Person {
//	    return NewPerson(first + " " + last)
//	})
func MapSpread2[V, U any](c *Collection[[]V], fn func(a, b V) U) (*Collection[U], error) {
	out := withCapacity[U](len(c.entries))
	for _, e := range c.entries {
		if len(e.Value) < 2 {
			return nil, fmt.Errorf("%w: key %s: row has %d elements, need 2", ErrIndexOutOfRange, e.Key, len(e.Value))
		}
		out.add(e.Key, fn(e.Value[0], e.Value[1]))
	}
	return out, nil
}

// MapToGroups groups projected values: fn returns a single {groupKey: value}
// entry per input. The result is keyed by group in first-seen order and
// every group is a list of the values seen for it.
//
//	names := collections.MapToGroups(staff, func(s Staff, _ collections.Key) collections.Entry[string] {
//	    return collections.KV(s.Department, s.Name)
//	})
func MapToGroups[V, U any](c *Collection[V], fn func(V, Key) Entry[U]) *Collection[*Collection[U]] {
	out := Empty[*Collection[U]]()
	for _, e := range c.entries {
		g := fn(e.Value, e.Key)
		group, ok := out.Get(g.Key)
		if !ok {
			group = Empty[U]()
			out.add(g.Key, group)
		}
		group.Push(g.Value)
	}
	return out
}

// MapWithKeys builds a new collection from the single entry fn returns for
// every input. When keys collide the last value wins.
func MapWithKeys[V, U any](c *Collection[V], fn func(V, Key) Entry[U]) *Collection[U] {
	out := withCapacity[U](len(c.entries))
	for _, e := range c.entries {
		kv := fn(e.Value, e.Key)
		out.add(kv.Key, kv.Value)
	}
	return out
}

// FlatMap applies fn to every entry and flattens the resulting slices into a
// list. Order is preserved and duplicates are kept.
//
//	jobs := collections.FlatMap(staff, func(s Staff, _ collections.Key) []string { return s.Jobs })
func FlatMap[V, U any](c *Collection[V], fn func(V, Key) []U) *Collection[U] {
	out := make([]U, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, fn(e.Value, e.Key)...)
	}
	return From(out)
}

// Reduce folds c into a single value of type U, starting from initial.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int, _ collections.Key) int { return acc + n }, 0)
func Reduce[V, U any](c *Collection[V], fn func(U, V, Key) U, initial U) U {
	result := initial
	for _, e := range c.entries {
		result = fn(result, e.Value, e.Key)
	}
	return result
}

// Pluck extracts a U from every value and returns them as a list.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[V, U any](c *Collection[V], fn func(V) U) *Collection[U] {
	out := make([]U, len(c.entries))
	for i, e := range c.entries {
		out[i] = fn(e.Value)
	}
	return From(out)
}

// Zip combines two collections position by position into Pairs.
// Stops at the shorter of the two collections.
//
//	pairs := collections.Zip(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	n := min(len(a.entries), len(b.entries))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.entries[i].Value, Second: b.entries[i].Value}
	}
	return From(out)
}

// Combine uses the values of keys as keys for the values of values, paired
// by position. Keys are converted with [KeyOf], so integers and decimal
// strings become index keys.
// Returns [ErrLengthMismatch] if the collections differ in length.
//
//	person, _ := collections.Combine(
//	    collections.New("name", "occupation"),
//	    collections.New("Kezia Regina", "Backend Developer"),
//	)
func Combine[K KeyType, V any](keys *Collection[K], values *Collection[V]) (*Collection[V], error) {
	if len(keys.entries) != len(values.entries) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys.entries), len(values.entries))
	}
	out := withCapacity[V](len(keys.entries))
	for i, e := range keys.entries {
		out.add(KeyOf(e.Value), values.entries[i].Value)
	}
	return out, nil
}

// Chunk splits c into consecutive collections of at most size entries.
// Each chunk keeps the original keys of its members; the outer collection
// is list-shaped. A size <= 0 yields an empty collection.
//
//	chunks := collections.Chunk(collections.New(1, 2, 3, 4, 5), 2)
//	// → [[0:1 1:2] [2:3 3:4] [4:5]]
func Chunk[V any](c *Collection[V], size int) *Collection[*Collection[V]] {
	if size <= 0 {
		return Empty[*Collection[V]]()
	}
	out := withCapacity[*Collection[V]]((len(c.entries) + size - 1) / size)
	for i := 0; i < len(c.entries); i += size {
		end := min(i+size, len(c.entries))
		out.add(Index(out.Count()), Of(c.entries[i:end]...))
	}
	return out
}

// ZipSame pairs two collections of the same type position by position. Each
// value of the result is a two-entry list [a[i], b[i]]; the result is as long
// as the shorter input. Use [Zip] for differently typed inputs.
func ZipSame[V any](a, b *Collection[V]) *Collection[*Collection[V]] {
	n := min(len(a.entries), len(b.entries))
	out := withCapacity[*Collection[V]](n)
	for i := 0; i < n; i++ {
		out.add(Index(i), New(a.entries[i].Value, b.entries[i].Value))
	}
	return out
}

// GroupBy groups whole values by the key fn returns, converted with
// [KeyOf]. Groups appear in first-seen order and each group is a list.
//
//	byParity := collections.GroupBy(numbers, func(n int, _ collections.Key) any { return n % 2 })
func GroupBy[V any](c *Collection[V], fn func(V, Key) any) *Collection[*Collection[V]] {
	return MapToGroups(c, func(v V, k Key) Entry[V] {
		return Entry[V]{Key: KeyOf(fn(v, k)), Value: v}
	})
}

// GroupByField groups values by the value found at path (dot notation, see
// [arr.Get]).
//
//	byDept := collections.GroupByField(staff, "department")
func GroupByField[V any](c *Collection[V], path string) *Collection[*Collection[V]] {
	return GroupBy(c, func(v V, _ Key) any { return arr.Get(v, path) })
}

// Collapse flattens a collection of collections into a single list, in order.
//
//	flat := collections.Collapse(collections.Chunk(collections.New(1, 2, 3, 4, 5), 2))
//	// → [1, 2, 3, 4, 5]
func Collapse[V any](c *Collection[*Collection[V]]) *Collection[V] {
	total := 0
	for _, e := range c.entries {
		total += e.Value.Count()
	}
	out := make([]V, 0, total)
	for _, e := range c.entries {
		out = append(out, e.Value.ToSlice()...)
	}
	return From(out)
}

// CollapseSlices flattens a collection of slices into a single list.
//
//	flat := collections.CollapseSlices(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func CollapseSlices[V any](c *Collection[[]V]) *Collection[V] {
	return FlatMap(c, func(row []V, _ Key) []V { return row })
}

// FlattenDeep recursively flattens a Collection[any] that may contain nested
// []any or *Collection[any] values of arbitrary depth into a list.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	out := make([]any, 0, len(c.entries))
	var flatten func(items []any)
	flatten = func(items []any) {
		for _, item := range items {
			switch v := item.(type) {
			case []any:
				flatten(v)
			case *Collection[any]:
				flatten(v.ToSlice())
			default:
				out = append(out, item)
			}
		}
	}
	flatten(c.ToSlice())
	return From(out)
}

// Sort returns c ordered by the natural ordering of its values. The sort is
// stable and keys travel with their values.
func Sort[V cmp.Ordered](c *Collection[V]) *Collection[V] {
	return c.Sort(cmp.Less[V])
}

// SortDesc is [Sort] in descending order.
func SortDesc[V cmp.Ordered](c *Collection[V]) *Collection[V] {
	return c.SortDesc(cmp.Less[V])
}

// Sum adds up the values of a numeric collection; 0 when empty.
func Sum[N Number](c *Collection[N]) N {
	var sum N
	for _, e := range c.entries {
		sum += e.Value
	}
	return sum
}

// Average returns the arithmetic mean of a numeric collection, or 0 when
// empty.
func Average[N Number](c *Collection[N]) float64 {
	if len(c.entries) == 0 {
		return 0
	}
	return float64(Sum(c)) / float64(len(c.entries))
}

// Min returns the smallest value. An empty collection yields
// [ErrEmptyAggregate].
func Min[V cmp.Ordered](c *Collection[V]) (V, error) {
	return orderedExtreme(c, -1)
}

// Max returns the largest value. An empty collection yields
// [ErrEmptyAggregate].
func Max[V cmp.Ordered](c *Collection[V]) (V, error) {
	return orderedExtreme(c, 1)
}

func orderedExtreme[V cmp.Ordered](c *Collection[V], sign int) (V, error) {
	if len(c.entries) == 0 {
		var zero V
		return zero, ErrEmptyAggregate
	}
	best := c.entries[0].Value
	for _, e := range c.entries[1:] {
		if cmp.Compare(e.Value, best) == sign {
			best = e.Value
		}
	}
	return best, nil
}
