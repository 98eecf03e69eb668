package collections

import (
	"fmt"
	"iter"
	"math/rand"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/hasbyte1/go-laravel-collections/arr"
)

// Collection is an ordered sequence of key/value entries, the Go counterpart
// of a Laravel collection wrapping a PHP array.
//
// Keys are unique. Insertion order is kept by every operation unless the
// operation reorders on purpose (Sort, Reverse, Shuffle). Filtering
// operations keep the original keys; call [Collection.Values] to renumber.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)                    // keys 0, 1, 2
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Of(collections.KV("Maria", 100), collections.KV("Rena", 62))
//	c := collections.Empty[int]()
//
// # Mutability
//
// Transformation methods return a *new* Collection and leave the receiver
// untouched. Push, Pop, Put and Forget mutate the receiver in place, as their
// Laravel namesakes do. A collection must not be mutated while other
// goroutines read it.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	doubled := collections.Map(c, func(n int, _ collections.Key) string {
//	    return strconv.Itoa(n * 2)
//	})
type Collection[V any] struct {
	entries []Entry[V]
	pos     map[Key]int
	next    int // index Push uses next
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a list-shaped Collection from a variadic list of items.
func New[V any](items ...V) *Collection[V] {
	return From(items)
}

// From creates a list-shaped Collection from a slice (the slice is copied).
func From[V any](items []V) *Collection[V] {
	c := withCapacity[V](len(items))
	for i, item := range items {
		c.add(Index(i), item)
	}
	return c
}

// Empty creates an empty Collection of type V.
func Empty[V any]() *Collection[V] {
	return withCapacity[V](0)
}

// Of creates a Collection from explicit entries. A repeated key overwrites
// the earlier value but keeps the earlier position.
func Of[V any](entries ...Entry[V]) *Collection[V] {
	c := withCapacity[V](len(entries))
	for _, e := range entries {
		c.add(e.Key, e.Value)
	}
	return c
}

// FromMap creates an associative Collection from m. Go maps are unordered,
// so entries are ordered by key.
func FromMap[V any](m map[string]V) *Collection[V] {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	c := withCapacity[V](len(m))
	for _, name := range names {
		c.add(Name(name), m[name])
	}
	return c
}

func withCapacity[V any](n int) *Collection[V] {
	return &Collection[V]{
		entries: make([]Entry[V], 0, n),
		pos:     make(map[Key]int, n),
	}
}

// add appends key/value, or overwrites in place when key already exists.
func (c *Collection[V]) add(key Key, value V) {
	if c.pos == nil {
		c.pos = make(map[Key]int)
	}
	if i, ok := c.pos[key]; ok {
		c.entries[i].Value = value
		return
	}
	c.pos[key] = len(c.entries)
	c.entries = append(c.entries, Entry[V]{Key: key, Value: value})
	if i, ok := key.Int(); ok && i >= c.next {
		c.next = i + 1
	}
}

// reindex rebuilds pos after entries were removed.
func (c *Collection[V]) reindex() {
	c.pos = make(map[Key]int, len(c.entries))
	for i, e := range c.entries {
		c.pos[e.Key] = i
	}
}

func (c *Collection[V]) clone() *Collection[V] {
	return Of(c.entries...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of every entry, keys included, in order.
func (c *Collection[V]) All() []Entry[V] {
	out := make([]Entry[V], len(c.entries))
	copy(out, c.entries)
	return out
}

// ToSlice returns the values in order, dropping the keys.
func (c *Collection[V]) ToSlice() []V {
	out := make([]V, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Value
	}
	return out
}

// Keys returns the keys in order.
func (c *Collection[V]) Keys() []Key {
	out := make([]Key, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Key
	}
	return out
}

// Values returns a list-shaped copy with keys renumbered from 0.
func (c *Collection[V]) Values() *Collection[V] {
	return From(c.ToSlice())
}

// Get returns the value stored under key together with a presence flag.
func (c *Collection[V]) Get(key Key) (V, bool) {
	if i, ok := c.pos[key]; ok {
		return c.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Lookup resolves a path segment the way PHP array access does: a canonical
// decimal segment addresses an index key, anything else a name key.
// A nil collection finds nothing.
// It lets [arr.Get] walk through nested collections.
func (c *Collection[V]) Lookup(segment string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.Get(Name(segment))
	return v, ok
}

// Has reports whether every given key exists.
func (c *Collection[V]) Has(keys ...Key) bool {
	for _, k := range keys {
		if _, ok := c.pos[k]; !ok {
			return false
		}
	}
	return len(keys) > 0
}

// HasAny reports whether at least one of the given keys exists.
func (c *Collection[V]) HasAny(keys ...Key) bool {
	for _, k := range keys {
		if _, ok := c.pos[k]; ok {
			return true
		}
	}
	return false
}

// Count returns the number of entries.
func (c *Collection[V]) Count() int { return len(c.entries) }

// IsEmpty reports whether the collection contains no entries.
func (c *Collection[V]) IsEmpty() bool { return len(c.entries) == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection[V]) IsNotEmpty() bool { return len(c.entries) > 0 }

// IsList reports whether the keys are exactly 0, 1, …, Count()-1 in order.
func (c *Collection[V]) IsList() bool {
	for i, e := range c.entries {
		if e.Key != Index(i) {
			return false
		}
	}
	return true
}

// ToJSON serialises the collection: a JSON array when list-shaped, otherwise
// a JSON object whose members follow the collection order.
func (c *Collection[V]) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// MarshalJSON implements json.Marshaler.
func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	if c.IsList() {
		return json.Marshal(c.ToSlice())
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Key.String())
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("collections: marshal key %s: %w", e.Key, err)
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[V]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.entries)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry.
func (c *Collection[V]) Each(fn func(V, Key)) {
	for _, e := range c.entries {
		fn(e.Value, e.Key)
	}
}

// Seq returns a range-over-func iterator over the entries:
//
//	for key, value := range c.Seq() { … }
func (c *Collection[V]) Seq() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for _, e := range c.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Tap calls fn(c) for side-effects and returns c unchanged.
func (c *Collection[V]) Tap(fn func(*Collection[V])) *Collection[V] {
	fn(c)
	return c
}

// Dump writes the collection to the package logger (see [SetLogger]) and
// returns c for chaining.
func (c *Collection[V]) Dump() *Collection[V] {
	l := Logger()
	ev := l.Info().Int("count", len(c.entries))
	if b, err := c.ToJSON(); err == nil {
		ev = ev.RawJSON("items", b)
	} else {
		ev = ev.Str("items", fmt.Sprintf("%v", c.entries))
	}
	ev.Msg("collection dump")
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value, optionally the first matching fns[0].
// Returns the zero value and false when nothing matches; that is not an error.
func (c *Collection[V]) First(fns ...func(V, Key) bool) (V, bool) {
	for _, e := range c.entries {
		if len(fns) == 0 || fns[0](e.Value, e.Key) {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// FirstOrFail returns the first value matching fn, or [ErrNoMatchingItems].
func (c *Collection[V]) FirstOrFail(fn func(V, Key) bool) (V, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last value, optionally the last matching fns[0].
// Returns the zero value and false when nothing matches.
func (c *Collection[V]) Last(fns ...func(V, Key) bool) (V, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		if len(fns) == 0 || fns[0](e.Value, e.Key) {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// LastOrFail returns the last value matching fn, or [ErrNoMatchingItems].
func (c *Collection[V]) LastOrFail(fn func(V, Key) bool) (V, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one entry satisfies fn.
func (c *Collection[V]) Contains(fn func(V, Key) bool) bool {
	_, ok := c.Search(fn)
	return ok
}

// ContainsValue reports whether some value is structurally equal to v
// (see [Equal]); identity is not required.
func (c *Collection[V]) ContainsValue(v V) bool {
	return c.Contains(func(item V, _ Key) bool { return Equal(item, v) })
}

// Search returns the key of the first entry satisfying fn.
func (c *Collection[V]) Search(fn func(V, Key) bool) (Key, bool) {
	for _, e := range c.entries {
		if fn(e.Value, e.Key) {
			return e.Key, true
		}
	}
	return Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the entries for which fn(value, key) returns true.
// Keys are not renumbered.
func (c *Collection[V]) Filter(fn func(V, Key) bool) *Collection[V] {
	out := withCapacity[V](len(c.entries))
	for _, e := range c.entries {
		if fn(e.Value, e.Key) {
			out.add(e.Key, e.Value)
		}
	}
	return out
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[V]) Reject(fn func(V, Key) bool) *Collection[V] {
	return c.Filter(func(v V, k Key) bool { return !fn(v, k) })
}

// WhereField keeps the entries whose value at path (dot notation, see
// [arr.Get]) equals want.
//
//	it := staff.WhereField("department", "IT")
func (c *Collection[V]) WhereField(path string, want any) *Collection[V] {
	return c.Filter(func(v V, _ Key) bool {
		got, ok := arr.Lookup(v, path)
		return ok && Equal(got, want)
	})
}

// Partition splits the collection in two: entries for which fn returns true
// and the rest. Both halves keep their original keys.
func (c *Collection[V]) Partition(fn func(V, Key) bool) (*Collection[V], *Collection[V]) {
	pass, fail := Empty[V](), Empty[V]()
	for _, e := range c.entries {
		if fn(e.Value, e.Key) {
			pass.add(e.Key, e.Value)
		} else {
			fail.add(e.Key, e.Value)
		}
	}
	return pass, fail
}

// Map returns a Collection[any] with each value replaced by fn(value, key).
// Keys are preserved.
//
// For a typed result use the package-level [Map].
func (c *Collection[V]) Map(fn func(V, Key) any) *Collection[any] {
	return Map(c, fn)
}

// FlatMap maps each entry to a []any and flattens the results one level.
// The result is list-shaped.
//
// For a typed result use the package-level [FlatMap].
func (c *Collection[V]) FlatMap(fn func(V, Key) []any) *Collection[any] {
	return FlatMap(c, fn)
}

// Pluck extracts a value from every entry and returns them as a list.
func (c *Collection[V]) Pluck(fn func(V) any) *Collection[any] {
	return Pluck(c, fn)
}

// PluckField extracts the value at path from every entry. Missing paths
// produce nil.
func (c *Collection[V]) PluckField(path string) *Collection[any] {
	return Pluck(c, func(v V) any { return arr.Get(v, path) })
}

// Unique removes entries whose key from fn was already seen, keeping the
// first occurrence and its key. Pass nil to compare by fmt's %v rendering.
func (c *Collection[V]) Unique(fn func(V) any) *Collection[V] {
	if fn == nil {
		fn = func(item V) any { return fmt.Sprintf("%v", item) }
	}
	seen := make(map[any]struct{}, len(c.entries))
	return c.Filter(func(item V, _ Key) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Reverse returns the entries in reversed order, keys travelling with values.
func (c *Collection[V]) Reverse() *Collection[V] {
	out := withCapacity[V](len(c.entries))
	for i := len(c.entries) - 1; i >= 0; i-- {
		out.add(c.entries[i].Key, c.entries[i].Value)
	}
	return out
}

// Sort returns a new collection ordered by less. Keys travel with their
// values and the sort is stable.
func (c *Collection[V]) Sort(less func(a, b V) bool) *Collection[V] {
	out := make([]Entry[V], len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i].Value, out[j].Value) })
	return Of(out...)
}

// SortDesc is [Collection.Sort] in descending order; ties keep their
// original relative order.
func (c *Collection[V]) SortDesc(less func(a, b V) bool) *Collection[V] {
	return c.Sort(func(a, b V) bool { return less(b, a) })
}

// SortBy sorts ascending by the float64 extracted by fn.
func (c *Collection[V]) SortBy(fn func(V) float64) *Collection[V] {
	return c.Sort(func(a, b V) bool { return fn(a) < fn(b) })
}

// SortByDesc sorts descending by the float64 extracted by fn.
func (c *Collection[V]) SortByDesc(fn func(V) float64) *Collection[V] {
	return c.Sort(func(a, b V) bool { return fn(a) > fn(b) })
}

// Shuffle returns the values in random order, renumbered from 0.
func (c *Collection[V]) Shuffle() *Collection[V] {
	out := c.ToSlice()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return From(out)
}

// Random returns one value chosen uniformly at random.
// An empty collection yields [ErrIndexOutOfRange].
func (c *Collection[V]) Random() (V, error) {
	if len(c.entries) == 0 {
		var zero V
		return zero, fmt.Errorf("%w: requested 1 item, collection has 0", ErrIndexOutOfRange)
	}
	return c.entries[rand.Intn(len(c.entries))].Value, nil
}

// RandomN samples n values without replacement. The sample keeps the
// source's relative order and is renumbered from 0. Asking for more items
// than the collection holds yields [ErrIndexOutOfRange].
func (c *Collection[V]) RandomN(n int) (*Collection[V], error) {
	if n < 0 || n > len(c.entries) {
		return nil, fmt.Errorf("%w: requested %d items, collection has %d", ErrIndexOutOfRange, n, len(c.entries))
	}
	picked := rand.Perm(len(c.entries))[:n]
	sort.Ints(picked)
	out := make([]V, n)
	for i, p := range picked {
		out[i] = c.entries[p].Value
	}
	return From(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values to c in place and returns c. Each value gets the
// integer key one past the largest index c has ever held, so forgetting the
// highest index does not make Push reuse it.
func (c *Collection[V]) Push(values ...V) *Collection[V] {
	for _, v := range values {
		c.add(Index(c.next), v)
	}
	return c
}

// Pop removes and returns the last value of c in place.
// An empty collection yields [ErrEmptyPop]. Popping the most recently pushed
// index lets the next Push reuse it.
func (c *Collection[V]) Pop() (V, error) {
	var zero V
	if len(c.entries) == 0 {
		return zero, ErrEmptyPop
	}
	last := c.entries[len(c.entries)-1]
	c.entries[len(c.entries)-1] = Entry[V]{}
	c.entries = c.entries[:len(c.entries)-1]
	delete(c.pos, last.Key)
	if i, ok := last.Key.Int(); ok && i == c.next-1 {
		c.next--
	}
	return last.Value, nil
}

// Put stores value under key in place and returns c. An existing key keeps
// its position.
func (c *Collection[V]) Put(key Key, value V) *Collection[V] {
	c.add(key, value)
	return c
}

// Forget removes the given keys from c in place and returns c.
// Unknown keys are ignored. The index used by the next Push is unchanged.
func (c *Collection[V]) Forget(keys ...Key) *Collection[V] {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	kept := c.entries[:0]
	for _, e := range c.entries {
		if _, ok := drop[e.Key]; !ok {
			kept = append(kept, e)
		}
	}
	clear(c.entries[len(kept):])
	c.entries = kept
	c.reindex()
	return c
}

// Concat returns a new collection holding c's entries followed by other's
// values, which receive fresh integer keys after c's largest index.
// Neither input is modified.
func (c *Collection[V]) Concat(other *Collection[V]) *Collection[V] {
	return c.clone().Push(other.ToSlice()...)
}

// Merge combines c and other like PHP's array_merge: name keys from other
// overwrite those in c, index-keyed values from both are appended and
// renumbered from 0.
func (c *Collection[V]) Merge(other *Collection[V]) *Collection[V] {
	out := withCapacity[V](len(c.entries) + len(other.entries))
	next := 0
	for _, src := range [...]*Collection[V]{c, other} {
		for _, e := range src.entries {
			if e.Key.IsIndex() {
				out.add(Index(next), e.Value)
				next++
				continue
			}
			out.add(e.Key, e.Value)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the entries at positions [offset, offset+length), keeping
// their keys. Without length it runs to the end. A negative offset counts
// from the end, a negative length stops that many entries before the end.
func (c *Collection[V]) Slice(offset int, length ...int) *Collection[V] {
	total := len(c.entries)
	if offset < 0 {
		offset = max(total+offset, 0)
	}
	if offset >= total {
		return Empty[V]()
	}
	end := total
	if len(length) > 0 {
		if l := length[0]; l < 0 {
			end = total + l
		} else {
			end = min(offset+l, total)
		}
	}
	if end <= offset {
		return Empty[V]()
	}
	return Of(c.entries[offset:end]...)
}

// Take returns at most n entries from the start, keeping their keys.
// A negative n takes from the end (Take(-3) ≡ last 3 entries).
func (c *Collection[V]) Take(n int) *Collection[V] {
	if n < 0 {
		return c.Slice(n)
	}
	return c.Slice(0, n)
}

// TakeWhile returns entries from the start while fn holds. The first entry
// failing fn and everything after it are excluded.
func (c *Collection[V]) TakeWhile(fn func(V, Key) bool) *Collection[V] {
	return c.TakeUntil(func(v V, k Key) bool { return !fn(v, k) })
}

// TakeUntil returns entries from the start until fn returns true; the entry
// that satisfied fn is excluded.
func (c *Collection[V]) TakeUntil(fn func(V, Key) bool) *Collection[V] {
	for i, e := range c.entries {
		if fn(e.Value, e.Key) {
			return Of(c.entries[:i]...)
		}
	}
	return c.clone()
}

// Skip drops the first n entries, keeping the keys of the rest.
// As in Laravel, Skip(n) is Slice(n), so a negative n keeps the last |n|.
func (c *Collection[V]) Skip(n int) *Collection[V] {
	return c.Slice(n)
}

// SkipWhile drops entries while fn holds and returns the rest, starting with
// the first entry that failed fn.
func (c *Collection[V]) SkipWhile(fn func(V, Key) bool) *Collection[V] {
	return c.SkipUntil(func(v V, k Key) bool { return !fn(v, k) })
}

// SkipUntil drops entries until fn returns true and returns the rest,
// starting with the entry that satisfied fn.
func (c *Collection[V]) SkipUntil(fn func(V, Key) bool) *Collection[V] {
	for i, e := range c.entries {
		if fn(e.Value, e.Key) {
			return Of(c.entries[i:]...)
		}
	}
	return Empty[V]()
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of the numbers extracted by fn; 0 when empty.
func (c *Collection[V]) Sum(fn func(V) float64) float64 {
	var sum float64
	for _, e := range c.entries {
		sum += fn(e.Value)
	}
	return sum
}

// Average returns the arithmetic mean of the numbers extracted by fn, or 0
// for an empty collection.
func (c *Collection[V]) Average(fn func(V) float64) float64 {
	if len(c.entries) == 0 {
		return 0
	}
	return c.Sum(fn) / float64(len(c.entries))
}

// Min returns the value with the smallest number extracted by fn.
// An empty collection yields [ErrEmptyAggregate].
func (c *Collection[V]) Min(fn func(V) float64) (V, error) {
	return extreme(c.ToSlice(), fn, func(a, b float64) bool { return a < b })
}

// Max returns the value with the largest number extracted by fn.
// An empty collection yields [ErrEmptyAggregate].
func (c *Collection[V]) Max(fn func(V) float64) (V, error) {
	return extreme(c.ToSlice(), fn, func(a, b float64) bool { return a > b })
}

func extreme[V any](values []V, fn func(V) float64, better func(a, b float64) bool) (V, error) {
	if len(values) == 0 {
		var zero V
		return zero, ErrEmptyAggregate
	}
	best, bestVal := values[0], fn(values[0])
	for _, v := range values[1:] {
		if f := fn(v); better(f, bestVal) {
			best, bestVal = v, f
		}
	}
	return best, nil
}

// Reduce folds the values from left to right. With initial[0] the fold
// starts from it; without, the first value seeds the accumulator and the
// fold starts at the second. An empty collection without an initial value
// yields [ErrEmptyReduce].
//
// For reductions that change the type use the package-level [Reduce].
func (c *Collection[V]) Reduce(fn func(carry, item V) V, initial ...V) (V, error) {
	values := c.ToSlice()
	var carry V
	switch {
	case len(initial) > 0:
		carry = initial[0]
	case len(values) == 0:
		return carry, ErrEmptyReduce
	default:
		carry, values = values[0], values[1:]
	}
	for _, v := range values {
		carry = fn(carry, v)
	}
	return carry, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// KeyBy re-keys the collection with the key fn returns. When several values
// produce the same key the last one wins.
func (c *Collection[V]) KeyBy(fn func(V, Key) any) *Collection[V] {
	out := withCapacity[V](len(c.entries))
	for _, e := range c.entries {
		out.add(KeyOf(fn(e.Value, e.Key)), e.Value)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Join concatenates the values rendered with fmt.Sprint. glue separates all
// values except the last two, which are separated by finalGlue when given
// and non-empty.
//
//	New("a", "b", "c").Join(", ", " and ") // "a, b and c"
func (c *Collection[V]) Join(glue string, finalGlue ...string) string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = fmt.Sprint(e.Value)
	}
	return joinParts(parts, glue, finalGlue...)
}

func joinParts(parts []string, glue string, finalGlue ...string) string {
	if len(finalGlue) == 0 || finalGlue[0] == "" || len(parts) < 2 {
		return strings.Join(parts, glue)
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], glue) + finalGlue[0] + parts[last]
}

// Implode joins all values using sep, converting each with fn.
func (c *Collection[V]) Implode(sep string, fn func(V) string) string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = fn(e.Value)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[V]) When(condition bool, fn func(*Collection[V]) *Collection[V]) *Collection[V] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[V]) Unless(condition bool, fn func(*Collection[V]) *Collection[V]) *Collection[V] {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[V]) WhenEmpty(fn func(*Collection[V]) *Collection[V]) *Collection[V] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection[V]) WhenNotEmpty(fn func(*Collection[V]) *Collection[V]) *Collection[V] {
	return c.When(c.IsNotEmpty(), fn)
}
