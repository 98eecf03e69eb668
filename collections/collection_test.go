package collections_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func indexes(is ...int) []collections.Key {
	out := make([]collections.Key, len(is))
	for i, n := range is {
		out[i] = collections.Index(n)
	}
	return out
}

func names(ss ...string) []collections.Key {
	out := make([]collections.Key, len(ss))
	for i, s := range ss {
		out[i] = collections.Name(s)
	}
	return out
}

func scores() *collections.Collection[int] {
	return collections.Of(
		collections.KV("Maria", 100),
		collections.KV("Rena", 62),
		collections.KV("Poetri", 92),
	)
}

func even(n int, _ collections.Key) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
	assert.Equal(t, indexes(0, 1, 2), c.Keys())
	assert.True(t, c.IsList())
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z" // mutate original – should not affect the collection
	assert.Equal(t, []string{"a", "b", "c"}, c.ToSlice())
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	assert.Zero(t, c.Count())
	assert.True(t, c.IsEmpty())
}

func TestOf(t *testing.T) {
	c := scores()
	assert.Equal(t, names("Maria", "Rena", "Poetri"), c.Keys())
	assert.False(t, c.IsList())

	// A repeated key overwrites in place.
	dup := collections.Of(collections.KV("a", 1), collections.KV("b", 2), collections.KV("a", 3))
	assert.Equal(t, []collections.Entry[int]{collections.KV("a", 3), collections.KV("b", 2)}, dup.All())
}

func TestFromMap(t *testing.T) {
	c := collections.FromMap(map[string]int{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, names("a", "b", "c"), c.Keys())
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
}

func TestZeroValueCollection(t *testing.T) {
	var c collections.Collection[int]
	c.Push(1, 2)
	assert.Equal(t, []int{1, 2}, c.ToSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestAllIncludesKeys(t *testing.T) {
	want := []collections.Entry[int]{
		collections.At(0, 10),
		collections.At(1, 20),
	}
	assert.Equal(t, want, ints(10, 20).All())
}

func TestGet(t *testing.T) {
	c := ints(10, 20, 30)
	v, ok := c.Get(collections.Index(1))
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = c.Get(collections.Index(99))
	assert.False(t, ok)

	v, ok = scores().Get(collections.Name("Rena"))
	require.True(t, ok)
	assert.Equal(t, 62, v)
}

func TestHas(t *testing.T) {
	c := scores()
	assert.True(t, c.Has(collections.Name("Maria")))
	assert.True(t, c.Has(collections.Name("Maria"), collections.Name("Rena")))
	assert.False(t, c.Has(collections.Name("Maria"), collections.Name("Eko")))
	assert.False(t, c.Has())
}

func TestHasAny(t *testing.T) {
	c := scores()
	assert.True(t, c.HasAny(collections.Name("Eko"), collections.Name("Maria")))
	assert.False(t, c.HasAny(collections.Name("Eko")))
	assert.False(t, c.HasAny())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, collections.Empty[int]().IsEmpty())
	assert.False(t, ints(1).IsEmpty())
	assert.True(t, ints(1).IsNotEmpty())
}

func TestValuesRenumbers(t *testing.T) {
	c := ints(1, 2, 3, 4).Filter(even)
	assert.Equal(t, indexes(1, 3), c.Keys())
	assert.Equal(t, indexes(0, 1), c.Values().Keys())
	assert.Equal(t, []int{2, 4}, c.Values().ToSlice())
}

func TestLookup(t *testing.T) {
	v, ok := ints(5, 6).Lookup("1")
	require.True(t, ok)
	assert.Equal(t, 6, v)

	v, ok = scores().Lookup("Poetri")
	require.True(t, ok)
	assert.Equal(t, 92, v)

	_, ok = scores().Lookup("0")
	assert.False(t, ok)
}

func TestLookupThroughPaths(t *testing.T) {
	groups := collections.GroupByField(staff(), "department")
	assert.Equal(t, "Putri", arr.Get(groups, "IT.1.name"))
	assert.True(t, arr.Has(groups, "CEO.0"))
	assert.False(t, arr.Has(groups, "CEO.1"))
	assert.Equal(t, "n/a", arr.Get(groups, "HR.0.name", "n/a"))
}

func TestLookupNilCollection(t *testing.T) {
	var missing *collections.Collection[int]
	_, ok := missing.Lookup("0")
	assert.False(t, ok)

	data := map[string]any{"scores": missing}
	assert.False(t, arr.Has(data, "scores.0"))
	assert.Equal(t, -1, arr.Get(data, "scores.0", -1))
}

func TestLookupNonCanonicalDecimal(t *testing.T) {
	_, ok := ints(5, 6).Lookup("01")
	assert.False(t, ok)

	c := collections.Of(collections.KV("01", "padded"))
	v, ok := c.Lookup("01")
	require.True(t, ok)
	assert.Equal(t, "padded", v)
}

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(b))

	b, err = scores().ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Maria":100,"Rena":62,"Poetri":92}`, string(b), "object members follow collection order")

	b, err = ints(1, 2, 3).Filter(even).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"1":2}`, string(b), "non-contiguous keys render as an object")
}

func TestDecimalNameSharesIndexSlot(t *testing.T) {
	c := collections.Of(collections.At(1, "a"), collections.KV("1", "b"))
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, indexes(1), c.Keys())

	b, err := c.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"1":"b"}`, string(b))

	list := collections.Of(collections.KV("0", "x"), collections.KV("1", "y"))
	assert.True(t, list.IsList())
	assert.Equal(t, `["x","y"]`, list.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1,2,3]", ints(1, 2, 3).String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	sum := 0
	ints(1, 2, 3, 4).Each(func(n int, _ collections.Key) { sum += n })
	assert.Equal(t, 10, sum)
}

func TestSeq(t *testing.T) {
	for key, value := range ints(1, 2, 3, 4, 5, 6, 7, 8, 9).Seq() {
		i, ok := key.Int()
		require.True(t, ok)
		assert.Equal(t, i+1, value)
	}

	var seen []int
	for _, v := range ints(1, 2, 3).Seq() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1}, seen)
}

func TestTap(t *testing.T) {
	var seen int
	result := ints(1, 2, 3).
		Tap(func(c *collections.Collection[int]) { seen = c.Count() }).
		Count()
	assert.Equal(t, 3, seen)
	assert.Equal(t, 3, result)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	collections.SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { collections.SetLogger(zerolog.Nop()) })

	c := ints(1, 2)
	assert.Same(t, c, c.Dump())
	assert.Contains(t, buf.String(), `"items":[1,2]`)
	assert.Contains(t, buf.String(), `"count":2`)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)

	v, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = c.First(even)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = collections.Empty[int]().First()
	assert.False(t, ok)

	_, ok = c.First(func(n int, _ collections.Key) bool { return n > 100 })
	assert.False(t, ok)
}

func TestFirstOrFail(t *testing.T) {
	_, err := ints(1, 2, 3).FirstOrFail(func(n int, _ collections.Key) bool { return n > 5 })
	assert.ErrorIs(t, err, collections.ErrNoMatchingItems)

	v, err := ints(1, 2, 3).FirstOrFail(func(n int, _ collections.Key) bool { return n == 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestLast(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)

	v, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, 9, v)

	v, ok = c.Last(even)
	require.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = collections.Empty[int]().Last()
	assert.False(t, ok)

	_, err := c.LastOrFail(func(n int, _ collections.Key) bool { return n > 9 })
	assert.ErrorIs(t, err, collections.ErrNoMatchingItems)
}

func TestContains(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.True(t, c.ContainsValue(1))
	assert.False(t, c.ContainsValue(100))
	assert.True(t, c.Contains(even))

	people := collections.New("Maria", "Rena", "Poetri")
	assert.True(t, people.ContainsValue("Maria"))
	assert.True(t, people.Contains(func(s string, _ collections.Key) bool { return s == "Rena" }))
}

func TestContainsValueIsStructural(t *testing.T) {
	rows := collections.New(
		map[string]string{"name": "Rena"},
		map[string]string{"name": "Putri"},
	)
	assert.True(t, rows.ContainsValue(map[string]string{"name": "Putri"}))
	assert.False(t, rows.ContainsValue(map[string]string{"name": "Eko"}))

	nested := collections.New(ints(1, 2), ints(3))
	assert.True(t, nested.ContainsValue(ints(3)))
}

func TestSearch(t *testing.T) {
	k, ok := scores().Search(func(n int, _ collections.Key) bool { return n < 90 })
	require.True(t, ok)
	assert.Equal(t, collections.Name("Rena"), k)

	_, ok = ints(1).Search(func(n int, _ collections.Key) bool { return n == 99 })
	assert.False(t, ok)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestFilterKeepsKeys(t *testing.T) {
	got := scores().Filter(func(n int, _ collections.Key) bool { return n >= 90 })
	want := []collections.Entry[int]{collections.KV("Maria", 100), collections.KV("Poetri", 92)}
	assert.Equal(t, want, got.All())
}

func TestFilterByKey(t *testing.T) {
	got := scores().Filter(func(_ int, k collections.Key) bool { return k == collections.Name("Maria") })
	assert.Equal(t, []int{100}, got.ToSlice())
}

func TestFilterIndexNotRenumbered(t *testing.T) {
	got := ints(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).Filter(even)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, got.ToSlice())
	assert.Equal(t, indexes(1, 3, 5, 7, 9), got.Keys())
}

func TestReject(t *testing.T) {
	got := ints(1, 2, 3, 4, 5).Reject(even)
	assert.Equal(t, []int{1, 3, 5}, got.ToSlice())
	assert.Equal(t, indexes(0, 2, 4), got.Keys())
}

func TestPartition(t *testing.T) {
	pass, fail := scores().Partition(func(n int, _ collections.Key) bool { return n >= 90 })
	assert.Equal(t, []collections.Entry[int]{collections.KV("Maria", 100), collections.KV("Poetri", 92)}, pass.All())
	assert.Equal(t, []collections.Entry[int]{collections.KV("Rena", 62)}, fail.All())
}

func TestPartitionReconstitutesSource(t *testing.T) {
	src := ints(5, 8, 1, 4, 9, 2)
	pass, fail := src.Partition(even)
	assert.Equal(t, src.Count(), src.Filter(even).Count()+fail.Count())

	merged := collections.Of(append(pass.All(), fail.All()...)...)
	assert.ElementsMatch(t, src.All(), merged.All())
}

func TestMapAny(t *testing.T) {
	got := ints(1, 2, 3).Map(func(n int, _ collections.Key) any { return n * 2 })
	assert.Equal(t, []any{2, 4, 6}, got.ToSlice())
	assert.Equal(t, indexes(0, 1, 2), got.Keys())
}

func TestMapLeavesSourceUntouched(t *testing.T) {
	src := ints(1, 2, 3)
	_ = src.Map(func(n int, _ collections.Key) any { return n * 2 })
	assert.Equal(t, []int{1, 2, 3}, src.ToSlice())
}

func TestFlatMapAny(t *testing.T) {
	got := ints(1, 2, 3).FlatMap(func(n int, _ collections.Key) []any { return []any{n, n * 10} })
	assert.Equal(t, []any{1, 10, 2, 20, 3, 30}, got.ToSlice())
}

func TestPluck(t *testing.T) {
	got := ints(1, 2, 3).Pluck(func(n int) any { return n * n })
	assert.Equal(t, []any{1, 4, 9}, got.ToSlice())
}

func TestPluckField(t *testing.T) {
	got := staff().PluckField("name")
	assert.Equal(t, []any{"Rena", "Putri", "Maria"}, got.ToSlice())

	missing := staff().PluckField("salary")
	assert.Equal(t, []any{nil, nil, nil}, missing.ToSlice())
}

func TestWhereField(t *testing.T) {
	got := staff().WhereField("department", "IT")
	assert.Equal(t, 2, got.Count())
	assert.Equal(t, indexes(0, 1), got.Keys())
}

func TestUnique(t *testing.T) {
	got := ints(1, 2, 2, 3, 3, 3).Unique(nil)
	assert.Equal(t, []int{1, 2, 3}, got.ToSlice())
	assert.Equal(t, indexes(0, 1, 3), got.Keys())

	// Key by string length.
	c := collections.New("hi", "apple", "APPLE", "banana")
	assert.Equal(t, 3, c.Unique(func(s string) any { return len(s) }).Count())
}

func TestReverseKeepsKeys(t *testing.T) {
	got := ints(1, 2, 3).Reverse()
	assert.Equal(t, []int{3, 2, 1}, got.ToSlice())
	assert.Equal(t, indexes(2, 1, 0), got.Keys())
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestSortKeysTravel(t *testing.T) {
	got := ints(1, 3, 2, 4, 5, 9, 6, 8, 7).Sort(func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got.ToSlice())
	assert.Equal(t, indexes(0, 2, 1, 3, 4, 6, 8, 7, 5), got.Keys())
}

func TestSortDesc(t *testing.T) {
	got := ints(1, 3, 2, 4, 5, 9, 6, 8, 7).SortDesc(func(a, b int) bool { return a < b })
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, got.ToSlice())
}

func TestSortIsStable(t *testing.T) {
	type row struct {
		Name string
		Rank int
	}
	c := collections.New(row{"a", 2}, row{"b", 1}, row{"c", 2}, row{"d", 1})
	byRank := func(x, y row) bool { return x.Rank < y.Rank }

	asc := c.Sort(byRank)
	assert.Equal(t, "bdac", joinNames(asc.ToSlice(), func(r row) string { return r.Name }))

	desc := c.SortDesc(byRank)
	assert.Equal(t, "acbd", joinNames(desc.ToSlice(), func(r row) string { return r.Name }))
}

func TestSortIdempotent(t *testing.T) {
	once := collections.Sort(ints(4, 1, 3, 1, 2))
	twice := collections.Sort(once)
	assert.Equal(t, once.All(), twice.All())
}

func TestSortBy(t *testing.T) {
	got := ints(5, 3, 1, 4, 2).SortBy(func(n int) float64 { return float64(n) })
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.ToSlice())

	got = ints(5, 3, 1, 4, 2).SortByDesc(func(n int) float64 { return float64(n) })
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got.ToSlice())
}

func TestShuffle(t *testing.T) {
	orig := ints(1, 2, 3, 4, 5)
	shuffled := orig.Shuffle()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, orig.ToSlice())
	assert.ElementsMatch(t, orig.ToSlice(), shuffled.ToSlice())
	assert.True(t, shuffled.IsList())
}

func TestRandom(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	v, err := c.Random()
	require.NoError(t, err)
	assert.True(t, c.ContainsValue(v))

	_, err = collections.Empty[int]().Random()
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
}

func TestRandomN(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	r, err := c.RandomN(5)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Count())
	assert.Equal(t, 5, r.Unique(nil).Count(), "sampled without replacement")
	assert.True(t, r.IsList())
	for _, v := range r.ToSlice() {
		assert.True(t, c.ContainsValue(v))
	}

	all, err := c.RandomN(9)
	require.NoError(t, err)
	assert.Equal(t, c.ToSlice(), all.ToSlice(), "full sample keeps source order")

	_, err = c.RandomN(10)
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
	_, err = c.RandomN(-1)
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

func TestPushPop(t *testing.T) {
	c := ints(1, 2, 3)
	c.Push(4)
	v, err := c.Pop()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
}

func TestPushFromEmpty(t *testing.T) {
	c := collections.Empty[int]()
	c.Push(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())

	v, err := c.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2}, c.ToSlice())
}

func TestPushContinuesIndices(t *testing.T) {
	c := ints(1, 2, 3, 4).Filter(even) // keys 1, 3
	c.Push(6)
	assert.Equal(t, indexes(1, 3, 4), c.Keys())

	named := scores().Push(1)
	assert.Equal(t, collections.Index(0), named.Keys()[3])
}

func TestPushAfterForgetKeepsCounter(t *testing.T) {
	c := collections.Of(collections.At(0, "a"), collections.At(5, "b"))
	c.Forget(collections.Index(5))
	c.Push("c")
	assert.Equal(t, indexes(0, 6), c.Keys())
}

func TestPushAfterPopReusesIndex(t *testing.T) {
	c := ints(1, 2, 3)
	_, err := c.Pop()
	require.NoError(t, err)
	c.Push(9)
	assert.Equal(t, indexes(0, 1, 2), c.Keys())
	assert.True(t, c.IsList())
}

func TestPushManyStaysSequential(t *testing.T) {
	c := collections.Empty[int]()
	for i := 0; i < 5000; i++ {
		c.Push(i)
	}
	keys := c.Keys()
	require.Len(t, keys, 5000)
	assert.Equal(t, collections.Index(4999), keys[4999])
	assert.True(t, c.IsList())
}

func TestPopEmpty(t *testing.T) {
	_, err := collections.Empty[int]().Pop()
	assert.ErrorIs(t, err, collections.ErrEmptyPop)
}

func TestPutAndForget(t *testing.T) {
	c := scores()
	c.Put(collections.Name("Rena"), 70).Put(collections.Name("Eko"), 80)
	assert.Equal(t, names("Maria", "Rena", "Poetri", "Eko"), c.Keys())
	assert.Equal(t, []int{100, 70, 92, 80}, c.ToSlice())

	c.Forget(collections.Name("Maria"), collections.Name("nobody"))
	assert.Equal(t, names("Rena", "Poetri", "Eko"), c.Keys())
	v, ok := c.Get(collections.Name("Eko"))
	require.True(t, ok)
	assert.Equal(t, 80, v)
}

func TestConcat(t *testing.T) {
	a, b := ints(1, 2, 3), ints(4, 5, 6)
	got := a.Concat(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got.ToSlice())
	assert.True(t, got.IsList())
	assert.Equal(t, a.Count()+b.Count(), got.Count())
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice(), "source untouched")
}

func TestConcatAfterNamedKeys(t *testing.T) {
	got := scores().Concat(ints(7))
	assert.Equal(t, append(names("Maria", "Rena", "Poetri"), collections.Index(0)), got.Keys())
}

func TestMerge(t *testing.T) {
	a := collections.Of(collections.KV("x", 1), collections.At(5, 2))
	b := collections.Of(collections.KV("x", 9), collections.At(0, 3))
	got := a.Merge(b)
	want := []collections.Entry[int]{
		collections.KV("x", 9),
		collections.At(0, 2),
		collections.At(1, 3),
	}
	assert.Equal(t, want, got.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

func TestSlice(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)

	got := c.Slice(3)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, got.ToSlice())
	assert.Equal(t, indexes(3, 4, 5, 6, 7, 8), got.Keys())

	got = c.Slice(3, 2)
	assert.Equal(t, []int{4, 5}, got.ToSlice())
	assert.Equal(t, indexes(3, 4), got.Keys())
}

func TestSliceEdges(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	assert.Equal(t, []int{4, 5}, c.Slice(-2).ToSlice())
	assert.Equal(t, []int{2, 3}, c.Slice(1, -2).ToSlice())
	assert.Equal(t, []int{4, 5}, c.Slice(3, 100).ToSlice())
	assert.True(t, c.Slice(10).IsEmpty())
	assert.True(t, c.Slice(3, -3).IsEmpty())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Slice(-10).ToSlice())
}

func TestTake(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, []int{1, 2, 3}, c.Take(3).ToSlice())
	assert.Equal(t, []int{8, 9}, c.Take(-2).ToSlice())
	assert.Equal(t, indexes(7, 8), c.Take(-2).Keys())
	assert.Equal(t, 9, c.Take(100).Count())
	assert.True(t, c.Take(0).IsEmpty())
}

func TestTakeCountProperty(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	for n := 0; n <= 8; n++ {
		assert.Equal(t, min(n, c.Count()), c.Take(n).Count(), "n=%d", n)
	}
}

func TestTakeUntil(t *testing.T) {
	got := ints(1, 2, 3, 4, 5, 6, 7, 8, 9).TakeUntil(func(n int, _ collections.Key) bool { return n == 5 })
	assert.Equal(t, []int{1, 2, 3, 4}, got.ToSlice())

	all := ints(1, 2).TakeUntil(func(n int, _ collections.Key) bool { return n == 5 })
	assert.Equal(t, []int{1, 2}, all.ToSlice())
}

func TestTakeWhile(t *testing.T) {
	got := ints(1, 2, 3, 4, 5, 6, 7, 8, 9).TakeWhile(func(n int, _ collections.Key) bool { return n <= 5 })
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.ToSlice())

	// Stops at the first failure even if later values pass again.
	got = ints(1, 9, 2).TakeWhile(func(n int, _ collections.Key) bool { return n < 5 })
	assert.Equal(t, []int{1}, got.ToSlice())
}

func TestSkip(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	got := c.Skip(5)
	assert.Equal(t, []int{6, 7, 8, 9}, got.ToSlice())
	assert.Equal(t, indexes(5, 6, 7, 8), got.Keys())
	assert.True(t, c.Skip(20).IsEmpty())
}

func TestSkipUntil(t *testing.T) {
	got := ints(1, 2, 3, 4, 5, 6, 7, 8, 9).SkipUntil(func(n int, _ collections.Key) bool { return n == 5 })
	assert.Equal(t, []int{5, 6, 7, 8, 9}, got.ToSlice())

	none := ints(1, 2).SkipUntil(func(n int, _ collections.Key) bool { return n == 5 })
	assert.True(t, none.IsEmpty())
}

func TestSkipWhile(t *testing.T) {
	got := ints(1, 2, 3, 4, 5, 6, 7, 8, 9).SkipWhile(func(n int, _ collections.Key) bool { return n <= 5 })
	assert.Equal(t, []int{6, 7, 8, 9}, got.ToSlice())
	assert.Equal(t, indexes(5, 6, 7, 8), got.Keys())
}

func TestChunk(t *testing.T) {
	chunks := collections.Chunk(ints(1, 2, 3, 4, 5, 6, 7, 8, 9), 4)
	require.Equal(t, 3, chunks.Count())

	parts := chunks.ToSlice()
	assert.Equal(t, []int{1, 2, 3, 4}, parts[0].ToSlice())
	assert.Equal(t, []int{5, 6, 7, 8}, parts[1].ToSlice())
	assert.Equal(t, []int{9}, parts[2].ToSlice())

	assert.Equal(t, indexes(4, 5, 6, 7), parts[1].Keys(), "chunks keep original keys")
	assert.Equal(t, indexes(8), parts[2].Keys())
	assert.True(t, chunks.IsList())
}

func TestChunkInvalidSize(t *testing.T) {
	assert.True(t, collections.Chunk(ints(1, 2, 3), 0).IsEmpty())
	assert.True(t, collections.Chunk(ints(1, 2, 3), -1).IsEmpty())
	assert.True(t, collections.Chunk(collections.Empty[int](), 3).IsEmpty())
}

func TestChunkCollapseRoundTrip(t *testing.T) {
	src := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	for k := 1; k <= 10; k++ {
		assert.Equal(t, src.ToSlice(), collections.Collapse(collections.Chunk(src, k)).ToSlice(), "k=%d", k)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

func TestZipSame(t *testing.T) {
	got := collections.ZipSame(ints(1, 2, 3), ints(4, 5, 6))
	require.Equal(t, 3, got.Count())
	assert.Equal(t, indexes(0, 1, 2), got.Keys())
	want := [][]int{{1, 4}, {2, 5}, {3, 6}}
	for i, pair := range got.ToSlice() {
		assert.Equal(t, want[i], pair.ToSlice())
	}

	assert.Equal(t, 2, collections.ZipSame(ints(1, 2, 3), ints(4, 5)).Count())
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestAggregatesWithExtractor(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8, 9)
	f := func(n int) float64 { return float64(n) }

	assert.Equal(t, 45.0, c.Sum(f))
	assert.Equal(t, 5.0, c.Average(f))
	assert.Equal(t, 9, c.Count())

	lo, err := c.Min(f)
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := c.Max(f)
	require.NoError(t, err)
	assert.Equal(t, 9, hi)
}

func TestAggregatesEmpty(t *testing.T) {
	c := collections.Empty[int]()
	f := func(n int) float64 { return float64(n) }

	assert.Zero(t, c.Sum(f))
	assert.Zero(t, c.Average(f))

	_, err := c.Min(f)
	assert.ErrorIs(t, err, collections.ErrEmptyAggregate)
	_, err = c.Max(f)
	assert.ErrorIs(t, err, collections.ErrEmptyAggregate)
}

func TestReduce(t *testing.T) {
	add := func(carry, n int) int { return carry + n }

	sum, err := ints(1, 2, 3, 4, 5, 6, 7, 8, 9).Reduce(add)
	require.NoError(t, err)
	assert.Equal(t, 45, sum)

	sum, err = ints(1, 2, 3).Reduce(add, 10)
	require.NoError(t, err)
	assert.Equal(t, 16, sum)

	// Without an initial value the first element seeds the fold.
	diff, err := ints(10, 3, 2).Reduce(func(carry, n int) int { return carry - n })
	require.NoError(t, err)
	assert.Equal(t, 5, diff)

	_, err = collections.Empty[int]().Reduce(add)
	assert.ErrorIs(t, err, collections.ErrEmptyReduce)

	v, err := collections.Empty[int]().Reduce(add, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

func staff() *collections.Collection[map[string]string] {
	return collections.New(
		map[string]string{"name": "Rena", "department": "IT"},
		map[string]string{"name": "Putri", "department": "IT"},
		map[string]string{"name": "Maria", "department": "CEO"},
	)
}

func TestGroupByField(t *testing.T) {
	groups := collections.GroupByField(staff(), "department")
	assert.Equal(t, names("IT", "CEO"), groups.Keys())

	it, ok := groups.Get(collections.Name("IT"))
	require.True(t, ok)
	assert.Equal(t, []map[string]string{
		{"name": "Rena", "department": "IT"},
		{"name": "Putri", "department": "IT"},
	}, it.ToSlice())
	assert.True(t, it.IsList())

	ceo, ok := groups.Get(collections.Name("CEO"))
	require.True(t, ok)
	assert.Equal(t, 1, ceo.Count())
}

func TestGroupByCallbackMatchesField(t *testing.T) {
	byField := collections.GroupByField(staff(), "department")
	byFn := collections.GroupBy(staff(), func(row map[string]string, _ collections.Key) any { return row["department"] })
	assert.True(t, collections.Equal(byField, byFn))
}

func TestGroupByIntKeys(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4, 5), func(n int, _ collections.Key) any { return n % 2 })
	assert.Equal(t, indexes(1, 0), groups.Keys())
}

func TestGroupByDecimalStrings(t *testing.T) {
	rows := collections.New(
		map[string]string{"name": "Rena", "floor": "2"},
		map[string]string{"name": "Putri", "floor": "02"},
		map[string]string{"name": "Maria", "floor": "2"},
	)
	groups := collections.GroupByField(rows, "floor")
	assert.Equal(t, []collections.Key{collections.Index(2), collections.Name("02")}, groups.Keys())

	second, ok := groups.Get(collections.Index(2))
	require.True(t, ok)
	assert.Equal(t, 2, second.Count())

	b, err := groups.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"2":[`)
}

func TestKeyBy(t *testing.T) {
	got := staff().KeyBy(func(row map[string]string, _ collections.Key) any { return row["name"] })
	assert.Equal(t, names("Rena", "Putri", "Maria"), got.Keys())

	last := staff().KeyBy(func(row map[string]string, _ collections.Key) any { return row["department"] })
	v, _ := last.Get(collections.Name("IT"))
	assert.Equal(t, "Putri", v["name"], "last one wins")
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestJoin(t *testing.T) {
	c := collections.New("Maria", "Rena", "Poetri")
	assert.Equal(t, "Maria-Rena-Poetri", c.Join("-"))
	assert.Equal(t, "Maria-Rena-Poetri", c.Join("-", ""))
	assert.Equal(t, "Maria-Rena_Poetri", c.Join("-", "_"))
	assert.Equal(t, "Maria", collections.New("Maria").Join(", ", " and "))
	assert.Equal(t, "a and b", collections.New("a", "b").Join(", ", " and "))
	assert.Empty(t, collections.Empty[string]().Join(", ", " and "))
	assert.Equal(t, "1, 2", ints(1, 2).Join(", "))
}

func TestImplode(t *testing.T) {
	got := ints(1, 2, 3).Implode("|", func(n int) string { return strings.Repeat("*", n) })
	assert.Equal(t, "*|**|***", got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

func TestWhenUnless(t *testing.T) {
	double := func(c *collections.Collection[int]) *collections.Collection[int] {
		return c.Concat(c)
	}
	assert.Equal(t, 4, ints(1, 2).When(true, double).Count())
	assert.Equal(t, 2, ints(1, 2).When(false, double).Count())
	assert.Equal(t, 2, ints(1, 2).Unless(true, double).Count())
	assert.Equal(t, 4, ints(1, 2).WhenNotEmpty(double).Count())

	filled := collections.Empty[int]().WhenEmpty(func(c *collections.Collection[int]) *collections.Collection[int] {
		return ints(0)
	})
	assert.Equal(t, []int{0}, filled.ToSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Errors
// ─────────────────────────────────────────────────────────────────────────────

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		collections.ErrConstruction,
		collections.ErrLengthMismatch,
		collections.ErrIndexOutOfRange,
		collections.ErrEmptyAggregate,
		collections.ErrEmptyReduce,
		collections.ErrEmptyPop,
		collections.ErrNoMatchingItems,
		collections.ErrMacroNotFound,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v is %v", a, b)
			}
		}
	}
}

func joinNames[T any](items []T, fn func(T) string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fn(item))
	}
	return b.String()
}
