// Package collections provides a generic, fluent Collection type, a lazy
// pull-based LazyCollection, and standalone helper functions, modelled on
// Laravel's Illuminate/Collections.
//
// # Keys
//
// A [Collection][V] is an ordered sequence of [Entry] values, each pairing a
// [Key] with a value. Keys are integer indices for list-shaped data and
// names for associative data, exactly like a PHP array:
//
//	list   := collections.New(1, 2, 3)                             // 0:1 1:2 2:3
//	scores := collections.Of(collections.KV("Maria", 100), collections.KV("Rena", 62))
//
// Filtering never renumbers keys, so the survivors of a filter still answer
// to their original index. Call [Collection.Values] to get a fresh 0…n-1
// list:
//
//	evens := collections.New(1, 2, 3, 4).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
//	evens.Keys()          // [1 3]
//	evens.Values().Keys() // [0 1]
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Only Push, Pop, Put and Forget mutate in place.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int, _ collections.Key) any { return n * 2 })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int, _ collections.Key) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [MapInto], [MapSpread], [MapSpread2],
// [MapToGroups], [MapWithKeys], [FlatMap], [Reduce], [Pluck], [Zip],
// [Combine], [Collapse], [CollapseSlices], [FlattenDeep], [Sort],
// [SortDesc], [Sum], [Average], [Min], [Max], [MapLazy].
//
// # Lazy collections
//
// A [LazyCollection] records stages and runs nothing until a terminal
// operation pulls values through it, so it can describe infinite sequences:
//
//	evens := collections.Iterate(0, func(n int) int { return n + 1 }).
//	    Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }).
//	    Take(5).
//	    ToSlice() // [0 2 4 6 8]
//
// # Errors
//
// Operations that can fail return one of the sentinel errors in this
// package, possibly wrapped with context; test with errors.Is. Not finding
// a value (First, Last, Contains) is never an error.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro] or [LazyCollection.Macro]:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// # Logging
//
// [Collection.Dump] and lazy pipeline lifecycle events go through a zerolog
// logger that can be replaced with [SetLogger].
package collections
