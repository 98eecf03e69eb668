// Package arr resolves dot-notation paths inside nested Go values, inspired
// by Laravel's data_get and Arr::has helpers.
//
// A path such as "user.address.city" is split on dots and each segment is
// looked up in turn. Segments can address map keys, slice indices, struct
// fields (by name or json tag) and entries of any container implementing
// [Accessor]:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	    "tags": []string{"admin", "ops"},
//	}
//	arr.Get(m, "user.address.city")  // → "London"
//	arr.Get(m, "tags.1")             // → "ops"
//	arr.Get(m, "user.age", 0)        // → 0 (default)
//	arr.Has(m, "user.name")          // → true
//
// The collections package uses these helpers for its field-based
// operations such as GroupByField, WhereField and PluckField.
package arr
