package arr

import (
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation path resolution
//
// These functions read values out of arbitrarily nested data using
// dot-separated paths, mirroring Laravel's data_get / Arr::has:
//
//	staff := map[string]any{
//	    "name": "Rena",
//	    "address": map[string]any{"city": "Jakarta"},
//	    "jobs": []string{"Software Engineer", "Backend Developer"},
//	}
//
//	Get(staff, "address.city") → "Jakarta"
//	Get(staff, "jobs.1")       → "Backend Developer"
//	Has(staff, "name")         → true
// ─────────────────────────────────────────────────────────────────────────────

// Accessor is implemented by keyed containers, such as
// collections.Collection, that resolve a single path segment themselves.
type Accessor interface {
	Lookup(segment string) (any, bool)
}

// Lookup resolves path inside target and reports whether every segment was
// found. An empty path resolves to target itself.
//
// Each segment is resolved against the current value as follows:
//   - an [Accessor] resolves it with Lookup;
//   - a map is indexed by the segment, converted to the map's key type;
//   - a slice or array is indexed by the segment parsed as an integer;
//   - a struct yields the exported field whose name or json tag equals the
//     segment, falling back to a case-insensitive name match.
//
// Pointers and interfaces are followed transparently.
func Lookup(target any, path string) (any, bool) {
	if path == "" {
		return target, true
	}
	current := target
	for _, seg := range strings.Split(path, ".") {
		next, ok := segment(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get retrieves the value at path inside target.
// Returns def[0] (or nil) when the path does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(target any, path string, def ...any) any {
	if v, ok := Lookup(target, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path exists inside target.
func Has(target any, path string) bool {
	_, ok := Lookup(target, path)
	return ok
}

// HasAll reports whether all paths exist inside target.
func HasAll(target any, paths ...string) bool {
	for _, p := range paths {
		if !Has(target, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the paths exist inside target.
func HasAny(target any, paths ...string) bool {
	for _, p := range paths {
		if Has(target, p) {
			return true
		}
	}
	return false
}

func segment(current any, seg string) (any, bool) {
	switch c := current.(type) {
	case nil:
		return nil, false
	case Accessor:
		if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		return c.Lookup(seg)
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	}

	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		key, ok := mapKey(rv.Type().Key(), seg)
		if !ok {
			return nil, false
		}
		v := rv.MapIndex(key)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		return structField(rv, seg)
	}
	return nil, false
}

func mapKey(t reflect.Type, seg string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Interface:
		v := reflect.ValueOf(seg)
		if !v.Type().AssignableTo(t) {
			return reflect.Value{}, false
		}
		return v, true
	}
	return reflect.Value{}, false
}

func structField(rv reflect.Value, seg string) (any, bool) {
	t := rv.Type()
	fold := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if f.Name == seg || tag == seg {
			return rv.Field(i).Interface(), true
		}
		if fold < 0 && strings.EqualFold(f.Name, seg) {
			fold = i
		}
	}
	if fold >= 0 {
		return rv.Field(fold).Interface(), true
	}
	return nil, false
}
