package collections

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Key identifies an entry inside a [Collection]. A Key is either an integer
// index (list-shaped data) or a string name (associative data), mirroring the
// int|string keys of a PHP array.
//
// Key is comparable, so it can be used directly as a map key or compared
// with ==.
type Key struct {
	name  string
	index int
	named bool
}

// Index returns the integer key i.
func Index(i int) Key { return Key{index: i} }

// Name returns the string key s. A canonical decimal integer such as "7" or
// "-3" is stored as the index key of that integer, so Name("1") == Index(1)
// and a collection can never hold both. "01", "+1" and "-0" stay names.
func Name(s string) Key {
	if i, ok := decimalIndex(s); ok {
		return Index(i)
	}
	return Key{name: s, named: true}
}

func decimalIndex(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return 0, false
	}
	if digits[0] == '0' && (len(digits) > 1 || len(s) > 1) {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// KeyOf converts a dynamic value into a Key.
// Integer kinds become index keys, strings go through [Name] and anything
// else is formatted with fmt.Sprint. Unsigned values above math.MaxInt keep
// their decimal text as a name.
func KeyOf(v any) Key {
	switch k := v.(type) {
	case Key:
		return k
	case int:
		return Index(k)
	case int8:
		return Index(int(k))
	case int16:
		return Index(int(k))
	case int32:
		return Index(int(k))
	case int64:
		return Index(int(k))
	case uint:
		return unsignedKey(uint64(k))
	case uint8:
		return Index(int(k))
	case uint16:
		return Index(int(k))
	case uint32:
		return unsignedKey(uint64(k))
	case uint64:
		return unsignedKey(k)
	case uintptr:
		return unsignedKey(uint64(k))
	case string:
		return Name(k)
	case fmt.Stringer:
		return Name(k.String())
	}

	// named types such as `type Dept string` or `type ID uint`
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Index(int(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedKey(rv.Uint())
	case reflect.String:
		return Name(rv.String())
	default:
		return Name(fmt.Sprint(v))
	}
}

func unsignedKey(u uint64) Key {
	if u > math.MaxInt {
		return Key{name: strconv.FormatUint(u, 10), named: true}
	}
	return Index(int(u))
}

// IsIndex reports whether k is an integer key.
func (k Key) IsIndex() bool { return !k.named }

// Int returns the integer value of an index key.
func (k Key) Int() (int, bool) {
	if k.named {
		return 0, false
	}
	return k.index, true
}

// Str returns the string value of a name key.
func (k Key) Str() (string, bool) {
	if !k.named {
		return "", false
	}
	return k.name, true
}

// String renders the key as PHP would: the decimal index or the raw name.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// GoString makes %#v output show which kind of key k is.
func (k Key) GoString() string {
	if k.named {
		return fmt.Sprintf("Name(%q)", k.name)
	}
	return fmt.Sprintf("Index(%d)", k.index)
}

// Entry is a single key/value pair of a [Collection].
type Entry[V any] struct {
	Key   Key
	Value V
}

// KV builds an entry with a name key.
//
//	scores := collections.Of(collections.KV("Maria", 100), collections.KV("Rena", 62))
func KV[V any](name string, value V) Entry[V] {
	return Entry[V]{Key: Name(name), Value: value}
}

// At builds an entry with an index key.
func At[V any](index int, value V) Entry[V] {
	return Entry[V]{Key: Index(index), Value: value}
}

// String returns "key: value".
func (e Entry[V]) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}
