package collections

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// equalOpts lets the comparison look into unexported fields, so plain value
// structs such as Person{name string} and nested collections compare by
// content.
var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b are structurally equal: values are compared
// field by field, Equal methods (e.g. time.Time) are honoured and nested
// collections compare by their entries. Nil and empty slices differ.
//
// It is the comparison used by ContainsValue and WhereField.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts...)
}
