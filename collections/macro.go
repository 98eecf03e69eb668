package collections

import (
	"fmt"
	"sync"
)

// MacroFunc extends collections at run time with a named operation.
//
// A macro receives the collection it was invoked on as an any: either a
// *Collection[V] or a *LazyCollection[V] for whatever V the caller used. One
// macro can therefore serve both cores; it type-asserts to the shapes it
// supports and returns whatever it computes.
type MacroFunc func(collection any, args ...any) any

// macroTable maps macro names to their functions. The zero value is ready
// to use.
type macroTable struct {
	mu  sync.RWMutex
	fns map[string]MacroFunc
}

var macros macroTable

func (t *macroTable) set(name string, fn MacroFunc) (replaced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fns == nil {
		t.fns = make(map[string]MacroFunc)
	}
	_, replaced = t.fns[name]
	t.fns[name] = fn
	return replaced
}

func (t *macroTable) lookup(name string) (MacroFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.fns[name]
	return fn, ok
}

func (t *macroTable) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fns = nil
}

// RegisterMacro makes fn callable as name on every collection, eager or
// lazy. Registering a name twice keeps the later function.
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
//	})
//	res, _ := collections.New(1, 2, 3, 4).Macro("evens") // {"1":2,"3":4}
func RegisterMacro(name string, fn MacroFunc) {
	if macros.set(name, fn) {
		l := Logger()
		l.Debug().Str("macro", name).Msg("macro replaced")
	}
}

// HasMacro reports whether name is registered.
func HasMacro(name string) bool {
	_, ok := macros.lookup(name)
	return ok
}

// FlushMacros unregisters every macro.
func FlushMacros() { macros.reset() }

// CallMacro runs the macro registered as name against collection.
// An unknown name yields [ErrMacroNotFound].
func CallMacro(name string, collection any, args ...any) (any, error) {
	fn, ok := macros.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(collection, args...), nil
}

// Macro runs the registered macro name with c as its receiver.
func (c *Collection[V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}

// Macro runs the registered macro name with l as its receiver. Whether l is
// walked is up to the macro.
func (l *LazyCollection[V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}
