package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by the package-level [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Slice returns the pair as a two-element []any, the shape PHP's zip produces.
func (p Pair[A, B]) Slice() []any {
	return []any{p.First, p.Second}
}
