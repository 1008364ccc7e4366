// adjunct.go declares the read and write contracts of a fixed-size
// aggregate, plus the Composer constraint tying a value type to its
// pointer-side Assembler.
package adjunct

// Adjunct is the read side of a fixed-size aggregate with a uniform item
// type T. It is the shared vocabulary for the rest of the family: every
// generic component-wise operation consumes aggregates through it.
type Adjunct[T any] interface {
	// Items returns the components in canonical order (index 0..N-1).
	// The returned slice is freshly allocated; mutating it does not affect
	// the aggregate. Complexity: O(N).
	Items() []T
}

// Assembler is the write side of a fixed-size aggregate, satisfied by
// pointers to aggregate values. Construction-oriented generics obtain one
// via the Composer constraint and fill a zero value in place.
type Assembler[T any] interface {
	// Dimension reports the fixed component count of the aggregate.
	// The count is a per-type constant; values carry no dimension field.
	// Complexity: O(1).
	Dimension() int

	// AssignItems overwrites the aggregate with items in canonical order.
	// It reports false, leaving the aggregate untouched, unless
	// len(items) == Dimension().
	AssignItems(items []T) bool
}

// Composer constrains a type parameter to *A satisfying Assembler[T].
// It lets constructors such as FromItems and Converged name only the
// aggregate type at the call site; the pointer side is inferred.
type Composer[A, T any] interface {
	*A
	Assembler[T]
}
