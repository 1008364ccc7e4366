// apply.go implements the component-wise vocabulary over Adjunct and
// Assembler: construction, decomposition, folding, and mapping.
package adjunct

// Converged returns an aggregate of type A whose every component equals
// value. Total; never fails.
//
//	v := adjunct.Converged[gonum.Vector3[int]](7) // (7, 7, 7)
//
// Complexity: O(N).
func Converged[A any, PA Composer[A, T], T any](value T) A {
	var a A
	p := PA(&a)
	items := make([]T, p.Dimension())
	for i := range items {
		items[i] = value
	}
	p.AssignItems(items)
	return a
}

// FromItems builds an aggregate of type A from items. It reports false,
// returning the zero value, unless len(items) equals the dimension of A —
// excess or insufficient items is a contract failure, never a panic.
// Inverse of IntoItems for sequences of matching length.
// Complexity: O(N).
func FromItems[A any, PA Composer[A, T], T any](items []T) (A, bool) {
	var a A
	if !PA(&a).AssignItems(items) {
		var zero A
		return zero, false
	}
	return a, true
}

// IntoItems decomposes a into its components in canonical order.
// Equivalent to a.Items(); provided so the whole family reads uniformly
// at call sites. Complexity: O(N).
func IntoItems[T any](a Adjunct[T]) []T {
	return a.Items()
}

// Fold folds f over the components of a in canonical order, left to right,
// threading the accumulator from seed to the returned value. Total.
// Complexity: O(N) applications of f.
func Fold[T, U any](a Adjunct[T], seed U, f func(U, T) U) U {
	for _, item := range a.Items() {
		seed = f(seed, item)
	}
	return seed
}

// Map applies f to every component of a, producing an aggregate of type B
// with the same dimension but a possibly different item type. f must be
// pure; the order of application is unobservable.
//
// Map panics if B is instantiated with a dimension different from the
// source's — a misuse of the generic instantiation, not a data-dependent
// failure (see the package documentation).
// Complexity: O(N) applications of f.
func Map[B any, PB Composer[B, U], T, U any](a Adjunct[T], f func(T) U) B {
	src := a.Items()
	dst := make([]U, len(src))
	for i, item := range src {
		dst[i] = f(item)
	}
	var b B
	if !PB(&b).AssignItems(dst) {
		panic("adjunct: Map target dimension does not match source")
	}
	return b
}

// ZipMap applies f pairwise to corresponding components of a and other,
// which must be aggregates of the same dimension, producing an aggregate of
// type B. Total for same-dimension operands; operands or a target of a
// different dimension panic, as in Map.
// Complexity: O(N) applications of f.
func ZipMap[B any, PB Composer[B, U], T, U any](a, other Adjunct[T], f func(T, T) U) B {
	left, right := a.Items(), other.Items()
	if len(left) != len(right) {
		panic("adjunct: ZipMap operands have different dimensions")
	}
	dst := make([]U, len(left))
	for i := range left {
		dst[i] = f(left[i], right[i])
	}
	var b B
	if !PB(&b).AssignItems(dst) {
		panic("adjunct: ZipMap target dimension does not match source")
	}
	return b
}
