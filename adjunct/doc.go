// Package adjunct defines generic operations over fixed-size aggregates,
// independent of any algebraic meaning the aggregates may carry.
//
// An adjunct is an aggregate with a declared, uniform item type: a 3-vector
// of float64, a 2-point of int, a 3×3 matrix of float32. The package splits
// the contract into a read side and a write side:
//
//   - Adjunct[T] — the read side: Items decomposes the aggregate into its
//     components in canonical order (index 0..N-1).
//   - Assembler[T] — the write side, satisfied by pointers: Dimension reports
//     the fixed component count, AssignItems overwrites the aggregate and
//     reports false unless handed exactly that many items.
//
// On top of these, free generic functions provide the whole component-wise
// vocabulary: Converged, Fold, FromItems, IntoItems, Map, ZipMap. Functions
// that construct an aggregate take its type as an explicit type argument and
// infer the pointer side via the Composer constraint:
//
//	v, ok := adjunct.FromItems[gonum.Vector3[int]]([]int{1, 2, 3})
//	w := adjunct.Map[gonum.Vector3[float64]](v, func(x int) float64 {
//		return float64(x) / 2
//	})
//
// Dimension-shifting is a capability pair rather than a function: a type
// implements Extender to grow by one component and Truncator to shrink by
// one. The smallest concrete size of a backend simply does not implement
// Truncator, so removing a component from it does not compile.
//
// Failure modes: FromItems reports false on an arity mismatch (the only
// data-dependent failure in this package); everything else is total. The one
// runtime panic, in Map and ZipMap, fires only when the generic target type
// is instantiated with a different dimension than the source — a programming
// error that the interfaces cannot reject at compile time.
package adjunct
