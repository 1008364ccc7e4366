// derive.go provides the helpers that follow from the capabilities without
// per-type code: norms and normalization from Dot, distance from Difference
// and Dot, midpoint from Lerp. The scalar type parameter comes first in
// each signature because it cannot be inferred from method-only constraints
// and must be supplied at the call site:
//
//	n := space.Norm[float64](v)
package space

import (
	"math"

	"github.com/59977/theon"
	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/ops"
)

// Norm returns the Euclidean norm of v, derived from its inner product:
// sqrt(v · v). Complexity: O(N).
func Norm[T theon.Real, V ops.Dot[V, T]](v V) T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns the unit vector pointing in the direction of v.
// It reports false, returning the zero value, when v has zero norm.
// Complexity: O(N).
func Normalize[T theon.Real, V interface {
	adjunct.Adjunct[T]
	ops.Dot[V, T]
}, PV adjunct.Composer[V, T]](v V) (V, bool) {
	squared := float64(v.Dot(v))
	if squared == 0 {
		var zero V
		return zero, false
	}
	inverse := 1 / math.Sqrt(squared)
	unit := adjunct.Map[V, PV](v, func(x T) T { return T(float64(x) * inverse) })
	return unit, true
}

// Distance returns the Euclidean distance between the points a and b:
// the norm of their difference. The translation type V must be named at
// the call site alongside the scalar:
//
//	d := space.Distance[float64, gonum.Vector2[float64]](a, b)
//
// Complexity: O(N).
func Distance[T theon.Real, V ops.Dot[V, T], P AffineSpace[P, V, T]](a, b P) T {
	return Norm[T](a.Difference(b))
}

// Midpoint returns the point halfway between a and b, derived from
// component-wise interpolation at blend factor 0.5.
func Midpoint[A ops.Interpolate[A]](a, b A) A {
	return a.Lerp(b, 0.5)
}
