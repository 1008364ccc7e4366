// theon.go declares the scalar constraints shared by every package in the
// module, along with the scalar interpolation helper that the component-wise
// Lerp implementations are defined in terms of.
package theon

import "golang.org/x/exp/constraints"

// Scalar is the constraint for component types of vectors, points, and
// matrices. Any built-in integer or floating-point type qualifies.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Real is the constraint for scalar types with real-number semantics,
// required by operations that divide or take roots (norms, normalization,
// matrix kernels).
type Real interface {
	constraints.Float
}

// Lerp linearly interpolates between a and b by the blend factor f,
// computing a + f*(b - a) through a float64 round trip so that integer
// scalars interpolate too.
//
// f is not range-checked: values outside [0,1] silently extrapolate.
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b for every representable pair.
// Complexity: O(1).
func Lerp[T Scalar](a, b T, f float64) T {
	return T(float64(a) + f*(float64(b)-float64(a)))
}
