// SPDX-License-Identifier: MIT
// ops.go declares the four operation capabilities. V is always the
// implementing type itself (the "self type" parameter), so operand
// dimensions agree by construction.
package ops

// Dot is implemented by vector types with an inner product: the sum of
// pairwise scalar products over all N components.
type Dot[V, T any] interface {
	// Dot returns the inner product of the receiver with other.
	// Complexity: O(N).
	Dot(other V) T
}

// Cross is implemented by 3-dimensional vector types only; no other
// dimension satisfies it.
type Cross[V any] interface {
	// Cross returns the right-handed cross product of the receiver with
	// other:
	//
	//	(a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x)
	//
	// Cross(a, b) == -Cross(b, a) and Cross(a, a) is the zero vector.
	Cross(other V) V
}

// Interpolate is implemented by aggregates supporting component-wise linear
// interpolation.
type Interpolate[A any] interface {
	// Lerp interpolates every component toward other by the blend factor f:
	// result_i = self_i + f*(other_i - self_i). f is not range-checked;
	// values outside [0,1] silently extrapolate — a caller responsibility,
	// not an error.
	Lerp(other A, f float64) A
}

// MulMN is implemented by matrix types for each shape-compatible right
// operand N: the receiver's column count equals N's row count, and O has
// the two outer dimensions. Incompatible shapes simply never implement
// MulMN, so the mismatch does not compile.
type MulMN[N, O any] interface {
	// MulMN returns the matrix product of the receiver with other.
	// Complexity: O(R·C·K) for an R×K receiver and K×C operand.
	MulMN(other N) O
}
