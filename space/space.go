// SPDX-License-Identifier: MIT
// space.go declares the structural interfaces of the space family.
// Matrix-specific structure lives in matrix.go; derived helpers in
// derive.go.
package space

import (
	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/ops"
)

// FiniteDimensional is implemented by types with a fixed, per-type
// component count. Generic code reasons about dimension through it without
// inspecting values; the count never varies at run time.
type FiniteDimensional interface {
	// Dimension reports the fixed component count N. Complexity: O(1).
	Dimension() int
}

// VectorSpace is implemented by displacement aggregates closed under
// component-wise addition and scalar multiplication. The arithmetic itself
// is provided natively by the concrete type; the interface exposes only the
// shared structure.
type VectorSpace[T any] interface {
	adjunct.Adjunct[T]
	FiniteDimensional

	// ScalarComponent returns the scalar at index, reporting false if
	// index is out of range. It never panics. Complexity: O(1).
	ScalarComponent(index int) (T, bool)
}

// InnerSpace is a vector space equipped with an inner product.
// Norms and normalization are derived from it (see Norm, Normalize) rather
// than re-specified per type.
type InnerSpace[V, T any] interface {
	VectorSpace[T]
	ops.Dot[V, T]
}

// AffineSpace is implemented by point types of a space whose translations
// form the vector space V. It models "point + vector = point": translation
// is the only way points and scalars interact, so point+point and
// scalar*point do not exist on the interface or the implementing types.
type AffineSpace[P, V, T any] interface {
	adjunct.Adjunct[T]
	FiniteDimensional

	// Translate returns the point displaced by the translation by.
	Translate(by V) P

	// Difference returns the translation carrying other onto the receiver,
	// i.e. the displacement receiver − other.
	Difference(other P) V
}

// EuclideanSpace is an affine space with a designated origin and a
// coordinate mapping onto its translation space.
type EuclideanSpace[P, V, T any] interface {
	AffineSpace[P, V, T]

	// Origin returns the designated zero point of the space.
	Origin() P

	// IntoCoordinates returns the coordinates of the point relative to
	// Origin, as a value of the translation space.
	IntoCoordinates() V
}

// DualSpace is implemented by types that can be mapped onto their dual —
// the space of linear maps onto the scalar field, realized by transposition.
// It requires the underlying aggregate to support swapping its two dimension
// parameters, so among the concrete shapes it is a matrix capability
// (for square matrices the dual has the same type).
type DualSpace[D any] interface {
	// Transpose maps the receiver onto its dual.
	Transpose() D
}

// Basis is implemented by vector types whose space has a canonical basis of
// standard unit vectors.
type Basis[V any] interface {
	// CanonicalBasis returns the N standard unit vectors in index order:
	// the i-th has scalar 1 at position i and 0 elsewhere.
	CanonicalBasis() []V

	// CanonicalBasisComponent returns the index-th canonical basis vector,
	// reporting false if index is out of range. It never panics.
	CanonicalBasisComponent(index int) (V, bool)
}

// Homogeneous is implemented by types that embed into a projective space
// one dimension higher, used to express affine transforms as linear ones.
// P is the projective type: a 2-vector's homogeneous form is a 3-vector.
type Homogeneous[P any] interface {
	// IntoHomogeneous returns the one-dimension-higher embedding of the
	// receiver. The extra coordinate is implicit in the receiver's kind:
	// 0 for displacements, 1 for positions.
	IntoHomogeneous() P
}
