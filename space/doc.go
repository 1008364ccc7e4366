// Package space defines the algebraic structure of the library: vector,
// affine, Euclidean, and inner-product spaces, duality, bases, homogeneous
// embedding, and the matrix contracts built on top of them.
//
// 🚀 What is a space here?
//
//	Not a container but a capability: each interface names one algebraic
//	structure a concrete type may satisfy.
//		• VectorSpace   — displacements with indexed scalar components
//		• AffineSpace   — points translated by vectors, never combined
//		• EuclideanSpace— an affine space with an origin and coordinates
//		• InnerSpace    — a vector space with a dot product
//		• DualSpace     — transposition onto the dual
//		• Basis         — the canonical (standard unit) basis
//		• Homogeneous   — the one-dimension-higher projective embedding
//		• Matrix        — rows, columns, transpose
//		• SquareMatrix  — identity and determinant
//
// ✨ Why capability interfaces?
//
//   - A concrete type satisfies some but not all of them: a Point translates
//     by a vector but has no scalar multiplication, so it implements
//     AffineSpace and not VectorSpace.
//   - Generic algorithms name exactly the structure they need and run over
//     any backend providing it.
//   - Index-based accessors (ScalarComponent, CanonicalBasisComponent,
//     RowComponent, ColumnComponent) signal out-of-range indices by an
//     absent value, never by panicking.
//
// Interfaces whose methods mention the implementing type take it as an
// explicit "self" type parameter:
//
//	func centroid[T theon.Real, V any, P space.EuclideanSpace[P, V, T]](pts []P) P
//
// Arithmetic itself (addition, scalar multiplication) is assumed provided
// natively by the concrete types and is not re-specified by the interfaces.
// Norm, Normalize, Distance, and Midpoint are derived from the capabilities
// as free functions in this package.
package space
