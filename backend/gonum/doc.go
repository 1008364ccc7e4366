/*
Package gonum is the reference backend adapter: a closed set of concrete
fixed-dimension vector, point, and matrix types (sizes 2, 3, and 4) that
implement every capability interface applicable to their shape, with matrix
kernels delegated to gonum's mat package.

Conformance by shape:

  - Vector2/3/4[T] — adjunct family, VectorSpace, InnerSpace, Basis,
    Interpolate, Homogeneous (2→3, 3→4); Cross on Vector3 only; Extend and
    Truncate shift the size by exactly one, so Vector2 has no Truncate and
    Vector4 no Extend.
  - Point2/3/4[T] — adjunct family, AffineSpace, EuclideanSpace,
    Interpolate, Homogeneous; no VectorSpace, Basis, or Dot: points
    translate by vectors and difference into vectors, nothing else.
  - Matrix2/3/4[T] — adjunct family over the R·C flattened components,
    VectorSpace, Matrix, SquareMatrix, DualSpace (dual = transpose),
    Interpolate, MulMN; multiplication, transposition, and determinants run
    through mat.Dense.

Vectors and points are generic over any integer or floating-point scalar;
matrices require a floating-point scalar because their kernels are
real-valued.

All types are immutable values: every operation returns a new value and no
method mutates its receiver (AssignItems, the adjunct write side, is the
one pointer method and exists only for generic construction).

Dimension and arity failures follow the library-wide contract: index-based
accessors and FromItems report absence with a false second result, while
the slice-based NewMatrixN constructors return ErrArity for callers that
prefer an error path.
*/
package gonum
