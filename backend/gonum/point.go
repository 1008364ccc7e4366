// point.go implements the fixed-size point types of the reference backend.
// A PointN is a location, not a displacement: it translates by a VectorN
// and differences into one, but deliberately has no Add, Scale, Dot, or
// Basis — origin-independent scalar combination of points is not part of
// an affine space.
package gonum

import (
	"github.com/59977/theon"
	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/ops"
	"github.com/59977/theon/space"
)

// Point2 is a location in 2-dimensional Euclidean space with scalar type T.
type Point2[T theon.Scalar] [2]T

// Point3 is a location in 3-dimensional Euclidean space with scalar type T.
type Point3[T theon.Scalar] [3]T

// Point4 is a location in 4-dimensional Euclidean space with scalar type T.
type Point4[T theon.Scalar] [4]T

// NewPoint2 returns the point (x, y).
func NewPoint2[T theon.Scalar](x, y T) Point2[T] { return Point2[T]{x, y} }

// NewPoint3 returns the point (x, y, z).
func NewPoint3[T theon.Scalar](x, y, z T) Point3[T] { return Point3[T]{x, y, z} }

// NewPoint4 returns the point (x, y, z, w).
func NewPoint4[T theon.Scalar](x, y, z, w T) Point4[T] { return Point4[T]{x, y, z, w} }

// ---------- Point2 ----------

// Dimension reports the component count, 2.
func (Point2[T]) Dimension() int { return 2 }

// Items returns the coordinates in canonical order.
func (p Point2[T]) Items() []T { return []T{p[0], p[1]} }

// AssignItems overwrites the point from items; false unless len(items) == 2.
func (p *Point2[T]) AssignItems(items []T) bool {
	if len(items) != len(p) {
		return false
	}
	copy(p[:], items)
	return true
}

// Translate returns the point displaced by the translation by.
func (p Point2[T]) Translate(by Vector2[T]) Point2[T] {
	return Point2[T]{p[0] + by[0], p[1] + by[1]}
}

// Difference returns the translation carrying other onto p.
func (p Point2[T]) Difference(other Point2[T]) Vector2[T] {
	return Vector2[T]{p[0] - other[0], p[1] - other[1]}
}

// Origin returns the designated zero point of the space.
func (Point2[T]) Origin() Point2[T] { return Point2[T]{} }

// IntoCoordinates returns the coordinates of p relative to Origin.
func (p Point2[T]) IntoCoordinates() Vector2[T] {
	return Vector2[T]{p[0], p[1]}
}

// Lerp interpolates coordinate-wise toward other by f; f outside [0,1]
// extrapolates.
func (p Point2[T]) Lerp(other Point2[T], f float64) Point2[T] {
	return Point2[T]{
		theon.Lerp(p[0], other[0], f),
		theon.Lerp(p[1], other[1], f),
	}
}

// Extend appends x as the new last coordinate, yielding a 3-point.
func (p Point2[T]) Extend(x T) Point3[T] {
	return Point3[T]{p[0], p[1], x}
}

// IntoHomogeneous embeds the position into the projective space one
// dimension higher, with an implicit 1 last coordinate.
func (p Point2[T]) IntoHomogeneous() Point3[T] { return p.Extend(1) }

// ---------- Point3 ----------

// Dimension reports the component count, 3.
func (Point3[T]) Dimension() int { return 3 }

// Items returns the coordinates in canonical order.
func (p Point3[T]) Items() []T { return []T{p[0], p[1], p[2]} }

// AssignItems overwrites the point from items; false unless len(items) == 3.
func (p *Point3[T]) AssignItems(items []T) bool {
	if len(items) != len(p) {
		return false
	}
	copy(p[:], items)
	return true
}

// Translate returns the point displaced by the translation by.
func (p Point3[T]) Translate(by Vector3[T]) Point3[T] {
	return Point3[T]{p[0] + by[0], p[1] + by[1], p[2] + by[2]}
}

// Difference returns the translation carrying other onto p.
func (p Point3[T]) Difference(other Point3[T]) Vector3[T] {
	return Vector3[T]{p[0] - other[0], p[1] - other[1], p[2] - other[2]}
}

// Origin returns the designated zero point of the space.
func (Point3[T]) Origin() Point3[T] { return Point3[T]{} }

// IntoCoordinates returns the coordinates of p relative to Origin.
func (p Point3[T]) IntoCoordinates() Vector3[T] {
	return Vector3[T]{p[0], p[1], p[2]}
}

// Lerp interpolates coordinate-wise toward other by f; f outside [0,1]
// extrapolates.
func (p Point3[T]) Lerp(other Point3[T], f float64) Point3[T] {
	return Point3[T]{
		theon.Lerp(p[0], other[0], f),
		theon.Lerp(p[1], other[1], f),
		theon.Lerp(p[2], other[2], f),
	}
}

// Extend appends x as the new last coordinate, yielding a 4-point.
func (p Point3[T]) Extend(x T) Point4[T] {
	return Point4[T]{p[0], p[1], p[2], x}
}

// Truncate removes the last coordinate, returning the 2-point prefix and
// the removed scalar.
func (p Point3[T]) Truncate() (Point2[T], T) {
	return Point2[T]{p[0], p[1]}, p[2]
}

// IntoHomogeneous embeds the position into the projective space one
// dimension higher, with an implicit 1 last coordinate.
func (p Point3[T]) IntoHomogeneous() Point4[T] { return p.Extend(1) }

// ---------- Point4 ----------

// Dimension reports the component count, 4.
func (Point4[T]) Dimension() int { return 4 }

// Items returns the coordinates in canonical order.
func (p Point4[T]) Items() []T { return []T{p[0], p[1], p[2], p[3]} }

// AssignItems overwrites the point from items; false unless len(items) == 4.
func (p *Point4[T]) AssignItems(items []T) bool {
	if len(items) != len(p) {
		return false
	}
	copy(p[:], items)
	return true
}

// Translate returns the point displaced by the translation by.
func (p Point4[T]) Translate(by Vector4[T]) Point4[T] {
	return Point4[T]{p[0] + by[0], p[1] + by[1], p[2] + by[2], p[3] + by[3]}
}

// Difference returns the translation carrying other onto p.
func (p Point4[T]) Difference(other Point4[T]) Vector4[T] {
	return Vector4[T]{p[0] - other[0], p[1] - other[1], p[2] - other[2], p[3] - other[3]}
}

// Origin returns the designated zero point of the space.
func (Point4[T]) Origin() Point4[T] { return Point4[T]{} }

// IntoCoordinates returns the coordinates of p relative to Origin.
func (p Point4[T]) IntoCoordinates() Vector4[T] {
	return Vector4[T]{p[0], p[1], p[2], p[3]}
}

// Lerp interpolates coordinate-wise toward other by f; f outside [0,1]
// extrapolates.
func (p Point4[T]) Lerp(other Point4[T], f float64) Point4[T] {
	return Point4[T]{
		theon.Lerp(p[0], other[0], f),
		theon.Lerp(p[1], other[1], f),
		theon.Lerp(p[2], other[2], f),
		theon.Lerp(p[3], other[3], f),
	}
}

// Truncate removes the last coordinate, returning the 3-point prefix and
// the removed scalar.
func (p Point4[T]) Truncate() (Point3[T], T) {
	return Point3[T]{p[0], p[1], p[2]}, p[3]
}

// Conformance assertions.
var (
	_ adjunct.Assembler[float64] = (*Point2[float64])(nil)
	_ adjunct.Assembler[float64] = (*Point3[float64])(nil)
	_ adjunct.Assembler[float64] = (*Point4[float64])(nil)

	_ space.EuclideanSpace[Point2[float64], Vector2[float64], float64] = Point2[float64]{}
	_ space.EuclideanSpace[Point3[int], Vector3[int], int]             = Point3[int]{}
	_ space.EuclideanSpace[Point4[float32], Vector4[float32], float32] = Point4[float32]{}

	_ ops.Interpolate[Point2[float64]] = Point2[float64]{}
	_ ops.Interpolate[Point3[float64]] = Point3[float64]{}
	_ ops.Interpolate[Point4[float64]] = Point4[float64]{}

	_ adjunct.Extender[float64, Point3[float64]]  = Point2[float64]{}
	_ adjunct.Extender[float64, Point4[float64]]  = Point3[float64]{}
	_ adjunct.Truncator[float64, Point2[float64]] = Point3[float64]{}
	_ adjunct.Truncator[float64, Point3[float64]] = Point4[float64]{}

	_ space.Homogeneous[Point3[float64]] = Point2[float64]{}
	_ space.Homogeneous[Point4[float64]] = Point3[float64]{}
)
