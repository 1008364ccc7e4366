// vector.go implements the fixed-size vector types of the reference
// backend. A VectorN is a plain [N]T array; all arithmetic is loop-based
// and allocation-free except where a slice is part of the contract.
package gonum

import (
	"github.com/59977/theon"
	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/ops"
	"github.com/59977/theon/space"
)

// Vector2 is a 2-component displacement with scalar type T.
type Vector2[T theon.Scalar] [2]T

// Vector3 is a 3-component displacement with scalar type T.
type Vector3[T theon.Scalar] [3]T

// Vector4 is a 4-component displacement with scalar type T.
type Vector4[T theon.Scalar] [4]T

// NewVector2 returns the vector (x, y).
func NewVector2[T theon.Scalar](x, y T) Vector2[T] { return Vector2[T]{x, y} }

// NewVector3 returns the vector (x, y, z).
func NewVector3[T theon.Scalar](x, y, z T) Vector3[T] { return Vector3[T]{x, y, z} }

// NewVector4 returns the vector (x, y, z, w).
func NewVector4[T theon.Scalar](x, y, z, w T) Vector4[T] { return Vector4[T]{x, y, z, w} }

// ---------- Vector2 ----------

// Dimension reports the component count, 2.
func (Vector2[T]) Dimension() int { return 2 }

// Items returns the components in canonical order.
func (v Vector2[T]) Items() []T { return []T{v[0], v[1]} }

// AssignItems overwrites the vector from items; false unless len(items) == 2.
func (v *Vector2[T]) AssignItems(items []T) bool {
	if len(items) != len(v) {
		return false
	}
	copy(v[:], items)
	return true
}

// ScalarComponent returns the component at index, false if out of range.
func (v Vector2[T]) ScalarComponent(index int) (T, bool) {
	if index < 0 || index >= len(v) {
		var zero T
		return zero, false
	}
	return v[index], true
}

// Dot returns the inner product v · other.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v[0]*other[0] + v[1]*other[1]
}

// CanonicalBasis returns the standard unit vectors (1,0), (0,1).
func (v Vector2[T]) CanonicalBasis() []Vector2[T] {
	return []Vector2[T]{{1, 0}, {0, 1}}
}

// CanonicalBasisComponent returns the index-th standard unit vector,
// false if index is out of range.
func (v Vector2[T]) CanonicalBasisComponent(index int) (Vector2[T], bool) {
	if index < 0 || index >= len(v) {
		return Vector2[T]{}, false
	}
	var basis Vector2[T]
	basis[index] = 1
	return basis, true
}

// Lerp interpolates component-wise toward other by f; f outside [0,1]
// extrapolates.
func (v Vector2[T]) Lerp(other Vector2[T], f float64) Vector2[T] {
	return Vector2[T]{
		theon.Lerp(v[0], other[0], f),
		theon.Lerp(v[1], other[1], f),
	}
}

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] + other[0], v[1] + other[1]}
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] - other[0], v[1] - other[1]}
}

// Scale returns s · v.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{s * v[0], s * v[1]}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{-v[0], -v[1]} }

// Extend appends x as the new last component, yielding a 3-vector.
func (v Vector2[T]) Extend(x T) Vector3[T] {
	return Vector3[T]{v[0], v[1], x}
}

// IntoHomogeneous embeds the displacement into the projective space one
// dimension higher, with an implicit 0 last coordinate.
func (v Vector2[T]) IntoHomogeneous() Vector3[T] { return v.Extend(0) }

// ---------- Vector3 ----------

// Dimension reports the component count, 3.
func (Vector3[T]) Dimension() int { return 3 }

// Items returns the components in canonical order.
func (v Vector3[T]) Items() []T { return []T{v[0], v[1], v[2]} }

// AssignItems overwrites the vector from items; false unless len(items) == 3.
func (v *Vector3[T]) AssignItems(items []T) bool {
	if len(items) != len(v) {
		return false
	}
	copy(v[:], items)
	return true
}

// ScalarComponent returns the component at index, false if out of range.
func (v Vector3[T]) ScalarComponent(index int) (T, bool) {
	if index < 0 || index >= len(v) {
		var zero T
		return zero, false
	}
	return v[index], true
}

// Dot returns the inner product v · other.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the right-handed cross product v × other.
// Cross is defined for dimension 3 only; no other vector type has it.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// CanonicalBasis returns the standard unit vectors (1,0,0), (0,1,0), (0,0,1).
func (v Vector3[T]) CanonicalBasis() []Vector3[T] {
	return []Vector3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// CanonicalBasisComponent returns the index-th standard unit vector,
// false if index is out of range.
func (v Vector3[T]) CanonicalBasisComponent(index int) (Vector3[T], bool) {
	if index < 0 || index >= len(v) {
		return Vector3[T]{}, false
	}
	var basis Vector3[T]
	basis[index] = 1
	return basis, true
}

// Lerp interpolates component-wise toward other by f; f outside [0,1]
// extrapolates.
func (v Vector3[T]) Lerp(other Vector3[T], f float64) Vector3[T] {
	return Vector3[T]{
		theon.Lerp(v[0], other[0], f),
		theon.Lerp(v[1], other[1], f),
		theon.Lerp(v[2], other[2], f),
	}
}

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Scale returns s · v.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{s * v[0], s * v[1], s * v[2]}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] { return Vector3[T]{-v[0], -v[1], -v[2]} }

// Extend appends x as the new last component, yielding a 4-vector.
func (v Vector3[T]) Extend(x T) Vector4[T] {
	return Vector4[T]{v[0], v[1], v[2], x}
}

// Truncate removes the last component, returning the 2-vector prefix and
// the removed scalar. Extend(Truncate(v)) reassembles v.
func (v Vector3[T]) Truncate() (Vector2[T], T) {
	return Vector2[T]{v[0], v[1]}, v[2]
}

// IntoHomogeneous embeds the displacement into the projective space one
// dimension higher, with an implicit 0 last coordinate.
func (v Vector3[T]) IntoHomogeneous() Vector4[T] { return v.Extend(0) }

// ---------- Vector4 ----------

// Dimension reports the component count, 4.
func (Vector4[T]) Dimension() int { return 4 }

// Items returns the components in canonical order.
func (v Vector4[T]) Items() []T { return []T{v[0], v[1], v[2], v[3]} }

// AssignItems overwrites the vector from items; false unless len(items) == 4.
func (v *Vector4[T]) AssignItems(items []T) bool {
	if len(items) != len(v) {
		return false
	}
	copy(v[:], items)
	return true
}

// ScalarComponent returns the component at index, false if out of range.
func (v Vector4[T]) ScalarComponent(index int) (T, bool) {
	if index < 0 || index >= len(v) {
		var zero T
		return zero, false
	}
	return v[index], true
}

// Dot returns the inner product v · other.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// CanonicalBasis returns the four standard unit vectors in index order.
func (v Vector4[T]) CanonicalBasis() []Vector4[T] {
	return []Vector4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// CanonicalBasisComponent returns the index-th standard unit vector,
// false if index is out of range.
func (v Vector4[T]) CanonicalBasisComponent(index int) (Vector4[T], bool) {
	if index < 0 || index >= len(v) {
		return Vector4[T]{}, false
	}
	var basis Vector4[T]
	basis[index] = 1
	return basis, true
}

// Lerp interpolates component-wise toward other by f; f outside [0,1]
// extrapolates.
func (v Vector4[T]) Lerp(other Vector4[T], f float64) Vector4[T] {
	return Vector4[T]{
		theon.Lerp(v[0], other[0], f),
		theon.Lerp(v[1], other[1], f),
		theon.Lerp(v[2], other[2], f),
		theon.Lerp(v[3], other[3], f),
	}
}

// Add returns v + other.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Scale returns s · v.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{s * v[0], s * v[1], s * v[2], s * v[3]}
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// Truncate removes the last component, returning the 3-vector prefix and
// the removed scalar.
func (v Vector4[T]) Truncate() (Vector3[T], T) {
	return Vector3[T]{v[0], v[1], v[2]}, v[3]
}

// Conformance assertions: every capability applicable to each shape.
var (
	_ adjunct.Assembler[float64] = (*Vector2[float64])(nil)
	_ adjunct.Assembler[float64] = (*Vector3[float64])(nil)
	_ adjunct.Assembler[float64] = (*Vector4[float64])(nil)

	_ space.InnerSpace[Vector2[float64], float64] = Vector2[float64]{}
	_ space.InnerSpace[Vector3[int], int]         = Vector3[int]{}
	_ space.InnerSpace[Vector4[float32], float32] = Vector4[float32]{}

	_ space.Basis[Vector2[float64]] = Vector2[float64]{}
	_ space.Basis[Vector3[float64]] = Vector3[float64]{}
	_ space.Basis[Vector4[float64]] = Vector4[float64]{}

	_ ops.Cross[Vector3[float64]]       = Vector3[float64]{}
	_ ops.Interpolate[Vector2[float64]] = Vector2[float64]{}
	_ ops.Interpolate[Vector3[float64]] = Vector3[float64]{}
	_ ops.Interpolate[Vector4[float64]] = Vector4[float64]{}

	_ adjunct.Extender[float64, Vector3[float64]]  = Vector2[float64]{}
	_ adjunct.Extender[float64, Vector4[float64]]  = Vector3[float64]{}
	_ adjunct.Truncator[float64, Vector2[float64]] = Vector3[float64]{}
	_ adjunct.Truncator[float64, Vector3[float64]] = Vector4[float64]{}

	_ space.Homogeneous[Vector3[float64]] = Vector2[float64]{}
	_ space.Homogeneous[Vector4[float64]] = Vector3[float64]{}
)
