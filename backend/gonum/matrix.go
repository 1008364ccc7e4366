// matrix.go implements the square matrix types of the reference backend.
// A MatrixN is a row-major [N*N]T array; as an aggregate it has N·N
// components, so the adjunct family and VectorSpace operate on the
// flattened components in row-major canonical order.
//
// Multiplication, transposition, and determinants are delegated to gonum's
// mat package: the backend's scalars round-trip through float64, which is
// exact for float32 inputs and the reason the matrix types require a Real
// scalar.
package gonum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/59977/theon"
	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/ops"
	"github.com/59977/theon/space"
)

// Matrix2 is a 2×2 matrix with scalar type T, stored row-major.
type Matrix2[T theon.Real] [4]T

// Matrix3 is a 3×3 matrix with scalar type T, stored row-major.
type Matrix3[T theon.Real] [9]T

// Matrix4 is a 4×4 matrix with scalar type T, stored row-major.
type Matrix4[T theon.Real] [16]T

// NewMatrix2 builds a 2×2 matrix from 4 row-major components.
// Returns ErrArity if len(data) != 4.
func NewMatrix2[T theon.Real](data []T) (Matrix2[T], error) {
	var m Matrix2[T]
	if len(data) != len(m) {
		return Matrix2[T]{}, fmt.Errorf("NewMatrix2: want %d items, got %d: %w", len(m), len(data), ErrArity)
	}
	copy(m[:], data)
	return m, nil
}

// NewMatrix3 builds a 3×3 matrix from 9 row-major components.
// Returns ErrArity if len(data) != 9.
func NewMatrix3[T theon.Real](data []T) (Matrix3[T], error) {
	var m Matrix3[T]
	if len(data) != len(m) {
		return Matrix3[T]{}, fmt.Errorf("NewMatrix3: want %d items, got %d: %w", len(m), len(data), ErrArity)
	}
	copy(m[:], data)
	return m, nil
}

// NewMatrix4 builds a 4×4 matrix from 16 row-major components.
// Returns ErrArity if len(data) != 16.
func NewMatrix4[T theon.Real](data []T) (Matrix4[T], error) {
	var m Matrix4[T]
	if len(data) != len(m) {
		return Matrix4[T]{}, fmt.Errorf("NewMatrix4: want %d items, got %d: %w", len(m), len(data), ErrArity)
	}
	copy(m[:], data)
	return m, nil
}

// denseFrom copies n×n row-major components into a fresh gonum matrix.
func denseFrom[T theon.Real](n int, items []T) *mat.Dense {
	data := make([]float64, len(items))
	for i, x := range items {
		data[i] = float64(x)
	}
	return mat.NewDense(n, n, data)
}

// fillFromDense copies a gonum matrix back into row-major components.
// dst must have exactly rows·cols elements.
func fillFromDense[T theon.Real](dst []T, d mat.Matrix) {
	rows, cols := d.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i*cols+j] = T(d.At(i, j))
		}
	}
}

// ---------- Matrix2 ----------

// Dimension reports the aggregate component count, 4 (the space of 2×2
// matrices is 4-dimensional).
func (Matrix2[T]) Dimension() int { return 4 }

// RowCount reports the number of rows, 2.
func (Matrix2[T]) RowCount() int { return 2 }

// ColumnCount reports the number of columns, 2.
func (Matrix2[T]) ColumnCount() int { return 2 }

// Items returns the components in row-major canonical order.
func (m Matrix2[T]) Items() []T {
	items := make([]T, len(m))
	copy(items, m[:])
	return items
}

// AssignItems overwrites the matrix from row-major items; false unless
// len(items) == 4.
func (m *Matrix2[T]) AssignItems(items []T) bool {
	if len(items) != len(m) {
		return false
	}
	copy(m[:], items)
	return true
}

// ScalarComponent returns the component at the row-major index, false if
// out of range.
func (m Matrix2[T]) ScalarComponent(index int) (T, bool) {
	if index < 0 || index >= len(m) {
		var zero T
		return zero, false
	}
	return m[index], true
}

// RowComponent returns the index-th row, false if out of range.
func (m Matrix2[T]) RowComponent(index int) (Vector2[T], bool) {
	if index < 0 || index >= m.RowCount() {
		return Vector2[T]{}, false
	}
	return Vector2[T]{m[index*2], m[index*2+1]}, true
}

// ColumnComponent returns the index-th column, false if out of range.
func (m Matrix2[T]) ColumnComponent(index int) (Vector2[T], bool) {
	if index < 0 || index >= m.ColumnCount() {
		return Vector2[T]{}, false
	}
	return Vector2[T]{m[index], m[2+index]}, true
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	var t Matrix2[T]
	fillFromDense(t[:], denseFrom(2, m[:]).T())
	return t
}

// Identity returns the 2×2 multiplicative identity.
func (Matrix2[T]) Identity() Matrix2[T] {
	var m Matrix2[T]
	for i := 0; i < 2; i++ {
		m[i*2+i] = 1
	}
	return m
}

// Determinant returns the determinant, computed by gonum.
func (m Matrix2[T]) Determinant() float64 {
	return mat.Det(denseFrom(2, m[:]))
}

// MulMN returns the matrix product m · other, computed by gonum.
func (m Matrix2[T]) MulMN(other Matrix2[T]) Matrix2[T] {
	var product mat.Dense
	product.Mul(denseFrom(2, m[:]), denseFrom(2, other[:]))
	var out Matrix2[T]
	fillFromDense(out[:], &product)
	return out
}

// MulVector returns the column vector m · v, computed by gonum.
func (m Matrix2[T]) MulVector(v Vector2[T]) Vector2[T] {
	var product mat.VecDense
	product.MulVec(denseFrom(2, m[:]), mat.NewVecDense(2, []float64{float64(v[0]), float64(v[1])}))
	return Vector2[T]{T(product.AtVec(0)), T(product.AtVec(1))}
}

// Lerp interpolates component-wise toward other by f; f outside [0,1]
// extrapolates.
func (m Matrix2[T]) Lerp(other Matrix2[T], f float64) Matrix2[T] {
	var out Matrix2[T]
	for i := range m {
		out[i] = theon.Lerp(m[i], other[i], f)
	}
	return out
}

// ---------- Matrix3 ----------

// Dimension reports the aggregate component count, 9.
func (Matrix3[T]) Dimension() int { return 9 }

// RowCount reports the number of rows, 3.
func (Matrix3[T]) RowCount() int { return 3 }

// ColumnCount reports the number of columns, 3.
func (Matrix3[T]) ColumnCount() int { return 3 }

// Items returns the components in row-major canonical order.
func (m Matrix3[T]) Items() []T {
	items := make([]T, len(m))
	copy(items, m[:])
	return items
}

// AssignItems overwrites the matrix from row-major items; false unless
// len(items) == 9.
func (m *Matrix3[T]) AssignItems(items []T) bool {
	if len(items) != len(m) {
		return false
	}
	copy(m[:], items)
	return true
}

// ScalarComponent returns the component at the row-major index, false if
// out of range.
func (m Matrix3[T]) ScalarComponent(index int) (T, bool) {
	if index < 0 || index >= len(m) {
		var zero T
		return zero, false
	}
	return m[index], true
}

// RowComponent returns the index-th row, false if out of range.
func (m Matrix3[T]) RowComponent(index int) (Vector3[T], bool) {
	if index < 0 || index >= m.RowCount() {
		return Vector3[T]{}, false
	}
	return Vector3[T]{m[index*3], m[index*3+1], m[index*3+2]}, true
}

// ColumnComponent returns the index-th column, false if out of range.
func (m Matrix3[T]) ColumnComponent(index int) (Vector3[T], bool) {
	if index < 0 || index >= m.ColumnCount() {
		return Vector3[T]{}, false
	}
	return Vector3[T]{m[index], m[3+index], m[6+index]}, true
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	var t Matrix3[T]
	fillFromDense(t[:], denseFrom(3, m[:]).T())
	return t
}

// Identity returns the 3×3 multiplicative identity.
func (Matrix3[T]) Identity() Matrix3[T] {
	var m Matrix3[T]
	for i := 0; i < 3; i++ {
		m[i*3+i] = 1
	}
	return m
}

// Determinant returns the determinant, computed by gonum.
func (m Matrix3[T]) Determinant() float64 {
	return mat.Det(denseFrom(3, m[:]))
}

// MulMN returns the matrix product m · other, computed by gonum.
func (m Matrix3[T]) MulMN(other Matrix3[T]) Matrix3[T] {
	var product mat.Dense
	product.Mul(denseFrom(3, m[:]), denseFrom(3, other[:]))
	var out Matrix3[T]
	fillFromDense(out[:], &product)
	return out
}

// MulVector returns the column vector m · v, computed by gonum.
func (m Matrix3[T]) MulVector(v Vector3[T]) Vector3[T] {
	var product mat.VecDense
	product.MulVec(denseFrom(3, m[:]), mat.NewVecDense(3, []float64{
		float64(v[0]), float64(v[1]), float64(v[2]),
	}))
	return Vector3[T]{T(product.AtVec(0)), T(product.AtVec(1)), T(product.AtVec(2))}
}

// Lerp interpolates component-wise toward other by f; f outside [0,1]
// extrapolates.
func (m Matrix3[T]) Lerp(other Matrix3[T], f float64) Matrix3[T] {
	var out Matrix3[T]
	for i := range m {
		out[i] = theon.Lerp(m[i], other[i], f)
	}
	return out
}

// ---------- Matrix4 ----------

// Dimension reports the aggregate component count, 16.
func (Matrix4[T]) Dimension() int { return 16 }

// RowCount reports the number of rows, 4.
func (Matrix4[T]) RowCount() int { return 4 }

// ColumnCount reports the number of columns, 4.
func (Matrix4[T]) ColumnCount() int { return 4 }

// Items returns the components in row-major canonical order.
func (m Matrix4[T]) Items() []T {
	items := make([]T, len(m))
	copy(items, m[:])
	return items
}

// AssignItems overwrites the matrix from row-major items; false unless
// len(items) == 16.
func (m *Matrix4[T]) AssignItems(items []T) bool {
	if len(items) != len(m) {
		return false
	}
	copy(m[:], items)
	return true
}

// ScalarComponent returns the component at the row-major index, false if
// out of range.
func (m Matrix4[T]) ScalarComponent(index int) (T, bool) {
	if index < 0 || index >= len(m) {
		var zero T
		return zero, false
	}
	return m[index], true
}

// RowComponent returns the index-th row, false if out of range.
func (m Matrix4[T]) RowComponent(index int) (Vector4[T], bool) {
	if index < 0 || index >= m.RowCount() {
		return Vector4[T]{}, false
	}
	return Vector4[T]{m[index*4], m[index*4+1], m[index*4+2], m[index*4+3]}, true
}

// ColumnComponent returns the index-th column, false if out of range.
func (m Matrix4[T]) ColumnComponent(index int) (Vector4[T], bool) {
	if index < 0 || index >= m.ColumnCount() {
		return Vector4[T]{}, false
	}
	return Vector4[T]{m[index], m[4+index], m[8+index], m[12+index]}, true
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	var t Matrix4[T]
	fillFromDense(t[:], denseFrom(4, m[:]).T())
	return t
}

// Identity returns the 4×4 multiplicative identity.
func (Matrix4[T]) Identity() Matrix4[T] {
	var m Matrix4[T]
	for i := 0; i < 4; i++ {
		m[i*4+i] = 1
	}
	return m
}

// Determinant returns the determinant, computed by gonum.
func (m Matrix4[T]) Determinant() float64 {
	return mat.Det(denseFrom(4, m[:]))
}

// MulMN returns the matrix product m · other, computed by gonum.
func (m Matrix4[T]) MulMN(other Matrix4[T]) Matrix4[T] {
	var product mat.Dense
	product.Mul(denseFrom(4, m[:]), denseFrom(4, other[:]))
	var out Matrix4[T]
	fillFromDense(out[:], &product)
	return out
}

// MulVector returns the column vector m · v, computed by gonum.
func (m Matrix4[T]) MulVector(v Vector4[T]) Vector4[T] {
	var product mat.VecDense
	product.MulVec(denseFrom(4, m[:]), mat.NewVecDense(4, []float64{
		float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]),
	}))
	return Vector4[T]{
		T(product.AtVec(0)), T(product.AtVec(1)), T(product.AtVec(2)), T(product.AtVec(3)),
	}
}

// Lerp interpolates component-wise toward other by f; f outside [0,1]
// extrapolates.
func (m Matrix4[T]) Lerp(other Matrix4[T], f float64) Matrix4[T] {
	var out Matrix4[T]
	for i := range m {
		out[i] = theon.Lerp(m[i], other[i], f)
	}
	return out
}

// Conformance assertions. A square matrix is its own dual: Transpose
// satisfies both the Matrix contract and DualSpace.
var (
	_ adjunct.Assembler[float64] = (*Matrix2[float64])(nil)
	_ adjunct.Assembler[float64] = (*Matrix3[float64])(nil)
	_ adjunct.Assembler[float64] = (*Matrix4[float64])(nil)

	_ space.VectorSpace[float64] = Matrix2[float64]{}
	_ space.VectorSpace[float64] = Matrix3[float64]{}
	_ space.VectorSpace[float64] = Matrix4[float64]{}

	_ space.SquareMatrix[Matrix2[float64], Vector2[float64], Vector2[float64]] = Matrix2[float64]{}
	_ space.SquareMatrix[Matrix3[float64], Vector3[float64], Vector3[float64]] = Matrix3[float64]{}
	_ space.SquareMatrix[Matrix4[float32], Vector4[float32], Vector4[float32]] = Matrix4[float32]{}

	_ space.DualSpace[Matrix2[float64]] = Matrix2[float64]{}
	_ space.DualSpace[Matrix3[float64]] = Matrix3[float64]{}
	_ space.DualSpace[Matrix4[float64]] = Matrix4[float64]{}

	_ ops.MulMN[Matrix2[float64], Matrix2[float64]] = Matrix2[float64]{}
	_ ops.MulMN[Matrix3[float64], Matrix3[float64]] = Matrix3[float64]{}
	_ ops.MulMN[Matrix4[float64], Matrix4[float64]] = Matrix4[float64]{}

	_ ops.Interpolate[Matrix3[float64]] = Matrix3[float64]{}
)
