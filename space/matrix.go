// SPDX-License-Identifier: MIT
// matrix.go declares the matrix contracts of the space family. A matrix is
// also an aggregate of R·C scalars, so concrete matrices additionally
// satisfy the adjunct family and VectorSpace over their flattened
// components.
package space

// Matrix is implemented by R×C matrix types. Row and Col are the aggregate
// types of a single row and a single column; X is the dimension-swapped
// transpose type (the matrix type itself when R == C).
type Matrix[Row, Col, X any] interface {
	// RowCount reports the fixed number of rows R. Complexity: O(1).
	RowCount() int

	// ColumnCount reports the fixed number of columns C. Complexity: O(1).
	ColumnCount() int

	// RowComponent returns the index-th row, reporting false if index is
	// out of range. It never panics. Complexity: O(C).
	RowComponent(index int) (Row, bool)

	// ColumnComponent returns the index-th column, reporting false if
	// index is out of range. It never panics. Complexity: O(R).
	ColumnComponent(index int) (Col, bool)

	// Transpose returns the matrix with rows and columns swapped.
	// Transpose(Transpose(m)) == m for every m. Complexity: O(R·C).
	Transpose() X
}

// SquareMatrix is implemented by matrix types with R == C. M is the
// implementing type itself.
type SquareMatrix[M, Row, Col any] interface {
	Matrix[Row, Col, M]

	// Identity returns the multiplicative identity of the same shape:
	// 1 on the diagonal, 0 elsewhere. identity.MulMN(m) == m ==
	// m.MulMN(identity) for every same-size m.
	Identity() M

	// Determinant returns the determinant of the matrix as a float64,
	// computed by the backend's kernel.
	Determinant() float64
}
