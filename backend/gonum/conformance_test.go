// conformance_test.go pins the behavioral contract a backend adapter must
// satisfy, using the concrete scenarios every conforming backend agrees on.
package gonum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/59977/theon/backend/gonum"
)

// TestCrossProductScenario verifies cross((1,0,0), (0,1,0)) == (0,0,1),
// antisymmetry, and self-annihilation.
func TestCrossProductScenario(t *testing.T) {
	x := gonum.NewVector3(1.0, 0.0, 0.0)
	y := gonum.NewVector3(0.0, 1.0, 0.0)
	z := gonum.NewVector3(0.0, 0.0, 1.0)

	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x.Cross(y).Neg(), y.Cross(x))

	a := gonum.NewVector3(2.0, -3.0, 5.0)
	b := gonum.NewVector3(-1.0, 4.0, 0.5)
	require.Equal(t, a.Cross(b).Neg(), b.Cross(a))
	require.Equal(t, gonum.Vector3[float64]{}, a.Cross(a))
}

// TestCanonicalBasisScenario verifies the 2-dimensional canonical basis is
// exactly [(1,0), (0,1)].
func TestCanonicalBasisScenario(t *testing.T) {
	basis := gonum.Vector2[float64]{}.CanonicalBasis()
	require.Equal(t, []gonum.Vector2[float64]{{1, 0}, {0, 1}}, basis)
}

// TestCrossOrthogonality verifies the cross product is orthogonal to both
// operands.
func TestCrossOrthogonality(t *testing.T) {
	a := gonum.NewVector3(1.0, 2.0, 3.0)
	b := gonum.NewVector3(-4.0, 0.5, 2.0)

	n := a.Cross(b)
	require.Equal(t, 0.0, n.Dot(a))
	require.Equal(t, 0.0, n.Dot(b))
}

// TestTruncateExtendScenario verifies truncate((1,2,3)) == ((1,2), 3) and
// extend((1,2), 3) == (1,2,3).
func TestTruncateExtendScenario(t *testing.T) {
	prefix, last := gonum.NewVector3(1, 2, 3).Truncate()
	require.Equal(t, gonum.NewVector2(1, 2), prefix)
	require.Equal(t, 3, last)
	require.Equal(t, gonum.NewVector3(1, 2, 3), gonum.NewVector2(1, 2).Extend(3))
}

// TestImmutability verifies no operation mutates its receiver: transforms
// always produce fresh values.
func TestImmutability(t *testing.T) {
	v := gonum.NewVector3(1.0, 2.0, 3.0)
	_ = v.Scale(10)
	_ = v.Lerp(gonum.NewVector3(9.0, 9.0, 9.0), 0.5)
	_, _ = v.Truncate()
	_ = v.Extend(4)
	require.Equal(t, gonum.NewVector3(1.0, 2.0, 3.0), v)

	m := gonum.Matrix2[float64]{1, 2, 3, 4}
	_ = m.Transpose()
	_ = m.MulMN(m)
	require.Equal(t, gonum.Matrix2[float64]{1, 2, 3, 4}, m)
}

// TestItemsIsACopy verifies mutating a decomposed slice never writes
// through to the aggregate.
func TestItemsIsACopy(t *testing.T) {
	v := gonum.NewVector2(1, 2)
	items := v.Items()
	items[0] = 99
	require.Equal(t, gonum.NewVector2(1, 2), v)
}
