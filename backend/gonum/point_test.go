package gonum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/backend/gonum"
)

// TestPointTranslate verifies "point + vector = point" and that Difference
// recovers the translation.
func TestPointTranslate(t *testing.T) {
	p := gonum.NewPoint3(1.0, 2.0, 3.0)
	by := gonum.NewVector3(10.0, 20.0, 30.0)

	moved := p.Translate(by)
	require.Equal(t, gonum.NewPoint3(11.0, 22.0, 33.0), moved)
	require.Equal(t, by, moved.Difference(p))
	require.Equal(t, by.Neg(), p.Difference(moved))
}

// TestPointOriginCoordinates verifies the Euclidean structure: coordinates
// are taken relative to the designated origin.
func TestPointOriginCoordinates(t *testing.T) {
	p := gonum.NewPoint2(3, 4)

	origin := p.Origin()
	require.Equal(t, gonum.NewPoint2(0, 0), origin)
	require.Equal(t, gonum.NewVector2(3, 4), p.IntoCoordinates())
	require.Equal(t, p.IntoCoordinates(), p.Difference(origin))
}

// TestPointLerp covers scenario 3 with points: lerp((0,0), (10,10), 0.5)
// lands on (5,5), endpoints are exact, and factors extrapolate.
func TestPointLerp(t *testing.T) {
	a := gonum.NewPoint2(0.0, 0.0)
	b := gonum.NewPoint2(10.0, 10.0)

	require.Equal(t, gonum.NewPoint2(5.0, 5.0), a.Lerp(b, 0.5))
	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, gonum.NewPoint2(-10.0, -10.0), a.Lerp(b, -1))
}

// TestPointExtendTruncateInverse verifies the size ladder for points.
func TestPointExtendTruncateInverse(t *testing.T) {
	p4 := gonum.NewPoint4(1, 2, 3, 4)
	prefix, last := p4.Truncate()
	require.Equal(t, gonum.NewPoint3(1, 2, 3), prefix)
	require.Equal(t, 4, last)
	require.Equal(t, p4, prefix.Extend(last))
}

// TestPointHomogeneous verifies positions embed with an implicit 1 last
// coordinate, unlike displacements.
func TestPointHomogeneous(t *testing.T) {
	require.Equal(t, gonum.NewPoint3(7, 8, 1), gonum.NewPoint2(7, 8).IntoHomogeneous())
	require.Equal(t, gonum.NewPoint4(1, 2, 3, 1), gonum.NewPoint3(1, 2, 3).IntoHomogeneous())
}

// TestPointAdjunctRoundTrip verifies the construction/decomposition inverse
// for points.
func TestPointAdjunctRoundTrip(t *testing.T) {
	p := gonum.NewPoint3(9.0, 8.0, 7.0)

	rebuilt, ok := adjunct.FromItems[gonum.Point3[float64]](p.Items())
	require.True(t, ok)
	require.Equal(t, p, rebuilt)

	_, ok = adjunct.FromItems[gonum.Point3[float64]]([]float64{1, 2})
	require.False(t, ok)
}

// TestPointConvergedAndMap verifies the generic family reaches points too.
func TestPointConvergedAndMap(t *testing.T) {
	center := adjunct.Converged[gonum.Point2[int]](5)
	require.Equal(t, gonum.NewPoint2(5, 5), center)

	shifted := adjunct.Map[gonum.Point2[int]](center, func(x int) int { return x + 1 })
	require.Equal(t, gonum.NewPoint2(6, 6), shifted)
}
