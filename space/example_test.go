package space_test

import (
	"fmt"

	"github.com/59977/theon/backend/gonum"
	"github.com/59977/theon/ops"
	"github.com/59977/theon/space"
)

// centroid is written once against the Interpolate capability and runs over
// any conforming point (or vector) type: a running mean by repeated
// interpolation, m_k = lerp(m_{k-1}, p_k, 1/k).
func centroid[P ops.Interpolate[P]](points []P) P {
	out := points[0]
	for i, p := range points[1:] {
		out = out.Lerp(p, 1/float64(i+2))
	}
	return out
}

// Example_centroid runs the generic centroid over the reference backend.
func Example_centroid() {
	triangle := []gonum.Point2[float64]{
		gonum.NewPoint2(0.0, 0.0),
		gonum.NewPoint2(10.0, 0.0),
		gonum.NewPoint2(5.0, 9.0),
	}
	fmt.Println(centroid(triangle))
	// Output:
	// [5 3]
}

// ExampleNorm demonstrates the norm derived from the inner product.
func ExampleNorm() {
	fmt.Println(space.Norm[float64](gonum.NewVector2(3.0, 4.0)))
	// Output:
	// 5
}

// ExampleNormalize demonstrates the absent result for the zero vector.
func ExampleNormalize() {
	_, ok := space.Normalize[float64](gonum.Vector2[float64]{})
	fmt.Println(ok)
	// Output:
	// false
}
