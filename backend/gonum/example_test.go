package gonum_test

import (
	"fmt"

	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/backend/gonum"
	"github.com/59977/theon/space"
)

// ExampleVector3_Cross demonstrates the right-handed cross product on the
// standard basis.
func ExampleVector3_Cross() {
	x := gonum.NewVector3(1.0, 0.0, 0.0)
	y := gonum.NewVector3(0.0, 1.0, 0.0)

	fmt.Println(x.Cross(y))
	// Output:
	// [0 0 1]
}

// ExamplePoint2_Translate demonstrates the affine contract: points move by
// vectors and difference back into them.
func ExamplePoint2_Translate() {
	home := gonum.NewPoint2(1.0, 1.0)
	step := gonum.NewVector2(3.0, 4.0)

	there := home.Translate(step)
	fmt.Println(there)
	fmt.Println(there.Difference(home))
	// Output:
	// [4 5]
	// [3 4]
}

// Example_fromItems demonstrates construction with an exact-arity contract:
// a 3-vector cannot be built from two items.
func Example_fromItems() {
	v, ok := adjunct.FromItems[gonum.Vector3[int]]([]int{1, 2, 3})
	fmt.Println(v, ok)

	_, ok = adjunct.FromItems[gonum.Vector3[int]]([]int{1, 2})
	fmt.Println(ok)
	// Output:
	// [1 2 3] true
	// false
}

// ExampleMatrix2_MulMN demonstrates matrix multiplication and the identity
// law.
func ExampleMatrix2_MulMN() {
	shear, _ := gonum.NewMatrix2([]float64{
		1, 1,
		0, 1,
	})

	fmt.Println(shear.MulMN(shear))
	fmt.Println(shear.MulMN(shear.Identity()) == shear)
	// Output:
	// [1 2 0 1]
	// true
}

// Example_generic shows an algorithm written once against the space
// capabilities and run over backend types.
func Example_generic() {
	a := gonum.NewPoint2(0.0, 0.0)
	b := gonum.NewPoint2(10.0, 10.0)

	fmt.Println(space.Midpoint(a, b))
	fmt.Println(space.Distance[float64, gonum.Vector2[float64]](a, b))
	// Output:
	// [5 5]
	// 14.142135623730951
}
