// Package gonum_test provides benchmarks for the reference backend's hot
// operations.
package gonum_test

import (
	"testing"

	"github.com/59977/theon/adjunct"
	"github.com/59977/theon/backend/gonum"
)

// BenchmarkVector3Dot measures the allocation-free inner product.
func BenchmarkVector3Dot(b *testing.B) {
	v := gonum.NewVector3(1.0, 2.0, 3.0)
	w := gonum.NewVector3(4.0, 5.0, 6.0)
	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += v.Dot(w)
	}
	_ = sink
}

// BenchmarkVector3Cross measures the cross product.
func BenchmarkVector3Cross(b *testing.B) {
	v := gonum.NewVector3(1.0, 2.0, 3.0)
	w := gonum.NewVector3(4.0, 5.0, 6.0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = v.Cross(w)
	}
}

// BenchmarkMatrix3MulMN measures multiplication through the gonum kernel,
// including the float64 round trip.
func BenchmarkMatrix3MulMN(b *testing.B) {
	m := gonum.Matrix3[float64]{1, 2, 0, 0, 1, 1, 2, 0, 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.MulMN(m)
	}
}

// BenchmarkMap measures the generic component-wise map over a 4-vector.
func BenchmarkMap(b *testing.B) {
	v := gonum.NewVector4(1.0, 2.0, 3.0, 4.0)
	double := func(x float64) float64 { return 2 * x }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = adjunct.Map[gonum.Vector4[float64]](v, double)
	}
}
