// Package theon is a backend-agnostic algebra of fixed-dimension geometric
// entities — vectors, points, and matrices — expressed as layered capability
// interfaces over any concrete numeric backend.
//
// 🚀 What is theon?
//
//	A small, composable library that lets geometry-processing code be written
//	once against an algebraic contract and run unchanged over any backend:
//		• Adjunct family: generic fixed-size aggregate operations
//		  (fold, map, zip-map, construct/decompose, extend, truncate)
//		• Space family: vector, affine, Euclidean and inner-product spaces,
//		  duality, bases, homogeneous embedding
//		• Matrix family: row/column access, transpose, identity,
//		  generalized multiplication
//		• Reference backend: fixed-size generic types with matrix kernels
//		  delegated to gonum
//
// ✨ Why choose theon?
//
//   - Capability interfaces, not a type hierarchy — a Point satisfies some
//     contracts (translation) but not others (scalar combination)
//   - Immutable values — every operation produces a new value, so any two
//     operations are safe to evaluate concurrently
//   - Absent-value results for the only two data-dependent failures
//     (index out of bounds, construction arity); everything else is total
//   - Pluggable — a backend adapter implements every interface applicable
//     to each of its concrete fixed-size types
//
// The packages compose bottom-up:
//
//	adjunct/        — component access independent of algebraic meaning
//	ops/            — operation capabilities (Dot, Cross, Interpolate, MulMN)
//	space/          — algebraic structure over adjunct and ops
//	backend/gonum/  — reference backend adapter over gonum
//
// The root package carries the scalar constraints shared by all of them.
//
//	go get github.com/59977/theon
package theon
