// Package ops declares the operation capabilities of the algebra: inner
// product, cross product, component-wise interpolation, and generalized
// matrix multiplication.
//
// Each capability is an independent interface rather than part of an
// inheritance chain, so a concrete type implements exactly the operations
// that make sense for its shape: every vector has a Dot, only 3-vectors
// have a Cross, only shape-compatible matrix pairs have a MulMN. Shape
// compatibility is carried entirely by the type parameters — there is no
// runtime dimension-mismatch error to handle.
//
// The space package composes these with the structural interfaces; the
// backend packages implement them on concrete types.
package ops
