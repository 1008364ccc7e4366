package gonum

import "errors"

// Sentinel errors for the checked backend constructors. Index accessors and
// FromItems never return errors; they report absence per the library-wide
// contract.
var (
	// ErrArity indicates a slice whose length does not match the number of
	// components of the target shape.
	ErrArity = errors.New("gonum: component count does not match shape")
)
