// resize.go declares the dimension-shifting capability pair. Growing and
// shrinking cross type boundaries (an N-aggregate becomes an N±1 aggregate),
// so unlike Map or Fold these cannot be free functions over Adjunct alone:
// each concrete type names its neighbor explicitly.
package adjunct

// Extender is implemented by aggregates that can grow by exactly one
// component. Wider is the aggregate type one dimension higher.
type Extender[T, Wider any] interface {
	// Extend appends x as the new last component. Total.
	Extend(x T) Wider
}

// Truncator is implemented by aggregates that can shrink by exactly one
// component. Narrower is the aggregate type one dimension lower.
//
// A backend's smallest aggregate type does not implement Truncator, so
// truncating it is rejected at compile time rather than at run time.
type Truncator[T, Narrower any] interface {
	// Truncate removes the last component, returning the shortened
	// aggregate and the removed scalar. Total for every implementing type.
	Truncate() (Narrower, T)
}
