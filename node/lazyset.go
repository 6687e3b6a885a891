package node

// LazySet wraps any aggregator node with a pending slot whose range-update
// semantics is "overwrite the range with a constant".
type LazySet[T, V any] struct {
	Node    T
	pending V
	staged  bool
}

// LazySetAlgebra grants the lazy capability to an inner aggregate algebra.
//
// UpdateLazyValue overwrites the pending slot outright (painting a range
// twice keeps only the second value); LazyUpdate replaces the wrapped node
// with a fresh Init of the pending value, so the absorbed aggregate is the
// constant over the whole range.
type LazySetAlgebra[T, V any] struct {
	Inner Algebra[T, V]
}

// NewLazySet wraps inner into a lazy "set range to value" algebra.
func NewLazySet[T, V any](inner Algebra[T, V]) LazySetAlgebra[T, V] {
	return LazySetAlgebra[T, V]{Inner: inner}
}

// Init creates a one-element node with an empty pending slot.
func (a LazySetAlgebra[T, V]) Init(value V) LazySet[T, V] {
	return LazySet[T, V]{Node: a.Inner.Init(value)}
}

// Combine merges the wrapped nodes; the result has an empty pending slot.
func (a LazySetAlgebra[T, V]) Combine(x, y LazySet[T, V]) LazySet[T, V] {
	return LazySet[T, V]{Node: a.Inner.Combine(x.Node, y.Node)}
}

// Value reads the wrapped aggregate.
func (a LazySetAlgebra[T, V]) Value(n LazySet[T, V]) V {
	return a.Inner.Value(n.Node)
}

// LazyUpdate absorbs a staged value by re-initializing the wrapped node.
// A node covering [i,j] afterwards aggregates the constant over that range;
// the range bounds are not needed for "set" semantics.
func (a LazySetAlgebra[T, V]) LazyUpdate(n *LazySet[T, V], i, j int) {
	if !n.staged {
		return
	}
	n.Node = a.Inner.Init(n.pending)
	var zero V
	n.pending = zero
	n.staged = false
}

// UpdateLazyValue overwrites the pending slot with value.
func (a LazySetAlgebra[T, V]) UpdateLazyValue(n *LazySet[T, V], value V) {
	n.pending = value
	n.staged = true
}

// LazyValue peeks at the pending slot without clearing it.
func (a LazySetAlgebra[T, V]) LazyValue(n *LazySet[T, V]) (V, bool) {
	return n.pending, n.staged
}
