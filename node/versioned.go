package node

// Versioned wraps any aggregator node with two child-slot indices, so that
// persistent engines can link nodes without the aggregator implementing the
// capability itself. Freshly created nodes are unlinked (NoChild).
type Versioned[T any] struct {
	Node  T
	left  int
	right int
}

// IsLeaf reports whether the node has no linked children.
func (n Versioned[T]) IsLeaf() bool {
	return n.left == NoChild
}

// WrapVersioned adapts a row of aggregator leaves for a persistent engine.
func WrapVersioned[T any](values []T) []Versioned[T] {
	out := make([]Versioned[T], len(values))
	for i, v := range values {
		out[i] = Versioned[T]{Node: v, left: NoChild, right: NoChild}
	}
	return out
}

// VersionedAlgebra grants the persistence capability to an inner aggregate
// algebra.
type VersionedAlgebra[T, V any] struct {
	Inner Algebra[T, V]
}

// NewVersioned wraps inner into a persistent algebra.
func NewVersioned[T, V any](inner Algebra[T, V]) VersionedAlgebra[T, V] {
	return VersionedAlgebra[T, V]{Inner: inner}
}

// Init creates an unlinked one-element node.
func (a VersionedAlgebra[T, V]) Init(value V) Versioned[T] {
	return Versioned[T]{Node: a.Inner.Init(value), left: NoChild, right: NoChild}
}

// Combine merges the wrapped nodes; the result is unlinked until the engine
// calls SetChildren.
func (a VersionedAlgebra[T, V]) Combine(x, y Versioned[T]) Versioned[T] {
	return Versioned[T]{Node: a.Inner.Combine(x.Node, y.Node), left: NoChild, right: NoChild}
}

// Value reads the wrapped aggregate.
func (a VersionedAlgebra[T, V]) Value(n Versioned[T]) V {
	return a.Inner.Value(n.Node)
}

// LeftChild returns the arena slot of the left child, or NoChild.
func (a VersionedAlgebra[T, V]) LeftChild(n Versioned[T]) int { return n.left }

// RightChild returns the arena slot of the right child, or NoChild.
func (a VersionedAlgebra[T, V]) RightChild(n Versioned[T]) int { return n.right }

// SetChildren links both child slots.
func (a VersionedAlgebra[T, V]) SetChildren(n *Versioned[T], left, right int) {
	n.left = left
	n.right = right
}

// VersionedLazyAlgebra additionally forwards the lazy capability of the
// inner algebra, so one aggregator serves both the persistent and the
// lazy-persistent engines without duplicated combine logic.
type VersionedLazyAlgebra[T, V any] struct {
	VersionedAlgebra[T, V]
	lazy LazyAlgebra[T, V]
}

// NewVersionedLazy wraps a lazy inner algebra into a lazy persistent one.
func NewVersionedLazy[T, V any](inner LazyAlgebra[T, V]) VersionedLazyAlgebra[T, V] {
	return VersionedLazyAlgebra[T, V]{
		VersionedAlgebra: VersionedAlgebra[T, V]{Inner: inner},
		lazy:             inner,
	}
}

// LazyUpdate forwards to the wrapped node.
func (a VersionedLazyAlgebra[T, V]) LazyUpdate(n *Versioned[T], i, j int) {
	a.lazy.LazyUpdate(&n.Node, i, j)
}

// UpdateLazyValue forwards to the wrapped node.
func (a VersionedLazyAlgebra[T, V]) UpdateLazyValue(n *Versioned[T], value V) {
	a.lazy.UpdateLazyValue(&n.Node, value)
}

// LazyValue forwards to the wrapped node.
func (a VersionedLazyAlgebra[T, V]) LazyValue(n *Versioned[T]) (V, bool) {
	return a.lazy.LazyValue(&n.Node)
}
