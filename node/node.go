/*
Package node defines the capability model for segment-tree nodes.

A node type T is plain data; its behavior is supplied by a small operations
object, an algebra. Three independent capabilities exist:

  - Algebra (aggregate): create a one-element node, combine two adjacent
    nodes, read the aggregated value.
  - LazyAlgebra (deferred range updates): stage a pending value, absorb it
    into the node, peek at it.
  - PersistentAlgebra (child linkage): store and read arena slot indices of
    a node's children.

Concrete aggregators may implement any subset; the wrappers in this package
(LazySet, Versioned) grant a missing capability generically.
*/
package node

// Algebra is the aggregate capability of a segment-tree node type T with
// scalar value type V.
//
// Combine merges nodes a and b covering adjacent ranges [i,j] and [j+1,k]
// into a node covering [i,k]. It must be associative,
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// but need not be commutative; engines always pass the left range first.
// Init must produce a correct node for a one-element range. Implementations
// may cache derived fields in T as long as Combine reconstructs them from
// its two operands alone.
type Algebra[T, V any] interface {
	Init(value V) T
	Combine(a, b T) T
	Value(n T) V
}

// LazyAlgebra adds the deferred-update capability: a node carries an
// optional pending value which is composed on staging and absorbed on
// demand.
//
// Invariants:
//   - immediately after LazyUpdate, LazyValue reports absent;
//   - immediately after UpdateLazyValue, LazyValue reports present.
//
// LazyUpdate receives the bounds [i,j] of the range the node represents,
// for operations whose effect depends on range length. Calling LazyUpdate
// with an empty pending slot is a no-op, never a panic.
//
// UpdateLazyValue composes v into the pending slot. Composition order is
// left-to-right: the already-pending value is the left operand, v the
// right. Non-commutative compositions must document this order.
type LazyAlgebra[T, V any] interface {
	Algebra[T, V]
	LazyUpdate(n *T, i, j int)
	UpdateLazyValue(n *T, value V)
	LazyValue(n *T) (V, bool)
}

// NoChild is the child-slot sentinel of a leaf node.
const NoChild = -1

// PersistentAlgebra adds the child-linkage capability used by persistent
// engines: nodes store the arena slot indices of their children.
//
// A leaf's child slots hold NoChild. An internal node's child slots always
// reference already-materialized arena entries; engines establish them
// before a node becomes reachable from a root.
type PersistentAlgebra[T, V any] interface {
	Algebra[T, V]
	LeftChild(n T) int
	RightChild(n T) int
	SetChildren(n *T, left, right int)
}

// LazyPersistentAlgebra is the capability set of the lazy-persistent
// engine: deferred updates plus child linkage.
type LazyPersistentAlgebra[T, V any] interface {
	LazyAlgebra[T, V]
	PersistentAlgebra[T, V]
}
