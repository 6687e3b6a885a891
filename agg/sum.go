/*
Package agg provides ready-made aggregators for the segment-tree engines:
range sum, range min/max, maximum subarray sum, and text-fragment
summaries. Each aggregator is a plain node struct paired with an algebra
implementing the capabilities it supports (see package node).
*/
package agg

// Numeric constrains sum aggregation to built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum is a range-sum node. It carries a pending slot, so it supports both
// plain and lazy engines; the lazy semantics is "add the value to every
// element of the range".
type Sum[V Numeric] struct {
	value   V
	pending V
	staged  bool
}

// Value returns the aggregated sum.
func (n Sum[V]) Value() V { return n.value }

// SumAlgebra aggregates Sum nodes. Pending values compose additively, and
// absorbing a pending value multiplies it by the range length.
type SumAlgebra[V Numeric] struct{}

// Init creates a one-element node.
func (SumAlgebra[V]) Init(value V) Sum[V] {
	return Sum[V]{value: value}
}

// Combine adds the sums of two adjacent ranges.
func (SumAlgebra[V]) Combine(a, b Sum[V]) Sum[V] {
	return Sum[V]{value: a.value + b.value}
}

// Value reads the aggregated sum.
func (SumAlgebra[V]) Value(n Sum[V]) V { return n.value }

// LazyUpdate absorbs the pending value into a node covering [i,j]: every
// element gains the pending value, so the sum gains pending*(j-i+1).
func (SumAlgebra[V]) LazyUpdate(n *Sum[V], i, j int) {
	if !n.staged {
		return
	}
	n.value += n.pending * V(j-i+1)
	var zero V
	n.pending = zero
	n.staged = false
}

// UpdateLazyValue composes value into the pending slot by addition, with
// the already-pending value as the left operand.
func (SumAlgebra[V]) UpdateLazyValue(n *Sum[V], value V) {
	if n.staged {
		n.pending = n.pending + value
		return
	}
	n.pending = value
	n.staged = true
}

// LazyValue peeks at the pending slot.
func (SumAlgebra[V]) LazyValue(n *Sum[V]) (V, bool) {
	return n.pending, n.staged
}

// Sums initializes a leaf row from scalar values.
func Sums[V Numeric](values []V) []Sum[V] {
	var alg SumAlgebra[V]
	out := make([]Sum[V], len(values))
	for i, v := range values {
		out[i] = alg.Init(v)
	}
	return out
}
