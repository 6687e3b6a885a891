package segtree

import (
	"fmt"

	"github.com/N9199/seg-tree/node"
)

// Iterative is a segment tree with point updates and range queries, stored
// bottom-up in a flat array of 2n slots: leaves occupy [n,2n), ancestors
// [1,n). It is the cheapest engine in space and constant factors; use
// Recursive if LowerBound is needed (this layout does not expose per-node
// range bounds).
type Iterative[T, V any] struct {
	alg   node.Algebra[T, V]
	nodes []T
	n     int
}

// BuildIterative builds the tree from a leaf row; element k of values
// becomes leaf k. The row may be empty.
func BuildIterative[T, V any](alg node.Algebra[T, V], values []T) (*Iterative[T, V], error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	n := len(values)
	// Slot 0 stays at its zero value; the root lives at slot 1.
	nodes := make([]T, 2*n)
	copy(nodes[n:], values)
	for i := n - 1; i >= 1; i-- {
		nodes[i] = alg.Combine(nodes[2*i], nodes[2*i+1])
	}
	return &Iterative[T, V]{alg: alg, nodes: nodes, n: n}, nil
}

// Len returns the number of leaves.
func (t *Iterative[T, V]) Len() int { return t.n }

// Update sets leaf p to Init(value) and recomputes the ancestors on the
// path to the root. It panics if p is not in [0,n).
func (t *Iterative[T, V]) Update(p int, value V) {
	assert(0 <= p && p < t.n, "segtree: update position out of range")
	i := p + t.n
	t.nodes[i] = t.alg.Init(value)
	for i >>= 1; i > 0; i >>= 1 {
		t.nodes[i] = t.alg.Combine(t.nodes[2*i], t.nodes[2*i+1])
	}
}

// Query folds the inclusive range [left,right] and returns the combined
// node. The result is absent if and only if the range is empty
// (left > right). It panics if a non-empty range is out of [0,n).
//
// Two directional accumulators walk inward from both range ends, so the
// fold respects left-to-right order even for non-commutative Combine.
func (t *Iterative[T, V]) Query(left, right int) (T, bool) {
	var ansLeft, ansRight T
	var haveLeft, haveRight bool
	if left > right {
		var zero T
		return zero, false
	}
	assert(0 <= left && right < t.n, "segtree: query range out of bounds")
	l := left + t.n
	r := right + t.n + 1
	for l < r {
		if l&1 != 0 {
			if haveLeft {
				ansLeft = t.alg.Combine(ansLeft, t.nodes[l])
			} else {
				ansLeft = t.nodes[l]
				haveLeft = true
			}
			l++
		}
		if r&1 != 0 {
			r--
			if haveRight {
				ansRight = t.alg.Combine(t.nodes[r], ansRight)
			} else {
				ansRight = t.nodes[r]
				haveRight = true
			}
		}
		l >>= 1
		r >>= 1
	}
	switch {
	case haveLeft && haveRight:
		return t.alg.Combine(ansLeft, ansRight), true
	case haveLeft:
		return ansLeft, true
	case haveRight:
		return ansRight, true
	}
	var zero T
	return zero, false
}
