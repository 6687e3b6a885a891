package segtree

import (
	"fmt"

	"github.com/N9199/seg-tree/node"
)

// Recursive is a segment tree with point updates, range queries and
// predicate-guided prefix search, stored top-down in an implicit heap array
// of 4n slots (children of slot k are 2k+1 and 2k+2). It uses double the
// memory of Iterative; prefer Iterative when LowerBound is not needed.
type Recursive[T, V any] struct {
	alg   node.Algebra[T, V]
	nodes []T
	n     int
}

// BuildRecursive builds the tree from a leaf row; element k of values
// becomes leaf k. The row may be empty.
func BuildRecursive[T, V any](alg node.Algebra[T, V], values []T) (*Recursive[T, V], error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	n := len(values)
	t := &Recursive[T, V]{alg: alg, n: n}
	if n == 0 {
		return t, nil
	}
	// Placeholder-filled slots are overwritten in build order; unreached
	// slots are never read.
	t.nodes = make([]T, 4*n)
	t.build(0, 0, n-1, values)
	return t, nil
}

func (t *Recursive[T, V]) build(cur, i, j int, values []T) {
	if i == j {
		t.nodes[cur] = values[i]
		return
	}
	mid := (i + j) / 2
	left, right := 2*cur+1, 2*cur+2
	t.build(left, i, mid, values)
	t.build(right, mid+1, j, values)
	t.nodes[cur] = t.alg.Combine(t.nodes[left], t.nodes[right])
}

// Len returns the number of leaves.
func (t *Recursive[T, V]) Len() int { return t.n }

// Update sets leaf p to Init(value) and recombines every ancestor on the
// way back up. It panics if p is not in [0,n).
func (t *Recursive[T, V]) Update(p int, value V) {
	assert(0 <= p && p < t.n, "segtree: update position out of range")
	t.update(p, value, 0, 0, t.n-1)
}

func (t *Recursive[T, V]) update(p int, value V, cur, i, j int) {
	if j < p || p < i {
		return
	}
	if i == j {
		t.nodes[cur] = t.alg.Init(value)
		return
	}
	mid := (i + j) / 2
	left, right := 2*cur+1, 2*cur+2
	t.update(p, value, left, i, mid)
	t.update(p, value, right, mid+1, j)
	t.nodes[cur] = t.alg.Combine(t.nodes[left], t.nodes[right])
}

// Query folds the inclusive range [left,right] and returns the combined
// node. The result is absent if and only if the range is empty
// (left > right). It panics if a non-empty range is out of [0,n).
func (t *Recursive[T, V]) Query(left, right int) (T, bool) {
	if left > right {
		var zero T
		return zero, false
	}
	assert(0 <= left && right < t.n, "segtree: query range out of bounds")
	return t.query(left, right, 0, 0, t.n-1)
}

func (t *Recursive[T, V]) query(left, right, cur, i, j int) (T, bool) {
	if j < left || right < i {
		var zero T
		return zero, false
	}
	if left <= i && j <= right {
		return t.nodes[cur], true
	}
	mid := (i + j) / 2
	ansLeft, okLeft := t.query(left, right, 2*cur+1, i, mid)
	ansRight, okRight := t.query(left, right, 2*cur+2, mid+1, j)
	switch {
	case okLeft && okRight:
		return t.alg.Combine(ansLeft, ansRight), true
	case okLeft:
		return ansLeft, true
	case okRight:
		return ansRight, true
	}
	var zero T
	return zero, false
}

// LowerBound finds the smallest index u such that
// predicate(value of prefix [0,u], target) holds.
//
// The caller guarantees monotonicity: if the predicate holds for a prefix,
// it holds for every longer prefix. When the descent moves past a left
// subtree with value lv, the target is replaced by g(lv, target), the
// residual-transfer function (for a sum threshold: subtract lv; for a
// maximum search: return the target unchanged). If no prefix satisfies the
// predicate, the last leaf index n-1 is returned. It panics on an empty
// tree.
func (t *Recursive[T, V]) LowerBound(predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	assert(t.n > 0, "segtree: lower bound on empty tree")
	return t.lowerBound(0, 0, t.n-1, predicate, g, target)
}

func (t *Recursive[T, V]) lowerBound(cur, i, j int, predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	if i == j {
		return i
	}
	mid := (i + j) / 2
	left, right := 2*cur+1, 2*cur+2
	leftValue := t.alg.Value(t.nodes[left])
	if predicate(leftValue, target) {
		return t.lowerBound(left, i, mid, predicate, g, target)
	}
	return t.lowerBound(right, mid+1, j, predicate, g, g(leftValue, target))
}
