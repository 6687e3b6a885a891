package segtree

import (
	"fmt"

	"github.com/N9199/seg-tree/node"
)

// Lazy is a segment tree with range updates and range queries. Storage and
// layout match Recursive; range updates are staged in the nodes' pending
// slots and pushed down one level at a time as later traversals pass by.
//
// Query and LowerBound take a pointer receiver and mutate the tree: they
// force pending values down before reading. Observable results are
// unaffected.
type Lazy[T, V any] struct {
	alg   node.LazyAlgebra[T, V]
	nodes []T
	n     int
}

// BuildLazy builds the tree from a leaf row; element k of values becomes
// leaf k. The row may be empty.
func BuildLazy[T, V any](alg node.LazyAlgebra[T, V], values []T) (*Lazy[T, V], error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	n := len(values)
	t := &Lazy[T, V]{alg: alg, n: n}
	if n == 0 {
		return t, nil
	}
	t.nodes = make([]T, 4*n)
	t.build(0, 0, n-1, values)
	return t, nil
}

func (t *Lazy[T, V]) build(cur, i, j int, values []T) {
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
func (t *Lazy[T, V]) Len() int { return t.n }

// push forces the pending value of slot cur (covering [i,j]) one level
// down: the children's pending slots receive it, then the node itself
// absorbs it. Push is one level deep only; children's materialized values
// stay untouched until their own push.
func (t *Lazy[T, V]) push(cur, i, j int) {
	if v, ok := t.alg.LazyValue(&t.nodes[cur]); ok && i != j {
		t.alg.UpdateLazyValue(&t.nodes[2*cur+1], v)
		t.alg.UpdateLazyValue(&t.nodes[2*cur+2], v)
	}
	t.alg.LazyUpdate(&t.nodes[cur], i, j)
}

func (t *Lazy[T, V]) hasPending(cur int) bool {
	_, ok := t.alg.LazyValue(&t.nodes[cur])
	return ok
}

// Update stages value over the inclusive range [left,right]. It panics if
// the range is empty or out of [0,n).
func (t *Lazy[T, V]) Update(left, right int, value V) {
	assert(left <= right, "segtree: empty update range")
	assert(0 <= left && right < t.n, "segtree: update range out of bounds")
	t.updateRange(left, right, value, 0, 0, t.n-1)
}

func (t *Lazy[T, V]) updateRange(left, right int, value V, cur, i, j int) {
	// Push before the disjoint check: a stale sibling still must be
	// current when the parent recombines below.
	if t.hasPending(cur) {
		t.push(cur, i, j)
	}
	if j < left || right < i {
		return
	}
	if left <= i && j <= right {
		t.alg.UpdateLazyValue(&t.nodes[cur], value)
		t.push(cur, i, j)
		return
	}
	mid := (i + j) / 2
	leftNode, rightNode := 2*cur+1, 2*cur+2
	t.updateRange(left, right, value, leftNode, i, mid)
	t.updateRange(left, right, value, rightNode, mid+1, j)
	t.nodes[cur] = t.alg.Combine(t.nodes[leftNode], t.nodes[rightNode])
}

// Query folds the inclusive range [left,right] and returns the combined
// node. The result is absent if and only if the range is empty
// (left > right). It panics if a non-empty range is out of [0,n).
func (t *Lazy[T, V]) Query(left, right int) (T, bool) {
	if left > right {
		var zero T
		return zero, false
	}
	assert(0 <= left && right < t.n, "segtree: query range out of bounds")
	return t.query(left, right, 0, 0, t.n-1)
}

func (t *Lazy[T, V]) query(left, right, cur, i, j int) (T, bool) {
	if j < left || right < i {
		var zero T
		return zero, false
	}
	if t.hasPending(cur) {
		t.push(cur, i, j)
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
// predicate(value of prefix [0,u], target) holds; see Recursive.LowerBound
// for the contract. Pending values are pushed ahead of every inspection,
// so staged range updates are fully visible to the descent.
func (t *Lazy[T, V]) LowerBound(predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	assert(t.n > 0, "segtree: lower bound on empty tree")
	return t.lowerBound(0, 0, t.n-1, predicate, g, target)
}

func (t *Lazy[T, V]) lowerBound(cur, i, j int, predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	if t.hasPending(cur) {
		t.push(cur, i, j)
	}
	if i == j {
		return i
	}
	mid := (i + j) / 2
	left, right := 2*cur+1, 2*cur+2
	// The left child's value is only correct post-push.
	if t.hasPending(left) {
		t.push(left, i, mid)
	}
	leftValue := t.alg.Value(t.nodes[left])
	if predicate(leftValue, target) {
		return t.lowerBound(left, i, mid, predicate, g, target)
	}
	return t.lowerBound(right, mid+1, j, predicate, g, g(leftValue, target))
}
