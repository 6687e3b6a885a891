package segtree

import (
	"fmt"

	"github.com/N9199/seg-tree/node"
)

// Persistent is a segment tree that keeps every historical version of
// itself, with point updates and range queries. Nodes live in an
// append-only arena and reference their children by arena slot; each update
// copies only the O(log n) nodes on the path to the target leaf, appends a
// new root, and shares every untouched subtree with prior versions. A slot,
// once reachable from a recorded root, is never mutated again.
//
// It uses O(n + q log n) space for q updates.
type Persistent[T, V any] struct {
	alg   node.PersistentAlgebra[T, V]
	nodes []T
	roots []int
	n     int
}

// BuildPersistent builds version 0 from a leaf row; element k of values
// becomes leaf k. The row may be empty, in which case no version is
// recorded. Leaves must be unlinked (child slots at node.NoChild), as
// node.WrapVersioned produces them.
func BuildPersistent[T, V any](alg node.PersistentAlgebra[T, V], values []T) (*Persistent[T, V], error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	n := len(values)
	t := &Persistent[T, V]{alg: alg, n: n}
	if n == 0 {
		return t, nil
	}
	t.nodes = make([]T, 0, 4*n)
	root := t.materialize(values, 0, n-1)
	t.roots = append(t.roots, root)
	return t, nil
}

// materialize appends the subtree for [i,j] and returns its slot. Children
// are always materialized before their parent, so child slots never
// reference future entries.
func (t *Persistent[T, V]) materialize(values []T, i, j int) int {
	if i == j {
		t.nodes = append(t.nodes, values[i])
		return len(t.nodes) - 1
	}
	mid := (i + j) / 2
	left := t.materialize(values, i, mid)
	right := t.materialize(values, mid+1, j)
	combined := t.alg.Combine(t.nodes[left], t.nodes[right])
	t.alg.SetChildren(&combined, left, right)
	t.nodes = append(t.nodes, combined)
	return len(t.nodes) - 1
}

// Len returns the number of leaves.
func (t *Persistent[T, V]) Len() int { return t.n }

// Versions returns the number of recorded roots. Version v is valid for v
// in [0,Versions()).
func (t *Persistent[T, V]) Versions() int { return len(t.roots) }

// Query folds the inclusive range [left,right] of the given version and
// returns the combined node. The result is absent if and only if the range
// is empty (left > right). It panics if the version is unknown or a
// non-empty range is out of [0,n).
func (t *Persistent[T, V]) Query(version, left, right int) (T, bool) {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	if left > right {
		var zero T
		return zero, false
	}
	assert(0 <= left && right < t.n, "segtree: query range out of bounds")
	return t.query(t.roots[version], left, right, 0, t.n-1)
}

func (t *Persistent[T, V]) query(cur, left, right, i, j int) (T, bool) {
	if j < left || right < i {
		var zero T
		return zero, false
	}
	if left <= i && j <= right {
		return t.nodes[cur], true
	}
	mid := (i + j) / 2
	leftNode := t.alg.LeftChild(t.nodes[cur])
	rightNode := t.alg.RightChild(t.nodes[cur])
	ansLeft, okLeft := t.query(leftNode, left, right, i, mid)
	ansRight, okRight := t.query(rightNode, left, right, mid+1, j)
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

// Update derives a new version from the given one with leaf p set to
// Init(value), records its root and returns the new version id. The source
// version remains valid and unchanged. It panics if the version is unknown
// or p is not in [0,n).
func (t *Persistent[T, V]) Update(version, p int, value V) int {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	assert(0 <= p && p < t.n, "segtree: update position out of range")
	newRoot := t.updatePath(t.roots[version], p, value, 0, t.n-1)
	t.roots = append(t.roots, newRoot)
	return len(t.roots) - 1
}

// updatePath is the copy-on-write step: every node on the path to p is
// copied to a fresh slot before being touched, the off-path sibling keeps
// its old slot.
func (t *Persistent[T, V]) updatePath(cur, p int, value V, i, j int) int {
	if j < p || p < i {
		return cur
	}
	if i == j {
		t.nodes = append(t.nodes, t.alg.Init(value))
		return len(t.nodes) - 1
	}
	mid := (i + j) / 2
	left := t.updatePath(t.alg.LeftChild(t.nodes[cur]), p, value, i, mid)
	right := t.updatePath(t.alg.RightChild(t.nodes[cur]), p, value, mid+1, j)
	combined := t.alg.Combine(t.nodes[left], t.nodes[right])
	t.alg.SetChildren(&combined, left, right)
	t.nodes = append(t.nodes, combined)
	return len(t.nodes) - 1
}

// LowerBound finds, within the given version, the smallest index u such
// that predicate(value of prefix [0,u], target) holds; see
// Recursive.LowerBound for the contract. It panics if the version is
// unknown or the tree is empty.
func (t *Persistent[T, V]) LowerBound(version int, predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	assert(t.n > 0, "segtree: lower bound on empty tree")
	return t.lowerBound(t.roots[version], 0, t.n-1, predicate, g, target)
}

func (t *Persistent[T, V]) lowerBound(cur, i, j int, predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	if i == j {
		return i
	}
	mid := (i + j) / 2
	left := t.alg.LeftChild(t.nodes[cur])
	right := t.alg.RightChild(t.nodes[cur])
	leftValue := t.alg.Value(t.nodes[left])
	if predicate(leftValue, target) {
		return t.lowerBound(left, i, mid, predicate, g, target)
	}
	return t.lowerBound(right, mid+1, j, predicate, g, g(leftValue, target))
}
