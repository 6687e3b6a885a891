package segtree

import (
	"fmt"

	"github.com/N9199/seg-tree/node"
)

// LazyPersistent is a segment tree that keeps every historical version of
// itself, with range updates and range queries. It combines the
// copy-on-write arena of Persistent with the deferred propagation of Lazy.
//
// Push-down must not mutate children in place, since they may be shared
// with older versions. A push instead allocates copies of both children,
// stages the pending value on the copies, repoints the current node at them
// and only then absorbs the node's own pending value. A node's externally
// observable aggregate for its range is identical before and after its
// push, so every recorded root keeps answering exactly as when it was
// recorded, no matter how many pushes happen anywhere in the arena.
//
// Because traversals push, Query and LowerBound may grow the arena; they
// never record a version (Versions is unaffected by reads).
type LazyPersistent[T, V any] struct {
	alg   node.LazyPersistentAlgebra[T, V]
	nodes []T
	roots []int
	n     int
}

// BuildLazyPersistent builds version 0 from a leaf row; element k of
// values becomes leaf k. The row may be empty, in which case no version is
// recorded. Leaves must be unlinked (child slots at node.NoChild), as
// node.WrapVersioned produces them.
func BuildLazyPersistent[T, V any](alg node.LazyPersistentAlgebra[T, V], values []T) (*LazyPersistent[T, V], error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	n := len(values)
	t := &LazyPersistent[T, V]{alg: alg, n: n}
	if n == 0 {
		return t, nil
	}
	t.nodes = make([]T, 0, 4*n)
	root := t.materialize(values, 0, n-1)
	t.roots = append(t.roots, root)
	return t, nil
}

func (t *LazyPersistent[T, V]) materialize(values []T, i, j int) int {
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
func (t *LazyPersistent[T, V]) Len() int { return t.n }

// Versions returns the number of recorded roots. Version v is valid for v
// in [0,Versions()).
func (t *LazyPersistent[T, V]) Versions() int { return len(t.roots) }

func (t *LazyPersistent[T, V]) hasPending(cur int) bool {
	_, ok := t.alg.LazyValue(&t.nodes[cur])
	return ok
}

// push forces the pending value of slot cur (covering [i,j]) one level
// down, copy-on-write: both children are copied to fresh slots, the copies
// receive the pending value, cur is repointed at the copies, and cur
// absorbs its pending value. The original children stay in place for any
// older version still referencing them.
func (t *LazyPersistent[T, V]) push(cur, i, j int) {
	if v, ok := t.alg.LazyValue(&t.nodes[cur]); ok && i != j {
		left := t.alg.LeftChild(t.nodes[cur])
		right := t.alg.RightChild(t.nodes[cur])
		newLeft := len(t.nodes)
		t.nodes = append(t.nodes, t.nodes[left], t.nodes[right])
		t.alg.UpdateLazyValue(&t.nodes[newLeft], v)
		t.alg.UpdateLazyValue(&t.nodes[newLeft+1], v)
		t.alg.SetChildren(&t.nodes[cur], newLeft, newLeft+1)
	}
	t.alg.LazyUpdate(&t.nodes[cur], i, j)
}

// Query folds the inclusive range [left,right] of the given version and
// returns the combined node. The result is absent if and only if the range
// is empty (left > right). It panics if the version is unknown or a
// non-empty range is out of [0,n).
//
// Query is not side-effect-free on the arena: forcing pending values may
// allocate node copies. Results of recorded versions are unaffected.
func (t *LazyPersistent[T, V]) Query(version, left, right int) (T, bool) {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	if left > right {
		var zero T
		return zero, false
	}
	assert(0 <= left && right < t.n, "segtree: query range out of bounds")
	return t.query(t.roots[version], left, right, 0, t.n-1)
}

func (t *LazyPersistent[T, V]) query(cur, left, right, i, j int) (T, bool) {
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

// Update derives a new version from the given one with value staged over
// the inclusive range [left,right], records its root and returns the new
// version id. The source version remains valid and unchanged. It panics if
// the version is unknown or the range is empty or out of [0,n).
func (t *LazyPersistent[T, V]) Update(version, left, right int, value V) int {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	assert(left <= right, "segtree: empty update range")
	assert(0 <= left && right < t.n, "segtree: update range out of bounds")
	newRoot := t.updateRange(t.roots[version], left, right, value, 0, t.n-1)
	t.roots = append(t.roots, newRoot)
	return len(t.roots) - 1
}

// updateRange is copy-then-push: every visited node is copied to a fresh
// slot and its pending value forced down before the covered/uncovered
// decision, so recombination below never drops a stale pending value.
func (t *LazyPersistent[T, V]) updateRange(cur, left, right int, value V, i, j int) int {
	if j < left || right < i {
		// A disjoint sibling still must be current when the parent
		// recombines below, so its pending value is forced into a copy.
		if !t.hasPending(cur) {
			return cur
		}
		x := len(t.nodes)
		t.nodes = append(t.nodes, t.nodes[cur])
		t.push(x, i, j)
		return x
	}
	x := len(t.nodes)
	t.nodes = append(t.nodes, t.nodes[cur])
	if t.hasPending(x) {
		t.push(x, i, j)
	}
	if left <= i && j <= right {
		t.alg.UpdateLazyValue(&t.nodes[x], value)
		t.push(x, i, j)
		return x
	}
	mid := (i + j) / 2
	leftNode := t.updateRange(t.alg.LeftChild(t.nodes[x]), left, right, value, i, mid)
	rightNode := t.updateRange(t.alg.RightChild(t.nodes[x]), left, right, value, mid+1, j)
	combined := t.alg.Combine(t.nodes[leftNode], t.nodes[rightNode])
	t.alg.SetChildren(&combined, leftNode, rightNode)
	t.nodes[x] = combined
	return x
}

// LowerBound finds, within the given version, the smallest index u such
// that predicate(value of prefix [0,u], target) holds; see
// Recursive.LowerBound for the contract. Pending values are pushed
// (copy-on-write) ahead of every inspection. It panics if the version is
// unknown or the tree is empty.
func (t *LazyPersistent[T, V]) LowerBound(version int, predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	assert(0 <= version && version < len(t.roots), "segtree: unknown version")
	assert(t.n > 0, "segtree: lower bound on empty tree")
	return t.lowerBound(t.roots[version], 0, t.n-1, predicate, g, target)
}

func (t *LazyPersistent[T, V]) lowerBound(cur, i, j int, predicate func(left, target V) bool, g func(left, target V) V, target V) int {
	if t.hasPending(cur) {
		t.push(cur, i, j)
	}
	if i == j {
		return i
	}
	mid := (i + j) / 2
	left := t.alg.LeftChild(t.nodes[cur])
	// The left child's value is only correct post-push.
	if t.hasPending(left) {
		t.push(left, i, mid)
	}
	right := t.alg.RightChild(t.nodes[cur])
	leftValue := t.alg.Value(t.nodes[left])
	if predicate(leftValue, target) {
		return t.lowerBound(left, i, mid, predicate, g, target)
	}
	return t.lowerBound(right, mid+1, j, predicate, g, g(leftValue, target))
}
