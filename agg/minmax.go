package agg

import "cmp"

// Min is a range-minimum node.
type Min[V cmp.Ordered] struct {
	value V
}

// Value returns the range minimum.
func (n Min[V]) Value() V { return n.value }

// MinAlgebra aggregates Min nodes. It grants the aggregate capability only;
// wrap it (node.NewLazySet, node.NewVersioned) for lazy or persistent use.
type MinAlgebra[V cmp.Ordered] struct{}

// Init creates a one-element node.
func (MinAlgebra[V]) Init(value V) Min[V] { return Min[V]{value: value} }

// Combine keeps the smaller of the two range minima.
func (MinAlgebra[V]) Combine(a, b Min[V]) Min[V] {
	return Min[V]{value: min(a.value, b.value)}
}

// Value reads the range minimum.
func (MinAlgebra[V]) Value(n Min[V]) V { return n.value }

// Mins initializes a leaf row from scalar values.
func Mins[V cmp.Ordered](values []V) []Min[V] {
	var alg MinAlgebra[V]
	out := make([]Min[V], len(values))
	for i, v := range values {
		out[i] = alg.Init(v)
	}
	return out
}

// Max is a range-maximum node.
type Max[V cmp.Ordered] struct {
	value V
}

// Value returns the range maximum.
func (n Max[V]) Value() V { return n.value }

// MaxAlgebra aggregates Max nodes; aggregate capability only.
type MaxAlgebra[V cmp.Ordered] struct{}

// Init creates a one-element node.
func (MaxAlgebra[V]) Init(value V) Max[V] { return Max[V]{value: value} }

// Combine keeps the larger of the two range maxima.
func (MaxAlgebra[V]) Combine(a, b Max[V]) Max[V] {
	return Max[V]{value: max(a.value, b.value)}
}

// Value reads the range maximum.
func (MaxAlgebra[V]) Value(n Max[V]) V { return n.value }

// Maxs initializes a leaf row from scalar values.
func Maxs[V cmp.Ordered](values []V) []Max[V] {
	var alg MaxAlgebra[V]
	out := make([]Max[V], len(values))
	for i, v := range values {
		out[i] = alg.Init(v)
	}
	return out
}
