package agg

// MaxSubarraySum answers the maximum-subarray-sum query over a range. The
// node caches the range sum and the best prefix/suffix sums; Combine
// reconstructs all four fields from its two operands alone, which is what
// makes the query decomposable over adjacent ranges.
type MaxSubarraySum struct {
	best   int64
	prefix int64
	suffix int64
	sum    int64
}

// Value returns the maximum subarray sum of the range.
func (n MaxSubarraySum) Value() int64 { return n.best }

// MaxSubarraySumAlgebra aggregates MaxSubarraySum nodes; aggregate
// capability only.
type MaxSubarraySumAlgebra struct{}

// Init creates a one-element node; all cached fields start at the element.
func (MaxSubarraySumAlgebra) Init(value int64) MaxSubarraySum {
	return MaxSubarraySum{best: value, prefix: value, suffix: value, sum: value}
}

// Combine merges adjacent ranges. The best subarray lies entirely in a,
// entirely in b, or straddles the seam as a's best suffix plus b's best
// prefix.
func (MaxSubarraySumAlgebra) Combine(a, b MaxSubarraySum) MaxSubarraySum {
	return MaxSubarraySum{
		best:   max(a.best, b.best, a.suffix+b.prefix),
		prefix: max(a.prefix, a.sum+b.prefix),
		suffix: max(b.suffix, b.sum+a.suffix),
		sum:    a.sum + b.sum,
	}
}

// Value reads the maximum subarray sum.
func (MaxSubarraySumAlgebra) Value(n MaxSubarraySum) int64 { return n.best }

// MaxSubarraySums initializes a leaf row from scalar values.
func MaxSubarraySums(values []int64) []MaxSubarraySum {
	var alg MaxSubarraySumAlgebra
	out := make([]MaxSubarraySum, len(values))
	for i, v := range values {
		out[i] = alg.Init(v)
	}
	return out
}
