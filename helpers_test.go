package segtree

import "testing"

// concatAlgebra glues string fragments. Deliberately non-commutative, to
// catch engines that fold out of range order.
type concatAlgebra struct{}

func (concatAlgebra) Init(value string) string   { return value }
func (concatAlgebra) Combine(a, b string) string { return a + b }
func (concatAlgebra) Value(n string) string      { return n }

func iotaInts(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

func sumOf(values []int, left, right int) int {
	s := 0
	for i := left; i <= right; i++ {
		s += values[i]
	}
	return s
}

// bruteLowerBound is the linear-scan reference for a prefix-sum threshold
// search: smallest index u with sum(values[0..u]) >= target, or the last
// index if no prefix reaches the target.
func bruteLowerBound(values []int, target int) int {
	sum := 0
	for i, v := range values {
		sum += v
		if sum >= target {
			return i
		}
	}
	return len(values) - 1
}

func geq(left, target int) bool     { return left >= target }
func residual(left, target int) int { return target - left }

func expectPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic: %s", msg)
		}
	}()
	f()
}
