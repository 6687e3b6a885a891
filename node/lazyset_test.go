package node

import "testing"

// intSum is a minimal aggregate algebra over bare int nodes, enough to
// exercise the capability wrappers without pulling in the aggregators.
type intSum struct{}

func (intSum) Init(v int) int       { return v }
func (intSum) Combine(a, b int) int { return a + b }
func (intSum) Value(n int) int      { return n }

var _ Algebra[int, int] = intSum{}

func TestLazySetSlotLifecycle(t *testing.T) {
	alg := NewLazySet[int, int](intSum{})
	n := alg.Init(3)
	if _, ok := alg.LazyValue(&n); ok {
		t.Errorf("fresh node must have an empty pending slot")
	}
	alg.UpdateLazyValue(&n, 5)
	if v, ok := alg.LazyValue(&n); !ok || v != 5 {
		t.Errorf("after staging: expected pending 5, got %d (present=%v)", v, ok)
	}
	alg.LazyUpdate(&n, 0, 0)
	if _, ok := alg.LazyValue(&n); ok {
		t.Errorf("after absorbing: pending slot must be empty")
	}
	if alg.Value(n) != 5 {
		t.Errorf("absorbed node must carry the painted value, got %d", alg.Value(n))
	}
}

func TestLazySetSecondPaintWins(t *testing.T) {
	alg := NewLazySet[int, int](intSum{})
	n := alg.Init(1)
	alg.UpdateLazyValue(&n, 7)
	alg.UpdateLazyValue(&n, 2)
	if v, ok := alg.LazyValue(&n); !ok || v != 2 {
		t.Errorf("expected the later paint to overwrite, got %d", v)
	}
}

func TestLazySetUpdateWithoutStage(t *testing.T) {
	alg := NewLazySet[int, int](intSum{})
	n := alg.Init(9)
	alg.LazyUpdate(&n, 0, 3)
	if alg.Value(n) != 9 {
		t.Errorf("absorbing an empty slot must be a no-op, got %d", alg.Value(n))
	}
}

func TestLazySetCombineClearsPending(t *testing.T) {
	alg := NewLazySet[int, int](intSum{})
	x, y := alg.Init(1), alg.Init(2)
	alg.UpdateLazyValue(&x, 7)
	z := alg.Combine(x, y)
	if _, ok := alg.LazyValue(&z); ok {
		t.Errorf("a combined node must start with an empty pending slot")
	}
}
