package segtree

import (
	"testing"

	"github.com/N9199/seg-tree/agg"
	"github.com/N9199/seg-tree/node"
)

func buildLazySum(t *testing.T, values []int) *Lazy[agg.Sum[int], int] {
	t.Helper()
	tree, err := BuildLazy[agg.Sum[int], int](agg.SumAlgebra[int]{}, agg.Sums(values))
	if err != nil {
		t.Fatalf(err.Error())
	}
	return tree
}

func TestLazySumRangeUpdate(t *testing.T) {
	tree := buildLazySum(t, iotaInts(11))
	tree.Update(0, 9, 20)
	if n, ok := tree.Query(0, 1); !ok || n.Value() != 41 {
		t.Errorf("sum of [0,1] after +20 over [0,9]: expected 41, got %v", n.Value())
	}
	if n, ok := tree.Query(0, 10); !ok || n.Value() != 255 {
		t.Errorf("sum of [0,10]: expected 255, got %v", n.Value())
	}
	if n, ok := tree.Query(10, 10); !ok || n.Value() != 10 {
		t.Errorf("leaf 10 is outside the update, expected 10, got %v", n.Value())
	}
}

func TestLazyPerLeafAfterRangeUpdate(t *testing.T) {
	tree := buildLazySum(t, iotaInts(16))
	tree.Update(0, 15, 1)
	for i := 0; i < 16; i++ {
		if n, ok := tree.Query(i, i); !ok || n.Value() != i+1 {
			t.Errorf("leaf %d: expected %d, got %v", i, i+1, n.Value())
		}
	}
}

// Paint semantics via the LazySet wrapper: the second paint of a range wins.
func TestLazyPaintRange(t *testing.T) {
	alg := node.NewLazySet[agg.Min[int], int](agg.MinAlgebra[int]{})
	leaves := make([]node.LazySet[agg.Min[int], int], 11)
	for i := range leaves {
		leaves[i] = alg.Init(i)
	}
	tree, err := BuildLazy[node.LazySet[agg.Min[int], int], int](alg, leaves)
	if err != nil {
		t.Fatalf(err.Error())
	}
	tree.Update(3, 7, 100)
	if n, ok := tree.Query(3, 7); !ok || alg.Value(n) != 100 {
		t.Errorf("min of painted [3,7]: expected 100, got %v", alg.Value(n))
	}
	if n, ok := tree.Query(0, 10); !ok || alg.Value(n) != 0 {
		t.Errorf("min of [0,10]: expected 0, got %v", alg.Value(n))
	}
	tree.Update(3, 7, 1)
	if n, ok := tree.Query(4, 6); !ok || alg.Value(n) != 1 {
		t.Errorf("second paint should win: expected 1, got %v", alg.Value(n))
	}
}

// Staged range updates must be fully visible to the prefix search.
func TestLazyLowerBoundSeesStagedUpdates(t *testing.T) {
	values := iotaInts(10)
	tree := buildLazySum(t, values)
	tree.Update(0, 4, 10)
	for i := 0; i < 5; i++ {
		values[i] += 10
	}
	sum := 0
	for _, v := range values {
		sum += v
		if u, want := tree.LowerBound(geq, residual, sum), bruteLowerBound(values, sum); u != want {
			t.Errorf("target %d: expected index %d, got %d", sum, want, u)
		}
	}
}

func TestLazyOverlappingUpdates(t *testing.T) {
	values := iotaInts(11)
	tree := buildLazySum(t, values)
	tree.Update(0, 6, 5)
	tree.Update(4, 10, 3)
	for i := 0; i <= 6; i++ {
		values[i] += 5
	}
	for i := 4; i <= 10; i++ {
		values[i] += 3
	}
	for left := 0; left < 11; left++ {
		for right := left; right < 11; right++ {
			n, ok := tree.Query(left, right)
			if !ok || n.Value() != sumOf(values, left, right) {
				t.Errorf("sum of [%d,%d]: expected %d, got %v", left, right, sumOf(values, left, right), n.Value())
			}
		}
	}
}

func TestLazyEmptyQuery(t *testing.T) {
	tree := buildLazySum(t, iotaInts(11))
	if _, ok := tree.Query(7, 3); ok {
		t.Errorf("empty range should yield an absent result")
	}
}

func TestLazyEmptyUpdateRange(t *testing.T) {
	tree := buildLazySum(t, iotaInts(11))
	expectPanic(t, "empty update range", func() {
		tree.Update(5, 4, 1)
	})
}
