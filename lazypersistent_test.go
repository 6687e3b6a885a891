package segtree

import (
	"testing"

	"github.com/N9199/seg-tree/agg"
	"github.com/N9199/seg-tree/node"
)

func buildLazyPersistentSum(t *testing.T, values []int) *LazyPersistent[node.Versioned[agg.Sum[int]], int] {
	t.Helper()
	alg := node.NewVersionedLazy[agg.Sum[int], int](agg.SumAlgebra[int]{})
	tree, err := BuildLazyPersistent[node.Versioned[agg.Sum[int]], int](alg, node.WrapVersioned(agg.Sums(values)))
	if err != nil {
		t.Fatalf(err.Error())
	}
	return tree
}

func TestLazyPersistentBuild(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	if tree.Versions() != 1 {
		t.Fatalf("expected 1 version after build, got %d", tree.Versions())
	}
	if n, ok := tree.Query(0, 0, 10); !ok || n.Node.Value() != 55 {
		t.Errorf("sum of [0,10]: expected 55, got %v", n.Node.Value())
	}
}

func TestLazyPersistentRangeUpdate(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	v1 := tree.Update(0, 0, 10, 20)
	if v1 != 1 {
		t.Fatalf("expected new version id 1, got %d", v1)
	}
	if n, ok := tree.Query(1, 0, 10); !ok || n.Node.Value() != 275 {
		t.Errorf("sum of [0,10] in version 1: expected 275, got %v", n.Node.Value())
	}
	// The source version is untouched.
	if n, ok := tree.Query(0, 0, 10); !ok || n.Node.Value() != 55 {
		t.Errorf("sum of [0,10] in version 0: expected 55, got %v", n.Node.Value())
	}
}

// Two range updates branching off the same version must not see each other.
func TestLazyPersistentBranchedUpdate(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	v1 := tree.Update(0, 0, 10, 20)
	v2 := tree.Update(0, 1, 1, 20)
	if v1 != 1 || v2 != 2 {
		t.Fatalf("expected version ids 1 and 2, got %d and %d", v1, v2)
	}
	if n, ok := tree.Query(2, 0, 0); !ok || n.Node.Value() != 0 {
		t.Errorf("leaf 0 in version 2: expected 0, got %v", n.Node.Value())
	}
	if n, ok := tree.Query(2, 1, 1); !ok || n.Node.Value() != 21 {
		t.Errorf("leaf 1 in version 2: expected 21, got %v", n.Node.Value())
	}
	if n, ok := tree.Query(1, 1, 1); !ok || n.Node.Value() != 21 {
		t.Errorf("leaf 1 in version 1: expected 21, got %v", n.Node.Value())
	}
}

// Reads force pending values down and may grow the arena, but they never
// record versions and never change what a recorded root answers.
// A partially covering update recombines over siblings that lie outside
// the updated range; a sibling still carrying a pending value from an
// earlier version must contribute its current aggregate, not its stale
// materialized one.
func TestLazyPersistentPartialUpdateKeepsSiblingPending(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	v1 := tree.Update(0, 0, 10, 1)
	v2 := tree.Update(v1, 0, 2, 5)
	if n, ok := tree.Query(v2, 0, 10); !ok || n.Node.Value() != 81 {
		t.Errorf("sum of [0,10] in version 2: expected 81, got %v", n.Node.Value())
	}
	if n, ok := tree.Query(v2, 3, 10); !ok || n.Node.Value() != 60 {
		t.Errorf("sum of [3,10] in version 2: expected 60, got %v", n.Node.Value())
	}
	if n, ok := tree.Query(v2, 0, 2); !ok || n.Node.Value() != 21 {
		t.Errorf("sum of [0,2] in version 2: expected 21, got %v", n.Node.Value())
	}
	if n, ok := tree.Query(v1, 0, 10); !ok || n.Node.Value() != 66 {
		t.Errorf("sum of [0,10] in version 1: expected 66, got %v", n.Node.Value())
	}
	if n, ok := tree.Query(0, 0, 10); !ok || n.Node.Value() != 55 {
		t.Errorf("sum of [0,10] in version 0: expected 55, got %v", n.Node.Value())
	}
}

func TestLazyPersistentReadsRecordNoVersion(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	tree.Update(0, 0, 10, 20)
	tree.Update(0, 1, 1, 20)
	versions := tree.Versions()
	for v := 0; v < versions; v++ {
		for i := 0; i < 11; i++ {
			tree.Query(v, i, i)
		}
		tree.LowerBound(v, geq, residual, 10)
	}
	if tree.Versions() != versions {
		t.Errorf("reads must not record versions: expected %d, got %d", versions, tree.Versions())
	}
}

func TestLazyPersistentOldRootsStable(t *testing.T) {
	values := iotaInts(11)
	tree := buildLazyPersistentSum(t, values)
	v1 := tree.Update(0, 0, 10, 20)
	// Force pushes along version 1, then sweep version 0 twice.
	for i := 0; i < 11; i++ {
		tree.Query(v1, i, i)
	}
	for round := 0; round < 2; round++ {
		for left := 0; left < 11; left++ {
			for right := left; right < 11; right++ {
				n, ok := tree.Query(0, left, right)
				if !ok || n.Node.Value() != sumOf(values, left, right) {
					t.Errorf("version 0, sum of [%d,%d]: expected %d, got %v",
						left, right, sumOf(values, left, right), n.Node.Value())
				}
			}
		}
	}
}

func TestLazyPersistentLowerBound(t *testing.T) {
	values := iotaInts(10)
	tree := buildLazyPersistentSum(t, values)
	v1 := tree.Update(0, 0, 9, 1)
	for i := range values {
		values[i]++
	}
	sum := 0
	for _, v := range values {
		sum += v
		if u, want := tree.LowerBound(v1, geq, residual, sum), bruteLowerBound(values, sum); u != want {
			t.Errorf("target %d: expected index %d, got %d", sum, want, u)
		}
	}
}

func TestLazyPersistentEmptyQuery(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	if _, ok := tree.Query(0, 8, 2); ok {
		t.Errorf("empty range should yield an absent result")
	}
}

func TestLazyPersistentPreconditions(t *testing.T) {
	tree := buildLazyPersistentSum(t, iotaInts(11))
	expectPanic(t, "unknown version", func() {
		tree.Query(3, 0, 10)
	})
	expectPanic(t, "empty update range", func() {
		tree.Update(0, 5, 4, 1)
	})
}
