package quiz

import (
	"sort"
	"testing"
)

func TestOrder_IsPermutation(t *testing.T) {
	sizes := []int{0, 1, 2, 5, 37, 200}
	rng := NewRand(11)

	for _, n := range sizes {
		o := NewOrder(n, rng)
		got := o.Indices()
		if len(got) != n {
			t.Fatalf("n=%d: got %d indices", n, len(got))
		}
		sort.Ints(got)
		for i, v := range got {
			if v != i {
				t.Fatalf("n=%d: sorted indices[%d] = %d, not a permutation", n, i, v)
			}
		}
	}
}

func TestOrder_ExhaustsAfterFullCycle(t *testing.T) {
	o := NewOrder(3, NewRand(2))
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		idx, ok := o.Next()
		if !ok {
			t.Fatalf("Next() #%d returned !ok", i)
		}
		if seen[idx] {
			t.Fatalf("index %d repeated within a cycle", idx)
		}
		seen[idx] = true
		if o.Exhausted() {
			t.Fatal("exhausted before cycle ended")
		}
	}

	if _, ok := o.Next(); ok {
		t.Fatal("expected Next() past the end to fail")
	}
	if !o.Exhausted() {
		t.Error("expected exhausted flag")
	}
	if o.Position() != o.Len() {
		t.Errorf("pointer %d exceeds length %d", o.Position(), o.Len())
	}
}

func TestOrder_ReshuffleStartsNewCycle(t *testing.T) {
	rng := NewRand(4)
	o := NewOrder(4, rng)
	for {
		if _, ok := o.Next(); !ok {
			break
		}
	}

	o.Reshuffle(4, rng)
	if o.Exhausted() {
		t.Error("reshuffle should clear exhausted")
	}
	if o.Position() != 0 {
		t.Errorf("Position() = %d, want 0", o.Position())
	}
	if o.Cycle() != 2 {
		t.Errorf("Cycle() = %d, want 2", o.Cycle())
	}
}

func TestSampleInOrder(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	rng := NewRand(8)
	for i := 0; i < 50; i++ {
		got := sampleInOrder(rng, pool, 2)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0] >= got[1] {
			t.Fatalf("sample %v not in source order", got)
		}
	}

	if got := sampleInOrder(rng, pool[:1], 2); len(got) != 1 || got[0] != "a" {
		t.Errorf("short pool: got %v", got)
	}
}

func TestSampleExcluding(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	rng := NewRand(6)
	for i := 0; i < 50; i++ {
		got := sampleExcluding(rng, pool, 3, "b")
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		for _, v := range got {
			if v == "b" {
				t.Fatal("excluded value sampled")
			}
		}
	}
	if got := sampleExcluding(rng, pool, 10, "a"); len(got) != 3 {
		t.Errorf("oversized n: got %d, want 3", len(got))
	}
}
