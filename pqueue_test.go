// -*- tab-width:2 -*-

package stoch

import (
	"container/heap"
	"testing"
)

// TestPQueueOrder pushes arrival times in scrambled order and checks
// that they pop earliest first.
func TestPQueueOrder(t *testing.T) {
	pq := make(PQueue, 0)
	heap.Init(&pq)

	for _, x := range []float64{5.5, 0.25, 3, 1, 4.75} {
		heap.Push(&pq, &Item{time: x})
	}

	prev := -1.0

	for pq.Len() > 0 {
		item, ok := heap.Pop(&pq).(*Item)
		if !ok {
			t.Fatal("type conversion failed in test")
		}

		if item.time < prev {
			t.Fatalf("pqueue out of order: %f after %f", item.time, prev)
		}

		prev = item.time
	}
}

func TestMerge(t *testing.T) {
	a := []float64{1, 4, 9}
	b := []float64{2, 3, 10}
	c := []float64{}

	merged := Merge(a, b, c)

	want := []float64{1, 2, 3, 4, 9, 10}
	if len(merged) != len(want) {
		t.Fatalf("merged length %d, want %d", len(merged), len(want))
	}

	for i, x := range want {
		if merged[i] != x {
			t.Fatalf("merged[%d] = %f, want %f", i, merged[i], x)
		}
	}
}

func TestMergeEmpty(t *testing.T) {
	if len(Merge()) != 0 {
		t.Fatal("merge of nothing should be empty")
	}

	if len(Merge(nil, []float64{})) != 0 {
		t.Fatal("merge of empty sequences should be empty")
	}
}
