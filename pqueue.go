// -*- tab-width:2 -*-

package stoch

import (
	"container/heap"
)

// An Item is one pending arrival time in the queue plus the stream it
// came from.
type Item struct {
	time   float64
	stream int
	pos    int
	// The index is needed by update and is maintained by the heap.Interface methods.
	index int // The index of the item in the heap.
}

// A PQueue implements heap.Interface and holds Items.
type PQueue []*Item

func (pq PQueue) Len() int { return len(pq) }

func (pq PQueue) Less(i, j int) bool {
	// We want Pop to give us the earliest arrival so we use less than here.
	return pq[i].time < pq[j].time
}

func (pq PQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds a value to the pqueue - called by
// heap.Interface
func (pq *PQueue) Push(x any) {
	n := len(*pq)
	item := x.(*Item)
	item.index = n
	*pq = append(*pq, item)
}

// Pop removes a value from the pqueue -
// called by heap.Interface
func (pq *PQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]

	return item
}

// Merge superposes several arrival-time sequences into one time-ordered
// sequence. Each input must already be non-decreasing, as Arrivals
// guarantees.
func Merge(seqs ...[]float64) []float64 {
	total := 0
	pq := make(PQueue, 0, len(seqs))

	for s, seq := range seqs {
		total += len(seq)
		if len(seq) > 0 {
			pq = append(pq, &Item{time: seq[0], stream: s})
		}
	}

	heap.Init(&pq)

	merged := make([]float64, 0, total)

	for pq.Len() > 0 {
		item, ok := heap.Pop(&pq).(*Item)
		if !ok {
			panic("type conversion failed in pqueue")
		}

		merged = append(merged, item.time)

		seq := seqs[item.stream]
		if item.pos+1 < len(seq) {
			item.pos++
			item.time = seq[item.pos]
			heap.Push(&pq, item)
		}
	}

	return merged
}
