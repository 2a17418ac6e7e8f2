// -*- tab-width:2 -*-

package stoch

// This file tracks per-millisecond arrival counts for a source

import (
	"sync"

	count "github.com/jayalane/go-counter"
)

// Recorder accumulates arrival counts per simulated millisecond.
type Recorder struct {
	mu         sync.RWMutex
	name       string
	currentMs  float64
	historical []float64 // Per-millisecond history for analysis
	total      uint64
}

// NewRecorder returns an empty recorder for the named source.
func NewRecorder(name string) *Recorder {
	return &Recorder{
		name:       name,
		historical: make([]float64, 0),
	}
}

// Observe records one arrival in the current millisecond.
func (r *Recorder) Observe() {
	r.mu.Lock()
	r.currentMs++
	r.total++
	r.mu.Unlock()

	count.IncrSyncSuffix("recorder_arrival", r.name)
}

// Tick closes out the current millisecond and appends its count to the
// history.
func (r *Recorder) Tick() {
	r.mu.Lock()
	r.historical = append(r.historical, r.currentMs)
	r.currentMs = 0
	r.mu.Unlock()
}

// Total returns the number of arrivals observed so far.
func (r *Recorder) Total() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.total
}

// History returns the per-millisecond counts for analysis.
func (r *Recorder) History() []float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]float64(nil), r.historical...)
}

// Rate returns the empirical arrival rate in events per millisecond
// over the recorded history.
func (r *Recorder) Rate() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.historical) == 0 {
		return 0
	}

	return float64(r.total) / float64(len(r.historical))
}
