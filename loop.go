// -*- tab-width:2 -*-

package stoch

// Loop is the main driver for a replay
// call Run() after adding all the
// sources.
type Loop struct {
	name    string
	time    float64
	sources []*Source
}

// NewLoop initializes and returns a replay main loop.
func NewLoop(name string) *Loop {
	return &Loop{name: name}
}

// GetTime returns the current virtual time in ms.
func (l *Loop) GetTime() float64 {
	return l.time
}

// AddSource adds an arrival generator into Loop's internals.
func (l *Loop) AddSource(s *Source) {
	l.sources = append(l.sources, s)
	s.loop = l
}

// Run advances the virtual clock one millisecond at a time for length
// ms, driving every source inline. The loop is single threaded and
// never blocks.
func (l *Loop) Run(length float64) {
	for ; l.time < length; l.time++ {
		for _, s := range l.sources {
			s.NextMillisecond()
		}
	}
}

// Merged returns the superposed arrival sequence across all sources.
func (l *Loop) Merged() []float64 {
	seqs := make([][]float64, len(l.sources))
	for i, s := range l.sources {
		seqs[i] = s.Times()
	}

	return Merge(seqs...)
}

// Stats logs the accumulated stats for the run.
func (l *Loop) Stats() {
	ml.La(l.name+": replay ran for", l.time, "ms")

	for _, s := range l.sources {
		ml.La(s.name, "arrivals", s.rec.Total(),
			"empirical rate/ms", s.rec.Rate(),
			"configured lambda", s.lambda)
	}
}
