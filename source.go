// -*- tab-width:2 -*-

// Package stoch provides seedable samplers over common continuous
// distributions and a Poisson arrival process simulator with a
// virtual-time replay loop to generate statistics
package stoch

import (
	count "github.com/jayalane/go-counter"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EventCB is called by a source for each arrival it generates.
type EventCB func(s *Source, t Milliseconds)

// SourceConf configures a Poisson arrival source. Lambda is in
// arrivals per millisecond. A zero Seed leaves the sampler on the
// global source.
type SourceConf struct {
	Name    string
	Lambda  float64
	Seed    uint64
	OnEvent EventCB
}

// Source is a Poisson source of arrival events.
type Source struct {
	name      string
	lambda    float64
	gaps      distuv.Exponential
	nextEvent Milliseconds
	onEvent   EventCB
	rec       *Recorder
	times     []float64
	loop      *Loop
}

// Name returns the configured source name.
func (s *Source) Name() string {
	return s.name
}

// Recorder returns the per-millisecond recorder for this source.
func (s *Source) Recorder() *Recorder {
	return s.rec
}

// Times returns the arrival times generated so far.
func (s *Source) Times() []float64 {
	return append([]float64(nil), s.times...)
}

// GenerateEvent for a source emits one arrival at time t.
func (s *Source) GenerateEvent(t Milliseconds) {
	count.Incr("source_generated")

	s.times = append(s.times, float64(t))
	s.rec.Observe()

	if s.onEvent != nil {
		s.onEvent(s, t)
	}
}

// NextMillisecond runs all the arrivals due in the last ms for a source.
func (s *Source) NextMillisecond() {
	numThisMs := float64(0)

	ml.Ln(s.name+": source running next ms", s.loop.GetTime())

	if s.nextEvent <= 0 {
		gap := s.gaps.Rand()
		s.nextEvent += Milliseconds(gap + s.loop.GetTime())

		ml.Ln("Source", s.name, "first arrival in", gap, "ms")
	}

	for Milliseconds(s.loop.GetTime()) > s.nextEvent {
		s.GenerateEvent(s.nextEvent)

		numThisMs++

		gap := s.gaps.Rand()
		count.MarkDistribution("gap-"+s.name, gap)
		s.nextEvent += Milliseconds(gap)

		ml.Ln(s.name+": source next arrival in", gap, "ms", s.loop.GetTime())
	}

	s.rec.Tick()
	count.MarkDistribution("eventsPerMs-"+s.name, numThisMs)
}

// MakeSource turns a source configuration into the source and adds it
// to the loop.
func MakeSource(conf *SourceConf, l *Loop) (*Source, error) {
	if conf.Lambda <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"source %s needs lambda > 0, got %f", conf.Name, conf.Lambda)
	}

	var src rand.Source
	if conf.Seed != 0 {
		src = rand.NewSource(conf.Seed)
	}

	source := Source{
		name:    conf.Name,
		lambda:  conf.Lambda,
		gaps:    distuv.Exponential{Rate: conf.Lambda, Src: src},
		onEvent: conf.OnEvent,
		rec:     NewRecorder(conf.Name),
	}
	l.AddSource(&source)

	return &source, nil
}
