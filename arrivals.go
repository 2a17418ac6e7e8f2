// -*- tab-width:2 -*-

// Package stoch provides seedable samplers over common continuous
// distributions and a Poisson arrival process simulator with a
// virtual-time replay loop to generate statistics
package stoch

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidParameter is returned when a distribution or simulation
// parameter is outside its legal range.
var ErrInvalidParameter = errors.New("invalid parameter")

// Arrivals simulates a Poisson arrival process: it draws n i.i.d.
// exponential inter-arrival gaps with mean 1/rate from src and prefix
// sums them into cumulative arrival times. The result has length n and
// is non-decreasing since the gaps are never negative. A nil src falls
// back to the global source.
func Arrivals(n int, rate float64, src rand.Source) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"n must be >= 1, got %d", n)
	}

	if rate <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"rate must be > 0, got %f", rate)
	}

	gaps := distuv.Exponential{Rate: rate, Src: src}
	times := make([]float64, n)
	total := float64(0)

	for i := range times {
		total += gaps.Rand()
		times[i] = total
	}

	return times, nil
}

// Gaps recovers the inter-arrival gaps from a cumulative arrival-time
// sequence. It is the inverse of the prefix sum in Arrivals.
func Gaps(times []float64) []float64 {
	gaps := make([]float64, len(times))
	prev := float64(0)

	for i, t := range times {
		gaps[i] = t - prev
		prev = t
	}

	return gaps
}
