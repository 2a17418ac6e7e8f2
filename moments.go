// -*- tab-width:2 -*-

package stoch

// This file has empirical moment helpers over sample slices

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Moments returns the sample mean and unbiased sample variance of xs.
func Moments(xs []float64) (float64, float64) {
	return stat.MeanVariance(xs, nil)
}

// EmpiricalMGF returns the empirical moment generating function of xs,
// the sample average of exp(t*x). For large samples it approaches the
// closed-form MGF of the generating distribution.
func EmpiricalMGF(xs []float64) MomentGenFunc {
	samples := append([]float64(nil), xs...)

	return func(t float64) float64 {
		if len(samples) == 0 {
			return math.NaN()
		}

		sum := float64(0)
		for _, x := range samples {
			sum += math.Exp(t * x)
		}

		return sum / float64(len(samples))
	}
}
