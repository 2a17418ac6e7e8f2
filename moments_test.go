// -*- tab-width:2 -*-

package stoch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMoments(t *testing.T) {
	mean, variance := Moments([]float64{1, 2, 3, 4})
	require.InDelta(t, 2.5, mean, 1e-12)
	require.InDelta(t, 5.0/3.0, variance, 1e-12)
}

func TestEmpiricalMGFConstant(t *testing.T) {
	emp := EmpiricalMGF([]float64{2, 2, 2})

	for _, tt := range []float64{-1, 0, 0.5, 2} {
		require.InDelta(t, math.Exp(2*tt), emp(tt), 1e-12)
	}

	require.True(t, math.IsNaN(EmpiricalMGF(nil)(1)))
}

// TestEmpiricalMGFConverges draws a large seeded exponential sample and
// checks the empirical MGF against the closed form inside its domain.
func TestEmpiricalMGFConverges(t *testing.T) {
	const samples = 50_000

	expo, err := NewExponential(2, rand.NewSource(5))
	require.NoError(t, err)

	xs := make([]float64, samples)
	for i := range xs {
		xs[i] = expo.Rand()
	}

	emp := EmpiricalMGF(xs)
	closed := ExponentialMGF(2)

	for _, tt := range []float64{-1, -0.5, 0, 0.5} {
		require.InDelta(t, closed(tt), emp(tt), 0.05)
	}
}
