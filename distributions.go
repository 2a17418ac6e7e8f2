// -*- tab-width:2 -*-

// Package stoch provides seedable samplers over common continuous
// distributions and a Poisson arrival process simulator with a
// virtual-time replay loop to generate statistics
package stoch

// This file has the distribution layer and closed-form MGFs

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dist is the query surface shared by the supported continuous
// distributions. The gonum distuv values satisfy it directly.
type Dist interface {
	Rand() float64
	Prob(x float64) float64
	CDF(x float64) float64
	Mean() float64
	Variance() float64
}

// MomentGenFunc evaluates a moment generating function M(t) = E[exp(tX)].
// Outside the domain of convergence it returns +Inf.
type MomentGenFunc func(t float64) float64

// NewUniform returns a uniform distribution over [min, max) drawing from
// src. A nil src falls back to the global source.
func NewUniform(min, max float64, src rand.Source) (Dist, error) {
	if min >= max {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"uniform needs min < max, got [%f, %f)", min, max)
	}

	return distuv.Uniform{Min: min, Max: max, Src: src}, nil
}

// NewNormal returns a normal distribution with mean mu and standard
// deviation sigma drawing from src.
func NewNormal(mu, sigma float64, src rand.Source) (Dist, error) {
	if sigma <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"normal needs sigma > 0, got %f", sigma)
	}

	return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}, nil
}

// NewExponential returns an exponential distribution with rate lambda
// (mean 1/lambda) drawing from src.
func NewExponential(lambda float64, src rand.Source) (Dist, error) {
	if lambda <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"exponential needs rate > 0, got %f", lambda)
	}

	return distuv.Exponential{Rate: lambda, Src: src}, nil
}

// NewGamma returns a gamma distribution with shape alpha and rate beta
// drawing from src.
func NewGamma(alpha, beta float64, src rand.Source) (Dist, error) {
	if alpha <= 0 || beta <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"gamma needs alpha > 0 and beta > 0, got %f and %f", alpha, beta)
	}

	return distuv.Gamma{Alpha: alpha, Beta: beta, Src: src}, nil
}

// UniformMGF returns the MGF of a uniform random variable over [a, b].
func UniformMGF(a, b float64) MomentGenFunc {
	return func(t float64) float64 {
		if t == 0 {
			return 1
		}

		return (math.Exp(t*b) - math.Exp(t*a)) / (t * (b - a))
	}
}

// NormalMGF returns the MGF of a normal random variable with mean mu
// and standard deviation sigma.
func NormalMGF(mu, sigma float64) MomentGenFunc {
	return func(t float64) float64 {
		return math.Exp(mu*t + sigma*sigma*t*t/2)
	}
}

// ExponentialMGF returns the MGF of an exponential random variable with
// rate lambda. Finite only for t < lambda.
func ExponentialMGF(lambda float64) MomentGenFunc {
	return func(t float64) float64 {
		if t >= lambda {
			return math.Inf(1)
		}

		return lambda / (lambda - t)
	}
}

// GammaMGF returns the MGF of a gamma random variable with shape alpha
// and rate beta. Finite only for t < beta.
func GammaMGF(alpha, beta float64) MomentGenFunc {
	return func(t float64) float64 {
		if t >= beta {
			return math.Inf(1)
		}

		return math.Pow(1-t/beta, -alpha)
	}
}
