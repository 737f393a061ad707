// Package dist holds the closed-form failure-time distribution families
// shared by the rank-regression and maximum-likelihood fitters.
package dist

import "math"

// Distribution is the capability set a fitter needs from a failure-time
// family: pointwise evaluation, censored log-likelihood assembly, and the
// transform pair that maps (t, F(t)) onto the family's probability-plot line.
type Distribution interface {
	Density(t float64) float64
	DensityEach(ts []float64) []float64
	LogDensity(t float64) float64
	CDF(t float64) float64
	CDFEach(ts []float64) []float64
	Reliability(t float64) float64
	ReliabilityEach(ts []float64) []float64

	// NegLogLikelihood is -(sum log cdf over left-censored entries
	// + sum log pdf over observed failures
	// + sum log reliability over right-censored entries).
	NegLogLikelihood(left, observed, right []float64) float64

	// TransformTime and TransformProb map a (time, probability) pair onto
	// the family's probability-plot line; the Inverse functions undo them.
	TransformTime(t float64) float64
	InverseTransformTime(x float64) float64
	TransformProb(p float64) float64
	InverseTransformProb(y float64) float64
}

func each(f func(float64) float64, ts []float64) []float64 {
	res := make([]float64, len(ts))
	for i, t := range ts {
		res[i] = f(t)
	}
	return res
}

// negLogLikelihood assembles the censored likelihood from the generic
// capability set. Families with exact log forms implement their own.
func negLogLikelihood(d Distribution, left, observed, right []float64) float64 {
	ll := 0.0
	for _, t := range left {
		ll += math.Log(d.CDF(t))
	}
	for _, t := range observed {
		ll += d.LogDensity(t)
	}
	for _, t := range right {
		ll += math.Log(d.Reliability(t))
	}
	return -ll
}
