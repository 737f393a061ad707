package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Weibull is the two-parameter Weibull family. Defined for strictly positive
// times and parameters.
type Weibull struct {
	Alpha float64 // scale
	Beta  float64 // shape
}

var _ Distribution = Weibull{}

func (w Weibull) dist() distuv.Weibull {
	return distuv.Weibull{K: w.Beta, Lambda: w.Alpha}
}

func (w Weibull) String() string {
	return fmt.Sprintf("Weibull(alpha=%v, beta=%v)", w.Alpha, w.Beta)
}

func (w Weibull) Density(t float64) float64 { return w.dist().Prob(t) }

func (w Weibull) DensityEach(ts []float64) []float64 { return each(w.Density, ts) }

func (w Weibull) LogDensity(t float64) float64 { return w.dist().LogProb(t) }

func (w Weibull) CDF(t float64) float64 { return w.dist().CDF(t) }

func (w Weibull) CDFEach(ts []float64) []float64 { return each(w.CDF, ts) }

func (w Weibull) Reliability(t float64) float64 { return w.dist().Survival(t) }

func (w Weibull) ReliabilityEach(ts []float64) []float64 { return each(w.Reliability, ts) }

// NegLogLikelihood uses the exact log forms of the Weibull cdf and
// reliability, which stay finite deep into the right tail.
func (w Weibull) NegLogLikelihood(left, observed, right []float64) float64 {
	ll := 0.0
	for _, t := range left {
		// log F = log(1 - exp(-(t/alpha)^beta))
		ll += math.Log(-math.Expm1(-math.Pow(t/w.Alpha, w.Beta)))
	}
	for _, t := range observed {
		ll += w.LogDensity(t)
	}
	for _, t := range right {
		// log R = -(t/alpha)^beta
		ll -= math.Pow(t/w.Alpha, w.Beta)
	}
	return -ll
}

// TransformTime is the probability-plot abscissa, log t.
func (w Weibull) TransformTime(t float64) float64 { return math.Log(t) }

func (w Weibull) InverseTransformTime(x float64) float64 { return math.Exp(x) }

// TransformProb is the probability-plot ordinate, log log 1/(1-p).
func (w Weibull) TransformProb(p float64) float64 { return math.Log(math.Log(1 / (1 - p))) }

func (w Weibull) InverseTransformProb(y float64) float64 { return 1 - math.Exp(-math.Exp(y)) }

// Linearized evaluates the fitted probability-plot line at time t.
func (w Weibull) Linearized(t float64) float64 {
	return w.Beta * (math.Log(t) - math.Log(w.Alpha))
}

// InverseLinearized recovers the time at which the fitted line reaches y.
func (w Weibull) InverseLinearized(y float64) float64 {
	return math.Exp(y/w.Beta + math.Log(w.Alpha))
}

// Mean returns alpha * Gamma(1 + 1/beta).
func (w Weibull) Mean() float64 { return w.dist().Mean() }

// Sample draws n variates. A nil src uses the global random source.
func (w Weibull) Sample(n int, src rand.Source) []float64 {
	d := w.dist()
	d.Src = src
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Rand()
	}
	return res
}
