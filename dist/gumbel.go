package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gumbel is the largest-extreme-value family with location Mu and scale
// Beta. Defined for any real time.
type Gumbel struct {
	Mu   float64 // location
	Beta float64 // scale
}

var _ Distribution = Gumbel{}

func (g Gumbel) dist() distuv.GumbelRight {
	return distuv.GumbelRight{Mu: g.Mu, Beta: g.Beta}
}

func (g Gumbel) String() string {
	return fmt.Sprintf("Gumbel(mu=%v, beta=%v)", g.Mu, g.Beta)
}

func (g Gumbel) Density(t float64) float64 { return g.dist().Prob(t) }

func (g Gumbel) DensityEach(ts []float64) []float64 { return each(g.Density, ts) }

func (g Gumbel) LogDensity(t float64) float64 { return g.dist().LogProb(t) }

func (g Gumbel) CDF(t float64) float64 { return g.dist().CDF(t) }

func (g Gumbel) CDFEach(ts []float64) []float64 { return each(g.CDF, ts) }

func (g Gumbel) Reliability(t float64) float64 { return g.dist().Survival(t) }

func (g Gumbel) ReliabilityEach(ts []float64) []float64 { return each(g.Reliability, ts) }

// NegLogLikelihood uses the exact log cdf, -exp(-(t-mu)/beta), for
// left-censored entries.
func (g Gumbel) NegLogLikelihood(left, observed, right []float64) float64 {
	ll := 0.0
	for _, t := range left {
		ll -= math.Exp(-(t - g.Mu) / g.Beta)
	}
	for _, t := range observed {
		ll += g.LogDensity(t)
	}
	for _, t := range right {
		ll += math.Log(g.Reliability(t))
	}
	return -ll
}

func (g Gumbel) TransformTime(t float64) float64 { return t }

func (g Gumbel) InverseTransformTime(x float64) float64 { return x }

// TransformProb is the probability-plot ordinate, -log(-log(p)).
func (g Gumbel) TransformProb(p float64) float64 { return -math.Log(-math.Log(p)) }

func (g Gumbel) InverseTransformProb(y float64) float64 { return math.Exp(-math.Exp(-y)) }

// Linearized evaluates the fitted probability-plot line at time t.
func (g Gumbel) Linearized(t float64) float64 { return (t - g.Mu) / g.Beta }

// InverseLinearized recovers the time at which the fitted line reaches y.
func (g Gumbel) InverseLinearized(y float64) float64 { return g.Mu + g.Beta*y }

// Mean returns mu + beta * EulerGamma.
func (g Gumbel) Mean() float64 { return g.dist().Mean() }

// Sample draws n variates. A nil src uses the global random source.
func (g Gumbel) Sample(n int, src rand.Source) []float64 {
	d := g.dist()
	d.Src = src
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Rand()
	}
	return res
}
