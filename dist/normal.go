package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is the Gaussian family with mean Mu and standard deviation Sigma.
// Defined for any real time.
type Normal struct {
	Mu    float64 // location
	Sigma float64 // scale
}

var _ Distribution = Normal{}

func (nd Normal) dist() distuv.Normal {
	return distuv.Normal{Mu: nd.Mu, Sigma: nd.Sigma}
}

func (nd Normal) String() string {
	return fmt.Sprintf("Normal(mu=%v, sigma=%v)", nd.Mu, nd.Sigma)
}

func (nd Normal) Density(t float64) float64 { return nd.dist().Prob(t) }

func (nd Normal) DensityEach(ts []float64) []float64 { return each(nd.Density, ts) }

func (nd Normal) LogDensity(t float64) float64 { return nd.dist().LogProb(t) }

func (nd Normal) CDF(t float64) float64 { return nd.dist().CDF(t) }

func (nd Normal) CDFEach(ts []float64) []float64 { return each(nd.CDF, ts) }

func (nd Normal) Reliability(t float64) float64 { return nd.dist().Survival(t) }

func (nd Normal) ReliabilityEach(ts []float64) []float64 { return each(nd.Reliability, ts) }

func (nd Normal) NegLogLikelihood(left, observed, right []float64) float64 {
	return negLogLikelihood(nd, left, observed, right)
}

func (nd Normal) TransformTime(t float64) float64 { return t }

func (nd Normal) InverseTransformTime(x float64) float64 { return x }

// TransformProb is the standard normal quantile of p.
func (nd Normal) TransformProb(p float64) float64 { return distuv.UnitNormal.Quantile(p) }

func (nd Normal) InverseTransformProb(y float64) float64 { return distuv.UnitNormal.CDF(y) }

// Linearized evaluates the fitted probability-plot line at time t.
func (nd Normal) Linearized(t float64) float64 { return (t - nd.Mu) / nd.Sigma }

// InverseLinearized recovers the time at which the fitted line reaches y.
func (nd Normal) InverseLinearized(y float64) float64 { return nd.Mu + nd.Sigma*y }

// Mean returns mu.
func (nd Normal) Mean() float64 { return nd.Mu }

// Sample draws n variates. A nil src uses the global random source.
func (nd Normal) Sample(n int, src rand.Source) []float64 {
	d := nd.dist()
	d.Src = src
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Rand()
	}
	return res
}
