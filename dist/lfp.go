package dist

import (
	"fmt"
	"math"
)

// LFP restricts a failure-time family to a susceptible fraction P of the
// population: density p*f, cdf p*F, reliability 1 - p*F. The remaining
// fraction 1-P never fails, so the cdf saturates at P instead of 1.
type LFP struct {
	D Distribution
	P float64 // susceptible fraction, in [0, 1]
}

var _ Distribution = LFP{}

func (l LFP) String() string {
	return fmt.Sprintf("LFP(p=%v, %v)", l.P, l.D)
}

func (l LFP) Density(t float64) float64 { return l.P * l.D.Density(t) }

func (l LFP) DensityEach(ts []float64) []float64 { return each(l.Density, ts) }

func (l LFP) LogDensity(t float64) float64 { return math.Log(l.P) + l.D.LogDensity(t) }

func (l LFP) CDF(t float64) float64 { return l.P * l.D.CDF(t) }

func (l LFP) CDFEach(ts []float64) []float64 { return each(l.CDF, ts) }

func (l LFP) Reliability(t float64) float64 { return 1 - l.P*l.D.CDF(t) }

func (l LFP) ReliabilityEach(ts []float64) []float64 { return each(l.Reliability, ts) }

func (l LFP) NegLogLikelihood(left, observed, right []float64) float64 {
	return negLogLikelihood(l, left, observed, right)
}

func (l LFP) TransformTime(t float64) float64 { return l.D.TransformTime(t) }

func (l LFP) InverseTransformTime(x float64) float64 { return l.D.InverseTransformTime(x) }

func (l LFP) TransformProb(p float64) float64 { return l.D.TransformProb(p) }

func (l LFP) InverseTransformProb(y float64) float64 { return l.D.InverseTransformProb(y) }
