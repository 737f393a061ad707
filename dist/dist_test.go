package dist_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/veleda/reliability-algorithms/dist"
)

func TestWeibull_PointFunctions(t *testing.T) {
	w := dist.Weibull{Alpha: 2, Beta: 1} // exponential with mean 2

	assert.InDelta(t, 0.5*math.Exp(-1), w.Density(2), 1e-12)
	assert.InDelta(t, 1-math.Exp(-1), w.CDF(2), 1e-12)
	assert.InDelta(t, math.Exp(-1), w.Reliability(2), 1e-12)
	assert.InDelta(t, math.Log(0.5*math.Exp(-1)), w.LogDensity(2), 1e-12)
	assert.InDelta(t, 2, w.Mean(), 1e-12)
}

func TestGumbel_PointFunctions(t *testing.T) {
	g := dist.Gumbel{Mu: 0, Beta: 1}

	assert.InDelta(t, math.Exp(-1), g.CDF(0), 1e-12)
	assert.InDelta(t, math.Exp(-1), g.Density(0), 1e-12)
	assert.InDelta(t, 1-math.Exp(-1), g.Reliability(0), 1e-12)
	assert.InDelta(t, 0.57721566, g.Mean(), 1e-8)
}

func TestNormal_PointFunctions(t *testing.T) {
	nd := dist.Normal{Mu: 0, Sigma: 1}

	assert.InDelta(t, 0.3989422804, nd.Density(0), 1e-9)
	assert.InDelta(t, 0.5, nd.CDF(0), 1e-12)
	assert.InDelta(t, 0.5, nd.Reliability(0), 1e-12)
	assert.InDelta(t, 0.8413447461, nd.CDF(1), 1e-9)
	assert.Equal(t, 0.0, nd.Mean())
}

func TestEach_Alignment(t *testing.T) {
	w := dist.Weibull{Alpha: 10, Beta: 2}
	ts := []float64{1, 5, 10, 20}

	ds := w.DensityEach(ts)
	cs := w.CDFEach(ts)
	rs := w.ReliabilityEach(ts)

	require.Len(t, ds, len(ts))
	for i, tt := range ts {
		assert.Equal(t, w.Density(tt), ds[i])
		assert.Equal(t, w.CDF(tt), cs[i])
		assert.InDelta(t, 1-cs[i], rs[i], 1e-12)
	}
}

func TestTransforms_RoundTrip(t *testing.T) {
	families := []dist.Distribution{
		dist.Weibull{Alpha: 30, Beta: 1.7},
		dist.Gumbel{Mu: 5, Beta: 2},
		dist.Normal{Mu: 0, Sigma: 1},
	}
	for _, d := range families {
		for _, p := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
			assert.InDelta(t, p, d.InverseTransformProb(d.TransformProb(p)), 1e-9)
		}
		for _, x := range []float64{0.5, 1, 4, 9} {
			assert.InDelta(t, x, d.InverseTransformTime(d.TransformTime(x)), 1e-9)
		}
	}
}

// The transform pair must map (t, F(t)) onto the family's plot line.
func TestLinearized_MatchesTransformedCDF(t *testing.T) {
	w := dist.Weibull{Alpha: 30, Beta: 1.7}
	for _, tt := range []float64{10, 25, 40} {
		assert.InDelta(t, w.Linearized(tt), w.TransformProb(w.CDF(tt)), 1e-9)
	}

	g := dist.Gumbel{Mu: 5, Beta: 2}
	for _, tt := range []float64{2, 5, 9} {
		assert.InDelta(t, g.Linearized(tt), g.TransformProb(g.CDF(tt)), 1e-9)
	}

	nd := dist.Normal{Mu: 50, Sigma: 5}
	for _, tt := range []float64{42, 50, 57} {
		assert.InDelta(t, nd.Linearized(tt), nd.TransformProb(nd.CDF(tt)), 1e-9)
	}
}

// The exact-form log likelihoods must agree with the defining sum of logs.
func TestNegLogLikelihood_Assembly(t *testing.T) {
	left := []float64{3, 4}
	observed := []float64{8, 15, 22}
	right := []float64{30, 40}

	for _, d := range []dist.Distribution{
		dist.Weibull{Alpha: 20, Beta: 1.5},
		dist.Gumbel{Mu: 18, Beta: 6},
		dist.Normal{Mu: 18, Sigma: 9},
		dist.LFP{D: dist.Weibull{Alpha: 20, Beta: 1.5}, P: 0.8},
	} {
		want := 0.0
		for _, v := range left {
			want -= math.Log(d.CDF(v))
		}
		for _, v := range observed {
			want -= d.LogDensity(v)
		}
		for _, v := range right {
			want -= math.Log(d.Reliability(v))
		}
		assert.InDelta(t, want, d.NegLogLikelihood(left, observed, right), 1e-9)
	}
}

func TestLFP_Mixture(t *testing.T) {
	w := dist.Weibull{Alpha: 10, Beta: 2}
	m := dist.LFP{D: w, P: 0.6}

	assert.InDelta(t, 0.6*w.CDF(8), m.CDF(8), 1e-12)
	assert.InDelta(t, 0.6*w.Density(8), m.Density(8), 1e-12)
	assert.InDelta(t, 1-0.6*w.CDF(8), m.Reliability(8), 1e-12)
	assert.InDelta(t, math.Log(0.6)+w.LogDensity(8), m.LogDensity(8), 1e-12)

	// the failure probability saturates at the susceptible fraction
	assert.InDelta(t, 0.6, m.CDF(1e9), 1e-9)
	assert.InDelta(t, 0.4, m.Reliability(1e9), 1e-9)
}

func TestSample_SeededDraws(t *testing.T) {
	w := dist.Weibull{Alpha: 100, Beta: 2}
	sample := w.Sample(1000, rand.NewSource(3))

	require.Len(t, sample, 1000)
	for _, v := range sample {
		assert.Greater(t, v, 0.0)
	}

	mean, err := stats.Mean(sample)
	require.NoError(t, err)
	assert.InEpsilon(t, w.Mean(), mean, 0.10)

	again := w.Sample(1000, rand.NewSource(3))
	assert.Equal(t, sample, again)
}
