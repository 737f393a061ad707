package parametric

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/dist"
	"github.com/veleda/reliability-algorithms/model"
)

// Direction selects which axis is regressed on which in rank regression.
type Direction string

const (
	DirectionX Direction = "x" // regress transformed time on transformed probability
	DirectionY Direction = "y" // regress transformed probability on transformed time
)

// Method records how a fit was produced.
type Method string

const (
	MethodRankRegression Method = "rank regression"
	MethodMLE            Method = "maximum likelihood"
)

// FitInfo describes how a fit ran. Evaluations and Objective are filled by
// the nonlinear paths only.
type FitInfo struct {
	Method      Method
	LFP         bool
	Converged   bool
	Evaluations int
	Objective   float64
}

// WeibullFit is a fitted Weibull distribution plus the run description.
// P is the limited-failure-population weight, 1 for ordinary fits.
type WeibullFit struct {
	dist.Weibull
	P float64
	FitInfo
}

// GumbelFit is a fitted Gumbel distribution plus the run description.
type GumbelFit struct {
	dist.Gumbel
	P float64
	FitInfo
}

// NormalFit is a fitted Normal distribution plus the run description.
type NormalFit struct {
	dist.Normal
	P float64
	FitInfo
}

// WeibullLSQ fits a Weibull distribution by rank regression: plotting
// positions from the censored sample, both axes linearized, then ordinary
// least squares in the chosen direction. With lfp the straight line is
// replaced by a bounded least-squares fit of the mixture failure probability
// p*F(t) against the positions, for populations where only a fraction can
// ever fail; direction plays no role there.
func WeibullLSQ(times []float64, censoring []model.Censoring, formula PlottingFormula,
	direction Direction, lfp bool, opts *FitOptions) (*WeibullFit, error) {
	if direction != DirectionX && direction != DirectionY {
		return nil, common.ErrorInvalidDirection
	}
	for _, t := range times {
		if t <= 0 {
			return nil, common.ErrorInvalidInput
		}
	}

	ts, ps, err := observedPositions(times, censoring, formula)
	if err != nil {
		return nil, err
	}
	if lfp {
		return weibullLSQLFP(times, ts, ps, opts)
	}

	w := dist.Weibull{}
	xs := make([]float64, len(ts))
	ys := make([]float64, len(ts))
	for i := range ts {
		xs[i] = w.TransformTime(ts[i])
		ys[i] = w.TransformProb(ps[i])
	}

	// y = beta*log(t) - beta*log(alpha)
	var alpha, beta float64
	if direction == DirectionY {
		intercept, slope := stat.LinearRegression(xs, ys, nil, false)
		beta = slope
		alpha = math.Exp(-intercept / slope)
	} else {
		intercept, slope := stat.LinearRegression(ys, xs, nil, false)
		beta = 1 / slope
		alpha = math.Exp(intercept)
	}

	return &WeibullFit{
		Weibull: dist.Weibull{Alpha: alpha, Beta: beta},
		P:       1,
		FitInfo: FitInfo{Method: MethodRankRegression, Converged: true},
	}, nil
}

// GumbelLSQ fits a Gumbel distribution by rank regression. See WeibullLSQ
// for the lfp variant.
func GumbelLSQ(times []float64, censoring []model.Censoring, formula PlottingFormula,
	direction Direction, lfp bool, opts *FitOptions) (*GumbelFit, error) {
	if direction != DirectionX && direction != DirectionY {
		return nil, common.ErrorInvalidDirection
	}

	ts, ps, err := observedPositions(times, censoring, formula)
	if err != nil {
		return nil, err
	}
	if lfp {
		return gumbelLSQLFP(times, ts, ps, opts)
	}

	g := dist.Gumbel{}
	ys := make([]float64, len(ts))
	for i := range ps {
		ys[i] = g.TransformProb(ps[i])
	}

	// y = (t - mu) / beta
	var mu, beta float64
	if direction == DirectionY {
		intercept, slope := stat.LinearRegression(ts, ys, nil, false)
		beta = 1 / slope
		mu = -intercept * beta
	} else {
		intercept, slope := stat.LinearRegression(ys, ts, nil, false)
		beta = slope
		mu = intercept
	}

	return &GumbelFit{
		Gumbel:  dist.Gumbel{Mu: mu, Beta: beta},
		P:       1,
		FitInfo: FitInfo{Method: MethodRankRegression, Converged: true},
	}, nil
}

// NormalLSQ fits a Normal distribution by rank regression. See WeibullLSQ
// for the lfp variant.
func NormalLSQ(times []float64, censoring []model.Censoring, formula PlottingFormula,
	direction Direction, lfp bool, opts *FitOptions) (*NormalFit, error) {
	if direction != DirectionX && direction != DirectionY {
		return nil, common.ErrorInvalidDirection
	}

	ts, ps, err := observedPositions(times, censoring, formula)
	if err != nil {
		return nil, err
	}
	if lfp {
		return normalLSQLFP(times, ts, ps, opts)
	}

	nd := dist.Normal{}
	ys := make([]float64, len(ts))
	for i := range ps {
		ys[i] = nd.TransformProb(ps[i])
	}

	// y = (t - mu) / sigma
	var mu, sigma float64
	if direction == DirectionY {
		intercept, slope := stat.LinearRegression(ts, ys, nil, false)
		sigma = 1 / slope
		mu = -intercept * sigma
	} else {
		intercept, slope := stat.LinearRegression(ys, ts, nil, false)
		sigma = slope
		mu = intercept
	}

	return &NormalFit{
		Normal:  dist.Normal{Mu: mu, Sigma: sigma},
		P:       1,
		FitInfo: FitInfo{Method: MethodRankRegression, Converged: true},
	}, nil
}

// observedPositions computes plotting positions and keeps the observed
// pairs, dropping the NaN-ranked censored slots.
func observedPositions(times []float64, censoring []model.Censoring,
	formula PlottingFormula) (ts, ps []float64, err error) {
	sorted, positions, err := PlottingPositions(times, censoring, formula)
	if err != nil {
		return nil, nil, err
	}
	for i, p := range positions {
		if math.IsNaN(p) {
			continue
		}
		ts = append(ts, sorted[i])
		ps = append(ps, p)
	}
	if len(ts) == 0 {
		return nil, nil, common.ErrorEmptySample
	}
	return ts, ps, nil
}

// positionSSE is the squared residual between the mixture failure
// probability and the empirical plotting positions.
func positionSSE(m dist.LFP, ts, ps []float64) float64 {
	sse := 0.0
	for i, t := range ts {
		r := m.CDF(t) - ps[i]
		sse += r * r
	}
	return sse
}

// The scale seed comes from the full sample, censored entries included.
func weibullLSQLFP(sample, ts, ps []float64, opts *FitOptions) (*WeibullFit, error) {
	mean, err := stats.Mean(sample)
	if err != nil {
		return nil, common.ErrorInvalidInput
	}

	params, info, err := boundedMinimize(func(params []float64) float64 {
		m := dist.LFP{D: dist.Weibull{Alpha: params[1], Beta: params[2]}, P: params[0]}
		return positionSSE(m, ts, ps)
	},
		[]float64{DefaultWeibullLFPWeight, mean, 1},
		[]paramTransform{unitTransform{}, positiveTransform{}, positiveTransform{}},
		opts)
	if err != nil {
		return nil, err
	}
	info.Method = MethodRankRegression
	info.LFP = true

	return &WeibullFit{
		Weibull: dist.Weibull{Alpha: params[1], Beta: params[2]},
		P:       params[0],
		FitInfo: *info,
	}, nil
}

func gumbelLSQLFP(sample, ts, ps []float64, opts *FitOptions) (*GumbelFit, error) {
	mean, sd, err := meanStd(sample)
	if err != nil {
		return nil, err
	}

	params, info, err := boundedMinimize(func(params []float64) float64 {
		m := dist.LFP{D: dist.Gumbel{Mu: params[1], Beta: params[2]}, P: params[0]}
		return positionSSE(m, ts, ps)
	},
		[]float64{DefaultLFPWeight, mean, sd},
		[]paramTransform{unitTransform{}, identityTransform{}, positiveTransform{}},
		opts)
	if err != nil {
		return nil, err
	}
	info.Method = MethodRankRegression
	info.LFP = true

	return &GumbelFit{
		Gumbel:  dist.Gumbel{Mu: params[1], Beta: params[2]},
		P:       params[0],
		FitInfo: *info,
	}, nil
}

func normalLSQLFP(sample, ts, ps []float64, opts *FitOptions) (*NormalFit, error) {
	mean, sd, err := meanStd(sample)
	if err != nil {
		return nil, err
	}

	params, info, err := boundedMinimize(func(params []float64) float64 {
		m := dist.LFP{D: dist.Normal{Mu: params[1], Sigma: params[2]}, P: params[0]}
		return positionSSE(m, ts, ps)
	},
		[]float64{DefaultLFPWeight, mean, sd},
		[]paramTransform{unitTransform{}, identityTransform{}, positiveTransform{}},
		opts)
	if err != nil {
		return nil, err
	}
	info.Method = MethodRankRegression
	info.LFP = true

	return &NormalFit{
		Normal:  dist.Normal{Mu: params[1], Sigma: params[2]},
		P:       params[0],
		FitInfo: *info,
	}, nil
}

// meanStd seeds location/scale starting points. A degenerate spread falls
// back to 1 so the positive transform stays finite.
func meanStd(ts []float64) (float64, float64, error) {
	mean, err := stats.Mean(ts)
	if err != nil {
		return 0, 0, common.ErrorInvalidInput
	}
	sd, err := stats.StandardDeviation(ts)
	if err != nil {
		return 0, 0, common.ErrorInvalidInput
	}
	if sd <= 0 {
		sd = 1
	}
	return mean, sd, nil
}
