package nonparametric

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/utils"
)

// TurnbullOptions bounds the EM iteration.
type TurnbullOptions struct {
	MaxIterations int
	Tolerance     float64 // stop once no point mass moves more than this
}

func DefaultTurnbullOptions() *TurnbullOptions {
	return &TurnbullOptions{
		MaxIterations: DefaultTurnbullMaxIterations,
		Tolerance:     DefaultTurnbullTolerance,
	}
}

// TurnbullResult is the discrete failure-time mass estimated from
// interval-censored observations.
type TurnbullResult struct {
	Points         []float64  // sorted union of interval endpoints
	Mass           []float64  // probability mass per point, sums to one
	ExpectedCounts []float64  // Mass scaled by the sample size
	Alphas         *mat.Dense // unit-by-point containment indicators
	Iterations     int
	Converged      bool
}

// Turnbull estimates a discrete failure-time mass over the union of interval
// endpoints by the self-consistent fixed point: each unit spreads one
// expected failure over the points its interval contains, proportionally to
// the current mass. An exact observation is an interval with equal endpoints,
// a right-censored one has upper = +Inf, a left-censored one has lower = 0.
//
// Turnbull, B. W.: The Empirical Distribution Function with Arbitrarily
// Grouped, Censored and Truncated Data. Journal of the Royal Statistical
// Society, 1976.
func Turnbull(ctx context.Context, lower, upper []float64, opts *TurnbullOptions) (*TurnbullResult, error) {
	logger := utils.GetLogger(ctx)

	if len(lower) == 0 {
		return nil, common.ErrorEmptySample
	}
	if len(lower) != len(upper) {
		return nil, common.ErrorInvalidInput
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, common.ErrorInvalidInput
		}
	}
	if opts == nil {
		opts = DefaultTurnbullOptions()
	}

	n := len(lower)

	// 1. collect the sorted union of interval endpoints
	points := uniqueSorted(append(append([]float64{}, lower...), upper...))
	m := len(points)

	// 2. build the containment indicator matrix
	alphas := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if points[j] >= lower[i] && points[j] <= upper[i] {
				alphas.Set(i, j, 1)
			}
		}
	}

	// 3. start from uniform mass
	p := make([]float64, m)
	for j := range p {
		p[j] = 1 / float64(m)
	}

	res := &TurnbullResult{Points: points, Alphas: alphas}
	next := make([]float64, m)

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		res.Iterations = iter

		// 4. expectation sweep: each unit contributes one failure spread
		// over the points its interval contains
		for j := range next {
			next[j] = 0
		}
		for i := 0; i < n; i++ {
			denom := 0.0
			for j := 0; j < m; j++ {
				denom += alphas.At(i, j) * p[j]
			}
			if denom == 0 {
				return nil, common.ErrorDegenerateInterval
			}
			for j := 0; j < m; j++ {
				if alphas.At(i, j) != 0 {
					next[j] += p[j] / denom
				}
			}
		}

		// 5. renormalize and measure how far the mass moved
		delta := 0.0
		for j := 0; j < m; j++ {
			next[j] /= float64(n)
			delta = math.Max(delta, math.Abs(next[j]-p[j]))
		}
		copy(p, next)

		if delta < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	res.Mass = p
	counts := make([]float64, m)
	for j := range p {
		counts[j] = p[j] * float64(n)
	}
	res.ExpectedCounts = counts

	logger.Info("turnbull finished", zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged), zap.Int("points", m))

	return res, nil
}

func uniqueSorted(v []float64) []float64 {
	sort.Float64s(v)
	res := v[:0]
	for i, x := range v {
		if i == 0 || x != res[len(res)-1] {
			res = append(res, x)
		}
	}
	return res
}
