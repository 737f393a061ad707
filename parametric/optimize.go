package parametric

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"

	"github.com/veleda/reliability-algorithms/common"
)

// FitOptions bounds the nonlinear minimizations behind the
// limited-failure-population and maximum-likelihood fitters.
type FitOptions struct {
	MaxIterations int
	Tolerance     float64
}

func DefaultFitOptions() *FitOptions {
	return &FitOptions{
		MaxIterations: DefaultFitMaxIterations,
		Tolerance:     DefaultFitTolerance,
	}
}

// paramTransform maps between the optimizer's unconstrained axis and a
// bounded model parameter.
type paramTransform interface {
	toModel(z float64) float64
	fromModel(v float64) float64
}

// identityTransform leaves a free parameter alone.
type identityTransform struct{}

func (identityTransform) toModel(z float64) float64   { return z }
func (identityTransform) fromModel(v float64) float64 { return v }

// positiveTransform keeps a parameter strictly positive via exp/log.
type positiveTransform struct{}

func (positiveTransform) toModel(z float64) float64   { return math.Exp(z) }
func (positiveTransform) fromModel(v float64) float64 { return math.Log(v) }

// unitTransform keeps a parameter inside (0, 1) via the logistic curve.
type unitTransform struct{}

func (unitTransform) toModel(z float64) float64   { return 1 / (1 + math.Exp(-z)) }
func (unitTransform) fromModel(v float64) float64 { return math.Log(v / (1 - v)) }

// boundedMinimize runs a Nelder-Mead search over transformed axes so the
// model parameters stay inside their bounds. Running out of budget is not an
// error: the best parameters found are still returned, with Converged false.
func boundedMinimize(objective func(params []float64) float64, init []float64,
	transforms []paramTransform, opts *FitOptions) ([]float64, *FitInfo, error) {
	if opts == nil {
		opts = DefaultFitOptions()
	}

	x0 := make([]float64, len(init))
	for i, tr := range transforms {
		x0[i] = tr.fromModel(init[i])
	}

	problem := optimize.Problem{
		Func: func(z []float64) float64 {
			params := make([]float64, len(z))
			for i, tr := range transforms {
				params[i] = tr.toModel(z[i])
			}
			return objective(params)
		},
	}

	settings := &optimize.Settings{
		MajorIterations: opts.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   opts.Tolerance,
			Iterations: DefaultConvergenceWindow,
		},
	}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if result == nil || result.X == nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrorNonConvergence, err)
	}

	params := make([]float64, len(result.X))
	for i, tr := range transforms {
		params[i] = tr.toModel(result.X[i])
	}

	info := &FitInfo{
		Converged: err == nil &&
			result.Status != optimize.NotTerminated &&
			result.Status != optimize.IterationLimit &&
			result.Status != optimize.Failure,
		Evaluations: result.Stats.FuncEvaluations,
		Objective:   result.F,
	}
	if !info.Converged {
		zap.L().Warn("fit did not converge", zap.Any("status", result.Status),
			zap.Int("evaluations", info.Evaluations))
	}
	return params, info, nil
}
