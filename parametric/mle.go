package parametric

import (
	"github.com/montanaflynn/stats"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/dist"
	"github.com/veleda/reliability-algorithms/model"
)

// WeibullMLE fits a Weibull distribution by maximizing the censored
// likelihood: log cdf over left-censored entries, log pdf over observed
// failures, log reliability over right-censored ones. With lfp a mixture
// weight in [0,1] joins the parameter vector. Convergence is reported on
// FitInfo, not as an error: the best parameters found are always returned.
func WeibullMLE(times []float64, censoring []model.Censoring, lfp bool,
	opts *FitOptions) (*WeibullFit, error) {
	for _, t := range times {
		if t <= 0 {
			return nil, common.ErrorInvalidInput
		}
	}
	left, observed, right, err := splitSample(times, censoring)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(times)
	if err != nil {
		return nil, common.ErrorInvalidInput
	}

	if lfp {
		params, info, err := boundedMinimize(func(params []float64) float64 {
			m := dist.LFP{D: dist.Weibull{Alpha: params[1], Beta: params[2]}, P: params[0]}
			return m.NegLogLikelihood(left, observed, right)
		},
			[]float64{DefaultLFPWeight, mean, 1},
			[]paramTransform{unitTransform{}, positiveTransform{}, positiveTransform{}},
			opts)
		if err != nil {
			return nil, err
		}
		info.Method = MethodMLE
		info.LFP = true
		return &WeibullFit{
			Weibull: dist.Weibull{Alpha: params[1], Beta: params[2]},
			P:       params[0],
			FitInfo: *info,
		}, nil
	}

	params, info, err := boundedMinimize(func(params []float64) float64 {
		return dist.Weibull{Alpha: params[0], Beta: params[1]}.NegLogLikelihood(left, observed, right)
	},
		[]float64{mean, 1},
		[]paramTransform{positiveTransform{}, positiveTransform{}},
		opts)
	if err != nil {
		return nil, err
	}
	info.Method = MethodMLE
	return &WeibullFit{
		Weibull: dist.Weibull{Alpha: params[0], Beta: params[1]},
		P:       1,
		FitInfo: *info,
	}, nil
}

// GumbelMLE fits a Gumbel distribution by maximum likelihood. See WeibullMLE
// for the censoring and lfp semantics.
func GumbelMLE(times []float64, censoring []model.Censoring, lfp bool,
	opts *FitOptions) (*GumbelFit, error) {
	left, observed, right, err := splitSample(times, censoring)
	if err != nil {
		return nil, err
	}
	mean, sd, err := meanStd(times)
	if err != nil {
		return nil, err
	}

	if lfp {
		params, info, err := boundedMinimize(func(params []float64) float64 {
			m := dist.LFP{D: dist.Gumbel{Mu: params[1], Beta: params[2]}, P: params[0]}
			return m.NegLogLikelihood(left, observed, right)
		},
			[]float64{DefaultLFPWeight, mean, sd},
			[]paramTransform{unitTransform{}, identityTransform{}, positiveTransform{}},
			opts)
		if err != nil {
			return nil, err
		}
		info.Method = MethodMLE
		info.LFP = true
		return &GumbelFit{
			Gumbel:  dist.Gumbel{Mu: params[1], Beta: params[2]},
			P:       params[0],
			FitInfo: *info,
		}, nil
	}

	params, info, err := boundedMinimize(func(params []float64) float64 {
		return dist.Gumbel{Mu: params[0], Beta: params[1]}.NegLogLikelihood(left, observed, right)
	},
		[]float64{mean, sd},
		[]paramTransform{identityTransform{}, positiveTransform{}},
		opts)
	if err != nil {
		return nil, err
	}
	info.Method = MethodMLE
	return &GumbelFit{
		Gumbel:  dist.Gumbel{Mu: params[0], Beta: params[1]},
		P:       1,
		FitInfo: *info,
	}, nil
}

// NormalMLE fits a Normal distribution by maximum likelihood. See WeibullMLE
// for the censoring and lfp semantics.
func NormalMLE(times []float64, censoring []model.Censoring, lfp bool,
	opts *FitOptions) (*NormalFit, error) {
	left, observed, right, err := splitSample(times, censoring)
	if err != nil {
		return nil, err
	}
	mean, sd, err := meanStd(times)
	if err != nil {
		return nil, err
	}

	if lfp {
		params, info, err := boundedMinimize(func(params []float64) float64 {
			m := dist.LFP{D: dist.Normal{Mu: params[1], Sigma: params[2]}, P: params[0]}
			return m.NegLogLikelihood(left, observed, right)
		},
			[]float64{DefaultLFPWeight, mean, sd},
			[]paramTransform{unitTransform{}, identityTransform{}, positiveTransform{}},
			opts)
		if err != nil {
			return nil, err
		}
		info.Method = MethodMLE
		info.LFP = true
		return &NormalFit{
			Normal:  dist.Normal{Mu: params[1], Sigma: params[2]},
			P:       params[0],
			FitInfo: *info,
		}, nil
	}

	params, info, err := boundedMinimize(func(params []float64) float64 {
		return dist.Normal{Mu: params[0], Sigma: params[1]}.NegLogLikelihood(left, observed, right)
	},
		[]float64{mean, sd},
		[]paramTransform{identityTransform{}, positiveTransform{}},
		opts)
	if err != nil {
		return nil, err
	}
	info.Method = MethodMLE
	return &NormalFit{
		Normal:  dist.Normal{Mu: params[0], Sigma: params[1]},
		P:       1,
		FitInfo: *info,
	}, nil
}

// splitSample partitions times by censoring code. A nil censoring slice
// marks the whole sample as observed failures.
func splitSample(times []float64, censoring []model.Censoring) (left, observed, right []float64, err error) {
	if len(times) == 0 {
		return nil, nil, nil, common.ErrorEmptySample
	}
	if censoring != nil && len(censoring) != len(times) {
		return nil, nil, nil, common.ErrorInvalidInput
	}
	if censoring == nil {
		return nil, times, nil, nil
	}
	for i, cen := range censoring {
		switch cen {
		case model.LeftCensored:
			left = append(left, times[i])
		case model.Observed:
			observed = append(observed, times[i])
		case model.RightCensored:
			right = append(right, times[i])
		default:
			return nil, nil, nil, common.ErrorInvalidInput
		}
	}
	return left, observed, right, nil
}
