package nonparametric

import (
	"context"

	"go.uber.org/zap"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/model"
	"github.com/veleda/reliability-algorithms/utils"
)

// Estimator names a non-parametric estimation algorithm.
type Estimator string

const (
	NelsonAalenEstimator       Estimator = "Nelson-Aalen"
	KaplanMeierEstimator       Estimator = "Kaplan-Meier"
	FlemingHarringtonEstimator Estimator = "Fleming-Harrington"
)

// Estimate runs the named estimator over raw observations. It is the logged
// entry point; the estimator functions themselves stay silent.
func Estimate(ctx context.Context, estimator Estimator, times []float64,
	censoring []model.Censoring, counts []int) (res *model.NonParametric, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Estimate recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("times", times))
			res, err = nil, common.ErrorInvalidInput
		}
	}()

	switch estimator {
	case NelsonAalenEstimator:
		res, err = NelsonAalen(times, censoring, counts)
	case KaplanMeierEstimator:
		res, err = KaplanMeier(times, censoring, counts)
	case FlemingHarringtonEstimator:
		res, err = FlemingHarrington(times, censoring, counts)
	default:
		logger.Error("unknown estimator", zap.String("estimator", string(estimator)))
		return nil, common.ErrorInvalidInput
	}

	if err != nil {
		logger.Error("estimate failed", zap.Error(err),
			zap.String("estimator", string(estimator)))
		return nil, err
	}

	logger.Info("estimate finished", zap.String("model", res.Model),
		zap.Float64("population", res.N), zap.Int("points", res.Len()))
	return res, nil
}
