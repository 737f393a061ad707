// Package nonparametric estimates reliability curves directly from the risk
// set, without assuming a lifetime distribution.
package nonparametric

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/model"
)

// NelsonAalen estimates reliability through the cumulative hazard:
// h = d/r, H = cumsum(h), R = exp(-H).
//
// Nelson, W.: Theory and Applications of Hazard Plotting for Censored
// Failure Data. Technometrics, Vol. 14, 1972.
func NelsonAalen(times []float64, censoring []model.Censoring, counts []int) (*model.NonParametric, error) {
	rs, err := BuildRiskSet(times, censoring, counts)
	if err != nil {
		return nil, err
	}

	h := make([]float64, rs.Len())
	for i := range h {
		h[i] = rs.NFailures[i] / rs.NRisk[i]
	}
	H := floats.CumSum(make([]float64, len(h)), h)

	return assemble(string(NelsonAalenEstimator), rs, h, H, expNeg(H)), nil
}

// KaplanMeier estimates reliability as the product limit over the risk set:
// R = cumprod((r-d)/r), H = -log(R).
//
// Kaplan, E. L., Meier, P.: Nonparametric Estimation from Incomplete
// Observations. Journal of the American Statistical Association, 1958.
//
// When the last at-risk group fails completely R reaches zero and the
// trailing H and h entries are +Inf, as the defining formulas say.
func KaplanMeier(times []float64, censoring []model.Censoring, counts []int) (*model.NonParametric, error) {
	rs, err := BuildRiskSet(times, censoring, counts)
	if err != nil {
		return nil, err
	}

	ratio := make([]float64, rs.Len())
	for i := range ratio {
		ratio[i] = (rs.NRisk[i] - rs.NFailures[i]) / rs.NRisk[i]
	}
	R := floats.CumProd(make([]float64, len(ratio)), ratio)

	H := make([]float64, len(R))
	for i := range H {
		H[i] = -math.Log(R[i])
	}
	h := make([]float64, len(H))
	h[0] = H[0]
	for i := 1; i < len(H); i++ {
		h[i] = H[i] - H[i-1]
	}

	return assemble(string(KaplanMeierEstimator), rs, h, H, R), nil
}

// FlemingHarrington estimates the cumulative hazard like Nelson-Aalen but
// corrects tied failures with the harmonic sum
// h = 1/r + 1/(r-1) + ... + 1/(r-d+1).
// With at most one failure per time it reproduces Nelson-Aalen exactly.
//
// Fleming, T. R., Harrington, D. P.: Nonparametric Estimation of the
// Survival Distribution in Censored Data. Communications in Statistics, 1984.
func FlemingHarrington(times []float64, censoring []model.Censoring, counts []int) (*model.NonParametric, error) {
	rs, err := BuildRiskSet(times, censoring, counts)
	if err != nil {
		return nil, err
	}

	h := make([]float64, rs.Len())
	for i := range h {
		for j := 0; j < int(rs.NFailures[i]); j++ {
			denom := rs.NRisk[i] - float64(j)
			if denom <= 0 {
				return nil, common.ErrorInvalidInput
			}
			h[i] += 1 / denom
		}
	}
	H := floats.CumSum(make([]float64, len(h)), h)

	return assemble(string(FlemingHarringtonEstimator), rs, h, H, expNeg(H)), nil
}

func assemble(name string, rs *model.RiskSet, h, H, R []float64) *model.NonParametric {
	F := make([]float64, len(R))
	for i := range R {
		F[i] = 1 - R[i]
	}
	return &model.NonParametric{
		Model:       name,
		RiskSet:     *rs,
		Hazard:      h,
		CumHazard:   H,
		Reliability: R,
		Failure:     F,
	}
}

func expNeg(H []float64) []float64 {
	R := make([]float64, len(H))
	for i := range H {
		R[i] = math.Exp(-H[i])
	}
	return R
}
