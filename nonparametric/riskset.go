package nonparametric

import (
	"gonum.org/v1/gonum/floats"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/model"
	"github.com/veleda/reliability-algorithms/utils"
)

// BuildRiskSet normalizes raw observations into the per-unique-time risk
// table every estimator consumes. A nil censoring slice means every entry is
// an observed failure; a nil counts slice means multiplicity one per entry.
// Every distinct time gets a row, censored-only times included.
//
// Left-censored entries have no place in a risk table and are rejected.
// An explicit zero count yields a row with no events; the at-risk count can
// reach zero there and a hazard at such a row is indeterminate.
func BuildRiskSet(times []float64, censoring []model.Censoring, counts []int) (*model.RiskSet, error) {
	if len(times) == 0 {
		return nil, common.ErrorEmptySample
	}
	if censoring != nil && len(censoring) != len(times) {
		return nil, common.ErrorInvalidInput
	}
	if counts != nil && len(counts) != len(times) {
		return nil, common.ErrorInvalidInput
	}
	for _, cen := range censoring {
		if cen != model.Observed && cen != model.RightCensored {
			return nil, common.ErrorInvalidInput
		}
	}
	for _, cnt := range counts {
		if cnt < 0 {
			return nil, common.ErrorInvalidInput
		}
	}

	perm := utils.SortedPerm(times)
	sorted := utils.Reorder(times, perm)

	var sortedCens []model.Censoring
	if censoring != nil {
		sortedCens = utils.Reorder(censoring, perm)
	}
	sortedCounts := make([]float64, len(times))
	if counts == nil {
		for i := range sortedCounts {
			sortedCounts[i] = 1
		}
	} else {
		for i, p := range perm {
			sortedCounts[i] = float64(counts[p])
		}
	}

	// 1. collapse duplicate times, accumulating failures and censorings
	var x, d, c []float64
	for i := range sorted {
		if i == 0 || sorted[i] != sorted[i-1] {
			x = append(x, sorted[i])
			d = append(d, 0)
			c = append(c, 0)
		}
		j := len(x) - 1
		if sortedCens != nil && sortedCens[i] == model.RightCensored {
			c[j] += sortedCounts[i]
		} else {
			d[j] += sortedCounts[i]
		}
	}

	n := floats.Sum(d) + floats.Sum(c)
	if n == 0 {
		return nil, common.ErrorInvalidInput
	}

	// 2. at-risk counts by the running total: whoever has not failed or
	// been withdrawn before time x[i] is still at risk there
	r := make([]float64, len(x))
	r[0] = n
	for i := 1; i < len(x); i++ {
		r[i] = r[i-1] - d[i-1] - c[i-1]
	}

	return &model.RiskSet{Times: x, NRisk: r, NFailures: d, NCensored: c, N: n}, nil
}
