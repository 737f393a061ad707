// Package parametric fits lifetime distributions to censored samples by rank
// regression on plotting positions or by maximum likelihood.
package parametric

import (
	"math"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/model"
	"github.com/veleda/reliability-algorithms/utils"
)

// PlottingFormula selects the (A, B) constants of the plotting-position
// expression p = (rank - A) / (n + B).
type PlottingFormula string

const (
	FormulaBlom       PlottingFormula = "Blom"
	FormulaMedian     PlottingFormula = "Median"
	FormulaModal      PlottingFormula = "Modal"
	FormulaMidpoint   PlottingFormula = "Midpoint"
	FormulaMean       PlottingFormula = "Mean"
	FormulaWeibull    PlottingFormula = "Weibull"
	FormulaBenard     PlottingFormula = "Benard"
	FormulaBeard      PlottingFormula = "Beard"
	FormulaHazen      PlottingFormula = "Hazen"
	FormulaFiliben    PlottingFormula = "Filiben"
	FormulaGringorten PlottingFormula = "Gringorten"
	FormulaNone       PlottingFormula = "None"
	FormulaTukey      PlottingFormula = "Tukey"
	FormulaDPW        PlottingFormula = "DPW"
)

var plottingFormulas = map[PlottingFormula][2]float64{
	FormulaBlom:       {0.375, 0.25},
	FormulaMedian:     {0.3, 0.4},
	FormulaModal:      {1.0, -1.0},
	FormulaMidpoint:   {0.5, 0.0},
	FormulaMean:       {0.0, 1.0},
	FormulaWeibull:    {0.0, 1.0},
	FormulaBenard:     {0.3, 0.2},
	FormulaBeard:      {0.31, 0.38},
	FormulaHazen:      {0.5, 0.0},
	FormulaFiliben:    {0.3175, 1.635},
	FormulaGringorten: {0.44, 0.12},
	FormulaNone:       {0.0, 0.0},
	FormulaTukey:      {1.0 / 3, 1.0 / 3},
	FormulaDPW:        {1.0, 0.0},
}

// RankAdjust sorts the sample by time and assigns each observed failure its
// mean order number: a censored unit takes no rank itself but spreads its
// missing failure over the ranks that follow it. Censored slots hold NaN.
// Ranks are strictly increasing across the observed entries.
func RankAdjust(times []float64, censoring []model.Censoring) ([]float64, error) {
	if len(times) == 0 {
		return nil, common.ErrorEmptySample
	}
	if censoring != nil && len(censoring) != len(times) {
		return nil, common.ErrorInvalidInput
	}
	for _, cen := range censoring {
		if cen != model.Observed && cen != model.RightCensored {
			return nil, common.ErrorInvalidInput
		}
	}

	var sortedCens []model.Censoring
	if censoring != nil {
		sortedCens = utils.Reorder(censoring, utils.SortedPerm(times))
	}

	n := float64(len(times))
	ranks := make([]float64, len(times))
	pmon := 0.0 // previous mean order number
	for j := range ranks {
		if sortedCens != nil && sortedCens[j] == model.RightCensored {
			ranks[j] = math.NaN()
			continue
		}
		rank := pmon + (n+1-pmon)/(n-float64(j)+1)
		ranks[j] = rank
		pmon = rank
	}
	return ranks, nil
}

// PlottingPositions sorts the sample, adjusts ranks for censoring and maps
// them to failure probabilities with the chosen formula. It returns the
// sorted times and the aligned positions; censored slots hold NaN.
func PlottingPositions(times []float64, censoring []model.Censoring,
	formula PlottingFormula) ([]float64, []float64, error) {
	ab, ok := plottingFormulas[formula]
	if !ok {
		return nil, nil, common.ErrorUnknownFormula
	}

	ranks, err := RankAdjust(times, censoring)
	if err != nil {
		return nil, nil, err
	}

	sorted := utils.Reorder(times, utils.SortedPerm(times))
	n := float64(len(times))
	positions := make([]float64, len(ranks))
	for i, rank := range ranks {
		positions[i] = (rank - ab[0]) / (n + ab[1])
	}
	return sorted, positions, nil
}
