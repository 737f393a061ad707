package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veleda/reliability-algorithms/model"
)

func newStepModel() *model.NonParametric {
	return &model.NonParametric{
		Model: "Kaplan-Meier",
		RiskSet: model.RiskSet{
			Times:     []float64{5, 6, 7, 9},
			NRisk:     []float64{4, 3, 2, 1},
			NFailures: []float64{1, 1, 1, 1},
			NCensored: []float64{0, 0, 0, 0},
			N:         4,
		},
		Reliability: []float64{0.75, 0.5, 0.25, 0},
		Failure:     []float64{0.25, 0.5, 0.75, 1},
	}
}

func TestNonParametric_ReliabilityAt(t *testing.T) {
	np := newStepModel()

	assert.Equal(t, 1.0, np.ReliabilityAt(2))    // before the first step
	assert.Equal(t, 0.75, np.ReliabilityAt(5))   // exactly on a step
	assert.Equal(t, 0.75, np.ReliabilityAt(5.5)) // between steps
	assert.Equal(t, 0.25, np.ReliabilityAt(8))
	assert.Equal(t, 0.0, np.ReliabilityAt(100)) // past the last step

	assert.Equal(t, 0.25, np.FailureAt(5))
	assert.Equal(t, 0.0, np.FailureAt(2))
}

func TestNonParametric_StepPoints(t *testing.T) {
	np := newStepModel()
	x, y := np.StepPoints()

	assert.Equal(t, []float64{0, 5, 6, 7, 9}, x)
	assert.Equal(t, []float64{1, 0.75, 0.5, 0.25, 0}, y)
}

func TestNonParametric_String(t *testing.T) {
	np := newStepModel()
	assert.Contains(t, np.String(), "Kaplan-Meier")
	assert.Contains(t, np.String(), "n=4")
}

func TestRiskSet_Len(t *testing.T) {
	np := newStepModel()
	assert.Equal(t, 4, np.Len())

	var empty *model.RiskSet
	assert.Equal(t, 0, empty.Len())
}

func TestCensoring_String(t *testing.T) {
	assert.Equal(t, "left-censored", model.LeftCensored.String())
	assert.Equal(t, "observed", model.Observed.String())
	assert.Equal(t, "right-censored", model.RightCensored.String())
	assert.Equal(t, "unknown", model.Censoring(5).String())
}
