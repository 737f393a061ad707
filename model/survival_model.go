package model

import (
	"fmt"
	"sort"
)

// NonParametric holds the output of a non-parametric reliability estimator:
// hazard, cumulative hazard, reliability and failure probability aligned to
// the risk-set time axis. Values are fixed once the estimator returns.
type NonParametric struct {
	Model string // estimator name
	RiskSet
	Hazard      []float64 // h
	CumHazard   []float64 // H, non-decreasing
	Reliability []float64 // R = exp(-H), non-increasing in [0, 1]
	Failure     []float64 // F = 1 - R
}

func (m *NonParametric) String() string {
	return fmt.Sprintf("%s reliability model, n=%v, points=%v", m.Model, m.N, len(m.Times))
}

// StepPoints returns the reliability curve as step-function points anchored
// at (0, 1), ready for a post-step plot.
func (m *NonParametric) StepPoints() (x, y []float64) {
	x = append([]float64{0}, m.Times...)
	y = append([]float64{1}, m.Reliability...)
	return x, y
}

// ReliabilityAt evaluates the estimated step function at time t.
// Times before the first recorded time give 1, times past the last
// recorded time give the final estimate.
func (m *NonParametric) ReliabilityAt(t float64) float64 {
	idx := sort.SearchFloat64s(m.Times, t)
	if idx < len(m.Times) && m.Times[idx] == t {
		return m.Reliability[idx]
	}
	if idx == 0 {
		return 1
	}
	return m.Reliability[idx-1]
}

// FailureAt evaluates the estimated failure probability at time t.
func (m *NonParametric) FailureAt(t float64) float64 {
	return 1 - m.ReliabilityAt(t)
}
