package nonparametric_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/veleda/reliability-algorithms/common"
	"github.com/veleda/reliability-algorithms/nonparametric"
)

// Degenerate intervals carry no ambiguity: the mass is the empirical
// frequency and the fixed point is reached immediately.
func TestTurnbull_ExactObservations(t *testing.T) {
	lower := []float64{1, 1, 2, 3}
	upper := []float64{1, 1, 2, 3}

	res, err := nonparametric.Turnbull(context.Background(), lower, upper, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, res.Points)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, res.Mass)
	assert.Equal(t, []float64{2, 1, 1}, res.ExpectedCounts)
	assert.True(t, res.Converged)
}

func TestTurnbull_OverlappingIntervals(t *testing.T) {
	lower := []float64{1, 2, 5}
	upper := []float64{3, 4, 5}

	res, err := nonparametric.Turnbull(context.Background(), lower, upper, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, res.Points)
	assert.True(t, res.Converged)

	// the two overlapping intervals pile their mass onto the shared
	// points 2 and 3; the exact unit keeps a third for point 5
	assert.InDelta(t, 1.0/3, res.Mass[1], 1e-6)
	assert.InDelta(t, 1.0/3, res.Mass[2], 1e-6)
	assert.InDelta(t, 1.0/3, res.Mass[4], 1e-15)
	assert.Less(t, res.Mass[0], 1e-7)
	assert.Less(t, res.Mass[3], 1e-7)

	assert.InDelta(t, 1.0, floats.Sum(res.Mass), 1e-12)
	assert.InDelta(t, 1.0, res.ExpectedCounts[4], 1e-12)

	// containment indicators: the exact unit sits only on its own point
	assert.Equal(t, 1.0, res.Alphas.At(2, 4))
	assert.Equal(t, 0.0, res.Alphas.At(2, 0))
	assert.Equal(t, 1.0, res.Alphas.At(0, 0))
}

// Right censoring is an interval open to +Inf.
func TestTurnbull_RightCensoredUpperBound(t *testing.T) {
	lower := []float64{1, 2}
	upper := []float64{1, math.Inf(1)}

	res, err := nonparametric.Turnbull(context.Background(), lower, upper, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, math.Inf(1)}, res.Points)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, res.Mass)
}

func TestTurnbull_IterationBudget(t *testing.T) {
	opts := &nonparametric.TurnbullOptions{MaxIterations: 1, Tolerance: 1e-9}

	res, err := nonparametric.Turnbull(context.Background(),
		[]float64{1, 2, 5}, []float64{3, 4, 5}, opts)
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 1.0, floats.Sum(res.Mass), 1e-12)
}

func TestTurnbull_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := nonparametric.Turnbull(ctx, nil, nil, nil)
	assert.ErrorIs(t, err, common.ErrorEmptySample)

	_, err = nonparametric.Turnbull(ctx, []float64{1, 2}, []float64{3}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = nonparametric.Turnbull(ctx, []float64{4}, []float64{2}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}
