package estimation

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedEstimator struct {
	name         string
	time, memory float64
}

func (e fixedEstimator) Name() string {
	return e.name
}

func (e fixedEstimator) TimeComplexity() (float64, error) {
	return e.time, nil
}

func (e fixedEstimator) MemoryComplexity() (float64, error) {
	return e.memory, nil
}

type brokenEstimator struct{}

func (brokenEstimator) Name() string {
	return "broken"
}

func (brokenEstimator) TimeComplexity() (float64, error) {
	return 0, fmt.Errorf("cannot estimate: %w", ErrInfeasible)
}

func (brokenEstimator) MemoryComplexity() (float64, error) {
	return 0, fmt.Errorf("cannot estimate: %w", ErrInfeasible)
}

func TestReport(t *testing.T) {

	report, err := NewReport(
		fixedEstimator{name: "B", time: 128, memory: 40},
		fixedEstimator{name: "A", time: 140, memory: 30},
		fixedEstimator{name: "C", time: 100, memory: 64},
	)
	require.NoError(t, err)

	results := report.Results()
	require.Equal(t, []Result{
		{Algorithm: "A", Time: 140, Memory: 30},
		{Algorithm: "B", Time: 128, Memory: 40},
		{Algorithm: "C", Time: 100, Memory: 64},
	}, results)

	require.Equal(t, Result{Algorithm: "C", Time: 100, Memory: 64}, report.Fastest())

	summary, err := report.Summary()
	require.NoError(t, err)
	require.Equal(t, 100.0, summary.Min)
	require.Equal(t, 140.0, summary.Max)
	require.Equal(t, 128.0, summary.Median)
	require.InDelta(t, 122.666666, summary.Mean, 1e-5)
	require.Greater(t, summary.StdDev, 0.0)
}

func TestReportInfiniteEstimates(t *testing.T) {

	// +Inf marks "no feasible configuration" and is a legal report entry.
	report, err := NewReport(
		fixedEstimator{name: "A", time: math.Inf(1), memory: math.Inf(1)},
		fixedEstimator{name: "B", time: 90, memory: 20},
	)
	require.NoError(t, err)

	require.Equal(t, "B", report.Fastest().Algorithm)
}

func TestReportError(t *testing.T) {
	_, err := NewReport(brokenEstimator{})
	require.ErrorIs(t, err, ErrInfeasible)
}
