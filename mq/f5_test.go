package mq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaurya010/CryptographicEstimators/core/estimation"
	"github.com/shaurya010/CryptographicEstimators/utils"
	"github.com/shaurya010/CryptographicEstimators/utils/sampling"
)

func testParams(t *testing.T, n, m, q int) Parameters {
	params, err := NewParametersFromLiteral(ParametersLiteral{N: n, M: m, Q: q})
	require.NoError(t, err)
	return params
}

func TestF5TimeComplexity(t *testing.T) {

	// Field operations: 2.81*log2(615) + log2(15) at degree of regularity 4.
	est, err := NewF5(testParams(t, 10, 15, 3), F5Literal{BitComplexities: utils.PointyBool(false)})
	require.NoError(t, err)

	time, err := est.TimeComplexity()
	require.NoError(t, err)
	require.Equal(t, 29.939974302245272, time)

	dreg, err := est.DegreeOfRegularity()
	require.NoError(t, err)
	require.Equal(t, 4, dreg)

	// Bit operations: the same estimate plus log2(log2(q)^theta).
	est, err = NewF5(testParams(t, 10, 12, 5), F5Literal{})
	require.NoError(t, err)

	time, err = est.TimeComplexity()
	require.NoError(t, err)
	require.Equal(t, 40.46631424550428, time)
}

func TestF5MemoryComplexity(t *testing.T) {

	est, err := NewF5(testParams(t, 10, 12, 5), F5Literal{BitComplexities: utils.PointyBool(false)})
	require.NoError(t, err)

	memory, err := est.MemoryComplexity()
	require.NoError(t, err)
	require.Equal(t, 24.5200748422132, memory)
}

func TestF5TimeComplexityFGLM(t *testing.T) {

	params, err := NewParametersFromLiteral(ParametersLiteral{
		N:          10,
		M:          15,
		Q:          3,
		NSolutions: utils.PointyFloat64(1),
	})
	require.NoError(t, err)

	est, err := NewF5(params, F5Literal{})
	require.NoError(t, err)

	// log2(n * (2^1)^3) = log2(80).
	require.Equal(t, 6.321928094887363, est.TimeComplexityFGLM())
}

func TestF5Underdefined(t *testing.T) {

	est, err := NewF5(testParams(t, 10, 5, 3), F5Literal{})
	require.NoError(t, err)

	_, err = est.TimeComplexity()
	require.ErrorIs(t, err, estimation.ErrInfeasible)

	_, err = est.TildeOTimeComplexity()
	require.ErrorIs(t, err, estimation.ErrInfeasible)

	// The Thomae-Wolf folding still defines the reduced system shape.
	require.Equal(t, 4, est.NPolynomialsReduced())
	require.Equal(t, 4, est.NVariablesReduced())
}

func TestF5Configuration(t *testing.T) {

	params := testParams(t, 10, 5, 3)

	// Degrees must match the reduced equation count.
	_, err := NewF5(params, F5Literal{Degrees: []int{2, 2}})
	require.Error(t, err)

	_, err = NewF5(params, F5Literal{Degrees: utils.Fill(4, 2)})
	require.NoError(t, err)

	_, err = NewF5(params, F5Literal{W: utils.PointyFloat64(1.5)})
	require.Error(t, err)

	_, err = NewF5(params, F5Literal{W: utils.PointyFloat64(3.5)})
	require.Error(t, err)

	_, err = NewF5(params, F5Literal{H: utils.PointyInt(-1)})
	require.Error(t, err)

	_, err = NewF5(params, F5Literal{H: utils.PointyInt(5)})
	require.Error(t, err)

	est, err := NewF5(params, F5Literal{})
	require.NoError(t, err)
	require.Equal(t, 0, est.Hybridization())
	require.Equal(t, DefaultW, est.LinearAlgebraConstant())
	require.Equal(t, utils.Fill(4, 2), est.DegreeOfPolynomials())
	require.Equal(t, "F5 estimator for the MQ problem with 10 variables and 5 polynomials", est.String())
}

func TestF5Idempotence(t *testing.T) {

	est, err := NewF5(testParams(t, 10, 12, 5), F5Literal{})
	require.NoError(t, err)

	timeA, err := est.TimeComplexity()
	require.NoError(t, err)
	timeB, err := est.TimeComplexity()
	require.NoError(t, err)
	require.Equal(t, timeA, timeB)

	// A fresh instance reproduces the estimate bit-identically.
	other, err := NewF5(testParams(t, 10, 12, 5), F5Literal{})
	require.NoError(t, err)

	timeC, err := other.TimeComplexity()
	require.NoError(t, err)
	require.Equal(t, timeA, timeC)
}

func TestF5TildeO(t *testing.T) {

	for _, params := range []Parameters{
		testParams(t, 10, 15, 3),
		testParams(t, 10, 12, 5),
		testParams(t, 15, 20, 7),
	} {

		est, err := NewF5(params, F5Literal{})
		require.NoError(t, err)

		time, err := est.TimeComplexity()
		require.NoError(t, err)

		tildeTime, err := est.TildeOTimeComplexity()
		require.NoError(t, err)
		require.LessOrEqual(t, tildeTime, time)

		memory, err := est.MemoryComplexity()
		require.NoError(t, err)

		tildeMemory, err := est.TildeOMemoryComplexity()
		require.NoError(t, err)
		require.LessOrEqual(t, tildeMemory, memory)
	}
}

func TestF5OptimizeH(t *testing.T) {

	params := testParams(t, 10, 12, 5)

	fixed, err := NewF5(params, F5Literal{})
	require.NoError(t, err)

	tuned, err := NewF5(params, F5Literal{OptimizeH: true})
	require.NoError(t, err)

	fixedTime, err := fixed.TimeComplexity()
	require.NoError(t, err)

	tunedTime, err := tuned.TimeComplexity()
	require.NoError(t, err)

	// h = 0 is in the searched range, so tuning can only improve.
	require.LessOrEqual(t, tunedTime, fixedTime)

	optimal, err := tuned.OptimalParameters()
	require.NoError(t, err)
	require.Contains(t, optimal, "h")
}

func TestF5MemoryAccess(t *testing.T) {

	params := testParams(t, 10, 12, 5)

	constant, err := NewF5(params, F5Literal{})
	require.NoError(t, err)

	logarithmic, err := NewF5(params, F5Literal{MemoryAccess: estimation.LogarithmicMemoryAccess})
	require.NoError(t, err)

	squareRoot, err := NewF5(params, F5Literal{MemoryAccess: estimation.SquareRootMemoryAccess})
	require.NoError(t, err)

	timeConstant, err := constant.TimeComplexity()
	require.NoError(t, err)
	timeLogarithmic, err := logarithmic.TimeComplexity()
	require.NoError(t, err)
	timeSquareRoot, err := squareRoot.TimeComplexity()
	require.NoError(t, err)

	require.Less(t, timeConstant, timeLogarithmic)
	require.Less(t, timeLogarithmic, timeSquareRoot)
}

func TestF5Monotonicity(t *testing.T) {

	// Over a reproducible grid: the degree of regularity never increases
	// with the equation count, and among systems sharing a degree of
	// regularity the time complexity never decreases with it.
	prng, err := sampling.NewKeyedPRNG([]byte{0x6d, 0x71})
	require.NoError(t, err)

	for i := 0; i < 16; i++ {

		n := sampling.RandInt(prng, 5, 12)
		q := []int{2, 3, 5, 7, 11}[sampling.RandInt(prng, 0, 4)]

		prevDreg := -1
		prevTime := 0.0

		for m := n + 1; m <= 3*n; m++ {

			dreg, err := DegreeOfRegularity(n, m, q)
			require.NoError(t, err)

			est, err := NewF5(testParams(t, n, m, q), F5Literal{BitComplexities: utils.PointyBool(false)})
			require.NoError(t, err)

			time, err := est.TimeComplexity()
			require.NoError(t, err)

			if prevDreg >= 0 {
				require.LessOrEqual(t, dreg, prevDreg, "n = %d, m = %d, q = %d", n, m, q)
				if dreg == prevDreg {
					require.GreaterOrEqual(t, time, prevTime, "n = %d, m = %d, q = %d", n, m, q)
				}
			}

			prevDreg, prevTime = dreg, time
		}
	}
}
