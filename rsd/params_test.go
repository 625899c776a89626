package rsd

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaurya010/CryptographicEstimators/utils"
)

func testParams(t *testing.T, q, m, n, k, r int) Parameters {
	params, err := NewParametersFromLiteral(ParametersLiteral{Q: q, M: m, N: n, K: k, R: r})
	require.NoError(t, err)
	return params
}

func TestParametersValidation(t *testing.T) {

	_, err := NewParametersFromLiteral(ParametersLiteral{Q: 6, M: 31, N: 33, K: 15, R: 10})
	require.Error(t, err)

	_, err = NewParametersFromLiteral(ParametersLiteral{Q: 2, M: 0, N: 33, K: 15, R: 10})
	require.Error(t, err)

	_, err = NewParametersFromLiteral(ParametersLiteral{Q: 2, M: 31, N: 0, K: 15, R: 10})
	require.Error(t, err)

	_, err = NewParametersFromLiteral(ParametersLiteral{Q: 2, M: 31, N: 33, K: 34, R: 10})
	require.Error(t, err)

	_, err = NewParametersFromLiteral(ParametersLiteral{Q: 2, M: 31, N: 33, K: 15, R: 0})
	require.Error(t, err)
}

func TestParametersDefaults(t *testing.T) {

	params := testParams(t, 2, 31, 33, 15, 10)

	require.Equal(t, []int{2, 31, 33, 15, 10}, params.GetParameters())
	require.True(t, math.IsInf(params.MemoryBound(), 1))

	// r*(m+n-r) - (n-k)*m = 540 - 558: fewer rank-r words than constraints.
	require.Equal(t, -18.0, params.ExpectedNumberSolutions())
	require.Equal(t, 0.0, params.NSolutions())

	require.Equal(t, "rank syndrome decoding problem with (q, m, n, k, r) = (2,31,33,15,10)", params.String())
}

func TestParametersBitComplexityConversion(t *testing.T) {

	params := testParams(t, 4, 20, 30, 14, 6)

	// One GF(4) operation costs log2(4) = 2 bit operations.
	require.Equal(t, 101.0, params.ToBitComplexityTime(100))
	require.Equal(t, 101.0, params.ToBitComplexityMemory(100))

	params = testParams(t, 2, 31, 33, 15, 10)

	require.Equal(t, 100.0, params.ToBitComplexityTime(100))
}

func TestParametersEqual(t *testing.T) {

	a := testParams(t, 2, 31, 33, 15, 10)
	b := testParams(t, 2, 31, 33, 15, 10)
	require.True(t, a.Equal(b))

	c := testParams(t, 2, 31, 33, 15, 9)
	require.False(t, a.Equal(c))
}

func TestParametersMarshalJSON(t *testing.T) {

	params, err := NewParametersFromLiteral(ParametersLiteral{
		Q:           4,
		M:           20,
		N:           30,
		K:           14,
		R:           6,
		MemoryBound: utils.PointyFloat64(80),
	})
	require.NoError(t, err)

	data, err := json.Marshal(params)
	require.NoError(t, err)

	var rec Parameters
	require.NoError(t, json.Unmarshal(data, &rec))
	require.True(t, params.Equal(rec))
}
