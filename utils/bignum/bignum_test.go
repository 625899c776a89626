package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog2(t *testing.T) {

	// Exact powers of two.
	require.Equal(t, 0.0, Log2(1))
	require.Equal(t, 3.0, Log2(8))
	require.Equal(t, 10.0, Log2(1024))

	// Values with known correctly-rounded doubles.
	require.Equal(t, 6.321928094887363, Log2(80))
	require.Equal(t, 1.584962500721156, Log2(3))

	// The accepted input types agree.
	require.Equal(t, Log2(80), Log2(int64(80)))
	require.Equal(t, Log2(80), Log2(uint64(80)))
	require.Equal(t, Log2(80), Log2(80.0))
	require.Equal(t, Log2(80), Log2(big.NewInt(80)))
}

func TestLog2Factorial(t *testing.T) {
	require.Equal(t, 0.0, Log2Factorial(0))
	require.Equal(t, 0.0, Log2Factorial(1))
	require.Equal(t, 1.0, Log2Factorial(2))
	require.Equal(t, 40.25014046988262, Log2Factorial(15))
	require.Equal(t, 61.07738392090622, Log2Factorial(20))
}

func TestNewFloat(t *testing.T) {

	x := NewFloat(5, 128)
	require.Equal(t, uint(128), x.Prec())
	v, _ := x.Float64()
	require.Equal(t, 5.0, v)

	require.Panics(t, func() { NewFloat("5", 128) })
}

func TestLn2(t *testing.T) {
	v, _ := Ln2(53).Float64()
	require.Equal(t, 0.6931471805599453, v)
}
