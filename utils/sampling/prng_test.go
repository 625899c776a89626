package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

	prngA, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	prngB, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	require.Equal(t, key, prngA.Key())

	sumA := make([]byte, 512)
	sumB := make([]byte, 512)

	_, err = prngA.Read(sumA)
	require.NoError(t, err)
	_, err = prngB.Read(sumB)
	require.NoError(t, err)

	require.Equal(t, sumA, sumB)

	prngA.Reset()

	sumC := make([]byte, 512)
	_, err = prngA.Read(sumC)
	require.NoError(t, err)

	require.Equal(t, sumA, sumC)
}

func TestRandInt(t *testing.T) {

	prng, err := NewKeyedPRNG(nil)
	require.NoError(t, err)

	for i := 0; i < 1024; i++ {
		v := RandInt(prng, 5, 17)
		require.GreaterOrEqual(t, v, 5)
		require.LessOrEqual(t, v, 17)
	}
}
