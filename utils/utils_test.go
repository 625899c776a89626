package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 3, Min(3, 7))
	require.Equal(t, 7, Max(3, 7))
	require.Equal(t, 2.5, Min(2.5, 4.0))
	require.Equal(t, 9, MaxSlice([]int{4, 9, 1, 7}))
}

func TestGetSortedKeys(t *testing.T) {
	m := map[string]int{"c": 0, "a": 1, "b": 2}
	require.Equal(t, []string{"a", "b", "c"}, GetSortedKeys(m))
}

func TestFill(t *testing.T) {
	require.Equal(t, []int{2, 2, 2, 2}, Fill(4, 2))
	require.Equal(t, []int{}, Fill(0, 1))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal([]int{1, 2, 3}, []int{1, 2, 3}))
	require.False(t, Equal([]int{1, 2, 3}, []int{1, 2}))
	require.False(t, Equal([]int{1, 2, 3}, []int{1, 2, 4}))
}

func TestIsPrimePower(t *testing.T) {
	for _, x := range []int{2, 3, 4, 5, 8, 9, 16, 27, 31, 243, 256} {
		require.True(t, IsPrimePower(x), "x = %d", x)
	}
	for _, x := range []int{0, 1, 6, 10, 12, 15, 100} {
		require.False(t, IsPrimePower(x), "x = %d", x)
	}
}

func TestIsPrime(t *testing.T) {
	require.True(t, IsPrime(2))
	require.True(t, IsPrime(31))
	require.False(t, IsPrime(1))
	require.False(t, IsPrime(9))
}
