// Package utils implements generic helper functions shared by the estimators.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) (r T) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) (r T) {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	for i := range s {
		max = Max(max, s[i])
	}
	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return
}

// Fill returns a slice of length n with every entry set to x.
func Fill[T any](n int, x T) (s []T) {
	s = make([]T, n)
	for i := range s {
		s[i] = x
	}
	return
}

// Equal returns true if the two input slices have the same length and entries.
func Equal[T comparable](a, b []T) (v bool) {
	if len(a) != len(b) {
		return false
	}
	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}
	return
}

// IsPrimePower returns true if x = p^e for a prime p and an integer e >= 1.
// Trial division only, which is fine for the small field orders handled here.
func IsPrimePower(x int) bool {
	if x < 2 {
		return false
	}
	p := smallestFactor(x)
	for x%p == 0 {
		x /= p
	}
	return x == 1
}

// IsPrime returns true if x is prime. Trial division only.
func IsPrime(x int) bool {
	return x >= 2 && smallestFactor(x) == x
}

func smallestFactor(x int) int {
	if x%2 == 0 {
		return 2
	}
	for d := 3; d*d <= x; d += 2 {
		if x%d == 0 {
			return d
		}
	}
	return x
}
