package mq

import (
	"fmt"

	"github.com/shaurya010/CryptographicEstimators/mq/series"
	"github.com/shaurya010/CryptographicEstimators/utils"
)

// DegreeOfRegularity returns the degree of regularity of a generic system of
// m quadratic polynomials in n variables over GF(q).
func DegreeOfRegularity(n, m, q int) (int, error) {
	return DegreeOfRegularityGeneric(n, m, utils.Fill(m, 2), q)
}

// DegreeOfRegularityGeneric returns the degree of regularity of a generic
// system of m polynomials of the given degrees in n variables over GF(q):
// the smallest degree at which the system is expected to become linearly
// dependent.
//
// A square system (m = n) behaves like a regular sequence and the Macaulay
// bound sum(d_i - 1) + 1 applies; an overdefined system (m > n) is assumed
// semi-regular and the degree is read off the Hilbert series as the first
// degree with a non-positive coefficient. Underdefined systems (m < n) have
// no degree of regularity in this sense and are rejected.
func DegreeOfRegularityGeneric(n, m int, degrees []int, q int) (int, error) {

	if len(degrees) != m {
		return 0, fmt.Errorf("len(degrees) must be equal to %d but is %d", m, len(degrees))
	}

	if m < n {
		return 0, fmt.Errorf("the number of polynomials must be at least the number of variables, but m = %d < n = %d", m, n)
	}

	if m == n {
		dreg := 1
		for _, d := range degrees {
			dreg += d - 1
		}
		return dreg, nil
	}

	s, err := series.NewHilbert(n, degrees, q)
	if err != nil {
		return 0, err
	}

	return s.FirstNonPositiveCoefficient()
}
