package series

import (
	"fmt"
	"math/big"
)

// NMonomial holds the series counting monomials in n variables over GF(q).
// The number of monomials of degree exactly D is the coefficient of z^D in
//
//	H(z) = (1 - z^q)^n / (1 - z)^n
//
// which accounts for the field equations x^q = x removing monomials. When
// q is at least the series precision the field equations cannot remove
// anything below the truncation degree and the series reduces to the naive
// 1/(1-z)^n.
type NMonomial struct {
	q, n, maxPrec int
	ofDegree      []*big.Int
	upToDegree    []*big.Int
}

// NewNMonomial constructs the monomial-counting series for n variables over
// GF(q), with coefficients available for degrees 0 <= d < maxPrec. A
// maxPrec of 0 defaults to n+1.
func NewNMonomial(q, n, maxPrec int) (*NMonomial, error) {

	if q < 2 {
		return nil, fmt.Errorf("cannot NewNMonomial: q must be >= 2 but is %d", q)
	}

	if n < 1 {
		return nil, fmt.Errorf("cannot NewNMonomial: n must be >= 1 but is %d", n)
	}

	if maxPrec == 0 {
		maxPrec = n + 1
	}

	if maxPrec < 1 {
		return nil, fmt.Errorf("cannot NewNMonomial: maxPrec must be >= 1 but is %d", maxPrec)
	}

	var ofDegree []*big.Int
	if q < maxPrec {
		ofDegree = mul(oneMinusZPow(q, n, maxPrec), reciprocal(oneMinusZPow(1, n, maxPrec), maxPrec), maxPrec)
	} else {
		ofDegree = reciprocal(oneMinusZPow(1, n, maxPrec), maxPrec)
	}

	return &NMonomial{
		q:          q,
		n:          n,
		maxPrec:    maxPrec,
		ofDegree:   ofDegree,
		upToDegree: prefixSums(ofDegree, maxPrec),
	}, nil
}

// MaxPrec returns the exclusive bound on the degrees the series holds
// coefficients for.
func (s *NMonomial) MaxPrec() int {
	return s.maxPrec
}

// NMonomialsOfDegree returns the number of monomials of degree exactly d.
func (s *NMonomial) NMonomialsOfDegree(d int) (*big.Int, error) {
	if d < 0 || d >= s.maxPrec {
		return nil, fmt.Errorf("the degree d must be in the range 0 <= d < %d but is %d", s.maxPrec, d)
	}
	return new(big.Int).Set(s.ofDegree[d]), nil
}

// NMonomialsUpToDegree returns the number of monomials of degree at most d.
func (s *NMonomial) NMonomialsUpToDegree(d int) (*big.Int, error) {
	if d < 0 || d >= s.maxPrec {
		return nil, fmt.Errorf("the degree d must be in the range 0 <= d < %d but is %d", s.maxPrec, d)
	}
	return new(big.Int).Set(s.upToDegree[d]), nil
}

func (s *NMonomial) String() string {
	return fmt.Sprintf("class for the number of monomials in %d variables over GF(%d)", s.n, s.q)
}
