// Package series computes coefficients of the formal power series counting
// monomials over finite fields, used to size Macaulay-style matrices. All
// coefficients are exact big integers.
package series

import "math/big"

// truncated power series as coefficient slices, index = degree.

func one(prec int) (s []*big.Int) {
	s = zero(prec)
	s[0].SetInt64(1)
	return
}

func zero(prec int) (s []*big.Int) {
	s = make([]*big.Int, prec)
	for i := range s {
		s[i] = new(big.Int)
	}
	return
}

// mul returns a*b truncated at the given precision.
func mul(a, b []*big.Int, prec int) (r []*big.Int) {
	r = zero(prec)
	tmp := new(big.Int)
	for i := 0; i < len(a) && i < prec; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j < len(b) && i+j < prec; j++ {
			r[i+j].Add(r[i+j], tmp.Mul(a[i], b[j]))
		}
	}
	return
}

// reciprocal returns 1/a truncated at the given precision. The constant term
// of a must be 1, which holds for every divisor appearing in the counting
// series; the resulting coefficients are then integers.
func reciprocal(a []*big.Int, prec int) (r []*big.Int) {
	r = zero(prec)
	r[0].SetInt64(1)
	tmp := new(big.Int)
	for n := 1; n < prec; n++ {
		for k := 1; k <= n && k < len(a); k++ {
			r[n].Sub(r[n], tmp.Mul(a[k], r[n-k]))
		}
	}
	return
}

// oneMinusZPow returns (1 - z^k)^n truncated at the given precision.
func oneMinusZPow(k, n, prec int) (s []*big.Int) {
	s = zero(prec)
	for i := 0; i <= n && k*i < prec; i++ {
		s[k*i].Binomial(int64(n), int64(i))
		if i&1 == 1 {
			s[k*i].Neg(s[k*i])
		}
	}
	return
}

// prefixSums returns the series s/(1-z), whose degree-d coefficient is the
// sum of the coefficients of s up to degree d.
func prefixSums(s []*big.Int, prec int) (r []*big.Int) {
	r = zero(prec)
	acc := new(big.Int)
	for i := 0; i < prec && i < len(s); i++ {
		acc.Add(acc, s[i])
		r[i].Set(acc)
	}
	return
}
