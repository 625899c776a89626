package series

import (
	"fmt"
	"math/big"
)

// Hilbert holds the Hilbert series of an ideal generated by polynomials of
// the given degrees d_i in n variables over GF(q):
//
//	H(z) = prod_i (1 - z^{d_i}) / (1 - z^{d_i q}) * (1 - z^q)^n / (1 - z)^n
//
// For q >= 2*len(degrees) the field-equation factors are inert below the
// truncation degree and the series reduces to prod_i (1 - z^{d_i}) / (1-z)^n.
// The smallest degree with a non-positive coefficient is where a semi-regular
// system of that shape becomes linearly dependent.
type Hilbert struct {
	n, q    int
	degrees []int
	prec    int
	coeffs  []*big.Int
}

// NewHilbert constructs the Hilbert series for n variables, one generator
// per entry of degrees, over GF(q). The precision is fixed to 2*len(degrees).
func NewHilbert(n int, degrees []int, q int) (*Hilbert, error) {

	if n < 1 {
		return nil, fmt.Errorf("cannot NewHilbert: n must be >= 1 but is %d", n)
	}

	if len(degrees) == 0 {
		return nil, fmt.Errorf("cannot NewHilbert: degrees must not be empty")
	}

	for _, d := range degrees {
		if d < 1 {
			return nil, fmt.Errorf("cannot NewHilbert: degrees must be >= 1 but contain %d", d)
		}
	}

	if q < 2 {
		return nil, fmt.Errorf("cannot NewHilbert: q must be >= 2 but is %d", q)
	}

	prec := 2 * len(degrees)
	coeffs := one(prec)

	if q < 2*len(degrees) {
		for _, d := range degrees {
			coeffs = mul(coeffs, oneMinusZPow(d, 1, prec), prec)
			coeffs = mul(coeffs, reciprocal(oneMinusZPow(d*q, 1, prec), prec), prec)
		}
		coeffs = mul(coeffs, oneMinusZPow(q, n, prec), prec)
	} else {
		for _, d := range degrees {
			coeffs = mul(coeffs, oneMinusZPow(d, 1, prec), prec)
		}
	}
	coeffs = mul(coeffs, reciprocal(oneMinusZPow(1, n, prec), prec), prec)

	cp := make([]int, len(degrees))
	copy(cp, degrees)

	return &Hilbert{n: n, q: q, degrees: cp, prec: prec, coeffs: coeffs}, nil
}

// Precision returns the exclusive bound on the degrees the series holds
// coefficients for.
func (s *Hilbert) Precision() int {
	return s.prec
}

// Coefficient returns the coefficient of z^d.
func (s *Hilbert) Coefficient(d int) (*big.Int, error) {
	if d < 0 || d >= s.prec {
		return nil, fmt.Errorf("the degree d must be in the range 0 <= d < %d but is %d", s.prec, d)
	}
	return new(big.Int).Set(s.coeffs[d]), nil
}

// FirstNonPositiveCoefficient returns the smallest degree whose coefficient
// is <= 0.
func (s *Hilbert) FirstNonPositiveCoefficient() (int, error) {
	for d := 0; d < s.prec; d++ {
		if s.coeffs[d].Sign() <= 0 {
			return d, nil
		}
	}
	return 0, fmt.Errorf("the Hilbert series has no non-positive coefficient up to its precision %d", s.prec)
}

func (s *Hilbert) String() string {
	return fmt.Sprintf("Hilbert series for %d polynomials in %d variables over GF(%d)", len(s.degrees), s.n, s.q)
}
