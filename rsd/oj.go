package rsd

import (
	"fmt"
	"math"

	"github.com/shaurya010/CryptographicEstimators/core/estimation"
	"github.com/shaurya010/CryptographicEstimators/utils/bignum"
)

// DefaultW is the default linear algebra constant used by the estimators of
// this package.
const DefaultW = 3.0

// OJLiteral is a literal representation of the configuration of the
// Ourivski-Johansson estimators. The zero value is a valid configuration.
//
// Optionally, users may specify
//   - W: the linear algebra constant (default: [DefaultW])
//   - BitComplexities: whether complexities are reported as bit operations
//     rather than field operations (default: true)
//   - MemoryAccess: the memory access cost model (default: constant).
type OJLiteral struct {
	W               *float64
	BitComplexities *bool
	MemoryAccess    estimation.MemoryAccess
}

func (lit OJLiteral) w() (float64, error) {
	w := DefaultW
	if lit.W != nil {
		w = *lit.W
	}
	if w < 2 || w > 3 {
		return 0, fmt.Errorf("w must be in the range 2 <= w <= 3 but is %v", w)
	}
	return w, nil
}

// OJ1 is an estimator for the first algorithm of Ourivski and Johansson
// (basis enumeration), solving the rank syndrome decoding problem.
//
// A. Ourivski, T. Johansson: New Technique for Decoding Codes in the Rank
// Metric and Its Cryptography Applications.
type OJ1 struct {
	*estimation.Algorithm
	params Parameters
	w      float64
}

// NewOJ1 instantiates an [OJ1] estimator for the given RSD problem
// parameters. It returns a nil estimator and a non-nil error if the
// configuration is invalid or if the algorithm cannot be applied to the
// problem.
func NewOJ1(params Parameters, lit OJLiteral) (est *OJ1, err error) {

	if params.M() < 2 {
		return nil, fmt.Errorf("m must be >= 2 but is %d", params.M())
	}

	est = &OJ1{params: params}

	if est.w, err = lit.w(); err != nil {
		return nil, err
	}

	cfg := estimation.Config{
		BitComplexities: lit.BitComplexities,
		MemoryAccess:    lit.MemoryAccess,
	}

	if est.Algorithm, err = estimation.NewAlgorithm("Ourivski-Johansson-1", params, est, cfg); err != nil {
		return nil, err
	}

	return
}

// Parameters returns the problem parameters of the estimator.
func (a *OJ1) Parameters() Parameters {
	return a.params
}

// W returns the linear algebra constant of the estimator.
func (a *OJ1) W() float64 {
	return a.w
}

// ComputeTimeComplexity returns the time complexity of basis enumeration in
// log2 GF(q) operations.
func (a *OJ1) ComputeTimeComplexity(_ estimation.Assignment) (float64, error) {
	q, m, k, r := a.params.Q(), a.params.M(), a.params.K(), a.params.R()
	return a.w*bignum.Log2(m*r) + float64((r-1)*(k+1))*bignum.Log2(q), nil
}

// ComputeMemoryComplexity returns the memory complexity of basis enumeration
// in log2 GF(q) elements: the linear system solved at each enumeration step.
func (a *OJ1) ComputeMemoryComplexity(_ estimation.Assignment) (float64, error) {
	m, k, r := a.params.M(), a.params.K(), a.params.R()
	cm := int(math.Ceil(float64((r-1)*m+k+1) / float64(m-1)))
	return bignum.Log2(cm * m * ((r-1)*m + k + cm + 1)), nil
}

func (a *OJ1) String() string {
	return fmt.Sprintf("Ourivski-Johansson-1 estimator for the %v", a.params)
}

// OJ2 is an estimator for the second algorithm of Ourivski and Johansson
// (coordinate enumeration), solving the rank syndrome decoding problem.
//
// A. Ourivski, T. Johansson: New Technique for Decoding Codes in the Rank
// Metric and Its Cryptography Applications.
type OJ2 struct {
	*estimation.Algorithm
	params Parameters
	w      float64
}

// NewOJ2 instantiates an [OJ2] estimator for the given RSD problem
// parameters. It returns a nil estimator and a non-nil error if the
// configuration is invalid or if the algorithm cannot be applied to the
// problem.
func NewOJ2(params Parameters, lit OJLiteral) (est *OJ2, err error) {

	if params.M() <= params.R() {
		return nil, fmt.Errorf("m must be > r but is %d", params.M())
	}

	est = &OJ2{params: params}

	if est.w, err = lit.w(); err != nil {
		return nil, err
	}

	cfg := estimation.Config{
		BitComplexities: lit.BitComplexities,
		MemoryAccess:    lit.MemoryAccess,
	}

	if est.Algorithm, err = estimation.NewAlgorithm("Ourivski-Johansson-2", params, est, cfg); err != nil {
		return nil, err
	}

	return
}

// Parameters returns the problem parameters of the estimator.
func (a *OJ2) Parameters() Parameters {
	return a.params
}

// W returns the linear algebra constant of the estimator.
func (a *OJ2) W() float64 {
	return a.w
}

// ComputeTimeComplexity returns the time complexity of coordinate enumeration
// in log2 GF(q) operations.
func (a *OJ2) ComputeTimeComplexity(_ estimation.Assignment) (float64, error) {
	q, m, k, r := a.params.Q(), a.params.M(), a.params.K(), a.params.R()
	return a.w*(bignum.Log2(k+r)+bignum.Log2(r)) + float64((r-1)*(m-r))*bignum.Log2(q), nil
}

// ComputeMemoryComplexity returns the memory complexity of coordinate
// enumeration in log2 GF(q) elements.
func (a *OJ2) ComputeMemoryComplexity(_ estimation.Assignment) (float64, error) {
	m, k, r := a.params.M(), a.params.K(), a.params.R()
	cm := int(math.Ceil(float64((k+1)*r) / float64(m-r)))
	return bignum.Log2(cm * m * (k + 1 + cm) * r), nil
}

func (a *OJ2) String() string {
	return fmt.Sprintf("Ourivski-Johansson-2 estimator for the %v", a.params)
}
