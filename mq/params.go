// Package mq implements the multivariate quadratic (MQ) problem model and the
// complexity estimators of the known algorithms solving it.
package mq

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/shaurya010/CryptographicEstimators/utils"
	"github.com/shaurya010/CryptographicEstimators/utils/bignum"
)

// DefaultTheta is the default exponent of the bit-complexity conversion
// factor: one multiplication in GF(q) is counted as log2(q)^theta bit
// operations.
const DefaultTheta = 2.0

// ParametersLiteral is a literal representation of MQ problem parameters. It
// has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The [NewParametersFromLiteral] function is used
// to generate the actual checked parameters from the literal representation.
//
// Users must set the number of variables (N), the number of polynomials (M)
// and the order of the finite field (Q).
//
// Optionally, users may specify
//   - NSolutions: the expected number of solutions in log2 scale (default:
//     the problem's own expectation, clamped to be non-negative)
//   - Theta: the exponent of the bit-complexity conversion factor, in [0, 2]
//     (default: 2)
//   - MemoryBound: the maximum memory allowed for solving the problem
//     (default: none).
type ParametersLiteral struct {
	N           int
	M           int
	Q           int
	NSolutions  *float64 `json:",omitempty"`
	Theta       *float64 `json:",omitempty"`
	MemoryBound *float64 `json:",omitempty"`
}

// Parameters represents a set of MQ problem parameters: a system of m
// quadratic polynomials in n variables over GF(q). Its fields are private
// and immutable; all derived quantities are pure functions of them. See
// [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	n, m, q     int
	nsolutions  float64
	theta       float64
	memoryBound float64
}

// NewParametersFromLiteral instantiates a set of MQ problem parameters from
// a ParametersLiteral specification, substituting defaults for unset optional
// fields. It returns the empty parameters and a non-nil error if the
// specification is invalid.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {

	if lit.N < 1 {
		return Parameters{}, fmt.Errorf("n must be >= 1 but is %d", lit.N)
	}

	if lit.M < 1 {
		return Parameters{}, fmt.Errorf("m must be >= 1 but is %d", lit.M)
	}

	if !utils.IsPrimePower(lit.Q) {
		return Parameters{}, fmt.Errorf("q must be a prime power but is %d", lit.Q)
	}

	theta := DefaultTheta
	if lit.Theta != nil {
		theta = *lit.Theta
	}

	if theta < 0 || theta > 2 {
		return Parameters{}, fmt.Errorf("theta must be between 0 and 2 but is %v", theta)
	}

	memoryBound := math.Inf(1)
	if lit.MemoryBound != nil {
		memoryBound = *lit.MemoryBound
	}

	params := Parameters{
		n:           lit.N,
		m:           lit.M,
		q:           lit.Q,
		theta:       theta,
		memoryBound: memoryBound,
	}

	params.nsolutions = math.Max(params.ExpectedNumberSolutions(), 0)
	if lit.NSolutions != nil {
		params.nsolutions = *lit.NSolutions
	}

	if params.nsolutions < 0 {
		return Parameters{}, fmt.Errorf("nsolutions must be >= 0 but is %v", params.nsolutions)
	}

	return params, nil
}

// NVariables returns the number of variables n.
func (p Parameters) NVariables() int {
	return p.n
}

// NPolynomials returns the number of polynomials m.
func (p Parameters) NPolynomials() int {
	return p.m
}

// Q returns the order of the finite field.
func (p Parameters) Q() int {
	return p.q
}

// NSolutions returns the number of solutions of the problem in log2 scale.
func (p Parameters) NSolutions() float64 {
	return p.nsolutions
}

// Theta returns the exponent of the bit-complexity conversion factor.
func (p Parameters) Theta() float64 {
	return p.theta
}

// MemoryBound returns the maximum memory allowed for solving the problem.
func (p Parameters) MemoryBound() float64 {
	return p.memoryBound
}

// GetParameters returns the problem parameters in the order (n, m, q).
func (p Parameters) GetParameters() []int {
	return []int{p.n, p.m, p.q}
}

// IsUnderdefinedSystem returns true if the system has more variables than
// polynomials.
func (p Parameters) IsUnderdefinedSystem() bool {
	return p.n > p.m
}

// IsOverdefinedSystem returns true if the system has more polynomials than
// variables.
func (p Parameters) IsOverdefinedSystem() bool {
	return p.m > p.n
}

// ExpectedNumberSolutions returns the logarithm of the expected number of
// solutions of the problem, q^(n-m).
func (p Parameters) ExpectedNumberSolutions() float64 {
	return bignum.Log2(p.q) * float64(p.n-p.m)
}

// ToBitComplexityTime returns the bit-complexity corresponding to
// basicOperations GF(q) multiplications, counting each one as log2(q)^theta
// bit operations.
func (p Parameters) ToBitComplexityTime(basicOperations float64) float64 {
	return basicOperations + bignum.Log2(math.Pow(bignum.Log2(p.q), p.theta))
}

// ToBitComplexityMemory returns the memory bit-complexity associated to a
// given number of GF(q) elements to store.
func (p Parameters) ToBitComplexityMemory(elementsToStore float64) float64 {
	return bignum.Log2(math.Ceil(bignum.Log2(p.q))) + elementsToStore
}

// Equal returns true if the two sets of parameters are identical.
func (p Parameters) Equal(other Parameters) (res bool) {
	res = cmp.Equal(p.GetParameters(), other.GetParameters())
	res = res && p.nsolutions == other.nsolutions
	res = res && p.theta == other.theta
	res = res && p.memoryBound == other.memoryBound
	return
}

// ParametersLiteral returns the literal representation of the parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	lit := ParametersLiteral{
		N:          p.n,
		M:          p.m,
		Q:          p.q,
		NSolutions: utils.PointyFloat64(p.nsolutions),
		Theta:      utils.PointyFloat64(p.theta),
	}
	if !math.IsInf(p.memoryBound, 1) {
		lit.MemoryBound = utils.PointyFloat64(p.memoryBound)
	}
	return lit
}

// MarshalJSON returns a JSON representation of the parameters. See Marshal
// from the encoding/json package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of the parameters on the target
// Parameters. See Unmarshal from the encoding/json package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var lit ParametersLiteral
	if err = json.Unmarshal(data, &lit); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(lit)
	return
}

func (p Parameters) String() string {
	return fmt.Sprintf("MQ problem with (n, m, q) = (%d,%d,%d)", p.n, p.m, p.q)
}
