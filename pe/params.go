// Package pe implements the permutation code equivalence (PE) problem model:
// given two linear codes of length n and dimension k over GF(q), decide
// whether one is a permutation of the other.
package pe

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/shaurya010/CryptographicEstimators/utils"
	"github.com/shaurya010/CryptographicEstimators/utils/bignum"
)

// ParametersLiteral is a literal representation of PE problem parameters.
//
// Optionally, users may specify
//   - H: the hull dimension of the codes (default: min(n, n-k))
//   - NSolutions: the expected number of solutions in log2 scale (default:
//     the problem's own expectation, clamped to be non-negative)
//   - MemoryBound: the maximum memory allowed for solving the problem
//     (default: none).
type ParametersLiteral struct {
	N           int
	K           int
	Q           int
	H           *int     `json:",omitempty"`
	NSolutions  *float64 `json:",omitempty"`
	MemoryBound *float64 `json:",omitempty"`
}

// Parameters represents a set of PE problem parameters. Its fields are
// private and immutable. See [ParametersLiteral] for user-specified
// parameters.
type Parameters struct {
	n, k, q, h  int
	nsolutions  float64
	memoryBound float64
}

// NewParametersFromLiteral instantiates a set of PE problem parameters from
// a ParametersLiteral specification. It returns the empty parameters and a
// non-nil error if the specification is invalid.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {

	if lit.N < 1 {
		return Parameters{}, fmt.Errorf("n must be >= 1 but is %d", lit.N)
	}

	if lit.K < 0 || lit.K > lit.N {
		return Parameters{}, fmt.Errorf("k must be in the range 0 <= k <= %d but is %d", lit.N, lit.K)
	}

	if !utils.IsPrimePower(lit.Q) {
		return Parameters{}, fmt.Errorf("q must be a prime power but is %d", lit.Q)
	}

	h := utils.Min(lit.N, lit.N-lit.K)
	if lit.H != nil {
		h = *lit.H
	}

	if h < 0 || h > lit.N {
		return Parameters{}, fmt.Errorf("h must be in the range 0 <= h <= %d but is %d", lit.N, h)
	}

	memoryBound := math.Inf(1)
	if lit.MemoryBound != nil {
		memoryBound = *lit.MemoryBound
	}

	params := Parameters{
		n:           lit.N,
		k:           lit.K,
		q:           lit.Q,
		h:           h,
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

// N returns the code length.
func (p Parameters) N() int {
	return p.n
}

// K returns the code dimension.
func (p Parameters) K() int {
	return p.k
}

// Q returns the order of the base field.
func (p Parameters) Q() int {
	return p.q
}

// H returns the hull dimension of the codes.
func (p Parameters) H() int {
	return p.h
}

// NSolutions returns the number of solutions of the problem in log2 scale.
func (p Parameters) NSolutions() float64 {
	return p.nsolutions
}

// MemoryBound returns the maximum memory allowed for solving the problem.
func (p Parameters) MemoryBound() float64 {
	return p.memoryBound
}

// GetParameters returns the problem parameters in the order (n, k, q, h).
func (p Parameters) GetParameters() []int {
	return []int{p.n, p.k, p.q, p.h}
}

// ExpectedNumberSolutions returns the logarithm of the expected number of
// permutations mapping one random code onto the other: n! permutations each
// preserving a random k-dimensional code with probability q^(k^2 - n*k).
func (p Parameters) ExpectedNumberSolutions() float64 {
	return bignum.Log2(p.q)*float64(p.k*p.k) + bignum.Log2Factorial(p.n) - bignum.Log2(p.q)*float64(p.n*p.k)
}

// ToBitComplexityTime returns the bit-complexity corresponding to
// basicOperations GF(q) additions.
func (p Parameters) ToBitComplexityTime(basicOperations float64) float64 {
	return basicOperations + bignum.Log2(bignum.Log2(p.q))
}

// ToBitComplexityMemory returns the memory bit-complexity associated to a
// given number of GF(q) elements to store.
func (p Parameters) ToBitComplexityMemory(elementsToStore float64) float64 {
	return elementsToStore + bignum.Log2(bignum.Log2(p.q))
}

// Equal returns true if the two sets of parameters are identical.
func (p Parameters) Equal(other Parameters) (res bool) {
	res = cmp.Equal(p.GetParameters(), other.GetParameters())
	res = res && p.nsolutions == other.nsolutions
	res = res && p.memoryBound == other.memoryBound
	return
}

// ParametersLiteral returns the literal representation of the parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	lit := ParametersLiteral{
		N:          p.n,
		K:          p.k,
		Q:          p.q,
		H:          utils.PointyInt(p.h),
		NSolutions: utils.PointyFloat64(p.nsolutions),
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
	return fmt.Sprintf("permutation equivalence problem with (n,k,q) = (%d,%d,%d)", p.n, p.k, p.q)
}
