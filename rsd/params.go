// Package rsd implements the rank syndrome decoding (RSD) problem model and
// the complexity estimators of the known algorithms solving it.
package rsd

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/shaurya010/CryptographicEstimators/utils"
	"github.com/shaurya010/CryptographicEstimators/utils/bignum"
)

// ParametersLiteral is a literal representation of RSD problem parameters:
// decoding a random code of length N and dimension K over GF(q^M) up to rank
// R, with Q the order of the base field.
//
// Optionally, users may specify
//   - NSolutions: the expected number of solutions in log2 scale (default:
//     the problem's own expectation, clamped to be non-negative)
//   - MemoryBound: the maximum memory allowed for solving the problem
//     (default: none).
type ParametersLiteral struct {
	Q           int
	M           int
	N           int
	K           int
	R           int
	NSolutions  *float64 `json:",omitempty"`
	MemoryBound *float64 `json:",omitempty"`
}

// Parameters represents a set of RSD problem parameters. Its fields are
// private and immutable; all derived quantities are pure functions of them.
// See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	q, m, n, k, r int
	nsolutions    float64
	memoryBound   float64
}

// NewParametersFromLiteral instantiates a set of RSD problem parameters from
// a ParametersLiteral specification. It returns the empty parameters and a
// non-nil error if the specification is invalid.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {

	if !utils.IsPrimePower(lit.Q) {
		return Parameters{}, fmt.Errorf("q must be a prime power but is %d", lit.Q)
	}

	if lit.M < 1 {
		return Parameters{}, fmt.Errorf("m must be >= 1 but is %d", lit.M)
	}

	if lit.N < 1 {
		return Parameters{}, fmt.Errorf("n must be >= 1 but is %d", lit.N)
	}

	if lit.K < 0 || lit.K > lit.N {
		return Parameters{}, fmt.Errorf("k must be in the range 0 <= k <= %d but is %d", lit.N, lit.K)
	}

	if lit.R < 1 {
		return Parameters{}, fmt.Errorf("r must be >= 1 but is %d", lit.R)
	}

	memoryBound := math.Inf(1)
	if lit.MemoryBound != nil {
		memoryBound = *lit.MemoryBound
	}

	params := Parameters{
		q:           lit.Q,
		m:           lit.M,
		n:           lit.N,
		k:           lit.K,
		r:           lit.R,
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

// Q returns the order of the base field.
func (p Parameters) Q() int {
	return p.q
}

// M returns the degree of the field extension.
func (p Parameters) M() int {
	return p.m
}

// N returns the code length.
func (p Parameters) N() int {
	return p.n
}

// K returns the code dimension.
func (p Parameters) K() int {
	return p.k
}

// R returns the target rank.
func (p Parameters) R() int {
	return p.r
}

// NSolutions returns the number of solutions of the problem in log2 scale.
func (p Parameters) NSolutions() float64 {
	return p.nsolutions
}

// MemoryBound returns the maximum memory allowed for solving the problem.
func (p Parameters) MemoryBound() float64 {
	return p.memoryBound
}

// GetParameters returns the problem parameters in the order (q, m, n, k, r).
func (p Parameters) GetParameters() []int {
	return []int{p.q, p.m, p.n, p.k, p.r}
}

// ExpectedNumberSolutions returns the logarithm of the expected number of
// solutions of the problem: the count of rank-r error patterns over the
// (n-k)*m syndrome constraints.
func (p Parameters) ExpectedNumberSolutions() float64 {
	return bignum.Log2(p.q) * float64(p.r*(p.m+p.n-p.r)-(p.n-p.k)*p.m)
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
		Q:          p.q,
		M:          p.m,
		N:          p.n,
		K:          p.k,
		R:          p.r,
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
	return fmt.Sprintf("rank syndrome decoding problem with (q, m, n, k, r) = (%d,%d,%d,%d,%d)", p.q, p.m, p.n, p.k, p.r)
}
