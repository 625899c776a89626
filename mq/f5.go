package mq

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shaurya010/CryptographicEstimators/core/estimation"
	"github.com/shaurya010/CryptographicEstimators/mq/series"
	"github.com/shaurya010/CryptographicEstimators/utils"
	"github.com/shaurya010/CryptographicEstimators/utils/bignum"
)

// DefaultW is the default linear algebra constant, the best known matrix
// multiplication exponent the analysis assumes.
const DefaultW = 2.81

// F5Literal is a literal representation of the F5 estimator configuration.
//
// Optionally, users may specify
//   - H: the external hybridization parameter, the number of variables
//     guessed before running the main method (default: 0)
//   - W: the linear algebra constant (default: 2.81)
//   - Degrees: the degrees of the polynomials, one per polynomial
//     (default: all 2)
//   - OptimizeH: search for the hybridization depth minimizing the time
//     complexity over the finite range [0, min(n, m)-1] instead of using H
//   - BitComplexities, MemoryAccess: see [estimation.Config].
type F5Literal struct {
	H               *int     `json:",omitempty"`
	W               *float64 `json:",omitempty"`
	Degrees         []int    `json:",omitempty"`
	OptimizeH       bool
	BitComplexities *bool
	MemoryAccess    estimation.MemoryAccess
}

// F5 is the complexity estimator of Faugere's F5 Groebner-basis algorithm on
// an MQ problem. The degree of regularity and the Macaulay column count are
// derived lazily and cached per hybridization depth; an instance must be
// used by a single goroutine.
//
// The time complexity formula takes the field equations into account: the
// number of columns of the Macaulay matrix at degree D is the coefficient of
// z^D in the series (1 - z^q)^n / (1 - z)^n.
type F5 struct {
	*estimation.Algorithm

	params    Parameters
	h         int
	w         float64
	degrees   []int
	optimizeH bool

	dreg  map[int]int
	ncols map[int]*big.Int
}

// NewF5 constructs an F5 complexity estimator for the given MQ problem. It
// returns a non-nil error if the configuration is invalid, in particular if
// the length of Degrees differs from the number of polynomials.
func NewF5(params Parameters, lit F5Literal) (est *F5, err error) {

	n, m := params.NVariables(), params.NPolynomials()

	var h int
	if lit.H != nil {
		h = *lit.H
	}

	if h < 0 || h >= utils.Min(n, m) {
		return nil, fmt.Errorf("h must be in the range 0 <= h < %d but is %d", utils.Min(n, m), h)
	}

	w := DefaultW
	if lit.W != nil {
		w = *lit.W
	}

	if w < 2 || w > 3 {
		return nil, fmt.Errorf("w must be in the range 2 <= w <= 3 but is %v", w)
	}

	est = &F5{
		params:    params,
		h:         h,
		w:         w,
		optimizeH: lit.OptimizeH,
		dreg:      make(map[int]int),
		ncols:     make(map[int]*big.Int),
	}

	reduced := est.NPolynomialsReduced()

	degrees := lit.Degrees
	if degrees == nil {
		degrees = utils.Fill(reduced, 2)
	}

	if len(degrees) != reduced {
		return nil, fmt.Errorf("len(degrees) must be equal to %d but is %d", reduced, len(degrees))
	}

	est.degrees = make([]int, reduced)
	copy(est.degrees, degrees)

	var ranges []estimation.ParameterRange
	if lit.OptimizeH {
		ranges = []estimation.ParameterRange{{Name: "h", Min: 0, Max: utils.Min(n, m) - 1}}
	}

	est.Algorithm, err = estimation.NewAlgorithm("F5", params, est, estimation.Config{
		BitComplexities: lit.BitComplexities,
		MemoryAccess:    lit.MemoryAccess,
		TuningRanges:    ranges,
	})

	return
}

// Parameters returns the bound MQ problem parameters.
func (a *F5) Parameters() Parameters {
	return a.params
}

// DegreeOfPolynomials returns the degrees of the polynomials, one per
// reduced polynomial.
func (a *F5) DegreeOfPolynomials() []int {
	degrees := make([]int, len(a.degrees))
	copy(degrees, a.degrees)
	return degrees
}

// LinearAlgebraConstant returns the linear algebra constant w.
func (a *F5) LinearAlgebraConstant() float64 {
	return a.w
}

// Hybridization returns the external hybridization parameter h.
func (a *F5) Hybridization() int {
	return a.h
}

// NVariablesReduced returns the number of variables after the problem
// reduction: guessed variables are removed, and underdefined systems are
// folded with the Thomae-Wolf strategy.
func (a *F5) NVariablesReduced() int {
	return a.nvariablesReduced(a.h)
}

// NPolynomialsReduced returns the number of polynomials after the problem
// reduction.
func (a *F5) NPolynomialsReduced() int {
	n, m := a.params.NVariables(), a.params.NPolynomials()
	if a.params.IsUnderdefinedSystem() {
		return m - n/m + 1
	}
	return m
}

func (a *F5) nvariablesReduced(h int) int {
	n, m := a.params.NVariables(), a.params.NPolynomials()
	if a.params.IsUnderdefinedSystem() {
		return m - n/m + 1 - h
	}
	return utils.Min(n, m) - h
}

// getReducedParameters returns (n, m, q) of the reduced system at the given
// hybridization depth.
func (a *F5) getReducedParameters(h int) (n, m, q int) {
	return a.nvariablesReduced(h), a.NPolynomialsReduced(), a.params.Q()
}

// DegreeOfRegularity returns the degree of regularity of the reduced system,
// computed once and cached.
func (a *F5) DegreeOfRegularity() (int, error) {
	return a.degreeOfRegularity(a.h)
}

func (a *F5) degreeOfRegularity(h int) (dreg int, err error) {

	if dreg, ok := a.dreg[h]; ok {
		return dreg, nil
	}

	n, m, q := a.getReducedParameters(h)
	if dreg, err = DegreeOfRegularityGeneric(n, m, a.degrees, q); err != nil {
		return 0, err
	}

	a.dreg[h] = dreg
	return
}

// ncolsAtDegreeOfRegularity returns the number of Macaulay matrix columns at
// the degree of regularity, computed once and cached.
func (a *F5) ncolsAtDegreeOfRegularity(h int) (ncols *big.Int, err error) {

	if ncols, ok := a.ncols[h]; ok {
		return ncols, nil
	}

	n, _, q := a.getReducedParameters(h)

	dreg, err := a.degreeOfRegularity(h)
	if err != nil {
		return nil, err
	}

	nm, err := series.NewNMonomial(q, n, utils.Min(dreg, n)+2)
	if err != nil {
		return nil, err
	}

	if ncols, err = nm.NMonomialsOfDegree(dreg); err != nil {
		return nil, err
	}

	a.ncols[h] = ncols
	return
}

func (a *F5) hybridization(p estimation.Assignment) int {
	if a.optimizeH {
		if h, ok := p["h"]; ok {
			return h
		}
	}
	return a.h
}

// ComputeTimeComplexity returns the time complexity (log2 of field
// operations) of running F5 on the bound problem: the linear algebra cost on
// the Macaulay matrix at the degree of regularity, corrected by a
// union-bound factor over the m polynomials, combined with the cost of the
// FGLM post-processing step, plus the cost of guessing h variables.
func (a *F5) ComputeTimeComplexity(p estimation.Assignment) (float64, error) {

	if a.params.IsUnderdefinedSystem() {
		return 0, fmt.Errorf("the input system cannot be underdefined: %w", estimation.ErrInfeasible)
	}

	h := a.hybridization(p)
	_, m, q := a.getReducedParameters(h)

	ncols, err := a.ncolsAtDegreeOfRegularity(h)
	if err != nil {
		return 0, err
	}

	time := a.w * bignum.Log2(ncols)
	time += bignum.Log2(m)

	return float64(h)*bignum.Log2(q) + math.Max(time, a.timeComplexityFGLM(h)), nil
}

// TimeComplexityFGLM returns the time complexity (log2) of the FGLM
// algorithm converting the Groebner basis into D = 2^nsolutions explicit
// solutions.
func (a *F5) TimeComplexityFGLM() float64 {
	return a.timeComplexityFGLM(a.h)
}

func (a *F5) timeComplexityFGLM(h int) float64 {
	n, _, q := a.getReducedParameters(h)
	D := math.Pow(2, a.params.NSolutions())
	return float64(h)*bignum.Log2(q) + bignum.Log2(float64(n)*math.Pow(D, 3))
}

// ComputeMemoryComplexity returns the memory complexity (log2 of field
// elements): the dense Macaulay matrix storage or the input size, whichever
// dominates.
func (a *F5) ComputeMemoryComplexity(p estimation.Assignment) (float64, error) {

	h := a.hybridization(p)
	n, m, _ := a.getReducedParameters(h)

	ncols, err := a.ncolsAtDegreeOfRegularity(h)
	if err != nil {
		return 0, err
	}

	return math.Max(bignum.Log2(ncols)*2, bignum.Log2(m*n*n)), nil
}

// ComputeTildeOTimeComplexity returns the soft-O time complexity, which
// omits the union-bound correction over the m polynomials.
func (a *F5) ComputeTildeOTimeComplexity(p estimation.Assignment) (float64, error) {

	if a.params.IsUnderdefinedSystem() {
		return 0, fmt.Errorf("the input system cannot be underdefined: %w", estimation.ErrInfeasible)
	}

	h := a.hybridization(p)
	q := a.params.Q()

	ncols, err := a.ncolsAtDegreeOfRegularity(h)
	if err != nil {
		return 0, err
	}

	time := a.w * bignum.Log2(ncols)

	return float64(h)*bignum.Log2(q) + math.Max(time, a.tildeOTimeComplexityFGLM(h)), nil
}

func (a *F5) tildeOTimeComplexityFGLM(h int) float64 {
	q := a.params.Q()
	D := math.Pow(2, a.params.NSolutions())
	return float64(h)*bignum.Log2(q) + bignum.Log2(math.Pow(D, 3))
}

// ComputeTildeOMemoryComplexity returns the soft-O memory complexity, the
// Macaulay matrix storage alone.
func (a *F5) ComputeTildeOMemoryComplexity(p estimation.Assignment) (float64, error) {

	h := a.hybridization(p)

	ncols, err := a.ncolsAtDegreeOfRegularity(h)
	if err != nil {
		return 0, err
	}

	return bignum.Log2(ncols) * 2, nil
}

func (a *F5) String() string {
	return fmt.Sprintf("F5 estimator for the MQ problem with %d variables and %d polynomials", a.params.NVariables(), a.params.NPolynomials())
}
