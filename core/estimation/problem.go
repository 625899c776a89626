// Package estimation defines the contracts shared by all hardness estimators:
// the problem-parameter model, the algorithm cost-model hooks and the
// memoizing wrapper that turns a cost model into time and memory complexity
// estimates, optionally minimizing over a finite tuning-parameter space.
//
// All complexities are base-2 logarithms: of field operations and field
// elements in the "operations" scale, of bit operations and bits once
// converted through the problem's bit-complexity transforms. +Inf is a legal
// estimate and means that no feasible attack configuration exists.
package estimation

import (
	"errors"
	"fmt"
)

// ErrInfeasible tags errors reported when an algorithm's precondition fails
// for otherwise valid problem parameters, e.g. an underdefined system handed
// to a Groebner-basis method. Use errors.Is to test for it.
var ErrInfeasible = errors.New("infeasible input")

// Problem is the contract implemented by the parameter set of each hard
// problem family. Implementations are immutable value types; all methods are
// pure functions of the constructed parameters.
type Problem interface {
	fmt.Stringer

	// ToBitComplexityTime converts a number of field operations (log2) into
	// a number of bit operations (log2).
	ToBitComplexityTime(basicOperations float64) float64

	// ToBitComplexityMemory converts a number of field elements to store
	// (log2) into a number of bits (log2).
	ToBitComplexityMemory(elementsToStore float64) float64

	// ExpectedNumberSolutions returns the logarithm of the expected number
	// of solutions of the problem.
	ExpectedNumberSolutions() float64

	// MemoryBound returns the maximum memory allowed for solving the
	// problem, in the scale the algorithm's MemoryComplexity reports.
	// +Inf means unbounded.
	MemoryBound() float64
}
