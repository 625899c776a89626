package estimation

import (
	"fmt"
	"math"

	"github.com/shaurya010/CryptographicEstimators/utils/bignum"
)

// Assignment maps tuning-parameter names to the integer value chosen for
// them. A nil Assignment means the algorithm has no tuning parameters.
type Assignment map[string]int

// ParameterRange bounds one tuning parameter to the inclusive interval
// [Min, Max]. Ranges are always finite and explicit; the wrapper never infers
// a search bound.
type ParameterRange struct {
	Name string
	Min  int
	Max  int
}

// CostModel is the pair of hooks every concrete algorithm implements. Both
// hooks must be pure functions of the bound problem and the given tuning
// assignment, returning complexities in log2 scale before any bit-complexity
// conversion.
type CostModel interface {
	ComputeTimeComplexity(p Assignment) (float64, error)
	ComputeMemoryComplexity(p Assignment) (float64, error)
}

// TildeOCostModel is optionally implemented by cost models providing
// dedicated soft-O formulas. When absent, the classical hooks are used as
// fallback (soft-O estimates never apply bit-complexity conversions, so the
// fallback keeps tilde-O below or equal to the classical estimate).
type TildeOCostModel interface {
	ComputeTildeOTimeComplexity(p Assignment) (float64, error)
	ComputeTildeOMemoryComplexity(p Assignment) (float64, error)
}

// MemoryAccess selects the cost model charged for accessing memory: the
// selected cost of the memory complexity is added to the time complexity.
type MemoryAccess int

const (
	// ConstantMemoryAccess charges nothing (default).
	ConstantMemoryAccess MemoryAccess = iota
	// LogarithmicMemoryAccess charges log2(M) for a memory of 2^M bits.
	LogarithmicMemoryAccess
	// SquareRootMemoryAccess charges sqrt(2^M), i.e. M/2.
	SquareRootMemoryAccess
	// CubeRootMemoryAccess charges cbrt(2^M), i.e. M/3.
	CubeRootMemoryAccess
)

// Cost returns the additive time penalty (log2) for the given memory
// complexity (log2).
func (m MemoryAccess) Cost(memory float64) float64 {
	switch m {
	case LogarithmicMemoryAccess:
		if memory <= 0 {
			return 0
		}
		return bignum.Log2(memory)
	case SquareRootMemoryAccess:
		return memory / 2
	case CubeRootMemoryAccess:
		return memory / 3
	default:
		return 0
	}
}

// Config gathers the wrapper options shared by all algorithms.
type Config struct {
	// BitComplexities converts complexities to bit operations/bits through
	// the problem's transforms. Defaults to true.
	BitComplexities *bool
	// MemoryAccess selects the memory-access cost model. Defaults to
	// ConstantMemoryAccess.
	MemoryAccess MemoryAccess
	// TuningRanges declares the finite tuning-parameter space minimized
	// over. Empty means a single deterministic evaluation.
	TuningRanges []ParameterRange
}

// Algorithm binds a Problem to a named cost model and memoizes the resulting
// complexity estimates. The zero value is not usable; construct with
// NewAlgorithm.
//
// The memoized fields are written without synchronization: an Algorithm
// instance must be used by a single goroutine. Since every computation is a
// pure function of the immutable problem and tuning parameters, independent
// instances over the same problem are freely usable from concurrent
// goroutines.
type Algorithm struct {
	name            string
	problem         Problem
	model           CostModel
	ranges          []ParameterRange
	bitComplexities bool
	memoryAccess    MemoryAccess

	hasEstimate  bool
	time, memory float64
	optimal      Assignment

	hasTildeO              bool
	tildeTime, tildeMemory float64
}

// NewAlgorithm wraps the given cost model. The model is typically the
// concrete algorithm struct embedding the returned wrapper.
func NewAlgorithm(name string, problem Problem, model CostModel, cfg Config) (*Algorithm, error) {

	if problem == nil {
		return nil, fmt.Errorf("cannot NewAlgorithm: problem is nil")
	}

	if model == nil {
		return nil, fmt.Errorf("cannot NewAlgorithm: cost model is nil")
	}

	for _, r := range cfg.TuningRanges {
		if r.Name == "" {
			return nil, fmt.Errorf("cannot NewAlgorithm: unnamed tuning-parameter range")
		}
		if r.Min > r.Max {
			return nil, fmt.Errorf("cannot NewAlgorithm: empty range [%d, %d] for tuning parameter %q", r.Min, r.Max, r.Name)
		}
	}

	bitComplexities := true
	if cfg.BitComplexities != nil {
		bitComplexities = *cfg.BitComplexities
	}

	return &Algorithm{
		name:            name,
		problem:         problem,
		model:           model,
		ranges:          cfg.TuningRanges,
		bitComplexities: bitComplexities,
		memoryAccess:    cfg.MemoryAccess,
	}, nil
}

// Name returns the name of the estimation method.
func (a *Algorithm) Name() string {
	return a.name
}

// Problem returns the bound problem.
func (a *Algorithm) Problem() Problem {
	return a.problem
}

// BitComplexities returns true if estimates are reported in bit
// operations/bits rather than field operations/elements.
func (a *Algorithm) BitComplexities() bool {
	return a.bitComplexities
}

// TimeComplexity returns the time complexity (log2) of the algorithm at the
// tuning assignment minimizing it under the problem's memory bound. The
// result is memoized; successive calls are idempotent.
func (a *Algorithm) TimeComplexity() (float64, error) {
	if err := a.estimate(); err != nil {
		return 0, err
	}
	return a.time, nil
}

// MemoryComplexity returns the memory complexity (log2) at the tuning
// assignment selected for the optimal time, not independently minimized.
func (a *Algorithm) MemoryComplexity() (float64, error) {
	if err := a.estimate(); err != nil {
		return 0, err
	}
	return a.memory, nil
}

// OptimalParameters returns the tuning assignment the estimates were taken
// at. It is nil for algorithms without tuning parameters and when no
// assignment satisfies the memory bound.
func (a *Algorithm) OptimalParameters() (Assignment, error) {
	if err := a.estimate(); err != nil {
		return nil, err
	}
	return a.optimal, nil
}

// TildeOTimeComplexity returns the soft-O time complexity (log2), which
// drops polylogarithmic and low-order correction terms and never applies
// bit-complexity conversions.
func (a *Algorithm) TildeOTimeComplexity() (float64, error) {
	if err := a.estimateTildeO(); err != nil {
		return 0, err
	}
	return a.tildeTime, nil
}

// TildeOMemoryComplexity returns the soft-O memory complexity (log2).
func (a *Algorithm) TildeOMemoryComplexity() (float64, error) {
	if err := a.estimateTildeO(); err != nil {
		return 0, err
	}
	return a.tildeMemory, nil
}

func (a *Algorithm) String() string {
	if s, ok := a.model.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%s estimator for the %s", a.name, a.problem)
}

func (a *Algorithm) estimate() (err error) {

	if a.hasEstimate {
		return
	}

	time, memory, optimal, err := a.minimize(a.model.ComputeTimeComplexity, a.model.ComputeMemoryComplexity, a.bitComplexities, a.memoryAccess)
	if err != nil {
		return
	}

	a.time, a.memory, a.optimal = time, memory, optimal
	a.hasEstimate = true
	return
}

func (a *Algorithm) estimateTildeO() (err error) {

	if a.hasTildeO {
		return
	}

	timeFn := a.model.ComputeTimeComplexity
	memoryFn := a.model.ComputeMemoryComplexity
	if model, ok := a.model.(TildeOCostModel); ok {
		timeFn = model.ComputeTildeOTimeComplexity
		memoryFn = model.ComputeTildeOMemoryComplexity
	}

	time, memory, _, err := a.minimize(timeFn, memoryFn, false, ConstantMemoryAccess)
	if err != nil {
		return
	}

	a.tildeTime, a.tildeMemory = time, memory
	a.hasTildeO = true
	return
}

type costFunc func(p Assignment) (float64, error)

// minimize enumerates the finite tuning space and returns the complexities at
// the assignment minimizing time among those satisfying the memory bound.
// (+Inf, +Inf, nil) is returned when no assignment is feasible.
func (a *Algorithm) minimize(timeFn, memoryFn costFunc, convert bool, access MemoryAccess) (bestTime, bestMemory float64, best Assignment, err error) {

	bestTime, bestMemory = math.Inf(1), math.Inf(1)
	bound := a.problem.MemoryBound()

	for _, p := range a.assignments() {

		var time, memory float64
		if time, err = timeFn(p); err != nil {
			return 0, 0, nil, err
		}
		if memory, err = memoryFn(p); err != nil {
			return 0, 0, nil, err
		}

		if convert {
			time = a.problem.ToBitComplexityTime(time)
			memory = a.problem.ToBitComplexityMemory(memory)
		}

		time += access.Cost(memory)

		if memory > bound {
			continue
		}

		if time < bestTime {
			bestTime, bestMemory, best = time, memory, p
		}
	}

	return
}

// assignments returns the cartesian product of the declared tuning ranges, or
// the single empty assignment if no range is declared.
func (a *Algorithm) assignments() []Assignment {

	if len(a.ranges) == 0 {
		return []Assignment{nil}
	}

	out := []Assignment{{}}
	for _, r := range a.ranges {
		next := make([]Assignment, 0, len(out)*(r.Max-r.Min+1))
		for _, p := range out {
			for v := r.Min; v <= r.Max; v++ {
				q := make(Assignment, len(p)+1)
				for k, x := range p {
					q[k] = x
				}
				q[r.Name] = v
				next = append(next, q)
			}
		}
		out = next
	}

	return out
}
