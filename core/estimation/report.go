package estimation

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/shaurya010/CryptographicEstimators/utils"
)

// Estimator is the surface the report consumes; every algorithm embedding
// *Algorithm satisfies it.
type Estimator interface {
	Name() string
	TimeComplexity() (float64, error)
	MemoryComplexity() (float64, error)
}

// Result pairs an algorithm name with its time and memory complexity
// estimates (log2).
type Result struct {
	Algorithm string
	Time      float64
	Memory    float64
}

// Summary aggregates the time complexities of a report.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Report tabulates the estimates of a set of algorithms against one problem,
// the way parameter-selection surveys compare the known attacks.
type Report struct {
	results map[string]Result
}

// NewReport evaluates every given estimator and collects the results. The
// first estimation error aborts the report; +Inf estimates (no feasible
// configuration) are legal entries.
func NewReport(estimators ...Estimator) (*Report, error) {

	results := make(map[string]Result, len(estimators))
	for _, e := range estimators {

		time, err := e.TimeComplexity()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}

		memory, err := e.MemoryComplexity()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}

		results[e.Name()] = Result{Algorithm: e.Name(), Time: time, Memory: memory}
	}

	return &Report{results: results}, nil
}

// Results returns the collected results sorted by algorithm name.
func (r *Report) Results() (results []Result) {
	results = make([]Result, 0, len(r.results))
	for _, name := range utils.GetSortedKeys(r.results) {
		results = append(results, r.results[name])
	}
	return
}

// Fastest returns the entry with the smallest time complexity, breaking ties
// by algorithm name.
func (r *Report) Fastest() (best Result) {
	results := r.Results()
	if len(results) == 0 {
		return
	}
	best = results[0]
	for _, res := range results[1:] {
		if res.Time < best.Time {
			best = res
		}
	}
	return
}

// Summary returns summary statistics over the time complexities of the
// report.
func (r *Report) Summary() (s Summary, err error) {

	times := make(stats.Float64Data, 0, len(r.results))
	for _, res := range r.results {
		times = append(times, res.Time)
	}

	if s.Min, err = stats.Min(times); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(times); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(times); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(times); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(times); err != nil {
		return Summary{}, err
	}

	return
}
