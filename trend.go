// Package trend infers the asymptotic growth trend of a workload, typically
// an algorithm's execution time as a function of input size.
//
// The package times a caller-supplied workload over a multiplicative range
// of input sizes, fits linear, logarithmic, power-law, and exponential
// models to the measurements, and reports the model with the highest
// goodness of fit.
//
// # Basic Usage
//
// Infer the growth trend of a workload over the default size range:
//
//	result, err := trend.Infer(func(n int) {
//	    sortRandomSlice(n)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("trend: %s (%s, R²=%.4f)\n",
//	    result.BestFit, result.Best().Trend, result.Best().Residual)
//
// Control the size range and average repeated runs:
//
//	result, err := trend.Infer(work,
//	    bench.WithRange(64, 1<<20),
//	    bench.WithRatio(4),
//	    bench.WithRepeats(10),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bench and
// fit packages, simplifying the most common use case. For fine-grained
// control over sampling and fitting, use those packages directly.
package trend

import (
	"github.com/benchkit/trend/bench"
	"github.com/benchkit/trend/fit"
)

// Infer times work over a generated size range and fits all trend models,
// returning the full fit result with the best model selected.
//
// The range defaults to bench.Range(8, 8192) and is configurable through
// bench options.
func Infer(work bench.Workload, opts ...bench.Option) (*fit.Result, error) {
	return InferAt(nil, work, opts...)
}

// InferAt is like Infer but measures at the caller-provided input sizes
// instead of generating a range. An empty sizes slice falls back to the
// configured range.
func InferAt(sizes []int, work bench.Workload, opts ...bench.Option) (*fit.Result, error) {
	xs, ys, err := bench.MeasureExecutionTime(sizes, work, opts...)
	if err != nil {
		return nil, err
	}

	return fit.InferTrend(xs, ys)
}
