// Package fit infers the asymptotic growth trend of a measured process by
// fitting candidate mathematical models to sampled data.
//
// Given two index-aligned sequences (input sizes, measurements) the package
// computes least-squares parameters for linear, logarithmic, power-law, and
// exponential models and selects the best fit by the coefficient of
// determination (R²).
//
// # Key Features
//
//   - **Single Fitter**: Every model reduces to one closed-form linear
//     least-squares routine through per-axis transforms
//   - **Automatic Model Selection**: InferTrend compares all candidates and
//     picks the highest R²
//   - **Predictors**: Each fitted model carries a concrete Predictor for
//     extrapolating cost at untried input sizes
//   - **Pure Functions**: No package state; every call allocates fresh
//     results and is safe for concurrent use
//
// # Basic Usage
//
// Fit a single model:
//
//	xs := []float64{1, 2, 3, 4}
//	ys := []float64{3, 5, 7, 9}
//	res, err := fit.FitLinear(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("slope=%.2f intercept=%.2f R²=%.4f\n", res.Slope, res.Intercept, res.RSquared)
//
// Compare all models and select the best:
//
//	result, err := fit.InferTrend(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("best: %s (%s)\n", result.BestFit, result.Best().Trend)
//
// # Model Types
//
// The package supports four trend models:
//
//   - **Linear**: y = a*n + b
//   - **Logarithmic**: y = a*ln(n) + b
//   - **Power**: y = a*n^b
//   - **Exponential**: y = b*a^n (a is the per-unit growth factor)
//
// The logarithmic, power, and exponential models are linearized through
// log transforms before fitting, then their natural parameters are
// recovered from the linear solution.
//
// # Numeric Semantics
//
// The fitter does not guard against numeric degeneracy. Zero variance,
// fewer than two samples, or log transforms of non-positive values
// propagate as non-finite results (±Inf or NaN) rather than errors.
// Callers must treat a non-finite R² as "unfit"; InferTrend does this
// implicitly because a non-finite residual never beats the running best.
// The only validated precondition is that xs and ys have equal length.
package fit
