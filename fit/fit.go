package fit

import (
	"fmt"

	"github.com/benchkit/trend/internal/options"
)

// Transform maps a sample value before it enters the linear fitter.
// A nil Transform means identity.
type Transform func(float64) float64

// FitResult is the outcome of one least-squares fit.
//
// For the non-linear models the Slope and Intercept fields hold the model's
// natural parameters after recovery (see FitPower and FitExponential), not
// the raw parameters of the transformed linear regression.
type FitResult struct {
	// Slope is the slope-equivalent parameter a of the fitted model.
	Slope float64
	// Intercept is the intercept-equivalent parameter b of the fitted model.
	Intercept float64
	// RSquared is the coefficient of determination of the (possibly
	// transformed) linear regression. Non-finite when the fit is degenerate.
	RSquared float64
}

// fitConfig holds the per-axis transforms applied before accumulation.
type fitConfig struct {
	transformX Transform
	transformY Transform
}

// FitOption is a functional option for Fit.
type FitOption = options.Option[*fitConfig]

// WithTransformX sets the transform applied to every x value before fitting.
func WithTransformX(fn Transform) FitOption {
	return options.NoError(func(cfg *fitConfig) {
		cfg.transformX = fn
	})
}

// WithTransformY sets the transform applied to every y value before fitting.
func WithTransformY(fn Transform) FitOption {
	return options.NoError(func(cfg *fitConfig) {
		cfg.transformY = fn
	})
}

// Fit computes the least-squares line through (xs, ys) after applying the
// optional per-axis transforms, identity by default.
//
// The accumulation order of the partial sums is fixed so that repeated calls
// with identical inputs produce bit-identical results.
//
// Fit returns an error only when xs and ys differ in length; numeric
// degeneracy (zero variance, fewer than two samples, log of non-positive
// values) propagates as non-finite values in the result.
func Fit(xs, ys []float64, opts ...FitOption) (FitResult, error) {
	if len(xs) != len(ys) {
		return FitResult{}, fmt.Errorf("mismatched sample lengths: %d sizes vs %d measurements", len(xs), len(ys))
	}

	cfg := fitConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return FitResult{}, err
	}

	return linearFit(xs, ys, cfg.transformX, cfg.transformY), nil
}

// linearFit is the closed-form least-squares core shared by all models.
func linearFit(xs, ys []float64, tx, ty Transform) FitResult {
	n := float64(len(xs))

	var sumX, sumY, sumX2, sumY2, sumXY float64
	for i := range xs {
		x := applyTransform(tx, xs[i])
		y := applyTransform(ty, ys[i])

		sumX += x
		sumY += y
		sumX2 += x * x
		sumY2 += y * y
		sumXY += x * y
	}

	txy := n*sumXY - sumX*sumY
	txTerm := n*sumX2 - sumX*sumX
	tyTerm := n*sumY2 - sumY*sumY

	slope := txy / txTerm
	intercept := (sumY - slope*sumX) / n
	rSquared := (txy * txy) / (txTerm * tyTerm)

	return FitResult{Slope: slope, Intercept: intercept, RSquared: rSquared}
}

func applyTransform(fn Transform, v float64) float64 {
	if fn == nil {
		return v
	}

	return fn(v)
}
