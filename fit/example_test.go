package fit_test

import (
	"fmt"
	"log"

	"github.com/benchkit/trend/fit"
)

// ExampleFitLinear demonstrates fitting a single model.
func ExampleFitLinear() {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9} // y = 2n + 1

	res, err := fit.FitLinear(xs, ys)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("slope=%.1f intercept=%.1f R²=%.1f\n", res.Slope, res.Intercept, res.RSquared)
	// Output:
	// slope=2.0 intercept=1.0 R²=1.0
}

// ExampleInferTrend demonstrates comparing all candidate models and
// selecting the best fit.
func ExampleInferTrend() {
	xs := []float64{8, 64, 512, 4096, 8192}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x // quadratic cost
	}

	result, err := fit.InferTrend(xs, ys)
	if err != nil {
		log.Fatal(err)
	}

	best := result.Best()
	fmt.Printf("best: %s\n", result.BestFit)
	fmt.Printf("trend: %s\n", best.Trend)
	// Output:
	// best: power
	// trend: 1.00*n^2.00
}

// ExampleNewPredictor demonstrates extrapolating a fitted trend.
func ExampleNewPredictor() {
	predictor, err := fit.NewPredictor("power", []float64{1.5, 2.0})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("cost at n=100: %.0f\n", predictor.Predict(100))
	// Output:
	// cost at n=100: 15000
}
