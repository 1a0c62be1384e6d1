package fit

import "fmt"

// fitOrder is the fixed evaluation order for trend selection. The order
// matters: selection compares with strict greater-than, so on exact ties
// the earlier model wins.
var fitOrder = []ModelType{ModelExponential, ModelPower, ModelLinear, ModelLogarithmic}

// Model holds one fitted candidate from a trend inference.
type Model struct {
	// Type is the model type (exponential, power, linear, logarithmic).
	Type ModelType
	// Trend is the human-readable trend description with the fitted
	// parameters substituted, e.g. "2.00*n + 1.00".
	Trend string
	// Slope is the slope-equivalent parameter a of the model.
	Slope float64
	// Intercept is the intercept-equivalent parameter b of the model.
	Intercept float64
	// Residual is the coefficient of determination (R²) of the fit.
	// Non-finite for degenerate data.
	Residual float64
	// Predictor is the concrete predictor for this fitted model.
	Predictor Predictor
}

// String returns a string representation of the fitted model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, Residual: %.4f, Trend: %s}", m.Type, m.Residual, m.Trend)
}

// Result represents the outcome of a trend inference.
//
// It contains the identifier of the best-fit model, selected by the highest
// residual (R²), and all four candidates for comparison. BestFit is
// ModelNone when no candidate produced a residual greater than zero, for
// example on degenerate data where every fit is non-finite.
type Result struct {
	// BestFit is the best-fit model type, or ModelNone.
	BestFit ModelType
	// Models maps each candidate model type to its fitted model.
	Models map[ModelType]*Model
}

// Best returns the fitted model selected as best fit, or nil when
// BestFit is ModelNone.
func (r *Result) Best() *Model {
	return r.Models[r.BestFit]
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if best := r.Best(); best != nil {
		return fmt.Sprintf("Result{BestFit: %s}", best)
	}

	return "Result{BestFit: none}"
}

// InferTrend fits all four trend models to (xs, ys) and selects the one
// with the highest residual (R²).
//
// Models are evaluated in the fixed order exponential, power, linear,
// logarithmic. The running best starts at the ModelNone sentinel with
// residual 0, and a candidate replaces it only when its residual is
// strictly greater. Candidates whose transforms are invalid for the data
// are still recorded with whatever (possibly non-finite) values the fitter
// produced; they lose the selection naturally because a non-finite residual
// never compares greater than the running best.
//
// InferTrend returns an error only when xs and ys differ in length.
func InferTrend(xs, ys []float64) (*Result, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched sample lengths: %d sizes vs %d measurements", len(xs), len(ys))
	}

	models := make(map[ModelType]*Model, len(fitOrder))
	best := ModelNone
	bestResidual := 0.0

	for _, modelType := range fitOrder {
		res, err := FitModel(modelType, xs, ys)
		if err != nil {
			return nil, err
		}

		model := &Model{
			Type:      modelType,
			Trend:     fmt.Sprintf(modelSpecs[modelType].format, res.Slope, res.Intercept),
			Slope:     res.Slope,
			Intercept: res.Intercept,
			Residual:  res.RSquared,
			Predictor: newPredictor(modelType, res.Slope, res.Intercept),
		}
		models[modelType] = model

		if model.Residual > bestResidual {
			best = modelType
			bestResidual = model.Residual
		}
	}

	return &Result{BestFit: best, Models: models}, nil
}
