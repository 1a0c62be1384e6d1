package fit

import (
	"fmt"
	"math"
	"strings"
)

// ModelType represents the type of trend model.
type ModelType int

const (
	// ModelNone is the sentinel used before any model has won a selection.
	ModelNone ModelType = iota
	// ModelExponential represents the exponential model: y = b * a^n,
	// where a is the per-unit growth factor and b the scale.
	ModelExponential
	// ModelPower represents the power model: y = a * n^b
	ModelPower
	// ModelLinear represents the linear model: y = a*n + b
	ModelLinear
	// ModelLogarithmic represents the logarithmic model: y = a * ln(n) + b
	ModelLogarithmic
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelNone:        "none",
	ModelExponential: "exponential",
	ModelPower:       "power",
	ModelLinear:      "linear",
	ModelLogarithmic: "logarithmic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"none":        ModelNone,
	"exponential": ModelExponential,
	"power":       ModelPower,
	"linear":      ModelLinear,
	"logarithmic": ModelLogarithmic,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1) // Invalid ModelType
}

// modelSpec describes how one trend family reduces to the linear fitter:
// which per-axis transforms linearize it, how the model's natural (a, b)
// parameters are recovered from the linear solution, and the display
// template used to format a fitted trend.
type modelSpec struct {
	// transformX linearizes the x axis; nil means identity.
	transformX Transform
	// transformY linearizes the y axis; nil means identity.
	transformY Transform
	// recover repackages the raw linear (slope, intercept) into the model's
	// natural parameterization; nil means the parameters pass through.
	recover func(slope, intercept float64) (a, b float64)
	// format is the display template filled with the recovered (a, b).
	format string
}

// modelSpecs is the closed set of trend families. Each entry preserves the
// exact transform and recovery formulas of its family:
//
//   - linear y = a*n + b: identity transforms, parameters unchanged
//   - logarithmic y = a*ln(n) + b: x -> ln(x), parameters unchanged
//   - power y = a*n^b: x -> ln(x), y -> ln(y), a = exp(intercept), b = slope
//   - exponential y = b*a^n: y -> ln(y), a = exp(slope), b = exp(intercept)
var modelSpecs = map[ModelType]modelSpec{
	ModelLinear: {
		format: "%.2f*n + %.2f",
	},
	ModelLogarithmic: {
		transformX: math.Log,
		format:     "%.2f*ln(n) + %.2f",
	},
	ModelPower: {
		transformX: math.Log,
		transformY: math.Log,
		recover: func(slope, intercept float64) (float64, float64) {
			return math.Exp(intercept), slope
		},
		format: "%.2f*n^%.2f",
	},
	ModelExponential: {
		transformY: math.Log,
		recover: func(slope, intercept float64) (float64, float64) {
			return math.Exp(slope), math.Exp(intercept)
		},
		format: "%.2f^n * %.2f",
	},
}

// FitModel fits one trend model to (xs, ys) by running the linear fitter
// with the model's transforms and recovering its natural parameters.
//
// x values must be strictly positive for the logarithmic and power models,
// and y values strictly positive for the power and exponential models;
// violations propagate as non-finite results, not errors.
func FitModel(model ModelType, xs, ys []float64) (FitResult, error) {
	spec, exists := modelSpecs[model]
	if !exists {
		return FitResult{}, fmt.Errorf("unknown model type: %s", model)
	}

	var opts []FitOption
	if spec.transformX != nil {
		opts = append(opts, WithTransformX(spec.transformX))
	}
	if spec.transformY != nil {
		opts = append(opts, WithTransformY(spec.transformY))
	}

	res, err := Fit(xs, ys, opts...)
	if err != nil {
		return FitResult{}, err
	}

	if spec.recover != nil {
		res.Slope, res.Intercept = spec.recover(res.Slope, res.Intercept)
	}

	return res, nil
}

// FitLinear fits the linear model: y = a*n + b
func FitLinear(xs, ys []float64) (FitResult, error) {
	return FitModel(ModelLinear, xs, ys)
}

// FitLogarithmic fits the logarithmic model: y = a * ln(n) + b
func FitLogarithmic(xs, ys []float64) (FitResult, error) {
	return FitModel(ModelLogarithmic, xs, ys)
}

// FitPower fits the power model: y = a * n^b
func FitPower(xs, ys []float64) (FitResult, error) {
	return FitModel(ModelPower, xs, ys)
}

// FitExponential fits the exponential model: y = b * a^n.
// The slope-equivalent parameter a is the per-unit growth factor and the
// intercept-equivalent parameter b is the scale (the value at n = 0).
func FitExponential(xs, ys []float64) (FitResult, error) {
	return FitModel(ModelExponential, xs, ys)
}
