package fit

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Predictor defines the interface for extrapolating a fitted trend model.
type Predictor interface {
	// Predict evaluates the fitted model at input size n.
	Predict(n float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients updates the coefficients of the model.
	// This allows runtime updates to the predictor without creating a new
	// instance. All four trend models expect exactly 2 coefficients [a, b].
	SetCoefficients(coeffs []float64) error
}

// newEmptyPredictor creates a zero-valued predictor for the given ModelType.
// This is used internally by NewPredictor to create predictors and validate
// coefficients.
func newEmptyPredictor(modelType ModelType) Predictor {
	switch modelType {
	case ModelLinear:
		return NewLinearPredictor(0, 0)
	case ModelLogarithmic:
		return NewLogarithmicPredictor(0, 0)
	case ModelPower:
		return NewPowerPredictor(0, 0)
	case ModelExponential:
		return NewExponentialPredictor(0, 0)
	default:
		return nil
	}
}

// newPredictor creates a predictor for a fitted model's (a, b) parameters.
// Returns nil for ModelNone and unknown types.
func newPredictor(modelType ModelType, a, b float64) Predictor {
	switch modelType {
	case ModelLinear:
		return NewLinearPredictor(a, b)
	case ModelLogarithmic:
		return NewLogarithmicPredictor(a, b)
	case ModelPower:
		return NewPowerPredictor(a, b)
	case ModelExponential:
		return NewExponentialPredictor(a, b)
	default:
		return nil
	}
}

// LinearPredictor implements the linear model: y = a*n + b
type LinearPredictor struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewLinearPredictor creates a new linear predictor with the given coefficients.
func NewLinearPredictor(a, b float64) *LinearPredictor {
	return &LinearPredictor{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2), // Pre-allocate coefficient slice
	}
}

// Predict evaluates the linear formula: y = a*n + b
func (l *LinearPredictor) Predict(n float64) float64 {
	if n <= 0 {
		return math.Inf(1) // Input sizes are strictly positive
	}

	return l.a*n + l.b
}

// Type returns the model type.
func (l *LinearPredictor) Type() ModelType {
	return ModelLinear
}

// Coefficients returns the model coefficients [a, b].
func (l *LinearPredictor) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients updates the coefficients of the linear model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a*n + b.
func (l *LinearPredictor) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// LogarithmicPredictor implements the logarithmic model: y = a * ln(n) + b
type LogarithmicPredictor struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewLogarithmicPredictor creates a new logarithmic predictor with the given coefficients.
func NewLogarithmicPredictor(a, b float64) *LogarithmicPredictor {
	return &LogarithmicPredictor{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2), // Pre-allocate coefficient slice
	}
}

// Predict evaluates the logarithmic formula: y = a * ln(n) + b
func (l *LogarithmicPredictor) Predict(n float64) float64 {
	if n <= 0 {
		return math.Inf(1) // ln undefined for non-positive sizes
	}

	return l.a*math.Log(n) + l.b
}

// Type returns the model type.
func (l *LogarithmicPredictor) Type() ModelType {
	return ModelLogarithmic
}

// Coefficients returns the model coefficients [a, b].
func (l *LogarithmicPredictor) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients updates the coefficients of the logarithmic model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a * ln(n) + b.
func (l *LogarithmicPredictor) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("logarithmic model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// PowerPredictor implements the power model: y = a * n^b
type PowerPredictor struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewPowerPredictor creates a new power predictor with the given coefficients.
func NewPowerPredictor(a, b float64) *PowerPredictor {
	return &PowerPredictor{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2), // Pre-allocate coefficient slice
	}
}

// Predict evaluates the power formula: y = a * n^b
func (p *PowerPredictor) Predict(n float64) float64 {
	if n <= 0 {
		return math.Inf(1) // n^b undefined for non-positive sizes
	}

	return p.a * math.Pow(n, p.b)
}

// Type returns the model type.
func (p *PowerPredictor) Type() ModelType {
	return ModelPower
}

// Coefficients returns the model coefficients [a, b].
func (p *PowerPredictor) Coefficients() []float64 {
	p.coeffs[0] = p.a
	p.coeffs[1] = p.b

	return p.coeffs
}

// SetCoefficients updates the coefficients of the power model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a * n^b.
func (p *PowerPredictor) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("power model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	p.a = coeffs[0]
	p.b = coeffs[1]

	return nil
}

// ExponentialPredictor implements the exponential model: y = b * a^n
type ExponentialPredictor struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewExponentialPredictor creates a new exponential predictor with the given coefficients.
func NewExponentialPredictor(a, b float64) *ExponentialPredictor {
	return &ExponentialPredictor{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2), // Pre-allocate coefficient slice
	}
}

// Predict evaluates the exponential formula: y = b * a^n
func (e *ExponentialPredictor) Predict(n float64) float64 {
	if n <= 0 {
		return math.Inf(1) // Input sizes are strictly positive
	}

	return e.b * math.Pow(e.a, n)
}

// Type returns the model type.
func (e *ExponentialPredictor) Type() ModelType {
	return ModelExponential
}

// Coefficients returns the model coefficients [a, b].
func (e *ExponentialPredictor) Coefficients() []float64 {
	e.coeffs[0] = e.a
	e.coeffs[1] = e.b

	return e.coeffs
}

// SetCoefficients updates the coefficients of the exponential model.
// Expects exactly 2 coefficients: [a, b] for the formula y = b * a^n.
func (e *ExponentialPredictor) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("exponential model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	e.a = coeffs[0]
	e.b = coeffs[1]

	return nil
}

// NewPredictor creates a new predictor by name and coefficients.
//
// This function provides a convenient factory method for creating predictor
// implementations dynamically based on the model name and provided
// coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive). Supported names:
//   - "linear": Creates LinearPredictor
//   - "logarithmic": Creates LogarithmicPredictor
//   - "power": Creates PowerPredictor
//   - "exponential": Creates ExponentialPredictor
//   - coeffs: The model coefficients; all models expect exactly 2
//
// Returns:
//   - Predictor: The created predictor instance
//   - error: Returns an error if the name is invalid or coefficients are invalid
//
// Example:
//
//	predictor, err := NewPredictor("power", []float64{1.5, 2.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost := predictor.Predict(10000) // Extrapolate cost at n=10000
func NewPredictor(name string, coeffs []float64) (Predictor, error) {
	modelType := ModelTypeFromString(name)

	// Create empty predictor for the model type; ModelNone and unknown
	// types have no predictor.
	predictor := newEmptyPredictor(modelType)
	if predictor == nil {
		// Build list of supported types for the error message.
		var supportedTypes []string
		for mt, modelTypeName := range modelTypeNames {
			if mt != ModelNone {
				supportedTypes = append(supportedTypes, modelTypeName)
			}
		}
		// Sort to ensure consistent output order
		slices.Sort(supportedTypes)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supportedTypes, ", "))
	}

	// Use SetCoefficients to validate and set coefficients
	if err := predictor.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return predictor, nil
}
