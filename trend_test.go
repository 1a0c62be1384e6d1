package trend

import (
	"testing"
	"time"

	"github.com/benchkit/trend/bench"
	"github.com/benchkit/trend/fit"
	"github.com/stretchr/testify/require"
)

// TestInferAt runs the full pipeline over caller-provided sizes and checks
// the result carries all four candidates. The winning model is not asserted
// because wall-clock measurements are noisy by nature.
func TestInferAt(t *testing.T) {
	var sizes []int
	work := func(n int) {
		sizes = append(sizes, n)
		time.Sleep(time.Duration(n) * time.Microsecond)
	}

	result, err := InferAt([]int{64, 128, 256, 512}, work)
	require.NoError(t, err)

	require.Equal(t, []int{64, 128, 256, 512}, sizes)
	require.Len(t, result.Models, 4)

	for _, modelType := range []fit.ModelType{fit.ModelExponential, fit.ModelPower, fit.ModelLinear, fit.ModelLogarithmic} {
		model, exists := result.Models[modelType]
		require.True(t, exists, "missing candidate %s", modelType)
		require.NotEmpty(t, model.Trend)
	}
}

// TestInfer exercises the default range path with a trivial workload.
func TestInfer(t *testing.T) {
	count := 0
	result, err := Infer(func(int) { count++ }, bench.WithRange(2, 16), bench.WithRatio(2))
	require.NoError(t, err)

	require.Equal(t, 4, count) // sizes 2, 4, 8, 16
	require.Len(t, result.Models, 4)
}

func TestInferPropagatesHarnessErrors(t *testing.T) {
	_, err := Infer(nil)
	require.Error(t, err)

	_, err = Infer(func(int) {}, bench.WithRange(0, 100))
	require.Error(t, err)
}
