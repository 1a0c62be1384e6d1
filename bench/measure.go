package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Workload is a user-supplied function executed at one input size.
// Its execution time is the measured side effect.
type Workload func(n int)

// MeasureExecutionTime times work at each of the given input sizes and
// returns two index-aligned sequences: the sizes as floats and the elapsed
// wall-clock seconds per size.
//
// When sizes is empty the default range Range(8, 8192) is used, subject to
// WithRange and WithRatio. Each size is timed WithRepeats times (default 1)
// on the monotonic clock and the measurements are averaged. The garbage
// collector runs before each size so earlier allocations do not bleed into
// later measurements.
func MeasureExecutionTime(sizes []int, work Workload, opts ...Option) (xs, ys []float64, err error) {
	if work == nil {
		return nil, nil, errors.New("no workload provided")
	}

	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts); err != nil {
		return nil, nil, err
	}
	if cfg.repeats < 1 {
		return nil, nil, fmt.Errorf("repeats must be at least 1, got %d", cfg.repeats)
	}

	if len(sizes) == 0 {
		sizes, err = generateRange(cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	xs = make([]float64, len(sizes))
	ys = make([]float64, len(sizes))

	for i, n := range sizes {
		runtime.GC()

		var total time.Duration
		for r := 0; r < cfg.repeats; r++ {
			start := time.Now()
			work(n)
			total += time.Since(start)
		}

		xs[i] = float64(n)
		ys[i] = total.Seconds() / float64(cfg.repeats)
	}

	return xs, ys, nil
}
