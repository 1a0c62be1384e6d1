package bench

import "fmt"

// Range generates a multiplicative range of input sizes.
//
// It starts at start and repeatedly multiplies by the ratio (default 8,
// see WithRatio) until reaching or exceeding limit, then appends limit
// itself when it differs from start. Downstream benchmark tooling depends
// on this exact stepping rule, so the shape of the generated range must
// not change:
//
//	Range(8, 8192, WithRatio(8)) // [8, 64, 512, 4096, 8192]
//
// Range is the only component with explicit validation: it rejects
// start <= 0, limit < start, and ratio < 2 with a descriptive error.
func Range(start, limit int, opts ...Option) ([]int, error) {
	cfg := defaultConfig()
	cfg.start = start
	cfg.limit = limit

	if err := applyOptions(&cfg, opts); err != nil {
		return nil, err
	}

	return generateRange(cfg)
}

// checkRange validates range generation parameters.
func checkRange(start, limit, ratio int) error {
	if start <= 0 {
		return fmt.Errorf("range start must be greater than 0, got %d", start)
	}
	if limit < start {
		return fmt.Errorf("range limit %d must not be less than start %d", limit, start)
	}
	if ratio < 2 {
		return fmt.Errorf("range ratio must be at least 2, got %d", ratio)
	}

	return nil
}

// generateRange produces the size sequence for a validated configuration.
func generateRange(cfg config) ([]int, error) {
	if err := checkRange(cfg.start, cfg.limit, cfg.ratio); err != nil {
		return nil, err
	}

	var sizes []int
	for n := cfg.start; n < cfg.limit; n *= cfg.ratio {
		sizes = append(sizes, n)
	}
	// The limit itself always closes the range, even when the stepping
	// overshoots it.
	sizes = append(sizes, cfg.limit)

	return sizes, nil
}
