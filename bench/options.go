package bench

import "github.com/benchkit/trend/internal/options"

// Default range generation and measurement parameters.
const (
	DefaultStart   = 8
	DefaultLimit   = 8 << 10
	DefaultRatio   = 8
	DefaultRepeats = 1
)

// config holds range generation and measurement parameters.
type config struct {
	start   int
	limit   int
	ratio   int
	repeats int
}

// defaultConfig returns the default harness configuration: sizes from 8 to
// 8192 stepped by a ratio of 8, one timing run per size.
func defaultConfig() config {
	return config{
		start:   DefaultStart,
		limit:   DefaultLimit,
		ratio:   DefaultRatio,
		repeats: DefaultRepeats,
	}
}

// Option is a functional option for the sampling harness.
type Option = options.Option[*config]

// applyOptions applies opts to cfg in order.
func applyOptions(cfg *config, opts []Option) error {
	return options.Apply(cfg, opts...)
}

// WithRange sets the start and limit of the generated size range.
func WithRange(start, limit int) Option {
	return options.NoError(func(cfg *config) {
		cfg.start = start
		cfg.limit = limit
	})
}

// WithRatio sets the multiplicative step between generated sizes.
func WithRatio(ratio int) Option {
	return options.NoError(func(cfg *config) {
		cfg.ratio = ratio
	})
}

// WithRepeats sets how many timing runs are averaged per size.
func WithRepeats(repeats int) Option {
	return options.NoError(func(cfg *config) {
		cfg.repeats = repeats
	})
}
