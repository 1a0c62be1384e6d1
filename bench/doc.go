// Package bench generates input-size ranges and times workloads at each
// size, producing the paired (sizes, seconds) sequences consumed by the
// fit package.
//
// Sizes grow multiplicatively from a start value, with the limit appended
// so the largest configured size is always measured:
//
//	sizes, err := bench.Range(8, 8192) // [8, 64, 512, 4096, 8192]
//
// Timing uses the monotonic clock and can average several repeats per size
// to dampen scheduler noise:
//
//	xs, ys, err := bench.MeasureExecutionTime(sizes, work, bench.WithRepeats(10))
//
// Range parameters can also be loaded from a declarative YAML plan file,
// see LoadPlan.
package bench
