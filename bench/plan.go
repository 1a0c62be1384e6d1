package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a declarative benchmark plan loaded from a YAML file.
//
// A plan captures the range policy and repeat count for a measurement run
// so benchmark configurations can live next to the code they measure:
//
//	range:
//	  start: 8
//	  limit: 8192
//	  ratio: 8
//	repeats: 10
//
// Omitted fields fall back to the harness defaults.
type Plan struct {
	Range   RangePlan `yaml:"range"`
	Repeats int       `yaml:"repeats"`
}

// RangePlan holds the range-generation policy of a Plan.
type RangePlan struct {
	Start int `yaml:"start"`
	Limit int `yaml:"limit"`
	Ratio int `yaml:"ratio"`
}

// LoadPlan reads and validates a benchmark plan from a YAML file.
//
// Missing range fields default to Range's defaults and a missing repeats
// defaults to 1. Invalid range bounds are rejected with the same errors
// as Range.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("plan file not found: %s", path)
		}

		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	if plan.Range.Start == 0 {
		plan.Range.Start = DefaultStart
	}
	if plan.Range.Limit == 0 {
		plan.Range.Limit = DefaultLimit
	}
	if plan.Range.Ratio == 0 {
		plan.Range.Ratio = DefaultRatio
	}
	if plan.Repeats == 0 {
		plan.Repeats = DefaultRepeats
	}

	if err := checkRange(plan.Range.Start, plan.Range.Limit, plan.Range.Ratio); err != nil {
		return nil, err
	}
	if plan.Repeats < 1 {
		return nil, fmt.Errorf("repeats must be at least 1, got %d", plan.Repeats)
	}

	return &plan, nil
}

// Sizes generates the input-size range described by the plan.
func (p *Plan) Sizes() ([]int, error) {
	return Range(p.Range.Start, p.Range.Limit, WithRatio(p.Range.Ratio))
}

// Options returns the plan's parameters as harness options, suitable for
// passing to MeasureExecutionTime.
func (p *Plan) Options() []Option {
	return []Option{
		WithRange(p.Range.Start, p.Range.Limit),
		WithRatio(p.Range.Ratio),
		WithRepeats(p.Repeats),
	}
}
