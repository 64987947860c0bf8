package pipeline

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Step is one dataset preparation stage.
type Step interface {
	Name() string
	Transform(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

type stepFunc struct {
	name string
	fn   func(dataframe.DataFrame) (dataframe.DataFrame, error)
}

func (s stepFunc) Name() string { return s.name }

func (s stepFunc) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) { return s.fn(df) }

// StepFunc wraps fn as a named Step.
func StepFunc(name string, fn func(dataframe.DataFrame) (dataframe.DataFrame, error)) Step {
	return stepFunc{name: name, fn: fn}
}

// Pipeline chains multiple steps.
type Pipeline struct {
	steps  []Step
	logger *zap.Logger
}

func NewPipeline(logger *zap.Logger, steps ...Step) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{steps: steps, logger: logger}
}

// Add appends steps to the end of the pipeline.
func (p *Pipeline) Add(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Steps returns the step names in run order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Transform runs every step in order and stops at the first failure.
func (p *Pipeline) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}
	for _, step := range p.steps {
		out, err := step.Transform(df)
		if err == nil && out.Err != nil {
			err = out.Err
		}
		if err != nil {
			return df, fmt.Errorf("step %s: %w", step.Name(), err)
		}
		df = out

		schema := SchemaOf(df)
		p.logger.Debug("step done",
			zap.String("step", step.Name()),
			zap.Int("rows", df.Nrow()),
			zap.Strings("columns", schema.FeatureNames),
			zap.Strings("types", schema.Types))
	}
	return df, nil
}
