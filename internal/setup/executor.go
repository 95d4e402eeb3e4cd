package setup

import (
	"context"
	"fmt"
)

// Executor runs steps sequentially in the order they were configured.
type Executor struct {
	steps []Step
}

// NewExecutor creates an Executor over the given steps.
func NewExecutor(steps []Step) *Executor {
	return &Executor{steps: steps}
}

// Execute runs each applicable step and stops at the first failure.
func (e *Executor) Execute(ctx context.Context, sc *Context, opts Options) error {
	for _, step := range e.steps {
		if !step.Condition(sc) {
			if opts.Logger != nil {
				opts.Logger.Debug("skipping setup step", "step", step.Name())
			}
			continue
		}

		if opts.Logger != nil {
			opts.Logger.Debug("running setup step", "step", step.Name())
		}

		if err := step.Run(ctx, sc, opts); err != nil {
			return fmt.Errorf("setup step %s: %w", step.Name(), err)
		}
	}

	return nil
}
