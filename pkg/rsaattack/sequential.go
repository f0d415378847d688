package rsaattack

import (
	"context"
	"fmt"
)

// SequentialStrategy runs every applicable attack in order of cost and
// returns the first success.
type SequentialStrategy struct {
	Config Config
}

// NewSequentialStrategy creates a sequential strategy with default bounds.
func NewSequentialStrategy() *SequentialStrategy {
	return &SequentialStrategy{Config: DefaultConfig()}
}

// WithConfig sets the search bounds for the strategy.
func (s *SequentialStrategy) WithConfig(config Config) *SequentialStrategy {
	s.Config = config
	return s
}

// Name returns the name of this strategy.
func (s *SequentialStrategy) Name() string {
	return "Sequential"
}

// Run implements the AttackStrategy interface.
func (s *SequentialStrategy) Run(ctx context.Context, target *Target) *AttackResult {
	if target == nil || target.Key == nil {
		return nil
	}
	for _, step := range buildSteps(target, s.Config) {
		if ctx.Err() != nil {
			return nil
		}
		result, err := step.run()
		if err != nil {
			fmt.Printf("%s attack: %v\n", step.name, err)
			continue
		}
		result.Attack = step.name
		return result
	}
	return nil
}
