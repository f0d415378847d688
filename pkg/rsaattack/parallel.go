package rsaattack

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// ParallelStrategy races the applicable attacks across a pool of workers
// and returns the first success. Every attack is call-local, so no
// synchronization beyond the result hand-off is needed.
type ParallelStrategy struct {
	Config Config
}

// NewParallelStrategy creates a parallel strategy with default bounds.
func NewParallelStrategy() *ParallelStrategy {
	return &ParallelStrategy{Config: DefaultConfig()}
}

// WithConfig sets the search bounds for the strategy.
func (s *ParallelStrategy) WithConfig(config Config) *ParallelStrategy {
	s.Config = config
	return s
}

// Name returns the name of this strategy.
func (s *ParallelStrategy) Name() string {
	return "Parallel"
}

// Run implements the AttackStrategy interface.
func (s *ParallelStrategy) Run(ctx context.Context, target *Target) *AttackResult {
	if target == nil || target.Key == nil {
		return nil
	}
	steps := buildSteps(target, s.Config)

	numWorkers := s.Config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(steps) {
		numWorkers = len(steps)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	work := make(chan attackStep)
	results := make(chan *AttackResult, 1)
	var found int32

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for step := range work {
				if atomic.LoadInt32(&found) == 1 || ctx.Err() != nil {
					continue
				}
				result, err := step.run()
				if err != nil {
					continue
				}
				result.Attack = step.name
				if atomic.CompareAndSwapInt32(&found, 0, 1) {
					results <- result
					cancel()
				}
			}
		}()
	}

	go func() {
		defer close(work)
		for _, step := range steps {
			select {
			case work <- step:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	select {
	case result := <-results:
		return result
	default:
		return nil
	}
}
