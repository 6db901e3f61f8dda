// Package comprehension produces delayed random values and collects them,
// sequentially per generator and in parallel across generators.
package comprehension

import (
	"context"
	"time"

	"github.com/orgscope/orgscope/internal/delay"
	"golang.org/x/sync/errgroup"
)

const (
	// Count is how many values a generator yields.
	Count = 10
	// MaxValue bounds every generated value, exclusive.
	MaxValue = 10
	// Parallel is how many collections MeasureRuntime runs at once.
	Parallel = 4
)

type Comprehension struct {
	runner *delay.Runner
}

func New(runner *delay.Runner) *Comprehension {
	if runner == nil {
		runner = delay.NewRunner()
	}
	return &Comprehension{runner: runner}
}

// Generator yields Count random values in [0, MaxValue), sleeping one unit before each.
// The channel is closed after the last value or once ctx is done.
func (c *Comprehension) Generator(ctx context.Context) <-chan float64 {
	ch := make(chan float64)

	go func() {
		defer close(ch)

		for i := 0; i < Count; i++ {
			if err := c.runner.Sleep(ctx, 1); err != nil {
				return
			}

			select {
			case ch <- c.runner.Uniform(MaxValue):
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// Collect gathers every value from a new generator.
func (c *Comprehension) Collect(ctx context.Context) ([]float64, error) {
	values := make([]float64, 0, Count)
	for v := range c.Generator(ctx) {
		values = append(values, v)
	}

	if len(values) < Count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return values, nil
}

// MeasureRuntime runs Parallel collections at once and returns the total elapsed time,
// which stays close to Count units rather than Parallel*Count.
func (c *Comprehension) MeasureRuntime(ctx context.Context) (time.Duration, error) {
	start := time.Now()

	g, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < Parallel; i++ {
		g.Go(func() error {
			_, err := c.Collect(groupCtx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}
