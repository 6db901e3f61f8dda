package delay

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WaitRandom sleeps for a random delay between 0 and maxDelay units and returns it.
func (r *Runner) WaitRandom(ctx context.Context, maxDelay int) (float64, error) {
	delay := r.Uniform(float64(maxDelay))

	if err := r.Sleep(ctx, delay); err != nil {
		return 0, err
	}

	r.logger.Debug("waited", zap.Float64("delay", delay), zap.Int("max_delay", maxDelay))
	return delay, nil
}

// WaitN runs n WaitRandom calls concurrently and returns their delays in ascending order.
func (r *Runner) WaitN(ctx context.Context, n int, maxDelay int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}

	g, groupCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	delays := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			delay, err := r.WaitRandom(groupCtx, maxDelay)
			if err != nil {
				return err
			}

			mu.Lock()
			delays = append(delays, delay)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// completion order is already close to sorted; timer jitter can swap neighbours
	sort.Float64s(delays)
	return delays, nil
}

// MeasureTime runs WaitN and returns the average elapsed time per wait.
func (r *Runner) MeasureTime(ctx context.Context, n int, maxDelay int) (time.Duration, error) {
	if n <= 0 {
		return 0, nil
	}

	start := time.Now()
	if _, err := r.WaitN(ctx, n, maxDelay); err != nil {
		return 0, err
	}

	return time.Since(start) / time.Duration(n), nil
}
