package delay

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

type RunnerOption func(*Runner)

// WithUnit sets the duration of one delay unit. The default is one second.
func WithUnit(unit time.Duration) RunnerOption {
	return func(r *Runner) {
		if unit > 0 {
			r.unit = unit
		}
	}
}

func WithRand(rnd *rand.Rand) RunnerOption {
	return func(r *Runner) {
		if rnd != nil {
			r.rnd = rnd
		}
	}
}

func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner sleeps for random amounts of time.
type Runner struct {
	unit   time.Duration
	logger *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		unit:   time.Second,
		logger: zap.NewNop(),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runner) Unit() time.Duration {
	return r.unit
}

// Uniform returns a random value in [0, max).
func (r *Runner) Uniform(max float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64() * max
}

// Sleep waits for units delay units or until ctx is done.
func (r *Runner) Sleep(ctx context.Context, units float64) error {
	timer := time.NewTimer(time.Duration(units * float64(r.unit)))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
