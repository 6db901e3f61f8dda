package delay

import (
	"context"
	"sort"
)

// Task is a WaitRandom call running in its own goroutine.
type Task struct {
	done  chan struct{}
	delay float64
	err   error
}

// Done is closed once the task has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its result.
func (t *Task) Wait() (float64, error) {
	<-t.done
	return t.delay, t.err
}

// TaskWaitRandom starts WaitRandom immediately and returns a handle to join it.
func (r *Runner) TaskWaitRandom(ctx context.Context, maxDelay int) *Task {
	t := &Task{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		t.delay, t.err = r.WaitRandom(ctx, maxDelay)
	}()

	return t
}

// TaskWaitN is WaitN built on tasks. Every task is joined even when one fails.
func (r *Runner) TaskWaitN(ctx context.Context, n int, maxDelay int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}

	tasks := make([]*Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, r.TaskWaitRandom(ctx, maxDelay))
	}

	var firstErr error
	delays := make([]float64, 0, n)
	for _, t := range tasks {
		delay, err := t.Wait()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		delays = append(delays, delay)
	}

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Float64s(delays)
	return delays, nil
}
