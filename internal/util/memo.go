package util

import "sync"

// Memo caches the first successful result of a computation.
// A failed computation is not cached and runs again on the next Get.
type Memo[T any] struct {
	mu    sync.Mutex
	done  bool
	value T
}

func (m *Memo[T]) Get(compute func() (T, error)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return m.value, nil
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	m.value = value
	m.done = true
	return m.value, nil
}
