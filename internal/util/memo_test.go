package util

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClass struct {
	calls int
	memo  Memo[int]
}

func (c *testClass) aMethod() (int, error) {
	c.calls++
	return 42, nil
}

func (c *testClass) aProperty() (int, error) {
	return c.memo.Get(c.aMethod)
}

func TestMemo_ComputesOnce(t *testing.T) {
	c := &testClass{}

	first, err := c.aProperty()
	require.NoError(t, err)
	second, err := c.aProperty()
	require.NoError(t, err)

	assert.Equal(t, 42, first)
	assert.Equal(t, 42, second)
	assert.Equal(t, 1, c.calls)
}

func TestMemo_DoesNotCacheErrors(t *testing.T) {
	var memo Memo[string]
	calls := 0
	boom := errors.New("boom")

	_, err := memo.Get(func() (string, error) {
		calls++
		return "", boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := memo.Get(func() (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestMemo_Concurrent(t *testing.T) {
	var memo Memo[int]
	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := memo.Get(func() (int, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return 7, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}
