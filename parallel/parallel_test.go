package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seb-eis/Mocassin-sub007/parallel"
)

func TestMap_PreservesOrder(t *testing.T) {
	items := []int{5, 4, 3, 2, 1, 0}
	got, err := parallel.Map(context.Background(), items, func(_ context.Context, n int) (int, error) {
		// later items finish first
		time.Sleep(time.Duration(n) * 2 * time.Millisecond)
		return n * n, nil
	}, parallel.WithLimit(len(items)))
	require.NoError(t, err)
	assert.Equal(t, []int{25, 16, 9, 4, 1, 0}, got)
}

func TestMap_RespectsLimit(t *testing.T) {
	var running, peak atomic.Int32
	items := make([]int, 32)
	_, err := parallel.Map(context.Background(), items, func(context.Context, int) (struct{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return struct{}{}, nil
	}, parallel.WithLimit(3))
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMap_FirstErrorStopsRemaining(t *testing.T) {
	boom := errors.New("boom")
	var started atomic.Int32
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	_, err := parallel.Map(context.Background(), items, func(_ context.Context, n int) (int, error) {
		started.Add(1)
		if n == 0 {
			return 0, boom
		}
		time.Sleep(time.Millisecond)
		return n, nil
	}, parallel.WithLimit(1))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "item 0")
	assert.Equal(t, int32(1), started.Load())
}

func TestMap_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := parallel.Map(ctx, []int{1, 2}, func(_ context.Context, n int) (int, error) { return n, nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMap_Empty(t *testing.T) {
	got, err := parallel.Map(context.Background(), []string(nil), func(_ context.Context, s string) (int, error) {
		return len(s), nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWithLimit_Panics(t *testing.T) {
	assert.Panics(t, func() { parallel.WithLimit(0) })
}
