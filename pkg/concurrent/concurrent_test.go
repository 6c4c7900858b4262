package concurrent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/spacedrift/pkg/sequence"
)

func TestBatchCoversEveryElementOnce(t *testing.T) {
	in := make([]int, 103)
	for i := range in {
		in[i] = i
	}

	var mu sync.Mutex
	seen := make(map[int]int)
	err := Batch(context.Background(), sequence.From(in), 10, 4, func(_ context.Context, chunk []int) error {
		assert.LessOrEqual(t, len(chunk), 10)
		mu.Lock()
		defer mu.Unlock()
		for _, v := range chunk {
			seen[v]++
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, len(in))
	for v, n := range seen {
		assert.Equal(t, 1, n, "element %d", v)
	}
}

func TestBatchLimitsWorkers(t *testing.T) {
	var inFlight, peak int64
	in := make([]int, 64)
	err := Batch(context.Background(), sequence.From(in), 1, 3, func(context.Context, []int) error {
		n := atomic.AddInt64(&inFlight, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		atomic.AddInt64(&inFlight, -1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
}

func TestBatchReturnsError(t *testing.T) {
	boom := errors.New("boom")
	err := Batch(context.Background(), sequence.From([]int{1, 2, 3, 4}), 1, 2, func(_ context.Context, chunk []int) error {
		if chunk[0] == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, Batch(context.Background(), sequence.From([]int(nil)), 4, 2, func(context.Context, []int) error {
		return boom
	}))
}
