package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsPeriodically(t *testing.T) {
	var runs atomic.Int32
	s := New(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	s.Start(context.Background(), false)
	defer s.Stop()

	require.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_FirstRunImmediately(t *testing.T) {
	var runs atomic.Int32
	s := New(time.Hour, func(ctx context.Context) {
		runs.Add(1)
	})

	s.Start(context.Background(), true)
	defer s.Stop()

	require.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopHaltsExecution(t *testing.T) {
	var runs atomic.Int32
	s := New(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	s.Start(context.Background(), false)
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())

	before := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, runs.Load())
}

func TestScheduler_DoubleStartIsNoop(t *testing.T) {
	var runs atomic.Int32
	s := New(time.Hour, func(ctx context.Context) {
		runs.Add(1)
	})

	s.Start(context.Background(), true)
	s.Start(context.Background(), true)
	defer s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, s.IsRunning())
}

func TestScheduler_ContextCancellation(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	s := New(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	s.Start(ctx, false)
	defer s.Stop()

	cancel()
	time.Sleep(30 * time.Millisecond)
	before := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, runs.Load())
}
