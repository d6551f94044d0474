package events

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndEmit(t *testing.T) {
	mgr := NewSubscriptionManager()
	sub := mgr.Subscribe()
	defer sub.Cancel()

	mgr.Emit(context.Background())

	select {
	case <-sub.Chan():
	case <-time.After(time.Second):
		t.Fatal("expected a notification")
	}
}

func TestEmit_CoalescesWhenFull(t *testing.T) {
	mgr := NewSubscriptionManager()
	sub := mgr.Subscribe()
	defer sub.Cancel()

	ctx := context.Background()
	mgr.Emit(ctx)
	mgr.Emit(ctx)
	mgr.Emit(ctx)

	<-sub.Chan()
	select {
	case <-sub.Chan():
		t.Fatal("expected pending notifications to coalesce into one")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	mgr := NewSubscriptionManager()
	sub := mgr.Subscribe()

	sub.Cancel()
	assert.NotPanics(t, func() { sub.Cancel() })

	// Emitting after cancel must not panic either
	assert.NotPanics(t, func() { mgr.Emit(context.Background()) })
}

func TestWatch(t *testing.T) {
	mgr := NewSubscriptionManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	mgr.Subscribe().Watch(ctx, func() { calls.Add(1) }, true)

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 10*time.Millisecond, "callNow should fire once")

	mgr.Emit(ctx)
	require.Eventually(t, func() bool {
		return calls.Load() == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	mgr.Emit(context.Background())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), calls.Load(), "no callbacks after parent context ends")
}
