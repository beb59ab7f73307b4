package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
)

func TestPollerRunsImmediatelyAndOnInterval(t *testing.T) {
	var ticks atomic.Int32
	poller := NewPoller("test", 10*time.Millisecond, logging.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx, func(context.Context) error {
			ticks.Add(1)
			return nil
		})
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("ticks = %d, want at least 3", ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancellation")
	}
}

func TestPollerStopsOnDisable(t *testing.T) {
	var ticks atomic.Int32
	poller := NewPoller("test", time.Millisecond, logging.Default())

	done := make(chan struct{})
	go func() {
		poller.Run(context.Background(), func(context.Context) error {
			ticks.Add(1)
			return ErrDisabled
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on ErrDisabled")
	}
	if got := ticks.Load(); got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
}

func TestPollerToleratesTickErrors(t *testing.T) {
	var ticks atomic.Int32
	poller := NewPoller("test", 5*time.Millisecond, logging.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx, func(context.Context) error {
		ticks.Add(1)
		return context.DeadlineExceeded // arbitrary non-disabling error
	})

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("ticks = %d, want poller to survive errors", ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}
