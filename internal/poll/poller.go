package poll

import (
	"context"
	"errors"
	"time"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
)

// ErrDisabled is returned by a tick function to stop its poller for good,
// e.g. after exhausting the retry limit. The poller logs and exits; it
// does not resume without a process restart.
var ErrDisabled = errors.New("poll: disabled")

// TickFunc is one poll cycle. Errors other than ErrDisabled are logged at
// the tick boundary and never stop the poller.
type TickFunc func(ctx context.Context) error

// Poller runs a tick function at a fixed interval.
//
// Ticks never overlap: the loop is sequential, so a slow tick delays the
// next one rather than racing it. Cancellation via ctx stops scheduling;
// an in-flight tick completes but nothing further runs.
type Poller struct {
	name     string
	interval time.Duration
	logger   *logging.Logger
}

// NewPoller creates a poller. The name labels its log lines.
func NewPoller(name string, interval time.Duration, logger *logging.Logger) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		logger:   logger.With("component", "poll", "poller", name),
	}
}

// Run executes the tick loop until ctx is cancelled or the tick function
// returns ErrDisabled. The first tick fires immediately. Run blocks; call
// it in its own goroutine.
func (p *Poller) Run(ctx context.Context, tick TickFunc) {
	p.logger.Info("poller started", "interval", p.interval.String())

	if stopped := p.tickOnce(ctx, tick); stopped {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
			if stopped := p.tickOnce(ctx, tick); stopped {
				return
			}
		}
	}
}

// tickOnce runs a single tick and reports whether the poller should stop.
func (p *Poller) tickOnce(ctx context.Context, tick TickFunc) bool {
	if ctx.Err() != nil {
		return true
	}

	err := tick(ctx)
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrDisabled):
		p.logger.Warn("poller disabled")
		return true
	default:
		p.logger.Error("tick failed", "error", err)
		return false
	}
}
