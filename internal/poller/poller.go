// Package poller re-runs the dashboard refresh on an interval so time and weather stay current.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
)

const defaultInterval = 15 * time.Minute

// RefreshFunc starts a refresh for the current preference and returns its generation.
// A zero generation means the refresh was refused.
type RefreshFunc func() uint64

// Poller triggers a refresh on every tick until stopped.
type Poller struct {
	refresh  RefreshFunc
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the ticks fired so far.
type Status struct {
	Ticks          int
	LastTick       time.Time
	LastGeneration uint64
}

// New constructs a Poller. A non-positive interval falls back to the default.
func New(refresh RefreshFunc, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresh:  refresh,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start ticks until the context is cancelled or Stop is called. The first refresh
// happens one interval after Start; callers run the initial refresh themselves.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		defer close(p.stopped)
		logging.Info(p.logger, "refresh poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		for {
			select {
			case <-ctx.Done():
				p.ticker.Stop()
				logging.Info(p.logger, "refresh poller stopped")
				return
			case <-p.done:
				p.ticker.Stop()
				logging.Info(p.logger, "refresh poller stopped")
				return
			case <-p.ticker.C:
				p.tick()
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit, or for ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) tick() {
	gen := p.refresh()

	p.statusMu.Lock()
	p.status.Ticks++
	p.status.LastTick = p.now()
	p.status.LastGeneration = gen
	p.statusMu.Unlock()

	if gen == 0 {
		logging.Warn(p.logger, "scheduled refresh refused")
		return
	}
	logging.Debug(p.logger, "scheduled refresh started", slog.Uint64(logging.FieldGeneration, gen))
}

// Status returns a snapshot of the ticks fired so far.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
