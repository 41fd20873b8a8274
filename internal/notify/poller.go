// Package notify keeps the dashboard's unread-submission badge current.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/devfolio/backend/internal/model"
)

// StatsSource is the slice of the submission service the poller needs.
type StatsSource interface {
	Stats(ctx context.Context) (*model.SubmissionStats, error)
}

// Poller re-reads the unread-submission count on a fixed interval and
// caches the latest value. One poller is owned by main and stopped by
// cancelling the context passed to Run. There is no backoff or jitter:
// a failed poll logs and leaves the previous count in place until the
// next tick.
type Poller struct {
	source   StatsSource
	interval time.Duration

	mu     sync.RWMutex
	unread int
}

// NewPoller creates a Poller over the given stats source.
func NewPoller(source StatsSource, interval time.Duration) *Poller {
	return &Poller{source: source, interval: interval}
}

// Run polls once immediately and then on every tick until ctx is
// cancelled. It blocks; run it in its own goroutine.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	stats, err := p.source.Stats(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("unread count poll failed", "error", err)
		return
	}

	p.mu.Lock()
	p.unread = stats.Unread
	p.mu.Unlock()
}

// Unread returns the most recently polled unread count.
func (p *Poller) Unread() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unread
}
