package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/logger"
)

// DefaultSessionGCInterval is how often idle sessions are looked for.
const DefaultSessionGCInterval = 10 * time.Minute

// Evictor drops idle sessions.
type Evictor interface {
	EvictIdle(ctx context.Context) int
}

// Pruner removes stale ids from the persisted session set.
type Pruner interface {
	Prune(ctx context.Context) (int, error)
}

// SessionCollector periodically evicts sessions idle for longer than
// their TTL.
type SessionCollector struct {
	sessions Evictor
	pruner   Pruner // nil without a snapshot store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewSessionCollector creates a new session collector. pruner may be nil.
func NewSessionCollector(sessions Evictor, pruner Pruner, log logger.Logger, interval time.Duration) *SessionCollector {
	if interval <= 0 {
		interval = DefaultSessionGCInterval
	}

	return &SessionCollector{
		sessions: sessions,
		pruner:   pruner,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic collection
func (sc *SessionCollector) Start(ctx context.Context) {
	ticker := time.NewTicker(sc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sc.Collect(ctx)
			case <-sc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the collector
func (sc *SessionCollector) Stop() {
	close(sc.stopCh)
}

// Collect runs one pass and returns the number of evicted sessions.
func (sc *SessionCollector) Collect(ctx context.Context) int {
	evicted := sc.sessions.EvictIdle(ctx)

	pruned := 0
	if sc.pruner != nil {
		n, err := sc.pruner.Prune(ctx)
		if err != nil {
			sc.logger.Warn("Failed to prune session set", logger.Error(err))
		}
		pruned = n
	}

	if evicted > 0 || pruned > 0 {
		sc.logger.Info("Session collection completed",
			logger.Int("evicted", evicted),
			logger.Int("pruned", pruned))
	} else {
		sc.logger.Debug("No idle sessions to collect")
	}
	return evicted
}
