package imagestore

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Janitor sweeps a MemoryStore on a fixed interval so that abandoned
// previews are freed even when nothing new gets uploaded.
type Janitor struct {
	store    *MemoryStore
	interval time.Duration
	logger   *zap.SugaredLogger
}

func NewJanitor(store *MemoryStore, interval time.Duration, logger *zap.SugaredLogger) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Start blocks until ctx is done. A non-positive interval disables sweeping
// and Start returns at once; expired entries are then only dropped on Put.
func (j *Janitor) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Infow("image sweeping disabled", "interval", j.interval)
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := j.store.Sweep(); n > 0 {
				j.logger.Debugw("expired previews removed", "count", n)
			}
		}
	}
}
