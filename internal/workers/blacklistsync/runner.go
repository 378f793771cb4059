// Package blacklistsync keeps the in-memory blacklist in step with the
// shared store when several instances write to the same database.
package blacklistsync

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher reloads a cached view from its backing store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Run calls r.Refresh every interval until ctx is done. A failed refresh
// keeps the previous set and is retried on the next tick.
func Run(ctx context.Context, r Refresher, interval time.Duration, log logrus.FieldLogger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshCtx, cancel := context.WithTimeout(ctx, interval)
			if err := r.Refresh(refreshCtx); err != nil {
				log.WithError(err).Warn("blacklist refresh failed")
			}
			cancel()
		}
	}
}
