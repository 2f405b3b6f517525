// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

const defaultCleanupInterval = 5 * time.Minute

type sessionCleaner struct {
	purger   SessionPurger
	interval time.Duration

	logger *logger.Logger
}

// NewSessionCleaner returns a worker that purges expired sessions every
// interval. A zero or negative interval defaults to 5 minutes.
func NewSessionCleaner(purger SessionPurger, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	return &sessionCleaner{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (c *sessionCleaner) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("session cleaner started")

	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("session cleaner stopped")
			return
		case <-t.C:
			c.purge(ctx)
		}
	}
}

func (c *sessionCleaner) purge(ctx context.Context) {
	n, err := c.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		c.logger.Err(err).Msg("purging expired sessions failed")
		return
	}
	if n > 0 {
		c.logger.Info().Int64("purged", n).Msg("expired sessions purged")
	}
}
