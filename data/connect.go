package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	connAttempts = 10
	connDelay    = time.Second
)

// connectWithRetry calls connect until it succeeds, attempts run out or ctx is done.
// The last connect error is returned.
func connectWithRetry(ctx context.Context, backend string, attempts int, delay time.Duration, connect func(ctx context.Context) error) error {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = connect(ctx); err == nil {
			slog.Info("backend connected", slog.String("backend", backend), slog.Int("attempt", attempt))
			return nil
		}

		slog.Warn("backend not reachable yet",
			slog.String("backend", backend),
			slog.Int("attempts left", attempts-attempt),
			slog.String("err", err.Error()),
		)

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", backend, ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s: %d connection attempts exhausted: %w", backend, attempts, err)
}
