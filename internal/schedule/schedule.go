// Package schedule provides deadline waiting with context cancellation.
package schedule

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spiffcs/tempo/internal/log"
)

// jitterFloor is the shortest delay worth suspending for. Delays at or below
// it return immediately so sub-second clock precision jitter cannot cause
// rapid-fire re-checks.
const jitterFloor = time.Second

// WaitUntil blocks until target, or until ctx is cancelled, in which case it
// returns ctx.Err(). Targets less than a second away (including past ones)
// return immediately.
func WaitUntil(ctx context.Context, target time.Time) error {
	return WaitUntilFrom(ctx, target, time.Now().UTC())
}

// WaitUntilFrom is WaitUntil with an explicit start time for the delay
// computation.
func WaitUntilFrom(ctx context.Context, target, start time.Time) error {
	delay := target.Sub(start)
	if delay <= jitterFloor {
		return nil
	}

	log.Debug("waiting for deadline", "target", target, "delay", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitEach waits for every target concurrently, calling fn as each one
// passes. Cancellation stops all pending waits and is returned as the first
// error. fn may be called from multiple goroutines at once.
func WaitEach(ctx context.Context, targets []time.Time, fn func(time.Time)) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			if err := WaitUntil(gctx, target); err != nil {
				return err
			}
			if fn != nil {
				fn(target)
			}
			return nil
		})
	}
	return g.Wait()
}
