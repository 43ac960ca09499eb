package resumes

import (
	"context"
	"time"
)

// SleepFunc waits for the given duration or until the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// DefaultSleep is a context-aware timer sleep.
func DefaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ExponentialBackoff returns base * 2^attempt for a 1-based attempt counter.
func ExponentialBackoff(base time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		if attempt < 0 {
			attempt = 0
		}
		return base * (1 << uint(attempt))
	}
}

// RetryWithBackoff runs op up to maxAttempts times, sleeping backoff(attempt)
// between attempts. The attempt number passed to op is 1-based. It returns nil
// on the first success, the context error if cancelled while waiting, and the
// last op error once attempts are exhausted.
func RetryWithBackoff(
	ctx context.Context,
	maxAttempts int,
	backoff func(attempt int) time.Duration,
	sleep SleepFunc,
	op func(ctx context.Context, attempt int) error,
) error {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	if sleep == nil {
		sleep = DefaultSleep
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < maxAttempts {
			if err := sleep(ctx, backoff(attempt)); err != nil {
				return err
			}
		}
	}
	return lastErr
}
