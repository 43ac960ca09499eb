package resumes

import (
	"context"
	"errors"
	"testing"
	"time"
)

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestRetryWithBackoffStopsOnFirstSuccess(t *testing.T) {
	attempts := []int{}
	err := RetryWithBackoff(context.Background(), 3, ExponentialBackoff(time.Second), noSleep,
		func(ctx context.Context, attempt int) error {
			attempts = append(attempts, attempt)
			if attempt == 2 {
				return nil
			}
			return errors.New("boom")
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Fatalf("unexpected attempt order: %v", attempts)
	}
}

func TestRetryWithBackoffDelays(t *testing.T) {
	var delays []time.Duration
	recordSleep := func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	err := RetryWithBackoff(context.Background(), 3, ExponentialBackoff(time.Second), recordSleep,
		func(ctx context.Context, attempt int) error {
			return errors.New("always fails")
		})
	if err == nil {
		t.Fatal("expected last error after exhausting attempts")
	}

	// No sleep after the final attempt.
	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("got %d delays, want %d: %v", len(delays), len(want), delays)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("delay %d = %s, want %s", i, delays[i], want[i])
		}
	}
}

func TestRetryWithBackoffReturnsLastError(t *testing.T) {
	errFirst := errors.New("first")
	errLast := errors.New("last")
	err := RetryWithBackoff(context.Background(), 2, ExponentialBackoff(time.Second), noSleep,
		func(ctx context.Context, attempt int) error {
			if attempt == 1 {
				return errFirst
			}
			return errLast
		})
	if !errors.Is(err, errLast) {
		t.Fatalf("got %v, want last error", err)
	}
}

func TestRetryWithBackoffHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := RetryWithBackoff(ctx, 3, ExponentialBackoff(time.Second), DefaultSleep,
		func(ctx context.Context, attempt int) error {
			calls++
			cancel()
			return errors.New("boom")
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt before cancellation, got %d", calls)
	}
}
