package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBurstThenRefill(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("u1|GENERATE", rule)
		if !allowed {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}

	allowed, retryAfter := limiter.Allow("u1|GENERATE", rule)
	if allowed {
		t.Fatal("burst exhausted, request should be limited")
	}
	if retryAfter <= 0 {
		t.Fatalf("retryAfter = %v, want positive", retryAfter)
	}

	// One second at 1 req/s refills one token.
	current = current.Add(time.Second)
	allowed, _ = limiter.Allow("u1|GENERATE", rule)
	if !allowed {
		t.Fatal("request after refill should be allowed")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("u1|GENERATE", rule); !allowed {
		t.Fatal("first request for u1 should be allowed")
	}
	if allowed, _ := limiter.Allow("u1|GENERATE", rule); allowed {
		t.Fatal("second request for u1 should be limited")
	}
	if allowed, _ := limiter.Allow("u2|GENERATE", rule); !allowed {
		t.Fatal("u2 has its own bucket")
	}
}

func TestRateLimiterZeroRuleAllowsAll(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 10; i++ {
		if allowed, _ := limiter.Allow("u1|DEFAULT", RateLimitRule{}); !allowed {
			t.Fatal("empty rule must not limit")
		}
	}
}
