package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Take(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second
	now := time.Now()

	// Should allow 10 requests immediately (burst)
	for i := 0; i < 10; i++ {
		if !bucket.take(now) {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied (no tokens left)
	if bucket.take(now) {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 1 token per second
	now := time.Now()

	for i := 0; i < 10; i++ {
		bucket.take(now)
	}

	// One second later a single token is back
	later := now.Add(1100 * time.Millisecond)
	if !bucket.take(later) {
		t.Error("Expected request to be allowed after refill")
	}
	if bucket.take(later) {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_Status(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	now := time.Now()

	for i := 0; i < 5; i++ {
		bucket.take(now)
	}

	remaining, resetTime := bucket.status(now)
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if resetTime.Before(now) {
		t.Error("Reset time should not be in the past")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/api/scan"
	method := "POST"

	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
	}

	allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected positive retry-after when denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		if allowed, _ := limiter.Allow("1.2.3.4", "/api/assist", "POST"); !allowed {
			t.Fatalf("Expected request %d to be allowed when limiting is disabled", i+1)
		}
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("10.0.0.1", "/api/scan", "POST"); !allowed {
			t.Fatal("Expected whitelisted client to always be allowed")
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"6.6.6.6": true},
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("6.6.6.6", "/api/scan", "POST"); allowed {
		t.Error("Expected blacklisted client to be denied")
	}
}

func TestLimiter_PerClientIsolation(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("1.1.1.1", "/api/scan", "POST"); !allowed {
		t.Fatal("Expected first client's request to be allowed")
	}
	if allowed, _ := limiter.Allow("1.1.1.1", "/api/scan", "POST"); allowed {
		t.Error("Expected first client's second request to be denied")
	}
	if allowed, _ := limiter.Allow("2.2.2.2", "/api/scan", "POST"); !allowed {
		t.Error("Expected second client to have its own bucket")
	}
}

func TestLimiter_EndpointConfig(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/assist", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	clientID := "127.0.0.1"

	for i := 0; i < 2; i++ {
		if allowed, _ := limiter.Allow(clientID, "/api/assist", "POST"); !allowed {
			t.Errorf("Expected assist request %d to be allowed", i+1)
		}
	}
	if allowed, _ := limiter.Allow(clientID, "/api/assist", "POST"); allowed {
		t.Error("Expected third assist request to be denied")
	}

	// Other endpoints still use the generous default
	if allowed, info := limiter.Allow(clientID, "/api/scan", "POST"); !allowed || info.Limit != 1000 {
		t.Errorf("Expected scan to use the default limit, got allowed=%v limit=%d", allowed, info.Limit)
	}
}

func TestLimiter_Concurrency(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/api/scan", "POST"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount > 101 {
		t.Errorf("Expected at most ~100 allowed requests, got %d", allowedCount)
	}
	if allowedCount < 100 {
		t.Errorf("Expected the full burst to be allowed, got %d", allowedCount)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path      string
		method    string
		wantMatch bool
	}{
		{"/api/assist", "POST", true},
		{"/api/job-description", "POST", true},
		{"/api/extract", "POST", true},
		{"/api/scan", "POST", false},
		{"/api/assist", "GET", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if (got != nil) != tt.wantMatch {
				t.Errorf("MatchEndpoint(%q, %q) match = %v, want %v", tt.path, tt.method, got != nil, tt.wantMatch)
			}
		})
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if got == nil || got.Limit != 0 {
		t.Error("Expected health check to match an unlimited config")
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	config := LoadConfig()
	if config.Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}
