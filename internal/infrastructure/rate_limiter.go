package infrastructure

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a keyed sliding-window limiter: at most limit events per key
// within window.
type RateLimiter struct {
	requests map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
	now      func() time.Time
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	validRequests := rl.prune(rl.requests[key], now.Add(-rl.window))

	if len(validRequests) < rl.limit {
		rl.requests[key] = append(validRequests, now)
		return true
	}

	rl.requests[key] = validRequests
	return false
}

// Remaining returns how many more events key may record in the current
// window.
func (rl *RateLimiter) Remaining(key string) int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	valid := rl.prune(rl.requests[key], rl.now().Add(-rl.window))
	if remaining := rl.limit - len(valid); remaining > 0 {
		return remaining
	}
	return 0
}

// Run drops stale keys every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanupStaleEntries()
		}
	}
}

func (rl *RateLimiter) cleanupStaleEntries() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for key, requests := range rl.requests {
		if valid := rl.prune(requests, cutoff); len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

func (rl *RateLimiter) prune(requests []time.Time, windowStart time.Time) []time.Time {
	var valid []time.Time
	for _, reqTime := range requests {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}
	return valid
}
