package rate_limiter

import (
	"sync"
	"time"
)

// RateLimiter allows at most limit requests per caller within a sliding
// window. It guards the login endpoint against runaway retry loops.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop drops callers whose attempts have all left the window.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for caller, times := range rl.attempts {
			recent := withinWindow(times, cutoff)
			if len(recent) == 0 {
				delete(rl.attempts, caller)
			} else {
				rl.attempts[caller] = recent
			}
		}
		rl.mu.Unlock()
	}
}

// IsAllowed records an attempt for the caller and reports whether it stays
// within the limit.
func (rl *RateLimiter) IsAllowed(caller string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	recent := withinWindow(rl.attempts[caller], cutoff)
	if len(recent) >= rl.limit {
		rl.attempts[caller] = recent
		return false
	}
	rl.attempts[caller] = append(recent, time.Now())
	return true
}

// Remaining returns how many attempts the caller has left in the window.
func (rl *RateLimiter) Remaining(caller string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	left := rl.limit - len(withinWindow(rl.attempts[caller], cutoff))
	if left < 0 {
		return 0
	}
	return left
}

func withinWindow(times []time.Time, cutoff time.Time) []time.Time {
	var recent []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}
