package requests

import (
	"context"
	"leaguelookup/pkg/config"
	"sync"
	"time"
)

// Limiter is waited on before every request.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NoLimit never blocks, used on tests and for unauthenticated requests.
type NoLimit struct{}

func (NoLimit) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Single riot rate limiting.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*RiotLimit

	// Used to replace the clock on tests.
	now func() time.Time
	mu  sync.Mutex
}

// Create a instance of the rate limiter.
func CreateRateLimiter(limits config.LimitsConfiguration) *RateLimiter {
	return newRateLimiter(time.Now, limits.Lower, limits.Higher)
}

func newRateLimiter(now func() time.Time, windows ...config.LimitWindow) *RateLimiter {
	r := &RateLimiter{now: now}
	for _, window := range windows {
		// A window without count would block forever.
		if window.Count <= 0 || window.ResetInterval <= 0 {
			continue
		}
		r.windows = append(r.windows, &RiotLimit{
			limit:         window.Count,
			resetInterval: window.ResetInterval,
			lastReset:     now(),
		})
	}
	return r
}

// Reset the count.
func (r *RateLimiter) resetCounts() {
	now := r.now()
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Try to take a slot, returning how long to wait when there is none.
func (r *RateLimiter) reserve() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if r.checkLimits() {
		r.incrementCounts()
		return true, 0
	}

	// See how many time must wait for every full window to reset.
	var waitTime time.Duration
	now := r.now()
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return false, waitTime
}

// Wait until a request can be made or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, waitTime := r.reserve()
		if ok {
			return nil
		}

		if err := Pause(ctx, waitTime); err != nil {
			return err
		}
	}
}

// Pause blocks for the duration, returning early if the context is done.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
