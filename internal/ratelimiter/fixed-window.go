package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
}

// FixedWindowRateLimiter is an in-process limiter for single instance deployments.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window //string:UserIP
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  w,
		now:     time.Now,
	}
	return rl
}

// Run drops expired windows until ctx is done.
func (rl *FixedWindowRateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *FixedWindowRateLimiter) cleanup() {
	rl.Lock()
	defer rl.Unlock()
	now := rl.now()
	for ip, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, ip)
		}
	}
}

func (rl *FixedWindowRateLimiter) Allow(_ context.Context, ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[ip] = &window{count: 1, start: now}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, rl.window - now.Sub(w.start)
}
