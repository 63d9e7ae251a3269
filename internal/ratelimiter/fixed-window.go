package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter counts requests per key in process memory. Use the
// Redis limiter when more than one instance serves traffic.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  w,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.done:
			return
		}
	}
}

// sweep drops windows that have already expired.
func (rl *FixedWindowRateLimiter) sweep() {
	rl.Lock()
	defer rl.Unlock()
	now := rl.now()
	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, key)
		}
	}
}

func (rl *FixedWindowRateLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[key] = &window{start: now, count: 1}
		return true, 0, nil
	}

	if w.count < rl.limit {
		w.count++
		return true, 0, nil
	}
	return false, rl.window - now.Sub(w.start), nil
}

// Close stops the background sweeper.
func (rl *FixedWindowRateLimiter) Close() {
	rl.once.Do(func() { close(rl.done) })
}
