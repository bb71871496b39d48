// Package ratelimit is a per-key fixed-window request limiter.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result describes the outcome of one admission decision.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is the time left until the window resets, at least one second.
func (r Result) RetryAfter(now time.Time) time.Duration {
	d := r.ResetAt.Sub(now)
	if d < time.Second {
		return time.Second
	}
	return d.Truncate(time.Second)
}

type window struct {
	start time.Time
	count int
}

// Limiter admits at most limit hits per key within each window.
type Limiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

func New(limit int, period time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Allow records a hit for key. A non-positive limit disables limiting.
func (l *Limiter) Allow(key string) Result {
	now := l.now()
	if l.limit <= 0 {
		return Result{Allowed: true, Limit: l.limit, ResetAt: now}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.start.Add(l.period)) {
		w = &window{start: now}
		l.windows[key] = w
	}

	res := Result{Limit: l.limit, ResetAt: w.start.Add(l.period)}
	if w.count >= l.limit {
		return res
	}
	w.count++
	res.Allowed = true
	res.Remaining = l.limit - w.count
	return res
}

// Sweep drops windows that have already expired.
func (l *Limiter) Sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, w := range l.windows {
		if !now.Before(w.start.Add(l.period)) {
			delete(l.windows, key)
		}
	}
}

// Run sweeps once per period until ctx is cancelled.
func (l *Limiter) Run(ctx context.Context) {
	if l.period <= 0 {
		return
	}
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
