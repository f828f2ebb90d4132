// Package ratelimit counts requests per key in fixed windows held in a bounded LRU cache.
package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type window struct {
	start time.Time
	count int
}

// Limiter allows Limit requests per key in each Interval
type Limiter struct {
	mu       sync.Mutex
	windows  *expirable.LRU[string, *window]
	limit    int
	interval time.Duration
	now      func() time.Time
}

// New creates a Limiter tracking at most capacity keys
func New(limit int, interval time.Duration, capacity int) *Limiter {
	return &Limiter{
		windows:  expirable.NewLRU[string, *window](capacity, nil, interval),
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
}

// Allow counts a request for key. When the window is used up it returns false
// and the time until the window resets.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows.Get(key)
	if !ok || now.Sub(w.start) >= l.interval {
		w = &window{start: now}
		l.windows.Add(key, w)
	}

	if w.count >= l.limit {
		return false, w.start.Add(l.interval).Sub(now)
	}
	w.count++
	return true, 0
}

// Limit returns the number of requests allowed per window
func (l *Limiter) Limit() int {
	return l.limit
}

// Len returns the number of tracked keys
func (l *Limiter) Len() int {
	return l.windows.Len()
}
