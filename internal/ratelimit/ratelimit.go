package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces calls per key, e.g. per API endpoint.
type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// InMemoryLimiter keeps one token bucket per key.
type InMemoryLimiter struct {
	buckets map[string]*rate.Limiter
	mu      sync.Mutex
	r       rate.Limit
	b       int
}

// NewInMemoryLimiter allows requests per period with the given burst.
// Example: NewInMemoryLimiter(5, time.Second, 1) -> at most 5 calls a second, one at a time.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	r := rate.Inf
	if requests > 0 && per > 0 {
		r = rate.Every(per / time.Duration(requests))
	}
	if burst < 1 {
		burst = 1
	}
	return &InMemoryLimiter{
		buckets: make(map[string]*rate.Limiter),
		r:       r,
		b:       burst,
	}
}

// PerSecond builds a limiter from a fractional requests-per-second setting.
// Zero or negative disables limiting.
func PerSecond(rps float64) *InMemoryLimiter {
	l := NewInMemoryLimiter(0, 0, 1)
	if rps > 0 {
		l.r = rate.Limit(rps)
	}
	return l
}

func (l *InMemoryLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.buckets[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.buckets[key] = limiter
	}
	return limiter
}

func (l *InMemoryLimiter) Wait(ctx context.Context, key string) error {
	return l.bucket(key).Wait(ctx)
}

var _ Limiter = (*InMemoryLimiter)(nil)
