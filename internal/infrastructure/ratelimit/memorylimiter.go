package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const sweepThreshold = 1024

// MemoryLimiter keeps a token bucket per key in process memory. It refills
// limit tokens per window and allows bursts of up to limit requests.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
	limit   int
	window  time.Duration
	now     func() time.Time
}

type memoryBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*memoryBucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.buckets) >= sweepThreshold {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &memoryBucket{
			limiter: rate.NewLimiter(rate.Every(l.window/time.Duration(l.limit)), l.limit),
		}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, Limit: l.limit, RetryAfter: delay}, nil
	}

	return Decision{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: int(b.limiter.TokensAt(now)),
	}, nil
}

// sweep drops buckets idle for a full window; they would be full again.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.window {
			delete(l.buckets, key)
		}
	}
}
