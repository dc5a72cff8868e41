package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type RateLimitConfig struct {
	Burst             int           // bucket size per client IP
	RefillPerIPPerMin int           // tokens added per minute
	MaxEntries        int           // sweep early once this many IPs are tracked (0 = no limit)
	SweepInterval     time.Duration // how often idle buckets are dropped
	IdleTTL           time.Duration // idle time after which a bucket is dropped
	TrustProxy        bool          // resolve IP from proxy headers when true
}

// bucket is a token bucket for one client.
type bucket struct {
	tokens   float64
	refilled time.Time
}

type limiter struct {
	cfg      RateLimitConfig
	rate     float64 // tokens per second
	capacity float64
	now      func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 15 * time.Minute
	}
	cfg.Burst = max(cfg.Burst, 1)
	cfg.RefillPerIPPerMin = max(cfg.RefillPerIPPerMin, 1)

	return &limiter{
		cfg:       cfg,
		rate:      float64(cfg.RefillPerIPPerMin) / 60.0,
		capacity:  float64(cfg.Burst),
		now:       time.Now,
		buckets:   make(map[string]*bucket, 256),
		lastSweep: time.Now(),
	}
}

// take consumes one token for key. When none is left it reports how many
// seconds until the next one.
func (l *limiter) take(key string) (ok bool, remaining, retryAfter int) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.cfg.SweepInterval ||
		(l.cfg.MaxEntries > 0 && len(l.buckets) >= l.cfg.MaxEntries) {
		l.sweep(now)
	}

	b, found := l.buckets[key]
	if !found {
		b = &bucket{tokens: l.capacity, refilled: now}
		l.buckets[key] = b
	}

	if elapsed := now.Sub(b.refilled).Seconds(); elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.rate)
		b.refilled = now
	}

	if b.tokens < 1 {
		wait := int(math.Ceil((1 - b.tokens) / l.rate))
		return false, 0, max(wait, 1)
	}
	b.tokens--
	return true, int(b.tokens), 0
}

// sweep drops buckets that have been full and untouched for IdleTTL.
// Must be called with l.mu held.
func (l *limiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.refilled) > l.cfg.IdleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimit throttles requests per client IP with a token bucket.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newLimiter(cfg)
	return rateLimit(l)
}

func rateLimit(l *limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, retry := l.take(clientIP(r, l.cfg.TrustProxy))

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				writeStatus(w, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
