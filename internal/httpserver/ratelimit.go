// internal/httpserver/ratelimit.go
//
// Per-client request budgets for the write endpoints.
// One token bucket per client IP; buckets idle past limiterIdle are evicted
// while the server runs, since a refilled bucket is the same as a new one.

package httpserver

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// limiterIdle is how long a client's bucket survives without requests.
const limiterIdle = 10 * time.Minute

type clientLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// limiterSet holds one token bucket per client IP.
type limiterSet struct {
	mu    sync.Mutex
	m     map[string]*clientLimiter
	rps   int
	burst int
	now   func() time.Time
}

func newLimiterSet(rps, burst int) *limiterSet {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &limiterSet{m: make(map[string]*clientLimiter), rps: rps, burst: burst, now: time.Now}
}

// get returns the limiter for key, creating it on first use.
func (l *limiterSet) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.m[key]
	if !ok {
		c = &clientLimiter{lim: rate.NewLimiter(rate.Every(time.Second/time.Duration(l.rps)), l.burst)}
		l.m[key] = c
	}
	c.seen = l.now()
	return c.lim
}

// sweep drops buckets unused for longer than maxIdle and returns how many.
func (l *limiterSet) sweep(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for k, c := range l.m {
		if c.seen.Before(cutoff) {
			delete(l.m, k)
			n++
		}
	}
	return n
}

func (l *limiterSet) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}

// runSweeper evicts idle buckets every interval until ctx is done.
func (l *limiterSet) runSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := l.sweep(maxIdle); n > 0 {
				log.Debug().Int("evicted", n).Msg("idle rate limiters")
			}
		}
	}
}

// rateLimit rejects requests over the per-client budget with 429.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !s.limits.get(key).Allow() {
			log.Warn().Str("client", key).Str("path", r.URL.Path).Msg("rate limited")
			writeErr(w, http.StatusTooManyRequests, "rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port chimw.RealIP leaves on RemoteAddr when no proxy
// header was present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
