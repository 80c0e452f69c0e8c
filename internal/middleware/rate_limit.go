package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

// idleClientTTL is how long a client may stay silent before its limiter is dropped.
const idleClientTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket. Generation is CPU bound, so
// it guards the generate endpoint.
type RateLimiter struct {
	config  config.RateLimitConfig
	clients map[string]*client
	mu      sync.Mutex
	done    chan struct{}
	once    sync.Once
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		config:  cfg,
		clients: make(map[string]*client),
		done:    make(chan struct{}),
	}

	if cfg.Enabled {
		go rl.cleanupClients()
	}

	return rl
}

// Stop ends the background cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) getLimiter(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, exists := rl.clients[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.BurstSize)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (rl *RateLimiter) cleanupClients() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	evicted := 0
	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleClientTTL {
			delete(rl.clients, ip)
			evicted++
		}
	}
	return evicted
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := getClientIP(r, rl.config.TrustProxy)
		limiter := rl.getLimiter(ip, time.Now())

		if !limiter.Allow() {
			logger := slog.With(
				"middleware", "rate_limit",
				"client_ip", ip,
				"requests_per_second", rl.config.RequestsPerSecond,
				"burst_size", rl.config.BurstSize,
			)
			w.Header().Set("Retry-After", "1")
			response.Error(w, r, logger, errors.RateLimited("rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// X-Forwarded-For can be comma-separated; first entry is the client
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
