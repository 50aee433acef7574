package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"movies-api/pkg/utils"

	"github.com/tomasen/realip"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = time.Minute
	limiterIdleTimeout     = 3 * time.Minute
)

// RateLimit applies a token bucket per client IP. Idle clients are forgotten by a
// background sweep that stops when ctx is done.
func RateLimit(ctx context.Context, cfg utils.LimiterConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	if cfg.Enabled {
		go func() {
			ticker := time.NewTicker(limiterCleanupInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}

				mu.Lock()
				for ip, c := range clients {
					if time.Since(c.lastSeen) > limiterIdleTimeout {
						delete(clients, ip)
					}
				}
				mu.Unlock()
			}
		}()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			ip := realip.FromRequest(r)

			mu.Lock()
			c, found := clients[ip]
			if !found {
				c = &client{limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)}
				clients[ip] = c
			}
			c.lastSeen = time.Now()
			allowed := c.limiter.Allow()
			mu.Unlock()

			if !allowed {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseTooManyRequests(w, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
