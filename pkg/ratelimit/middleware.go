package ratelimit

import (
	"net"
	"net/http"

	"postsdb/pkg/httpx"
	"postsdb/pkg/logger"
)

// Middleware limits requests per client IP with a shared token-bucket pool.
// A non-positive RPS disables limiting entirely.
func Middleware(cfg Config) func(httpx.HandlerFunc) httpx.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(next httpx.HandlerFunc) httpx.HandlerFunc { return next }
	}
	pool := &limiterPool{cfg: cfg}
	return func(next httpx.HandlerFunc) httpx.HandlerFunc {
		return func(w httpx.ResponseWriter, r *httpx.Request) {
			key := clientIP(r.RemoteAddr)
			if !pool.Allow(key) {
				logger.Warn("rate_limited", "remote", key)
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next(w, r)
		}
	}
}

func clientIP(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
