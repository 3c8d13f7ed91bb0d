package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jodavila/long-journey/pkg/clientip"
)

const (
	headerXContentTypeOptions     = "X-Content-Type-Options"
	headerXFrameOptions           = "X-Frame-Options"
	headerXXSSProtection          = "X-XSS-Protection"
	headerContentSecurityPolicy   = "Content-Security-Policy"
	headerStrictTransportSecurity = "Strict-Transport-Security"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerXContentTypeOptions, "nosniff")
		w.Header().Set(headerXFrameOptions, "DENY")
		w.Header().Set(headerXXSSProtection, "1; mode=block")
		w.Header().Set(headerContentSecurityPolicy, "default-src 'self'")
		w.Header().Set(headerStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// --- Per-IP rate limiting (2/s, burst 20) ---

var (
	limiterEntries    = make(map[string]*limiterEntry)
	limiterEntriesMu  sync.Mutex
	limiterCleanupRun bool
)

const (
	rateLimitRPS    = 2
	rateLimitBurst  = 20
	cleanupInterval = 5 * time.Minute
	limiterTTL      = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

func getLimiter(ip string) *rate.Limiter {
	limiterEntriesMu.Lock()
	defer limiterEntriesMu.Unlock()
	startCleanupOnce()
	e, ok := limiterEntries[ip]
	if !ok {
		e = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(rateLimitRPS), rateLimitBurst),
			lastUse: time.Now(),
		}
		limiterEntries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func startCleanupOnce() {
	if limiterCleanupRun {
		return
	}
	limiterCleanupRun = true
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			limiterEntriesMu.Lock()
			now := time.Now()
			for ip, e := range limiterEntries {
				if now.Sub(e.lastUse) > limiterTTL {
					delete(limiterEntries, ip)
				}
			}
			limiterEntriesMu.Unlock()
		}
	}()
}

// RateLimit limits each IP to 2 req/s, burst 20. Returns 429 when exceeded.
// Generous enough for one journal client saving after every interaction.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		if !getLimiter(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Too many requests. Please slow down."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ProductionSecurity returns the middleware chain for production:
// SecurityHeaders then RateLimit.
func ProductionSecurity() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		RateLimit,
	}
}
