package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window limiter keyed by client IP. Each key gets
// `limit` requests per `window`; the counter resets when the window
// expires. With SkipSuccessful set, requests that finish below 400 are
// refunded, so only failures count against the limit (used on login to
// throttle credential guessing without punishing valid users).
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	message string
	skipOK  bool
	windows map[string]*rateWindow
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiterConfig configures a RateLimiter.
type RateLimiterConfig struct {
	Limit          int
	Window         time.Duration
	Message        string
	SkipSuccessful bool
}

// NewRateLimiter creates a RateLimiter and starts its cleanup loop.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	message := cfg.Message
	if message == "" {
		message = "Too many requests, please try again later."
	}
	rl := &RateLimiter{
		limit:   cfg.Limit,
		window:  cfg.Window,
		message: message,
		skipOK:  cfg.SkipSuccessful,
		windows: make(map[string]*rateWindow),
	}
	go rl.cleanupLoop()
	return rl
}

// Handler returns the Gin middleware for this limiter.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.take(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, failResponse{
				Status:  "fail",
				Message: rl.message,
			})
			return
		}

		c.Next()

		if rl.skipOK && c.Writer.Status() < http.StatusBadRequest {
			rl.refund(key)
		}
	}
}

func (rl *RateLimiter) take(key string) bool {
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w := rl.windows[key]
	if w == nil || now.After(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(rl.window)}
		rl.windows[key] = w
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

func (rl *RateLimiter) refund(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if w := rl.windows[key]; w != nil && w.count > 0 {
		w.count--
	}
}

// cleanupLoop drops expired windows so the map does not grow without
// bound under churning client IPs.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for key, w := range rl.windows {
			if now.After(w.resetAt) {
				delete(rl.windows, key)
			}
		}
		rl.mu.Unlock()
	}
}
