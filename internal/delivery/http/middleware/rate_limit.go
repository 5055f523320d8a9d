package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// incrWithTTL increments the counter and sets the window TTL on first hit, in
// one round trip so concurrent requests cannot race the expiry.
const incrWithTTL = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

type memoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
}

func (m *memoryLimiter) hit(key string, window time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	// Periodic sweep keeps the map bounded as distinct client IPs churn.
	if now.After(m.nextSweep) {
		for k, e := range m.entries {
			if now.After(e.resetAt) {
				delete(m.entries, k)
			}
		}
		m.nextSweep = now.Add(window)
	}
	entry, ok := m.entries[key]
	if !ok || now.After(entry.resetAt) {
		m.entries[key] = &rateLimitEntry{count: 1, resetAt: now.Add(window)}
		return 1
	}
	entry.count++
	return entry.count
}

// RateLimit caps requests per client IP in a fixed window. Counters live in
// Redis when available so limits hold across replicas; otherwise a per-process
// map is used. Redis failures fail open.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	fallback := &memoryLimiter{entries: make(map[string]*rateLimitEntry)}

	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.FullPath()

		var count int
		if redis.IsAvailable() {
			result, err := redis.Client().Eval(c.Request.Context(), incrWithTTL,
				[]string{key}, int(window.Seconds())).Int()
			if err == nil {
				count = result
			} else {
				count = fallback.hit(key, window)
			}
		} else {
			count = fallback.hit(key, window)
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > limit {
			response.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
