package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter(t *testing.T) {
	t.Run("counts hits within the window", func(t *testing.T) {
		m := &memoryLimiter{entries: make(map[string]*rateLimitEntry)}

		assert.Equal(t, 1, m.hit("rl:1.2.3.4:/api/jobs", time.Minute))
		assert.Equal(t, 2, m.hit("rl:1.2.3.4:/api/jobs", time.Minute))
		assert.Equal(t, 1, m.hit("rl:5.6.7.8:/api/jobs", time.Minute))
	})

	t.Run("expired entries are swept, not hoarded", func(t *testing.T) {
		m := &memoryLimiter{entries: make(map[string]*rateLimitEntry)}

		window := 5 * time.Millisecond
		for i := 0; i < 50; i++ {
			m.hit(fmt.Sprintf("rl:10.0.0.%d:/api/jobs", i), window)
		}
		time.Sleep(2 * window)

		m.hit("rl:fresh:/api/jobs", window)
		assert.Len(t, m.entries, 1)
	})
}
