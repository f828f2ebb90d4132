//go:build unit
// +build unit

package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_FixedWindow(t *testing.T) {
	limiter := New(2, time.Minute, 100)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	allowed, _ := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)

	now = now.Add(20 * time.Second)
	allowed, retryAfter := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, retryAfter)

	allowed, _ = limiter.Allow("5.6.7.8")
	assert.True(t, allowed, "keys are counted separately")

	now = now.Add(40 * time.Second)
	allowed, _ = limiter.Allow("1.2.3.4")
	assert.True(t, allowed, "a new window starts after the interval")
}

func TestLimiter_CapacityEvictsOldestKeys(t *testing.T) {
	limiter := New(1, time.Hour, 3)

	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("client-%d", i))
	}

	assert.Equal(t, 3, limiter.Len())

	// the evicted client starts over
	allowed, _ := limiter.Allow("client-0")
	assert.True(t, allowed)
}
