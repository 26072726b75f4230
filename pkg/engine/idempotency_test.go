package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderplan/wanderplan/pkg/models"
)

func TestIdempotencyCache_GetPut(t *testing.T) {
	c := newIdempotencyCache(10, time.Minute)

	_, ok := c.Get("it-1", "K1")
	assert.False(t, ok)

	want := models.ApplyChangesResult{Version: 6}
	c.Put("it-1", "K1", want)

	got, ok := c.Get("it-1", "K1")
	assert.True(t, ok)
	assert.Equal(t, want, got)

	// Keys are scoped per itinerary.
	_, ok = c.Get("it-2", "K1")
	assert.False(t, ok)
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	c := newIdempotencyCache(10, 10*time.Millisecond)
	c.Put("it-1", "K1", models.ApplyChangesResult{Version: 2})

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("it-1", "K1")
	assert.False(t, ok, "entry should expire after TTL")
}

func TestIdempotencyCache_SizeEviction(t *testing.T) {
	c := newIdempotencyCache(3, time.Minute)
	for i := 0; i < 5; i++ {
		c.Put("it-1", fmt.Sprintf("K%d", i), models.ApplyChangesResult{Version: i})
	}

	assert.Equal(t, 3, c.Len())

	// Oldest entries were evicted, newest survive.
	_, ok := c.Get("it-1", "K0")
	assert.False(t, ok)
	_, ok = c.Get("it-1", "K4")
	assert.True(t, ok)
}

func TestIdempotencyCache_DefaultBounds(t *testing.T) {
	c := newIdempotencyCache(0, 0)
	assert.Equal(t, defaultIdempotencyMaxEntries, c.maxEntries)
	assert.Equal(t, defaultIdempotencyTTL, c.ttl)
}
