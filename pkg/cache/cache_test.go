package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[int64, string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[int64, string](capacity, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name    string
		actions func(t *testing.T, c *LRUCache[int64, string], clock *fakeClock)
	}{
		{
			name: "set and get within TTL",
			actions: func(t *testing.T, c *LRUCache[int64, string], _ *fakeClock) {
				c.Set(1, "a")
				v, ok := c.Get(1)
				assert.True(t, ok)
				assert.Equal(t, "a", v)
			},
		},
		{
			name: "get after expiration",
			actions: func(t *testing.T, c *LRUCache[int64, string], clock *fakeClock) {
				c.Set(1, "a")
				clock.advance(2 * time.Second)
				_, ok := c.Get(1)
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name: "evict least recently used when over capacity",
			actions: func(t *testing.T, c *LRUCache[int64, string], _ *fakeClock) {
				c.Set(1, "a")
				c.Set(2, "b")
				c.Get(1)
				c.Set(3, "c")

				_, ok := c.Get(2)
				assert.False(t, ok, "expected key 2 to be evicted")
				v, ok := c.Get(1)
				assert.True(t, ok)
				assert.Equal(t, "a", v)
				v, ok = c.Get(3)
				assert.True(t, ok)
				assert.Equal(t, "c", v)
			},
		},
		{
			name: "update value resets TTL",
			actions: func(t *testing.T, c *LRUCache[int64, string], clock *fakeClock) {
				c.Set(1, "a")
				clock.advance(600 * time.Millisecond)
				c.Set(1, "b")
				clock.advance(600 * time.Millisecond)
				v, ok := c.Get(1)
				assert.True(t, ok)
				assert.Equal(t, "b", v)
			},
		},
		{
			name: "cleanup removes expired",
			actions: func(t *testing.T, c *LRUCache[int64, string], clock *fakeClock) {
				c.Set(1, "a")
				clock.advance(500 * time.Millisecond)
				c.Set(2, "b")
				clock.advance(600 * time.Millisecond)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get(2)
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(2, time.Second)
			tt.actions(t, c, clock)
		})
	}
}
