package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set("probe:a", []byte("info"), time.Minute))

	data, ok := c.Get("probe:a")
	assert.True(t, ok)
	assert.Equal(t, []byte("info"), data)

	_, ok = c.Get("probe:missing")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &MemoryCache{
		items: make(map[string]item),
		now:   func() time.Time { return now },
	}

	require.NoError(t, c.Set("k", []byte("v"), 5*time.Minute))

	now = now.Add(4 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Empty(t, c.items)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache()
	require.NoError(t, c.Set("a", []byte("1"), time.Minute))
	require.NoError(t, c.Set("b", []byte("2"), time.Minute))

	require.NoError(t, c.Delete("a"))
	_, ok := c.Get("a")
	assert.False(t, ok)

	require.NoError(t, c.Clear())
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestMemoryCache_NoTTLNeverExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &MemoryCache{
		items: make(map[string]item),
		now:   func() time.Time { return now },
	}

	require.NoError(t, c.Set(Key("probe", "https://example/video"), []byte("v"), 0))

	now = now.Add(24 * time.Hour)
	data, ok := c.Get("probe:https://example/video")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}
