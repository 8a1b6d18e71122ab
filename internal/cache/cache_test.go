package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalCache(t *testing.T) {
	c := NewLocalCache(time.Hour, zap.NewNop())
	defer c.Close()
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, c.Delete(ctx, "k", "missing"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestLocalCache_Expiry(t *testing.T) {
	c := NewLocalCache(time.Hour, nil)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	c.cleanup()
	c.mu.RLock()
	assert.Empty(t, c.data)
	c.mu.RUnlock()
}

func TestLocalCache_CloseTwice(t *testing.T) {
	c := NewLocalCache(time.Hour, nil)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestNew_FallsBackToLocal(t *testing.T) {
	c := New("", zap.NewNop())
	defer c.Close()
	_, ok := c.(*LocalCache)
	assert.True(t, ok)

	c2 := New("not a url", zap.NewNop())
	defer c2.Close()
	_, ok = c2.(*LocalCache)
	assert.True(t, ok)
}

func TestNew_NilLogger(t *testing.T) {
	var c Cache
	assert.NotPanics(t, func() { c = New("not a url", nil) })
	defer c.Close()
	_, ok := c.(*LocalCache)
	assert.True(t, ok)

	_, err := NewRedisCache("not a url", nil)
	assert.Error(t, err)
}
