package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait(t *testing.T) {
	limiter := New("test", 100)
	require.NoError(t, limiter.Wait(context.Background()))
	assert.Equal(t, "test", limiter.Name())
}

func TestWaitCancelled(t *testing.T) {
	limiter := New("test", 1)
	// Drain the initial burst so the next Wait would block.
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait for test")
}

func TestAllow(t *testing.T) {
	limiter := New("test", 1)
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow(), "burst of one should be spent")
}
