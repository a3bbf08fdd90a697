package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	t.Cleanup(cancel)
	return ctx
}

func TestWaitPerKey(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	require.NoError(t, l.Wait(shortContext(t), "posts"))
	require.NoError(t, l.Wait(shortContext(t), "posts"))
	assert.Error(t, l.Wait(shortContext(t), "posts"), "burst spent, next token is an hour away")

	assert.NoError(t, l.Wait(shortContext(t), "attachments"))
}

func TestPerSecondUnlimited(t *testing.T) {
	l := PerSecond(0)
	ctx := shortContext(t)
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Wait(ctx, "posts"))
	}
}

func TestWaitHonoursContext(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)
	require.NoError(t, l.Wait(shortContext(t), "posts"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx, "posts"))
}
