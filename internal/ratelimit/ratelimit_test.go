package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_WaitUnlimited(t *testing.T) {
	for _, perSecond := range []float64{0, -1} {
		limiter := New(perSecond)

		for range 10 {
			require.NoError(t, limiter.Wait(context.Background()))
		}
	}
}

func TestLimiter_FirstWaitPasses(t *testing.T) {
	limiter := New(1.0 / 3600)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx))
}

func TestLimiter_WaitHonoursContext(t *testing.T) {
	limiter := New(1.0 / 3600)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.Error(t, limiter.Wait(ctx))
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := New(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, limiter.Wait(ctx), context.Canceled)
}
