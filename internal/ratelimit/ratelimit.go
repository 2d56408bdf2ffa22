package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles writes to slow or wear-sensitive storage.
type Limiter struct {
	limiter *rate.Limiter
}

// New allows perSecond operations per second with a burst of one. Zero or a
// negative value disables throttling.
func New(perSecond float64) *Limiter {
	if perSecond <= 0 {
		return &Limiter{
			limiter: rate.NewLimiter(rate.Inf, 1),
		}
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Wait blocks until the next operation is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
