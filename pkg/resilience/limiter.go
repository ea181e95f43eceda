package resilience

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles outbound calls so a client stays inside the provider's request quota
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter allows requestsPerSecond sustained calls with the given burst.
// A non-positive rate returns nil, which disables limiting.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a call may proceed or ctx is done. A nil Limiter never blocks.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
