package drive

import (
	"context"

	"golang.org/x/time/rate"
)

// Conservative defaults, well below Google's 10 req/sec/user quota.
const (
	requestsPerSecond = 8.0
	burstSize         = 10
)

// RateLimiter paces Drive API requests with a token bucket so a large
// listing or sync pass cannot trip the API quota.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter with the default Drive limits.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// Wait blocks until a request may proceed or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
