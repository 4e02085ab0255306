package grpcutil

import "golang.org/x/time/rate"

// Limiter adapts a token bucket to the go-grpc-middleware ratelimit
// interceptor.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter allows limit requests per second with the given burst.
func NewLimiter(limit int, burst int) *Limiter {
	return &Limiter{rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the request must be rejected.
func (l *Limiter) Limit() bool {
	return !l.l.Allow()
}
