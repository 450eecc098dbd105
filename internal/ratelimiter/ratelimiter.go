package ratelimiter

import (
	"context"
	"time"
)

// Limiter decides whether a client (keyed by IP) may make another request.
// When it may not, the duration tells the client how long to back off.
type Limiter interface {
	Allow(ctx context.Context, ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
