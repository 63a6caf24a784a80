// Package rate implementa rate limiting por fixed window.
// Backends: Redis (multi-instancia) y memoria (single-node / dev).
package rate

import (
	"context"
	"time"
)

type Result struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	CurrentHits int64
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
