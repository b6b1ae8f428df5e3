// Package limiter rate-limits household login attempts.
package limiter

import (
	"context"
	"time"
)

// Limiter tracks failed logins per (username, ip) and enforces temporary
// lockouts.
type Limiter interface {
	// Allow reports whether a login attempt may proceed, with a retry-after
	// duration when it may not.
	Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, username string, ipHash []byte) error
	// Failure records a failed attempt and reports whether it triggered a block.
	Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
}
