// Package retry provides a fixed-delay retry policy for transient failures.
package retry

import (
	"context"
	"time"
)

// Policy waits Interval between attempts and retries at most MaxRetries times
// after the first failure.
type Policy struct {
	Interval   time.Duration
	MaxRetries int
}

// Fixed returns a policy that always waits d and retries maxRetries times.
// A negative maxRetries means no retries.
func Fixed(d time.Duration, maxRetries int) Policy {
	return Policy{Interval: max(d, 0), MaxRetries: max(maxRetries, 0)}
}

// Delay returns the wait before the given retry (1-based); zero before the first attempt.
func (p Policy) Delay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	return p.Interval
}

// Sleep waits d or until ctx is done. It reports whether the full delay elapsed.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Until calls attempt until it reports success, the retries are exhausted or ctx is done.
// It reports whether an attempt succeeded.
func (p Policy) Until(ctx context.Context, attempt func() bool) bool {
	for n := 0; ; n++ {
		if attempt() {
			return true
		}
		if n >= p.MaxRetries {
			return false
		}
		if !Sleep(ctx, p.Delay(n+1)) {
			return false
		}
	}
}
