package retry_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/revwatch/internal/retry"
)

func TestFixed(t *testing.T) {
	p := retry.Fixed(100*time.Millisecond, 3)
	assert.Equal(t, retry.Policy{Interval: 100 * time.Millisecond, MaxRetries: 3}, p)
	for n := 1; n <= 4; n++ {
		assert.Equal(t, 100*time.Millisecond, p.Delay(n), "retry %d", n)
	}
	assert.Zero(t, p.Delay(0))
	assert.Zero(t, p.Delay(-1))

	assert.Equal(t, retry.Policy{}, retry.Fixed(-time.Second, -2))
}

func TestPolicy_Until(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := retry.Fixed(10*time.Second, 2)
		calls := 0
		start := time.Now()

		ok := p.Until(context.Background(), func() bool {
			calls++
			return calls == 3
		})

		assert.True(t, ok)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 20*time.Second, time.Since(start))
	})
}

func TestPolicy_UntilExhausted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := retry.Fixed(time.Second, 1)
		calls := 0

		ok := p.Until(context.Background(), func() bool {
			calls++
			return false
		})

		assert.False(t, ok)
		assert.Equal(t, 2, calls)
	})
}

func TestPolicy_UntilNoRetries(t *testing.T) {
	calls := 0
	ok := retry.Fixed(time.Second, 0).Until(context.Background(), func() bool {
		calls++
		return false
	})
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestSleep_Cancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(time.Second)
			cancel()
		}()

		assert.False(t, retry.Sleep(ctx, time.Hour))
	})
}
