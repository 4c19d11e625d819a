package orchestrator_test

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

func TestRun_WaitsPollIntervalBetweenIterations(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(f.cfg, nil).AnyTimes()
		f.provider.EXPECT().Open(f.cfg).Return(f.vc, nil).AnyTimes()
		f.expectCleanup(true)

		var updates atomic.Int32
		f.vc.EXPECT().Update(gomock.Any()).DoAndReturn(func(context.Context) (int, int, error) {
			updates.Add(1)
			return 100, 100, nil
		}).AnyTimes()
		f.vc.EXPECT().Revision(gomock.Any()).Return(100, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- f.o.Run(ctx, configPath) }()

		synctest.Wait()
		assert.Equal(t, int32(1), updates.Load())

		time.Sleep(29 * time.Second)
		synctest.Wait()
		assert.Equal(t, int32(1), updates.Load())

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, int32(2), updates.Load())

		cancel()
		require.NoError(t, <-done)
	})
}

func TestRun_WakeEndsWaitEarly(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(f.cfg, nil).AnyTimes()
		f.provider.EXPECT().Open(f.cfg).Return(f.vc, nil).AnyTimes()
		f.expectCleanup(true)

		var updates atomic.Int32
		f.vc.EXPECT().Update(gomock.Any()).DoAndReturn(func(context.Context) (int, int, error) {
			updates.Add(1)
			return 7, 7, nil
		}).AnyTimes()
		f.vc.EXPECT().Revision(gomock.Any()).Return(7, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- f.o.Run(ctx, configPath) }()

		synctest.Wait()
		start := time.Now()
		f.o.Wake()
		synctest.Wait()

		assert.Equal(t, int32(2), updates.Load())
		assert.Zero(t, time.Since(start))

		cancel()
		require.NoError(t, <-done)
	})
}

func TestRun_RetriesMissingConfigAfterBackoff(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		var loads atomic.Int32
		f.loader.EXPECT().Load(configPath).DoAndReturn(func(string) (domain.Config, error) {
			loads.Add(1)
			return domain.Config{}, domain.ErrConfigNotFound
		}).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- f.o.Run(ctx, configPath) }()

		synctest.Wait()
		assert.Equal(t, int32(1), loads.Load())

		time.Sleep(9 * time.Second)
		synctest.Wait()
		assert.Equal(t, int32(1), loads.Load())

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, int32(2), loads.Load())

		cancel()
		require.NoError(t, <-done)
	})
}

func TestRun_IterationErrorWaitsPollInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(f.cfg, nil).AnyTimes()
		f.provider.EXPECT().Open(f.cfg).Return(f.vc, nil).AnyTimes()
		f.expectCleanup(true)

		var updates atomic.Int32
		f.vc.EXPECT().Update(gomock.Any()).DoAndReturn(func(context.Context) (int, int, error) {
			updates.Add(1)
			return 0, 0, domain.ErrVcsUpdateFailed
		}).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- f.o.Run(ctx, configPath) }()

		synctest.Wait()
		assert.Equal(t, int32(1), updates.Load())

		time.Sleep(30 * time.Second)
		synctest.Wait()
		assert.Equal(t, int32(2), updates.Load())

		cancel()
		require.NoError(t, <-done)
		assert.NotEmpty(t, f.errs)
	})
}

func TestRunIteration_CleanupRetries(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.cfg.VCS.CleanupRetries = 2
		f.expectOpen()
		f.expectCleanup(false, false, true)
		f.expectSync(10, 10)

		start := time.Now()
		result, err := f.o.RunIteration(context.Background(), configPath)
		require.NoError(t, err)

		assert.Equal(t, orchestrator.ResultInitialized, result)
		assert.Equal(t, 10*time.Second, time.Since(start))
	})
}

func TestRunIteration_CleanupDueAfterTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.initAt(t, 100)

		time.Sleep(time.Hour)

		f.expectOpen()
		f.expectCleanup(true)
		f.expectSync(100, 100)

		_, err := f.o.RunIteration(context.Background(), configPath)
		require.NoError(t, err)
	})
}
