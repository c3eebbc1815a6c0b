package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora.io/planora/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestPools(t *testing.T) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestSubmitRunsTask(t *testing.T) {
	pools := newTestPools(t)

	var wg sync.WaitGroup
	wg.Add(1)
	var ran atomic.Bool

	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		ran.Store(true)
	})
	require.NoError(t, err)

	wg.Wait()
	assert.True(t, ran.Load())
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run with a cancelled context")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmitDetachedSurvivesCallerContext(t *testing.T) {
	pools := newTestPools(t)

	done := make(chan struct{})
	err := pools.SubmitDetached("outbound", func(ctx context.Context) {
		// The task context is the service context, not a request one.
		select {
		case <-ctx.Done():
			t.Error("service context cancelled unexpectedly")
		default:
		}
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("detached task never ran")
	}
}

func TestPanicInTaskIsRecovered(t *testing.T) {
	pools := newTestPools(t)

	var wg sync.WaitGroup
	wg.Add(2)

	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		panic("boom")
	})
	require.NoError(t, err)

	// The pool keeps serving after a panic.
	err = pools.General.Submit(context.Background(), func(ctx context.Context) {
		defer wg.Done()
	})
	require.NoError(t, err)
	wg.Wait()
}

func TestMetricsShape(t *testing.T) {
	pools := newTestPools(t)

	m := pools.Metrics()
	require.Contains(t, m, "general")
	require.Contains(t, m, "outbound")
}
