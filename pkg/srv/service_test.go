package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TaskFinishes(t *testing.T) {
	var order []string
	services := []Service{
		NewCleanup(func() error { order = append(order, "db"); return nil }),
		NewCleanup(func() error { order = append(order, "console"); return nil }),
		NewTask(func(ctx context.Context) error { return nil }),
	}

	require.NoError(t, Run(context.Background(), services))
	assert.Equal(t, []string{"console", "db"}, order)
}

func TestRun_TaskError(t *testing.T) {
	boom := errors.New("boom")
	closed := false
	services := []Service{
		NewCleanup(func() error { closed = true; return nil }),
		NewTask(func(ctx context.Context) error { return boom }),
	}

	err := Run(context.Background(), services)
	require.ErrorIs(t, err, boom)
	assert.True(t, closed)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	closed := false
	services := []Service{
		NewCleanup(func() error { closed = true; return nil }),
		NewTask(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		}),
	}

	go func() {
		<-started
		cancel()
	}()

	require.NoError(t, Run(ctx, services))
	assert.True(t, closed)
}

func TestShutdownServices_ContinuesAfterError(t *testing.T) {
	var calls int
	services := []Service{
		NewCleanup(func() error { calls++; return nil }),
		NewCleanup(func() error { calls++; return errors.New("fail") }),
	}

	ShutdownServices(context.Background(), services)
	assert.Equal(t, 2, calls)
}

func TestRun_WaitsForTaskBeforeCleanup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}

	services := []Service{
		NewCleanup(func() error { record("db closed"); return nil }),
		NewTask(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			// a handler still finishing its last query
			time.Sleep(50 * time.Millisecond)
			record("task returned")
			return nil
		}),
	}

	go func() {
		<-started
		cancel()
	}()

	require.NoError(t, Run(ctx, services))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"task returned", "db closed"}, order)
}

func TestRun_StopGraceBoundsWait(t *testing.T) {
	grace := StopGrace
	StopGrace = 20 * time.Millisecond
	t.Cleanup(func() { StopGrace = grace })

	ctx, cancel := context.WithCancel(context.Background())
	stuck := make(chan struct{})
	t.Cleanup(func() { close(stuck) })

	closed := make(chan struct{})
	services := []Service{
		NewCleanup(func() error { close(closed); return nil }),
		NewTask(func(ctx context.Context) error {
			<-stuck
			return nil
		}),
	}

	cancel()
	start := time.Now()
	require.NoError(t, Run(ctx, services))

	assert.Less(t, time.Since(start), time.Second)
	select {
	case <-closed:
	default:
		t.Fatal("cleanup did not run")
	}
}
