package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	// A failing job does not stop the others.
	assert.Equal(t, int32(2), atomic.LoadInt32(&ran))

	s.RunOnce(context.Background())
	assert.Equal(t, int32(4), atomic.LoadInt32(&ran))
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var once int32
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		if atomic.CompareAndSwapInt32(&once, 0, 1) {
			close(done)
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_JobContextIsBounded(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var hasDeadline int32
	s.AddJob("bounded", time.Hour, func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			atomic.StoreInt32(&hasDeadline, 1)
		}
		close(done)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hasDeadline))
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	s := NewScheduler()

	var runs int32
	s.AddJob("tick", 10*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})

	s.Start()
	time.Sleep(35 * time.Millisecond)
	s.Stop()

	after := atomic.LoadInt32(&runs)
	assert.GreaterOrEqual(t, after, int32(1))

	// No further executions once stopped.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs))
}
