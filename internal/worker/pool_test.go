package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cs2-crosshair/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
	done     chan struct{}
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.done != nil {
		j.done <- struct{}{}
	}
	return j.err
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	timeout := time.After(time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-timeout:
			t.Fatalf("timed out after %d of %d jobs", i, n)
		}
	}
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed, done: make(chan struct{}, 2)}
	require.True(t, pool.Enqueue(job))
	require.True(t, pool.Enqueue(job))
	waitFor(t, job.done, 2)

	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
	checker.Check(0)
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	var executed int32
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed, err: errors.New("boom"), done: make(chan struct{}, 2)}
	pool.Enqueue(job)
	pool.Enqueue(job)
	waitFor(t, job.done, 2)

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	blocker := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	<-blocker.started

	var executed int32
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}), "fills the queue")
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "queue is full")
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPool(1, 1)
	pool.Start()

	blocker := &blockingJob{started: make(chan struct{})}
	pool.Enqueue(blocker)
	<-blocker.started

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the running job")
	}

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "stopped pool rejects jobs")
	pool.Stop()
	checker.Check(0)
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1).WithJobTimeout(20 * time.Millisecond)
	pool.Start()
	defer pool.Stop()

	blocker := &blockingJob{started: make(chan struct{})}
	pool.Enqueue(blocker)
	<-blocker.started

	// The worker frees up once the job deadline passes.
	var executed int32
	next := &testJob{executed: &executed, done: make(chan struct{}, 1)}
	require.True(t, pool.Enqueue(next))
	waitFor(t, next.done, 1)
}
