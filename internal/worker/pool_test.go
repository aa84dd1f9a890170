package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})

	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed), "a failing job does not stop the worker")
}

func TestPool_TryEnqueueWhenFull(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)

	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}), "queue of one is full until a worker starts")

	pool.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 }, time.Second, 5*time.Millisecond)
	pool.Stop()
}

func TestPool_EnqueueAfterStopDoesNotBlock(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)
	pool.Start(context.Background())
	pool.Stop()

	done := make(chan struct{})
	go func() {
		pool.Enqueue(&testJob{executed: &executed})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked after Stop")
	}
}
