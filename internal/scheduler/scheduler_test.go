package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ArcFarmia_Go/internal/testing/leaktest"
	"github.com/osse101/ArcFarmia_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 100)}
	sched.Schedule(5*time.Millisecond, job)

	time.Sleep(30 * time.Millisecond)
	sched.Stop()
	sched.Stop()
	time.Sleep(10 * time.Millisecond)

	after := job.RunCount.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, job.RunCount.Load(), "no runs after Stop")
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(2, 4)
		pool.Start(context.Background())

		sched := New(pool)
		job := &MockJob{Done: make(chan struct{}, 100)}
		sched.Schedule(5*time.Millisecond, job)
		sched.Schedule(7*time.Millisecond, job)
		time.Sleep(20 * time.Millisecond)

		sched.Stop()
		pool.Stop()
	})
}
