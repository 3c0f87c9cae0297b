package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

func TestNewPool(t *testing.T) {
	p1 := NewPool(5)
	if p1.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p1.workers)
	}

	p2 := NewPool(0)
	if p2.workers != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", p2.workers)
	}

	p3 := NewPool(-1)
	if p3.workers != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", p3.workers)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int32
	count := 10

	for i := 0; i < count; i++ {
		path := fmt.Sprintf("doc-%d.md", i)
		pool.Submit(Job{
			Path: path,
			Run: func(ctx context.Context) Result {
				atomic.AddInt32(&executed, 1)
				return Result{Path: path}
			},
		})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if got := atomic.LoadInt32(&executed); got != int32(count) {
		t.Errorf("expected %d executions, got %d", count, got)
	}
}

func TestPool_ErrorsReported(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(Job{
		Path: "good.md",
		Run: func(ctx context.Context) Result {
			return Result{Path: "good.md"}
		},
	})
	pool.Submit(Job{
		Path: "bad.md",
		Run: func(ctx context.Context) Result {
			return Result{Path: "bad.md", Err: errors.New("unreadable")}
		},
	})

	results := pool.Wait()

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			if res.Path != "bad.md" {
				t.Errorf("unexpected failing path %q", res.Path)
			}
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestPool_SubmitAfterStopDropped(t *testing.T) {
	pool := NewPool(1)
	pool.Start()
	pool.Stop()

	pool.Submit(Job{
		Path: "late.md",
		Run: func(ctx context.Context) Result {
			t.Error("job submitted after Stop must not run")
			return Result{}
		},
	})

	results := pool.Wait()
	for _, res := range results {
		if res.Path == "late.md" {
			t.Error("late job should have been dropped")
		}
	}
}
