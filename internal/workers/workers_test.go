// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until ctx is done.
type mockWorker struct {
	runCount atomic.Int64
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(w1, w2, w3)
	ws.Run(ctx)

	cancel()
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic or block on an empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_DoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		NewWorkers(&mockWorker{}).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run blocked on a long-running worker")
	}
}

// fakePurger counts purge calls.
type fakePurger struct {
	calls atomic.Int64
	err   error
}

func (p *fakePurger) PurgeExpiredSessions(_ context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}
