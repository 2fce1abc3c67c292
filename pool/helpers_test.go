package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingFactory completes synchronously with a fresh int resource
// (1, 2, 3, ...) and counts how many creations were requested.
func countingFactory(creations *atomic.Int32) Factory[int] {
	return func(_ *ResourcePool[int], done CompleteFunc[int]) {
		done(int(creations.Add(1)), nil)
	}
}

// failingFactory always reports the given creation error.
func failingFactory(err error) Factory[int] {
	return func(_ *ResourcePool[int], done CompleteFunc[int]) {
		done(0, err)
	}
}

// pendingFactory parks completion callbacks so tests can finish or fail
// creations at a chosen point, simulating a factory that completes on a
// later turn of the event loop.
type pendingFactory struct {
	mu    sync.Mutex
	next  int
	queue []CompleteFunc[int]
}

func (pf *pendingFactory) factory(_ *ResourcePool[int], done CompleteFunc[int]) {
	pf.mu.Lock()
	pf.queue = append(pf.queue, done)
	pf.mu.Unlock()
}

func (pf *pendingFactory) pending() int {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	return len(pf.queue)
}

// completeNext finishes the oldest pending creation with a fresh resource.
func (pf *pendingFactory) completeNext(t *testing.T) int {
	t.Helper()
	pf.mu.Lock()
	if len(pf.queue) == 0 {
		pf.mu.Unlock()
		t.Fatal("no pending creation to complete")
	}
	done := pf.queue[0]
	pf.queue = pf.queue[1:]
	pf.next++
	res := pf.next
	pf.mu.Unlock()

	done(res, nil)
	return res
}

// failNext finishes the oldest pending creation with err.
func (pf *pendingFactory) failNext(t *testing.T, err error) {
	t.Helper()
	pf.mu.Lock()
	if len(pf.queue) == 0 {
		pf.mu.Unlock()
		t.Fatal("no pending creation to fail")
	}
	done := pf.queue[0]
	pf.queue = pf.queue[1:]
	pf.mu.Unlock()

	done(0, err)
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
