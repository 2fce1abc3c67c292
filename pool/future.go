package pool

import (
	"sync"
	"time"
)

// Future represents the pending outcome of a lease request. It is created
// by LeaseFuture and resolves exactly once; every Get observes the same
// result.
type Future[T comparable] struct {
	result chan leaseResult[T]

	mu   sync.Mutex
	done bool
	res  T
	err  error
}

// LeaseFuture requests a resource and returns a Future for its outcome,
// for callers that want to issue the request now and collect the result
// later.
//
// Example:
//
//	f := p.LeaseFuture()
//	// ... do other work ...
//	conn, err := f.Get()
func (p *ResourcePool[T]) LeaseFuture() *Future[T] {
	f := &Future[T]{result: make(chan leaseResult[T], 1)}
	p.Lease(func(res T, err error) {
		f.result <- leaseResult[T]{res: res, err: err}
	})
	return f
}

// Get blocks until the lease completes and returns its outcome.
func (f *Future[T]) Get() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.done {
		r := <-f.result
		f.res, f.err, f.done = r.res, r.err, true
	}
	return f.res, f.err
}

// GetWithTimeout behaves like Get but gives up after d, returning
// ErrFutureTimeout. The lease is not cancelled; a later Get still works.
func (f *Future[T]) GetWithTimeout(d time.Duration) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return f.res, f.err
	}

	select {
	case r := <-f.result:
		f.res, f.err, f.done = r.res, r.err, true
		return f.res, f.err
	case <-time.After(d):
		var zero T
		return zero, ErrFutureTimeout
	}
}

// IsReady reports whether the lease has completed, without blocking.
func (f *Future[T]) IsReady() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return true
	}

	select {
	case r := <-f.result:
		f.res, f.err, f.done = r.res, r.err, true
		return true
	default:
		return false
	}
}
