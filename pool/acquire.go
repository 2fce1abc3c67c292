package pool

import "context"

// leaseResult carries a completed lease outcome over a channel.
type leaseResult[T comparable] struct {
	res T
	err error
}

// Acquire leases a resource, blocking until one is delivered or ctx is
// done. It is the channel-based counterpart of Lease for callers that are
// not written in callback style.
//
// Cancellation abandons the wait, not the lease itself: the underlying
// request keeps its place in the queue, and if a resource is eventually
// delivered to it, that resource is released straight back to the pool.
//
// Parameters:
//   - ctx: Context bounding the wait
//
// Returns:
//   - T: The leased resource (zero value on error)
//   - error: The factory's creation error, or ctx.Err() if the wait was
//     abandoned
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	conn, err := p.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer p.Release(conn)
func (p *ResourcePool[T]) Acquire(ctx context.Context) (T, error) {
	ch := make(chan leaseResult[T], 1)
	p.Lease(func(res T, err error) {
		ch <- leaseResult[T]{res: res, err: err}
	})

	select {
	case r := <-ch:
		return r.res, r.err
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.err == nil {
				p.Release(r.res)
			}
		}()
		var zero T
		return zero, ctx.Err()
	}
}
