// Package pool provides a small, generic, bounded pool for resources that
// are expensive to create and are constructed asynchronously, such as
// network connections.
//
// The primary type is ResourcePool[T], which caps how many resources may
// exist concurrently, parks lease requests in a FIFO queue when the cap is
// reached, and recycles released resources through an idle pool. Actual
// creation is delegated to a user-supplied Factory that reports back
// through a completion callback, so the pool never blocks on creation
// itself.
//
// # Basic Usage
//
//	factory := func(p *pool.ResourcePool[*Conn], done pool.CompleteFunc[*Conn]) {
//	    go func() {
//	        conn, err := dial()
//	        done(conn, err)
//	    }()
//	}
//	p, err := pool.New(4, factory)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p.Lease(func(conn *Conn, err error) {
//	    if err != nil {
//	        // creation failed; the pool's slot was already released
//	        return
//	    }
//	    defer p.Release(conn)
//	    // use conn
//	})
//
// # Slot Accounting
//
// A slot is reserved the moment Lease decides to create, before the
// factory runs. Concurrent leases therefore can never overrun the limit,
// even while creations are in flight. A failed creation releases its slot
// and offers it to the oldest waiter before the failed lease sees the
// error.
//
// # Lifecycle
//
// Release hands the resource straight to the oldest waiter when one
// exists; otherwise it restocks the idle pool, where the most recently
// released resource is re-leased first. Invalidate permanently retires a
// resource and frees its slot; it is idempotent and routes the oldest
// waiter through the normal creation path.
//
// # Blocking Callers
//
// Callback style is the native surface, mirroring the asynchronous
// factory. Acquire adapts it for blocking callers:
//
//	conn, err := p.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer p.Release(conn)
//
// and LeaseFuture for request-now-collect-later callers:
//
//	f := p.LeaseFuture()
//	conn, err := f.Get()
//
// # Configuration Options
//
//   - WithCreateRateLimit(perSecond, burst): Throttle factory invocations
//   - WithOnCreate(hook): Observe every factory completion
//
// The pool performs no health checking, idle eviction or lease
// cancellation; a parked lease stays parked until a slot frees.
package pool
