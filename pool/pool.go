package pool

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ResourcePool gates how many instances of an expensive, asynchronously
// created resource may exist at once. Requests beyond the limit are parked
// in a FIFO queue and serviced as resources are released or invalidated.
//
// All mutable state lives behind a single mutex so that slot reservation,
// queue operations and registry updates are atomic as a group. User
// callbacks and the factory are always invoked with the lock released,
// which makes it safe for them to re-enter the pool.
//
// Type parameters:
//   - T: The resource type; it only needs stable identity (comparable)
type ResourcePool[T comparable] struct {
	factory Factory[T]
	limit   int

	createLimiter *rate.Limiter
	onCreate      func(T, error)

	mu        sync.Mutex
	allocated int
	idle      []T
	waiters   []LeaseFunc[T]
	live      map[T]struct{}
}

// New creates a pool that allows up to limit resources to be allocated
// concurrently, delegating creation to factory.
//
// Parameters:
//   - limit: Maximum number of simultaneously allocated resources; must be
//     positive. There is no unlimited sentinel.
//   - factory: Asynchronous constructor obeying the Factory contract
//   - opts: Optional configuration (creation rate limit, hooks)
//
// Returns:
//   - *ResourcePool: The configured pool
//   - error: ErrInvalidLimit or ErrNilFactory on bad configuration
//
// Example:
//
//	p, err := pool.New(4, dialFactory)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Lease(func(conn *Conn, err error) { ... })
func New[T comparable](limit int, factory Factory[T], opts ...Option[T]) (*ResourcePool[T], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	cfg := &poolConfig[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &ResourcePool[T]{
		factory:       factory,
		limit:         limit,
		createLimiter: cfg.createLimiter,
		onCreate:      cfg.onCreate,
		live:          make(map[T]struct{}),
	}, nil
}

// Lease requests a resource and delivers it through fn.
//
// The most recently released idle resource is handed over synchronously when
// one exists. Otherwise, if a slot is free, the slot is reserved immediately
// (before the factory runs, so concurrent Lease calls can never overrun the
// limit) and the factory is invoked; fn fires once creation completes, with
// either the resource or the factory's error verbatim. When the pool is
// saturated, fn is queued and serviced in strict FIFO order as slots free.
//
// fn is invoked exactly once per Lease call. A queued fn has no timeout and
// cannot be cancelled; it stays parked until a slot or resource frees.
func (p *ResourcePool[T]) Lease(fn LeaseFunc[T]) {
	p.mu.Lock()
	if n := len(p.idle); n > 0 {
		res := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		fn(res, nil)
		return
	}

	if p.allocated < p.limit {
		p.allocated++ // reserve the slot before creation completes
		p.mu.Unlock()
		p.create(fn)
		return
	}

	p.waiters = append(p.waiters, fn)
	p.mu.Unlock()
}

// Release returns a leased resource to the pool.
//
// The oldest waiter, if any, receives the resource directly: its slot stays
// allocated and ownership transfers without consulting the factory. With no
// waiters the resource is restocked into the idle pool for future leases.
// Releasing a resource the pool does not track, or one that is already
// idle, is a benign no-op.
func (p *ResourcePool[T]) Release(res T) {
	p.mu.Lock()
	if _, tracked := p.live[res]; !tracked {
		p.mu.Unlock()
		return
	}

	if len(p.waiters) > 0 {
		fn := p.waiters[0]
		p.waiters = p.waiters[1:]
		p.mu.Unlock()
		fn(res, nil)
		return
	}

	if p.idleIndex(res) < 0 {
		p.idle = append(p.idle, res)
	}
	p.mu.Unlock()
}

// Invalidate permanently discards a resource, freeing its slot.
//
// The freed slot is immediately offered to the oldest waiter, which is
// routed through the normal creation path (so the allocated count is
// unchanged when a waiter exists). Invalidating a resource the pool does
// not track is a no-op, which makes the call idempotent.
func (p *ResourcePool[T]) Invalidate(res T) {
	p.mu.Lock()
	if _, tracked := p.live[res]; !tracked {
		p.mu.Unlock()
		return
	}

	delete(p.live, res)
	if i := p.idleIndex(res); i >= 0 {
		p.idle = append(p.idle[:i], p.idle[i+1:]...)
	}
	p.allocated--

	next, ok := p.claimSlotForWaiter()
	p.mu.Unlock()

	if ok {
		p.create(next)
	}
}

// HasWaiters reports whether any lease requests are parked.
func (p *ResourcePool[T]) HasWaiters() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.waiters) > 0
}

// HasAvailable reports whether any idle resources are ready for reuse.
func (p *ResourcePool[T]) HasAvailable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle) > 0
}

// Stats returns a snapshot of the pool's current bookkeeping.
func (p *ResourcePool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Allocated: p.allocated,
		Idle:      len(p.idle),
		Waiting:   len(p.waiters),
		Live:      len(p.live),
	}
}

// create runs the factory for a lease whose slot is already reserved,
// honoring the creation rate limit without blocking the caller.
func (p *ResourcePool[T]) create(fn LeaseFunc[T]) {
	done := func(res T, err error) {
		p.created(fn, res, err)
	}

	if p.createLimiter != nil {
		if d := p.createLimiter.Reserve().Delay(); d > 0 {
			time.AfterFunc(d, func() {
				p.factory(p, done)
			})
			return
		}
	}
	p.factory(p, done)
}

// created is the completion handshake with the factory.
func (p *ResourcePool[T]) created(fn LeaseFunc[T], res T, err error) {
	if p.onCreate != nil {
		p.onCreate(res, err)
	}

	if err != nil {
		p.mu.Lock()
		p.allocated-- // the reserved slot was never consumed
		next, ok := p.claimSlotForWaiter()
		p.mu.Unlock()

		// The freed slot goes to the oldest waiter before the failed
		// lease hears about the error.
		if ok {
			p.create(next)
		}

		var zero T
		fn(zero, err)
		return
	}

	p.mu.Lock()
	p.live[res] = struct{}{}
	p.mu.Unlock()
	fn(res, nil)
}

// claimSlotForWaiter dequeues the oldest waiter and reserves the free slot
// for it in one step. Whenever waiters exist the idle pool is empty, so
// this is equivalent to re-running Lease on the waiter's behalf, without
// the window in which an unrelated Lease could steal the slot.
// Caller must hold p.mu.
func (p *ResourcePool[T]) claimSlotForWaiter() (LeaseFunc[T], bool) {
	if len(p.waiters) == 0 || p.allocated >= p.limit {
		return nil, false
	}
	fn := p.waiters[0]
	p.waiters = p.waiters[1:]
	p.allocated++
	return fn, true
}

// idleIndex returns the position of res in the idle stack, or -1.
// Caller must hold p.mu.
func (p *ResourcePool[T]) idleIndex(res T) int {
	for i, r := range p.idle {
		if r == res {
			return i
		}
	}
	return -1
}
