package pool

import "errors"

var (
	// ErrNilFactory is returned by New when no factory is supplied.
	ErrNilFactory = errors.New("pool: factory must not be nil")

	// ErrInvalidLimit is returned by New when the slot limit is not a
	// positive integer. The pool has no "unlimited" mode: a finite limit
	// must always be chosen explicitly.
	ErrInvalidLimit = errors.New("pool: limit must be positive")

	// ErrFutureTimeout is returned by Future.GetWithTimeout when the lease
	// does not complete within the given duration. The lease itself stays
	// queued; a later Get can still observe its outcome.
	ErrFutureTimeout = errors.New("pool: timed out waiting for lease result")
)

// Factory asynchronously constructs one resource on behalf of the pool.
// It must invoke done exactly once, either with a newly created resource
// and a nil error, or with the zero value and a non-nil error describing
// the failure. It must not panic past the pool. Completion may happen
// synchronously inside the Factory call or from another goroutine at any
// later point; the pool never blocks waiting for it.
//
// Type parameters:
//   - T: The resource type managed by the pool
type Factory[T comparable] func(p *ResourcePool[T], done CompleteFunc[T])

// CompleteFunc is the completion callback handed to a Factory.
type CompleteFunc[T comparable] func(res T, err error)

// LeaseFunc receives the outcome of a lease request: a resource and a nil
// error on success, or the zero value and the factory's error verbatim when
// creation failed. It may be invoked synchronously from inside Lease.
type LeaseFunc[T comparable] func(res T, err error)

// Stats is a point-in-time snapshot of the pool's bookkeeping. State can
// change immediately after the snapshot is taken, so it is useful for
// monitoring and tests rather than for making allocation decisions.
//
// Fields:
//   - Allocated: Slots consumed by live resources plus creations in flight
//   - Idle: Resources released and waiting to be re-leased
//   - Waiting: Lease requests parked until a slot or resource frees
//   - Live: Resources created and not yet invalidated
type Stats struct {
	Allocated int
	Idle      int
	Waiting   int
	Live      int
}
