package pool

import "golang.org/x/time/rate"

// Option is a functional option for configuring a ResourcePool.
type Option[T comparable] func(*poolConfig[T])

type poolConfig[T comparable] struct {
	createLimiter *rate.Limiter
	onCreate      func(T, error)
}

// WithCreateRateLimit caps how often the factory may be invoked.
// perSecond specifies the sustained creation rate and burst the number of
// creations that may start back to back. Leases are never blocked by the
// limiter: a throttled creation is simply scheduled for when its
// reservation matures. This is useful when the factory dials an external
// service that rate limits connection setup.
// If not specified, creations start immediately.
//
// Example:
//
//	WithCreateRateLimit[*Conn](10, 2) // 10 creations/sec, burst of 2
func WithCreateRateLimit[T comparable](perSecond float64, burst int) Option[T] {
	return func(cfg *poolConfig[T]) {
		if perSecond > 0 && burst > 0 {
			cfg.createLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithOnCreate registers a hook invoked after every factory completion,
// successful or not, before the lease callback fires. The hook runs on
// whichever goroutine completed the creation and must not block.
func WithOnCreate[T comparable](hook func(res T, err error)) Option[T] {
	return func(cfg *poolConfig[T]) {
		cfg.onCreate = hook
	}
}
