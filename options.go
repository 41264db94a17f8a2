package trigger

import "fmt"

var (
	// DefaultBucketCount is the initial bucket count of a heap-allocating [Registry].
	// The table doubles whenever live registrations reach 3/4 of the bucket count.
	DefaultBucketCount = 16
	// DefaultQueueCapacity dictates the deferred ring capacity used by the
	// package-level registry when it has not been configured with [InitInstance].
	DefaultQueueCapacity = 16
)

type config struct {
	bounded     bool
	maxNodes    int
	maxBuckets  int
	maxNameLen  int
	maxRegs     int
	unlocked    bool
	deferredCap int
}

// Option configures a [Registry] at construction time.
// Profile options are fixed for the life of the registry; there is no way to
// switch a registry between profiles after [New].
type Option func(*config) error

// Bounded switches the registry to a preallocated slot pool of maxNodes
// registrations, a fixed table of maxBuckets buckets, and trigger names of
// fewer than maxNameLen bytes. Nothing is heap-allocated after initialization.
//
// Registering beyond maxNodes returns [ErrPoolExhausted], and a trigger name of
// maxNameLen bytes or more returns [ErrNameTooLong].
func Bounded(maxNodes, maxBuckets, maxNameLen int) Option {
	return func(c *config) error {
		if maxNodes < 1 {
			return fmt.Errorf("bounded pool size must be >= 1, got %d", maxNodes)
		}
		if maxBuckets < 1 {
			return fmt.Errorf("bounded bucket count must be >= 1, got %d", maxBuckets)
		}
		if maxNameLen < 2 {
			return fmt.Errorf("maximum trigger name length must be >= 2, got %d", maxNameLen)
		}
		c.bounded = true
		c.maxNodes = maxNodes
		c.maxBuckets = maxBuckets
		c.maxNameLen = maxNameLen
		return nil
	}
}

// MaxRegistrations caps the number of live registrations in a heap-allocating
// registry. Registering beyond the cap returns [ErrOutOfMemory].
// A cap of 0 means unlimited, which is the default.
func MaxRegistrations(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("registration cap must be >= 0, got %d", n)
		}
		c.maxRegs = n
		return nil
	}
}

// Unlocked removes the registry's mutex for single-goroutine deployments.
// An unlocked registry must never be used from more than one goroutine.
func Unlocked() Option {
	return func(c *config) error {
		c.unlocked = true
		return nil
	}
}

// Deferred attaches a fixed-capacity deferred ring to the registry, enabling
// [Registry.Defer] and [Registry.Drain]. Deferring beyond capacity returns
// [ErrQueueFull].
func Deferred(capacity int) Option {
	return func(c *config) error {
		if capacity < 1 {
			return fmt.Errorf("deferred queue capacity must be >= 1, got %d", capacity)
		}
		c.deferredCap = capacity
		return nil
	}
}
