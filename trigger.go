package trigger

import "sync"

var (
	instanceReg  *Registry[any]
	instanceOnce sync.Once
)

// InitInstance configures the package-level registry before first use.
// Returns true if this call configured it, or false if the instance already
// existed, in which case the given options were not applied.
// Panics if any option is invalid, since a misconfigured process-wide registry
// isn't recoverable at this point.
func InitInstance(opts ...Option) bool {
	configured := false
	instanceOnce.Do(func() {
		r, err := New[any](opts...)
		if err != nil {
			panic(err)
		}
		instanceReg = r
		configured = true
	})
	return configured
}

// Instance returns the shared package-level registry, creating it on first use
// with the default heap profile and a deferred ring of [DefaultQueueCapacity].
//
// The shared instance is convenient for process-wide wiring, but an explicit
// [Registry] from [New] composes and tests better.
func Instance() *Registry[any] {
	instanceOnce.Do(func() {
		r, err := New[any](Deferred(DefaultQueueCapacity))
		if err != nil {
			panic(err)
		}
		instanceReg = r
	})
	return instanceReg
}

// Register calls [Registry.Register] on the package-level registry.
func Register(name string, priority uint8, fn Callback[any], ctx any) error {
	return Instance().Register(name, priority, fn, ctx)
}

// RegisterOnce calls [Registry.RegisterOnce] on the package-level registry.
func RegisterOnce(name string, priority uint8, fn Callback[any], ctx any) error {
	return Instance().RegisterOnce(name, priority, fn, ctx)
}

// Unregister calls [Registry.Unregister] on the package-level registry.
func Unregister(name string, fn Callback[any], ctx any) int {
	return Instance().Unregister(name, fn, ctx)
}

// Fire calls [Registry.Fire] on the package-level registry.
func Fire(name string, data any) {
	Instance().Fire(name, data)
}

// Defer calls [Registry.Defer] on the package-level registry.
func Defer(name string, data any) error {
	return Instance().Defer(name, data)
}

// Drain calls [Registry.Drain] on the package-level registry.
func Drain() {
	Instance().Drain()
}

// Close calls [Registry.Close] on the package-level registry.
// The instance remains usable afterward; the next registration reinitializes it.
func Close() {
	Instance().Close()
}
