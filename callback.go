package trigger

// Signal is returned by a [Callback] to direct the rest of the dispatch walk.
type Signal int

const (
	// Continue lets the remaining callbacks for the fire run normally.
	Continue Signal = iota
	// Stop halts the dispatch walk; no later callback runs during this fire.
	Stop
)

// Callback is invoked when a trigger it was registered against fires.
//
// ctx is the opaque value supplied at registration time, and data is the payload
// supplied by the caller of [Registry.Fire]. The registry never copies, mutates,
// or retains either beyond the registration's lifetime.
//
// A Callback must not call back into Register, Unregister, or Fire on the same
// registry: the registry lock is held for the duration of the walk and is not
// reentrant.
type Callback[T any] func(ctx any, data T) Signal
