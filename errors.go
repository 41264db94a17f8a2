package trigger

import "errors"

var (
	// ErrPoolExhausted is returned by a bounded registry when every preallocated slot is in use.
	ErrPoolExhausted = errors.New("registration pool exhausted")
	// ErrNameTooLong is returned by a bounded registry when a trigger name is at or beyond the configured maximum length.
	ErrNameTooLong = errors.New("trigger name too long")
	// ErrOutOfMemory is returned by a heap-allocating registry when [MaxRegistrations] has been reached.
	ErrOutOfMemory = errors.New("registration limit reached")
	// ErrQueueFull is returned by [Registry.Defer] when the deferred ring has no free slot.
	// The caller may retry after a drain, or drop the event.
	ErrQueueFull = errors.New("deferred queue full")
	// ErrDeferredDisabled is returned by [Registry.Defer] when the registry was built without the [Deferred] option.
	ErrDeferredDisabled = errors.New("deferred queue not enabled")
)
