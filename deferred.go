package trigger

// deferredEvent is one recorded trigger request awaiting a drain.
// The payload is held by value; the caller keeps ownership of anything it points to.
type deferredEvent[T any] struct {
	name string
	data T
}

// Defer records a trigger-name/payload pair to be fired by a later
// [Registry.Drain]. Defer never blocks, never allocates, and never takes the
// registry lock, so it's safe to call where waiting is not an option, such as
// a signal or interrupt handler, even while another goroutine holds the
// registry lock.
//
// Only a single producer is supported: concurrent Defer calls are a data race.
// Returns [ErrQueueFull] when the ring has no free slot, or
// [ErrDeferredDisabled] when the registry was built without [Deferred].
func (r *Registry[T]) Defer(name string, data T) error {
	if r.deferred == nil {
		return ErrDeferredDisabled
	}
	if !r.deferred.Offer(deferredEvent[T]{name: name, data: data}) {
		return ErrQueueFull
	}
	return nil
}

// Drain fires every deferred event in the order it was deferred, then returns.
// Drain must run from a normal execution context; it takes the registry lock
// once per event. Only a single drain caller is supported at a time.
// Draining a registry built without [Deferred] does nothing.
func (r *Registry[T]) Drain() {
	if r.deferred == nil {
		return
	}
	for {
		evt, ok := r.deferred.Poll()
		if !ok {
			return
		}
		r.Fire(evt.name, evt.data)
	}
}
