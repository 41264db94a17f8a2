package trigger

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/saylorsolutions/trigger/ring"
)

// Registry dispatches fired triggers to registered callbacks.
//
// Registrations live in a chained hash table keyed by trigger name. Within a
// chain, registrations for the same trigger stay in non-increasing priority
// order, and equal priorities keep registration order.
//
// A Registry starts uninitialized. The first call to [Registry.Register] or
// [Registry.RegisterOnce] initializes it implicitly, or [Registry.Init] may be
// called up front. [Registry.Close] releases every registration and returns
// the registry to the uninitialized state; it may be initialized again
// afterward.
//
// All methods except [Registry.Defer] serialize through one non-reentrant
// mutex unless the registry was built with [Unlocked].
type Registry[T any] struct {
	mu       sync.Locker
	conf     config
	store    nodeStore[T]
	buckets  []*node[T]
	count    int
	deferred *ring.Buffer[deferredEvent[T]]
}

// New creates a [Registry] in the uninitialized state.
// An error is returned if any option is invalid, or if [Bounded] and
// [MaxRegistrations] are combined.
func New[T any](opts ...Option) (*Registry[T], error) {
	var conf config
	for _, opt := range opts {
		if err := opt(&conf); err != nil {
			return nil, err
		}
	}
	if conf.bounded && conf.maxRegs > 0 {
		return nil, errors.New("MaxRegistrations does not apply to a bounded registry, the pool size is already the cap")
	}
	r := &Registry[T]{conf: conf}
	if conf.unlocked {
		r.mu = noopLocker{}
	} else {
		r.mu = new(sync.Mutex)
	}
	if conf.deferredCap > 0 {
		r.deferred = ring.New[deferredEvent[T]](conf.deferredCap)
	}
	return r, nil
}

// Init sets up the bucket table and, in the bounded profile, the slot pool.
// Calling Init on an initialized registry does nothing. Init is optional,
// since registering implies it.
func (r *Registry[T]) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initLocked()
}

func (r *Registry[T]) initLocked() {
	if r.buckets != nil {
		return
	}
	if r.conf.bounded {
		r.buckets = make([]*node[T], r.conf.maxBuckets)
		r.store = newBoundedStore[T](r.conf.maxNodes, r.conf.maxNameLen)
	} else {
		n := DefaultBucketCount
		if n < 1 {
			n = 1
		}
		r.buckets = make([]*node[T], n)
		r.store = newDynamicStore[T](r.conf.maxRegs)
	}
	r.count = 0
}

// Close releases every registration without invoking any callback and returns
// the registry to the uninitialized state. Buffered deferred events are
// discarded. Closing an uninitialized registry does nothing.
func (r *Registry[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buckets == nil {
		return
	}
	for i, n := range r.buckets {
		for n != nil {
			next := n.next
			r.store.release(n)
			n = next
		}
		r.buckets[i] = nil
	}
	r.buckets = nil
	r.store = nil
	r.count = 0
	if r.deferred != nil {
		r.deferred.Reset()
	}
}

// Register binds fn to the named trigger. Higher priority callbacks fire
// earlier; among equal priorities, earlier registrations fire first. ctx is
// handed back to fn on every invocation and is never touched by the registry.
//
// The registration stays until removed by [Registry.Unregister] or
// [Registry.Close].
func (r *Registry[T]) Register(name string, priority uint8, fn Callback[T], ctx any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(name, priority, fn, ctx, false)
}

// RegisterOnce is [Registry.Register] for a callback that is removed
// immediately after its first invocation, regardless of the [Signal] it
// returns.
func (r *Registry[T]) RegisterOnce(name string, priority uint8, fn Callback[T], ctx any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(name, priority, fn, ctx, true)
}

func (r *Registry[T]) register(name string, priority uint8, fn Callback[T], ctx any, once bool) error {
	if name == "" {
		return errors.New("empty trigger name")
	}
	if fn == nil {
		return fmt.Errorf("nil callback for trigger %q", name)
	}
	r.initLocked()
	if !r.conf.bounded && r.count*4 >= len(r.buckets)*3 {
		r.grow(len(r.buckets) * 2)
	}
	n, err := r.store.acquire(name)
	if err != nil {
		return err
	}
	n.priority = priority
	n.once = once
	n.fn = fn
	n.ctx = ctx

	// Insert after every same-trigger node of priority >= the new one, and
	// before the first with lower priority. Nodes for other names that share
	// the bucket are skipped over in place.
	cur := &r.buckets[hashName(name)%uint32(len(r.buckets))]
	for *cur != nil {
		if (*cur).name == name && (*cur).priority < priority {
			break
		}
		cur = &(*cur).next
	}
	n.next = *cur
	*cur = n
	r.count++
	return nil
}

// grow doubles the bucket table and rehashes every chain, preserving the
// relative order of nodes that land in the same new bucket.
func (r *Registry[T]) grow(newSize int) {
	newBuckets := make([]*node[T], newSize)
	tails := make([]*node[T], newSize)
	for _, head := range r.buckets {
		for n := head; n != nil; {
			next := n.next
			idx := hashName(n.name) % uint32(newSize)
			n.next = nil
			if tails[idx] == nil {
				newBuckets[idx] = n
			} else {
				tails[idx].next = n
			}
			tails[idx] = n
			n = next
		}
	}
	r.buckets = newBuckets
}

// Unregister removes every registration matching all the given criteria and
// returns how many were removed.
//
// Each criterion is a wildcard when it's the zero value: an empty name matches
// every trigger, a nil fn matches every callback, and a nil ctx matches every
// context. Unregister("", nil, nil) removes everything.
//
// Callbacks are matched by function identity; note that closures produced by
// the same function literal are indistinguishable from one another. Context
// values are matched with ==, so a ctx of an uncomparable type never matches.
func (r *Registry[T]) Unregister(name string, fn Callback[T], ctx any) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buckets == nil {
		return 0
	}
	var fnp uintptr
	if fn != nil {
		fnp = reflect.ValueOf(fn).Pointer()
	}
	if name != "" {
		return r.unregisterBucket(int(hashName(name)%uint32(len(r.buckets))), name, fnp, ctx)
	}
	removed := 0
	for i := range r.buckets {
		removed += r.unregisterBucket(i, "", fnp, ctx)
	}
	return removed
}

func (r *Registry[T]) unregisterBucket(idx int, name string, fnp uintptr, ctx any) int {
	removed := 0
	cur := &r.buckets[idx]
	for *cur != nil {
		n := *cur
		if (name == "" || n.name == name) &&
			(fnp == 0 || reflect.ValueOf(n.fn).Pointer() == fnp) &&
			ctxMatches(ctx, n.ctx) {
			*cur = n.next
			r.store.release(n)
			r.count--
			removed++
			continue
		}
		cur = &(*cur).next
	}
	return removed
}

func ctxMatches(want, have any) bool {
	if want == nil {
		return true
	}
	t := reflect.TypeOf(have)
	if t == nil || !t.Comparable() {
		return false
	}
	return have == want
}

// Fire invokes every callback registered for the named trigger, in priority
// order, passing each one its registration ctx and data. Fire returns when the
// chain is exhausted or a callback returns [Stop]. Firing a name with no
// registrations, or firing an uninitialized registry, does nothing.
//
// Fire holds the registry lock for the duration of every callback, so a
// callback must not call back into the same registry.
func (r *Registry[T]) Fire(name string, data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fire(name, data)
}

func (r *Registry[T]) fire(name string, data T) {
	if r.buckets == nil {
		return
	}
	cur := &r.buckets[hashName(name)%uint32(len(r.buckets))]
	for *cur != nil {
		n := *cur
		if n.name != name {
			cur = &(*cur).next
			continue
		}
		sig := n.fn(n.ctx, data)
		if n.once {
			*cur = n.next
			r.store.release(n)
			r.count--
			if sig == Stop {
				return
			}
			continue
		}
		if sig == Stop {
			// Stop ends the whole chain walk, so a later registration for a
			// different name that hash-collides into this bucket will not
			// fire during this call.
			return
		}
		cur = &(*cur).next
	}
}

// Count returns the number of live registrations.
func (r *Registry[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Has returns true if at least one registration exists for the named trigger.
func (r *Registry[T]) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buckets == nil {
		return false
	}
	for n := r.buckets[hashName(name)%uint32(len(r.buckets))]; n != nil; n = n.next {
		if n.name == name {
			return true
		}
	}
	return false
}

// Triggers returns the sorted set of trigger names with at least one live
// registration.
func (r *Registry[T]) Triggers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	for _, n := range r.buckets {
		for ; n != nil; n = n.next {
			seen[n.name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// noopLocker stands in for the mutex when the registry is built with [Unlocked].
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}
