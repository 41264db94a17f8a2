/*
Package trigger provides a small, embeddable callback dispatch registry keyed by trigger name.
Callbacks are registered against a string trigger with a priority, and fired synchronously when that trigger name is fired.
It's intended to be usable both in ordinary applications and in constrained settings where allocation must be bounded up front.

# Design Priorities

Here are the design priorities of the implementation:

  - Firing a trigger should be deterministic: callbacks run in non-increasing priority order, and callbacks with equal priority run in registration order.
  - Resource exhaustion should be an ordinary, reportable outcome rather than a fatal one, so constrained deployments can register best-effort.
  - The deferred path must never block or allocate, so it stays safe to call from a context that cannot wait, like a signal or interrupt handler.
  - The registry itself should never log or retry; every failure is returned synchronously to the caller.

# Registry Primitives

A [Registry] holds registrations in a chained hash table keyed by trigger name.
Each registration binds a trigger name, a [Callback], an opaque context value, and a priority.
Higher priority callbacks fire earlier.
A callback returns [Continue] to let the walk proceed, or [Stop] to halt the remaining callbacks for that fire.

Use [Registry.RegisterOnce] for a registration that is removed automatically after its first invocation.

The payload delivered to callbacks is a type parameter of the [Registry], so a registry dedicated to one event family can be fully type-checked.
Use a [Registry] of any when payloads are heterogeneous.

# Allocation Profiles

By default a [Registry] allocates registrations on the heap and grows its bucket table as registrations accumulate.
The [Bounded] option switches to a preallocated slot pool with a fixed bucket count and a fixed maximum trigger-name length;
once the pool is exhausted, [Registry.Register] returns [ErrPoolExhausted] until something is unregistered.
The [MaxRegistrations] option caps the heap profile instead, returning [ErrOutOfMemory] at the cap.

# Deferred Firing

The [Deferred] option attaches a fixed-capacity single-producer/single-consumer ring to the registry.
[Registry.Defer] records a trigger-name/payload pair without taking the registry lock, and [Registry.Drain] later replays
each recorded pair through [Registry.Fire] from a normal execution context.
Only one producer and one drain caller are supported; concurrent producers are a data race.

# The Package-Level Registry

For programs that want a single process-wide registry, [Instance] returns a shared Registry of any,
and the package-level [Register], [Fire], [Defer], and friends operate on it.
Use [InitInstance] before first use to configure it with non-default options.
*/
package trigger
