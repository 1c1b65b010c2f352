// Package collections implements generic in-memory containers (a growable
// array list, a doubly-linked list, and a ring-buffer queue) unified under a
// shared behavioral contract: structural-change notifications, snapshot-bound
// directed views over arbitrary index ranges, and order-sensitive plus
// order-insensitive hashing and equality, consistent with each container's
// configured nil and duplicate policies.
//
// # Versioning and staleness
//
// Every container carries a monotonic version counter, bumped exactly once
// per successful structural mutation. Views ([View]) and iteration cursors
// ([Iterator]) capture the version at creation, and re-validate it on every
// subsequent access; a mismatch is reported as a permanent [StaleError],
// never as silently skipped or duplicated items.
//
// # Events
//
// Mutating operations emit ordered [ChangeEvent] values to subscribers,
// filtered by an [EventKind] bitmask: the item-level events in the order the
// changes logically occurred, then exactly one terminating [EventChanged].
// No-op mutations (e.g. removing an absent item) emit nothing, and do not
// bump the version.
//
// # Concurrency
//
// Containers perform no internal locking, and are not safe for concurrent
// mutation. Read-only operations may run concurrently with each other, by
// convention only. Callers requiring concurrent mutation must provide
// external synchronization.
//
// Structured logging of mutations is supported via the optional [WithLogger]
// option, using the nil-safe github.com/joeycumines/logiface facade.
package collections
