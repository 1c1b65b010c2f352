package collections

import (
	"strings"
)

// EventKind identifies the kind of a structural [ChangeEvent]. Kinds are
// single bits, so a bitwise-or of kinds forms a subscription mask.
type EventKind uint32

const (
	// EventAdded reports an item accepted into the container.
	EventAdded EventKind = 1 << iota
	// EventRemoved reports an item removed from the container.
	EventRemoved
	// EventInserted reports an item placed at a specific index.
	EventInserted
	// EventRemovedAt reports an item removed from a specific index.
	EventRemovedAt
	// EventCleared reports removal of all items at once.
	EventCleared
	// EventChanged terminates the event sequence of any mutating call that
	// emitted at least one item-level event.
	EventChanged

	// EventAll subscribes to every event kind.
	EventAll EventKind = EventAdded | EventRemoved | EventInserted |
		EventRemovedAt | EventCleared | EventChanged
)

// String returns a "|"-separated representation of the set bits.
func (k EventKind) String() string {
	if k == 0 {
		return `none`
	}
	var parts []string
	for _, e := range [...]struct {
		kind EventKind
		name string
	}{
		{EventAdded, `added`},
		{EventRemoved, `removed`},
		{EventInserted, `inserted`},
		{EventRemovedAt, `removed-at`},
		{EventCleared, `cleared`},
		{EventChanged, `changed`},
	} {
		if k&e.kind != 0 {
			parts = append(parts, e.name)
			k &^= e.kind
		}
	}
	if k != 0 {
		parts = append(parts, `invalid`)
	}
	return strings.Join(parts, `|`)
}

// ChangeEvent is an immutable record of one atomic structural change.
//
// Field semantics vary by Kind:
//   - EventAdded, EventRemoved: Item is the item, Count the number of copies
//     affected (always 1 for the containers in this package), Index is -1.
//   - EventInserted, EventRemovedAt: Item is the item, Index its position,
//     Count is 1.
//   - EventCleared: Count is the number of items removed, Index is -1.
//   - EventChanged: Count is the resulting container count, Index is -1.
type ChangeEvent[T any] struct {
	Kind  EventKind
	Item  T
	Index int
	Count int
}

// ListenerID uniquely identifies a subscription for removal. Go functions
// cannot be compared for equality, so subscriptions are keyed by ID.
type ListenerID uint64

// listenerEntry pairs a handler with its subscription mask and ID.
type listenerEntry[T any] struct {
	id      ListenerID
	mask    EventKind
	handler func(ChangeEvent[T])
}

// eventPublisher is the per-container subscriber registry. Handlers run
// synchronously, in registration order, filtered by mask before dispatch.
type eventPublisher[T any] struct {
	listeners []listenerEntry[T]
	nextID    ListenerID
}

// subscribe registers handler for the kinds in mask, returning an ID for
// unsubscribe. A nil handler or empty mask returns 0 without registering.
func (p *eventPublisher[T]) subscribe(mask EventKind, handler func(ChangeEvent[T])) ListenerID {
	if handler == nil || mask == 0 {
		return 0
	}
	p.nextID++
	p.listeners = append(p.listeners, listenerEntry[T]{
		id:      p.nextID,
		mask:    mask,
		handler: handler,
	})
	return p.nextID
}

// unsubscribe removes the subscription with the given ID, reporting whether
// one was removed.
func (p *eventPublisher[T]) unsubscribe(id ListenerID) bool {
	for i, entry := range p.listeners {
		if entry.id == id {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// emit dispatches ev to every subscriber whose mask includes ev.Kind.
//
// The listener slice is snapshotted first, so handlers may subscribe or
// unsubscribe during dispatch without affecting the current emission.
func (p *eventPublisher[T]) emit(ev ChangeEvent[T]) {
	if len(p.listeners) == 0 {
		return
	}
	entries := make([]listenerEntry[T], len(p.listeners))
	copy(entries, p.listeners)
	for _, entry := range entries {
		if entry.mask&ev.Kind != 0 {
			entry.handler(ev)
		}
	}
}
