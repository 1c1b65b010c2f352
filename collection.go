package collections

import (
	"github.com/joeycumines/logiface"
)

type (
	// Countable is the minimal read surface shared by every container.
	Countable interface {
		Count() int
		IsEmpty() bool
	}

	// Iterable supplies version-checked forward iteration.
	Iterable[T any] interface {
		Iterator() *Iterator[T]
	}

	// Directed supplies snapshot-bound range and reverse traversal.
	Directed[T any] interface {
		// GetIndexRange returns a view over [start, start+count), validating
		// bounds before any state is captured.
		GetIndexRange(start, count int) (*View[T], error)
		// Backwards returns a view enumerating the whole container in
		// reverse, without copying.
		Backwards() *View[T]
	}

	// Observable exposes the structural-change event stream.
	Observable[T any] interface {
		// Subscribe registers handler for the event kinds in mask, returning
		// an ID for Unsubscribe. A nil handler or empty mask returns 0.
		Subscribe(mask EventKind, handler func(ChangeEvent[T])) ListenerID
		// Unsubscribe removes a subscription, reporting whether one existed.
		Unsubscribe(id ListenerID) bool
	}

	// Sequence is the common behavioral contract of every container in this
	// package: countable, iterable, directed, and hashable both with and
	// without regard to order.
	Sequence[T any] interface {
		Countable
		Iterable[T]
		Directed[T]
		// SequencedHash is the order-dependent hash of the contents, cached
		// until the next structural mutation.
		SequencedHash() uint64
		// UnsequencedHash is the order-independent hash of the contents,
		// cached until the next structural mutation.
		UnsequencedHash() uint64
		// Equality is the strategy fixed at construction.
		Equality() Equality[T]
	}

	// Mutable is the common mutation surface.
	Mutable[T any] interface {
		Observable[T]
		// Add appends an item, reporting false (with a nil error) if the
		// container's duplicate policy rejected it.
		Add(item T) (bool, error)
		// Clear removes all items.
		Clear()
	}

	// Indexable supplies positional access.
	Indexable[T any] interface {
		At(i int) (T, error)
	}
)

// base is the shared substrate embedded by every container engine: the
// version counter, the configured policies and equality strategy, the event
// publisher, and the hash caches.
//
// Mutator contract (every engine method that changes structure): validate
// preconditions, mutate, call bump exactly once, emit the ordered item-level
// events, then call changed. No-op mutations skip all of it.
type base[T any] struct {
	eq        Equality[T]
	logger    *logiface.Logger[logiface.Event]
	publisher eventPublisher[T]
	seqCache  hashCache
	unsCache  hashCache
	version   uint64
	allowNil  bool
	distinct  bool
}

func newBase[T any](cfg *config[T]) base[T] {
	return base[T]{
		eq:       cfg.eq,
		logger:   cfg.logger,
		allowNil: cfg.allowNil,
		distinct: cfg.distinct,
	}
}

// Version returns the structural version counter: a monotonic value starting
// at 0 (for an initially-empty container), incremented exactly once per
// successful structural mutation. It is not synchronized.
func (b *base[T]) Version() uint64 { return b.version }

// Equality returns the strategy fixed at construction.
func (b *base[T]) Equality() Equality[T] { return b.eq }

// AllowsNil reports whether the container accepts nil items.
func (b *base[T]) AllowsNil() bool { return b.allowNil }

// Subscribe registers handler for the event kinds in mask, returning an ID
// for Unsubscribe. A nil handler or empty mask returns 0.
func (b *base[T]) Subscribe(mask EventKind, handler func(ChangeEvent[T])) ListenerID {
	return b.publisher.subscribe(mask, handler)
}

// Unsubscribe removes a subscription, reporting whether one existed.
func (b *base[T]) Unsubscribe(id ListenerID) bool {
	return b.publisher.unsubscribe(id)
}

// currentVersion is captured as a method value by views and iterators.
func (b *base[T]) currentVersion() uint64 { return b.version }

// bump invalidates all outstanding snapshots and hash caches.
func (b *base[T]) bump() { b.version++ }

// checkItem enforces the nil policy before any mutation.
func (b *base[T]) checkItem(op string, item T) error {
	if !b.allowNil && isNilItem(item) {
		return &NilError{Op: op}
	}
	return nil
}

func (b *base[T]) emit(ev ChangeEvent[T]) { b.publisher.emit(ev) }

// changed terminates a mutating call's event sequence. count is the
// resulting container count.
func (b *base[T]) changed(count int) {
	b.emit(ChangeEvent[T]{Kind: EventChanged, Index: -1, Count: count})
}

func (b *base[T]) cachedHash(c *hashCache, compute func() uint64) uint64 {
	return c.get(b.version, compute)
}

// logMutation traces a successful structural change. The logger is optional
// and nil-safe.
func (b *base[T]) logMutation(op string, count int) {
	b.logger.Debug().
		Str(`op`, op).
		Int(`count`, count).
		Uint64(`version`, b.version).
		Log(`structural change`)
}
