package collections

// minShrinkCapacity is the backing capacity floor below which ArrayList
// never shrinks.
const minShrinkCapacity = 8

// ArrayList is a growable-array container: O(1) positional access, amortized
// O(1) append, O(n) insert/remove at arbitrary positions. The backing buffer
// shrinks lazily once it is less than a quarter full.
//
// Instances must be created via [NewArrayList]. ArrayList is not safe for
// concurrent use.
type ArrayList[T any] struct {
	base[T]
	items []T
}

var (
	_ Sequence[int]  = (*ArrayList[int])(nil)
	_ Mutable[int]   = (*ArrayList[int])(nil)
	_ Indexable[int] = (*ArrayList[int])(nil)
)

// NewArrayList creates an ArrayList, applying the given options.
func NewArrayList[T any](opts ...Option[T]) (*ArrayList[T], error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	l := &ArrayList[T]{base: newBase(cfg)}
	if cfg.capacity > 0 {
		l.items = make([]T, 0, cfg.capacity)
	}
	for _, item := range cfg.items {
		if err := l.checkItem(`new`, item); err != nil {
			return nil, err
		}
		if l.distinct && l.indexOf(item) >= 0 {
			continue
		}
		l.items = append(l.items, item)
	}
	return l, nil
}

// Count returns the number of items.
func (l *ArrayList[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *ArrayList[T]) IsEmpty() bool { return len(l.items) == 0 }

// At returns the item at index i.
func (l *ArrayList[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, errIndex(i, len(l.items))
	}
	return l.items[i], nil
}

// Contains reports whether the list holds an item equal to item.
func (l *ArrayList[T]) Contains(item T) bool { return l.indexOf(item) >= 0 }

// IndexOf returns the index of the first item equal to item, or -1.
func (l *ArrayList[T]) IndexOf(item T) int { return l.indexOf(item) }

// LastIndexOf returns the index of the last item equal to item, or -1.
func (l *ArrayList[T]) LastIndexOf(item T) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.eq.Equal(l.items[i], item) {
			return i
		}
	}
	return -1
}

// Slice copies the contents, in order.
func (l *ArrayList[T]) Slice() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

// Add appends item. It returns false (with a nil error) if the duplicate
// policy rejected the item, and a [NilError] if the item violates the nil
// policy.
func (l *ArrayList[T]) Add(item T) (bool, error) {
	if err := l.checkItem(`add`, item); err != nil {
		return false, err
	}
	if l.distinct && l.indexOf(item) >= 0 {
		return false, nil
	}
	l.items = append(l.items, item)
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventInserted, Item: item, Index: len(l.items) - 1, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventAdded, Item: item, Index: -1, Count: 1})
	l.changed(len(l.items))
	l.logMutation(`add`, len(l.items))
	return true, nil
}

// AddAll appends each item in turn, as one mutating call: the nil policy is
// validated for every item before anything changes, the version is bumped
// once, the per-item events are emitted in insertion order, and a single
// EventChanged terminates the sequence. It returns the number of items
// accepted (duplicates are skipped under the distinct policy).
func (l *ArrayList[T]) AddAll(items ...T) (int, error) {
	for _, item := range items {
		if err := l.checkItem(`add-all`, item); err != nil {
			return 0, err
		}
	}
	type insertion struct {
		item  T
		index int
	}
	var accepted []insertion
	for _, item := range items {
		if l.distinct && l.indexOf(item) >= 0 {
			continue
		}
		l.items = append(l.items, item)
		accepted = append(accepted, insertion{item: item, index: len(l.items) - 1})
	}
	if len(accepted) == 0 {
		return 0, nil
	}
	l.bump()
	for _, ins := range accepted {
		l.emit(ChangeEvent[T]{Kind: EventInserted, Item: ins.item, Index: ins.index, Count: 1})
		l.emit(ChangeEvent[T]{Kind: EventAdded, Item: ins.item, Index: -1, Count: 1})
	}
	l.changed(len(l.items))
	l.logMutation(`add-all`, len(l.items))
	return len(accepted), nil
}

// Insert places item at index i, shifting subsequent items right. i may
// equal Count, appending. It returns false (with a nil error) if the
// duplicate policy rejected the item.
func (l *ArrayList[T]) Insert(i int, item T) (bool, error) {
	if i < 0 || i > len(l.items) {
		return false, errIndex(i, len(l.items))
	}
	if err := l.checkItem(`insert`, item); err != nil {
		return false, err
	}
	if l.distinct && l.indexOf(item) >= 0 {
		return false, nil
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventInserted, Item: item, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventAdded, Item: item, Index: -1, Count: 1})
	l.changed(len(l.items))
	l.logMutation(`insert`, len(l.items))
	return true, nil
}

// Set replaces the item at index i. It returns false (with a nil error) if
// the duplicate policy rejected the replacement (an equal item already
// present elsewhere).
func (l *ArrayList[T]) Set(i int, item T) (bool, error) {
	if i < 0 || i >= len(l.items) {
		return false, errIndex(i, len(l.items))
	}
	if err := l.checkItem(`set`, item); err != nil {
		return false, err
	}
	if l.distinct {
		if j := l.indexOf(item); j >= 0 && j != i {
			return false, nil
		}
	}
	old := l.items[i]
	l.items[i] = item
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventRemovedAt, Item: old, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventRemoved, Item: old, Index: -1, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventInserted, Item: item, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventAdded, Item: item, Index: -1, Count: 1})
	l.changed(len(l.items))
	l.logMutation(`set`, len(l.items))
	return true, nil
}

// Remove removes the first item equal to item, reporting whether one was
// found. Removing an absent item is a no-op: no events, no version bump.
func (l *ArrayList[T]) Remove(item T) bool {
	i := l.indexOf(item)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// RemoveAt removes and returns the item at index i, shifting subsequent
// items left.
func (l *ArrayList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, errIndex(i, len(l.items))
	}
	return l.removeAt(i), nil
}

// removeAt performs the (pre-validated) removal, emitting events.
func (l *ArrayList[T]) removeAt(i int) T {
	item := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero // release for GC
	l.items = l.items[:len(l.items)-1]
	l.maybeShrink()
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventRemovedAt, Item: item, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventRemoved, Item: item, Index: -1, Count: 1})
	l.changed(len(l.items))
	l.logMutation(`remove`, len(l.items))
	return item
}

// Clear removes all items, releasing the backing buffer. Clearing an empty
// list is a no-op.
func (l *ArrayList[T]) Clear() {
	n := len(l.items)
	if n == 0 {
		return
	}
	l.items = nil
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventCleared, Index: -1, Count: n})
	l.changed(0)
	l.logMutation(`clear`, 0)
}

// Sort orders the list in place using cmp (nil meaning natural ordering),
// via [IntrospectiveSort]. It is a structural mutation: the version is
// bumped, and a single EventChanged is emitted.
func (l *ArrayList[T]) Sort(cmp Comparator[T]) error {
	if err := IntrospectiveSort(l.items, 0, len(l.items), cmp); err != nil {
		return err
	}
	if len(l.items) > 1 {
		l.bump()
		l.changed(len(l.items))
		l.logMutation(`sort`, len(l.items))
	}
	return nil
}

// GetIndexRange returns a snapshot-bound view over [start, start+count).
func (l *ArrayList[T]) GetIndexRange(start, count int) (*View[T], error) {
	if err := checkRange(start, count, len(l.items)); err != nil {
		return nil, err
	}
	return newView(l.itemAt, l.currentVersion, start, count, Forward), nil
}

// Backwards returns a snapshot-bound view of the whole list, reversed.
func (l *ArrayList[T]) Backwards() *View[T] {
	return newView(l.itemAt, l.currentVersion, 0, len(l.items), Backward)
}

// Iterator returns a version-checked cursor over the list, in order.
func (l *ArrayList[T]) Iterator() *Iterator[T] {
	return newIndexIterator(l.itemAt, l.currentVersion, 0, len(l.items), Forward)
}

// SequencedHash returns the order-dependent hash of the contents, cached
// until the next structural mutation.
func (l *ArrayList[T]) SequencedHash() uint64 {
	return l.cachedHash(&l.seqCache, func() uint64 {
		var acc uint64
		for i := range l.items {
			acc = sequencedFold(acc, l.eq.Hash(l.items[i]))
		}
		return acc
	})
}

// UnsequencedHash returns the order-independent hash of the contents, cached
// until the next structural mutation.
func (l *ArrayList[T]) UnsequencedHash() uint64 {
	return l.cachedHash(&l.unsCache, func() uint64 {
		var acc uint64
		for i := range l.items {
			acc += unsequencedContribution(l.eq.Hash(l.items[i]))
		}
		return acc
	})
}

func (l *ArrayList[T]) itemAt(i int) T { return l.items[i] }

func (l *ArrayList[T]) indexOf(item T) int {
	for i := range l.items {
		if l.eq.Equal(l.items[i], item) {
			return i
		}
	}
	return -1
}

// maybeShrink halves the backing buffer once the list is less than a quarter
// full, never below minShrinkCapacity.
func (l *ArrayList[T]) maybeShrink() {
	if c := cap(l.items); c > minShrinkCapacity && len(l.items) < c/4 {
		items := make([]T, len(l.items), c/2)
		copy(items, l.items)
		l.items = items
	}
}
