package collections

// node is a link in the doubly-linked chain.
type node[T any] struct {
	item T
	prev *node[T]
	next *node[T]
}

// LinkedList is a doubly-linked-node container: O(1) append and prepend,
// O(1) removal at either end, O(n) positional access (scanning from the
// nearer end), O(n) insert/remove at arbitrary positions.
//
// Instances must be created via [NewLinkedList]. LinkedList is not safe for
// concurrent use.
type LinkedList[T any] struct {
	base[T]
	head   *node[T]
	tail   *node[T]
	length int
}

var (
	_ Sequence[int]  = (*LinkedList[int])(nil)
	_ Mutable[int]   = (*LinkedList[int])(nil)
	_ Indexable[int] = (*LinkedList[int])(nil)
)

// NewLinkedList creates a LinkedList, applying the given options.
func NewLinkedList[T any](opts ...Option[T]) (*LinkedList[T], error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	l := &LinkedList[T]{base: newBase(cfg)}
	for _, item := range cfg.items {
		if err := l.checkItem(`new`, item); err != nil {
			return nil, err
		}
		if l.distinct && l.find(item) != nil {
			continue
		}
		l.link(l.tail, item)
	}
	return l, nil
}

// Count returns the number of items.
func (l *LinkedList[T]) Count() int { return l.length }

// IsEmpty reports whether the list contains no items.
func (l *LinkedList[T]) IsEmpty() bool { return l.length == 0 }

// First returns the first item, if any.
func (l *LinkedList[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.item, true
}

// Last returns the last item, if any.
func (l *LinkedList[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.item, true
}

// At returns the item at index i, scanning from the nearer end.
func (l *LinkedList[T]) At(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, errIndex(i, l.length)
	}
	return l.nodeAt(i).item, nil
}

// Contains reports whether the list holds an item equal to item.
func (l *LinkedList[T]) Contains(item T) bool { return l.find(item) != nil }

// IndexOf returns the index of the first item equal to item, or -1.
func (l *LinkedList[T]) IndexOf(item T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.eq.Equal(n.item, item) {
			return i
		}
		i++
	}
	return -1
}

// Slice copies the contents, in order.
func (l *LinkedList[T]) Slice() []T {
	items := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		items = append(items, n.item)
	}
	return items
}

// Add appends item. It returns false (with a nil error) if the duplicate
// policy rejected the item.
func (l *LinkedList[T]) Add(item T) (bool, error) {
	return l.insertAfter(`add`, l.tail, l.length, item)
}

// AddFirst prepends item. It returns false (with a nil error) if the
// duplicate policy rejected the item.
func (l *LinkedList[T]) AddFirst(item T) (bool, error) {
	return l.insertAfter(`add-first`, nil, 0, item)
}

// AddAll appends each item in turn, as one mutating call: the nil policy is
// validated for every item before anything changes, the version is bumped
// once, the per-item events are emitted in insertion order, and a single
// EventChanged terminates the sequence. It returns the number of items
// accepted.
func (l *LinkedList[T]) AddAll(items ...T) (int, error) {
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
		if l.distinct && l.find(item) != nil {
			continue
		}
		l.link(l.tail, item)
		accepted = append(accepted, insertion{item: item, index: l.length - 1})
	}
	if len(accepted) == 0 {
		return 0, nil
	}
	l.bump()
	for _, ins := range accepted {
		l.emit(ChangeEvent[T]{Kind: EventInserted, Item: ins.item, Index: ins.index, Count: 1})
		l.emit(ChangeEvent[T]{Kind: EventAdded, Item: ins.item, Index: -1, Count: 1})
	}
	l.changed(l.length)
	l.logMutation(`add-all`, l.length)
	return len(accepted), nil
}

// Insert places item at index i. i may equal Count, appending. It returns
// false (with a nil error) if the duplicate policy rejected the item.
func (l *LinkedList[T]) Insert(i int, item T) (bool, error) {
	if i < 0 || i > l.length {
		return false, errIndex(i, l.length)
	}
	var after *node[T]
	if i > 0 {
		after = l.nodeAt(i - 1)
	}
	return l.insertAfter(`insert`, after, i, item)
}

// Set replaces the item at index i. It returns false (with a nil error) if
// the duplicate policy rejected the replacement.
func (l *LinkedList[T]) Set(i int, item T) (bool, error) {
	if i < 0 || i >= l.length {
		return false, errIndex(i, l.length)
	}
	if err := l.checkItem(`set`, item); err != nil {
		return false, err
	}
	n := l.nodeAt(i)
	if l.distinct {
		if m := l.find(item); m != nil && m != n {
			return false, nil
		}
	}
	old := n.item
	n.item = item
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventRemovedAt, Item: old, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventRemoved, Item: old, Index: -1, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventInserted, Item: item, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventAdded, Item: item, Index: -1, Count: 1})
	l.changed(l.length)
	l.logMutation(`set`, l.length)
	return true, nil
}

// Remove removes the first item equal to item, reporting whether one was
// found. Removing an absent item is a no-op: no events, no version bump.
func (l *LinkedList[T]) Remove(item T) bool {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.eq.Equal(n.item, item) {
			l.unlink(n, i)
			return true
		}
		i++
	}
	return false
}

// RemoveAt removes and returns the item at index i.
func (l *LinkedList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, errIndex(i, l.length)
	}
	n := l.nodeAt(i)
	l.unlink(n, i)
	return n.item, nil
}

// RemoveFirst removes and returns the first item, if any. O(1).
func (l *LinkedList[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.unlink(n, 0)
	return n.item, true
}

// RemoveLast removes and returns the last item, if any. O(1).
func (l *LinkedList[T]) RemoveLast() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.unlink(n, l.length-1)
	return n.item, true
}

// Clear removes all items, dropping the node chain. Clearing an empty list
// is a no-op.
func (l *LinkedList[T]) Clear() {
	n := l.length
	if n == 0 {
		return
	}
	l.head = nil
	l.tail = nil
	l.length = 0
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventCleared, Index: -1, Count: n})
	l.changed(0)
	l.logMutation(`clear`, 0)
}

// GetIndexRange returns a snapshot-bound view over [start, start+count).
// Positional reads through the view scan from the nearer end of the chain.
func (l *LinkedList[T]) GetIndexRange(start, count int) (*View[T], error) {
	if err := checkRange(start, count, l.length); err != nil {
		return nil, err
	}
	return newView(l.itemAt, l.currentVersion, start, count, Forward), nil
}

// Backwards returns a snapshot-bound view of the whole list, reversed.
func (l *LinkedList[T]) Backwards() *View[T] {
	return newView(l.itemAt, l.currentVersion, 0, l.length, Backward)
}

// Iterator returns a version-checked cursor over the list, in order. The
// cursor walks the node chain, so a full traversal is O(n).
func (l *LinkedList[T]) Iterator() *Iterator[T] {
	n := l.head
	return newIterator(l.currentVersion, func() (T, bool) {
		if n == nil {
			var zero T
			return zero, false
		}
		item := n.item
		n = n.next
		return item, true
	})
}

// SequencedHash returns the order-dependent hash of the contents, cached
// until the next structural mutation.
func (l *LinkedList[T]) SequencedHash() uint64 {
	return l.cachedHash(&l.seqCache, func() uint64 {
		var acc uint64
		for n := l.head; n != nil; n = n.next {
			acc = sequencedFold(acc, l.eq.Hash(n.item))
		}
		return acc
	})
}

// UnsequencedHash returns the order-independent hash of the contents, cached
// until the next structural mutation.
func (l *LinkedList[T]) UnsequencedHash() uint64 {
	return l.cachedHash(&l.unsCache, func() uint64 {
		var acc uint64
		for n := l.head; n != nil; n = n.next {
			acc += unsequencedContribution(l.eq.Hash(n.item))
		}
		return acc
	})
}

// insertAfter validates item, then links it after the given node (nil
// meaning at the head), emitting the insertion events. index is the
// resulting position of the new item.
func (l *LinkedList[T]) insertAfter(op string, after *node[T], index int, item T) (bool, error) {
	if err := l.checkItem(op, item); err != nil {
		return false, err
	}
	if l.distinct && l.find(item) != nil {
		return false, nil
	}
	l.link(after, item)
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventInserted, Item: item, Index: index, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventAdded, Item: item, Index: -1, Count: 1})
	l.changed(l.length)
	l.logMutation(op, l.length)
	return true, nil
}

// link splices a new node holding item after prev (nil meaning at the head).
func (l *LinkedList[T]) link(prev *node[T], item T) {
	n := &node[T]{item: item, prev: prev}
	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}
	if n.next != nil {
		n.next.prev = n
	} else {
		l.tail = n
	}
	l.length++
}

// unlink removes n (at index i), emitting the removal events.
func (l *LinkedList[T]) unlink(n *node[T], i int) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.length--
	l.bump()
	l.emit(ChangeEvent[T]{Kind: EventRemovedAt, Item: n.item, Index: i, Count: 1})
	l.emit(ChangeEvent[T]{Kind: EventRemoved, Item: n.item, Index: -1, Count: 1})
	l.changed(l.length)
	l.logMutation(`remove`, l.length)
}

// nodeAt returns the node at index i, scanning from the nearer end.
// Bounds must have been validated by the caller.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	if i < l.length/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i = l.length - 1 - i; i > 0; i-- {
		n = n.prev
	}
	return n
}

func (l *LinkedList[T]) itemAt(i int) T { return l.nodeAt(i).item }

func (l *LinkedList[T]) find(item T) *node[T] {
	for n := l.head; n != nil; n = n.next {
		if l.eq.Equal(n.item, item) {
			return n
		}
	}
	return nil
}
