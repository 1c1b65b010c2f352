package collections

// defaultQueueCapacity is the initial ring capacity when none is configured.
const defaultQueueCapacity = 8

// CircularQueue is a FIFO container backed by a ring buffer: head and tail
// indices wrap modulo the backing capacity, and the buffer doubles when
// full (copying out in logical order, resetting the head). Enqueue and
// Dequeue are amortized O(1); positional access is O(1).
//
// Instances must be created via [NewCircularQueue]. CircularQueue is not
// safe for concurrent use.
type CircularQueue[T any] struct {
	base[T]
	buf    []T
	head   int
	length int
}

var (
	_ Sequence[int]  = (*CircularQueue[int])(nil)
	_ Mutable[int]   = (*CircularQueue[int])(nil)
	_ Indexable[int] = (*CircularQueue[int])(nil)
)

// NewCircularQueue creates a CircularQueue, applying the given options.
// [WithCapacity] sets the initial ring capacity (default 8).
func NewCircularQueue[T any](opts ...Option[T]) (*CircularQueue[T], error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	capacity := cfg.capacity
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	q := &CircularQueue[T]{base: newBase(cfg), buf: make([]T, capacity)}
	for _, item := range cfg.items {
		if err := q.checkItem(`new`, item); err != nil {
			return nil, err
		}
		if q.distinct && q.contains(item) {
			continue
		}
		if q.length == len(q.buf) {
			q.grow()
		}
		q.buf[(q.head+q.length)%len(q.buf)] = item
		q.length++
	}
	return q, nil
}

// Count returns the number of items.
func (q *CircularQueue[T]) Count() int { return q.length }

// IsEmpty reports whether the queue contains no items.
func (q *CircularQueue[T]) IsEmpty() bool { return q.length == 0 }

// Peek returns the front item without removing it, if any.
func (q *CircularQueue[T]) Peek() (T, bool) {
	if q.length == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// At returns the item at logical index i, zero being the front.
func (q *CircularQueue[T]) At(i int) (T, error) {
	if i < 0 || i >= q.length {
		var zero T
		return zero, errIndex(i, q.length)
	}
	return q.itemAt(i), nil
}

// Contains reports whether the queue holds an item equal to item.
func (q *CircularQueue[T]) Contains(item T) bool { return q.contains(item) }

// Slice copies the contents, front to back.
func (q *CircularQueue[T]) Slice() []T {
	items := make([]T, q.length)
	for i := range items {
		items[i] = q.itemAt(i)
	}
	return items
}

// Enqueue adds item at the back, growing the ring if full. It returns false
// (with a nil error) if the duplicate policy rejected the item.
func (q *CircularQueue[T]) Enqueue(item T) (bool, error) {
	if err := q.checkItem(`enqueue`, item); err != nil {
		return false, err
	}
	if q.distinct && q.contains(item) {
		return false, nil
	}
	if q.length == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.length)%len(q.buf)] = item
	q.length++
	q.bump()
	q.emit(ChangeEvent[T]{Kind: EventAdded, Item: item, Index: -1, Count: 1})
	q.changed(q.length)
	q.logMutation(`enqueue`, q.length)
	return true, nil
}

// Add is Enqueue, satisfying [Mutable].
func (q *CircularQueue[T]) Add(item T) (bool, error) { return q.Enqueue(item) }

// Dequeue removes and returns the front item, if any. Dequeuing an empty
// queue is a no-op: no events, no version bump.
func (q *CircularQueue[T]) Dequeue() (T, bool) {
	if q.length == 0 {
		var zero T
		return zero, false
	}
	item := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // release for GC
	q.head = (q.head + 1) % len(q.buf)
	q.length--
	q.bump()
	q.emit(ChangeEvent[T]{Kind: EventRemoved, Item: item, Index: -1, Count: 1})
	q.changed(q.length)
	q.logMutation(`dequeue`, q.length)
	return item, true
}

// Clear removes all items, retaining the ring. Clearing an empty queue is a
// no-op.
func (q *CircularQueue[T]) Clear() {
	n := q.length
	if n == 0 {
		return
	}
	var zero T
	for i := 0; i < q.length; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head = 0
	q.length = 0
	q.bump()
	q.emit(ChangeEvent[T]{Kind: EventCleared, Index: -1, Count: n})
	q.changed(0)
	q.logMutation(`clear`, 0)
}

// GetIndexRange returns a snapshot-bound view over logical indices
// [start, start+count), zero being the front.
func (q *CircularQueue[T]) GetIndexRange(start, count int) (*View[T], error) {
	if err := checkRange(start, count, q.length); err != nil {
		return nil, err
	}
	return newView(q.itemAt, q.currentVersion, start, count, Forward), nil
}

// Backwards returns a snapshot-bound view of the whole queue, back to front.
func (q *CircularQueue[T]) Backwards() *View[T] {
	return newView(q.itemAt, q.currentVersion, 0, q.length, Backward)
}

// Iterator returns a version-checked cursor over the queue, front to back.
func (q *CircularQueue[T]) Iterator() *Iterator[T] {
	return newIndexIterator(q.itemAt, q.currentVersion, 0, q.length, Forward)
}

// SequencedHash returns the order-dependent hash of the contents, cached
// until the next structural mutation.
func (q *CircularQueue[T]) SequencedHash() uint64 {
	return q.cachedHash(&q.seqCache, func() uint64 {
		var acc uint64
		for i := 0; i < q.length; i++ {
			acc = sequencedFold(acc, q.eq.Hash(q.itemAt(i)))
		}
		return acc
	})
}

// UnsequencedHash returns the order-independent hash of the contents, cached
// until the next structural mutation.
func (q *CircularQueue[T]) UnsequencedHash() uint64 {
	return q.cachedHash(&q.unsCache, func() uint64 {
		var acc uint64
		for i := 0; i < q.length; i++ {
			acc += unsequencedContribution(q.eq.Hash(q.itemAt(i)))
		}
		return acc
	})
}

// itemAt maps a logical index to the ring. Bounds must have been validated
// by the caller.
func (q *CircularQueue[T]) itemAt(i int) T {
	return q.buf[(q.head+i)%len(q.buf)]
}

func (q *CircularQueue[T]) contains(item T) bool {
	for i := 0; i < q.length; i++ {
		if q.eq.Equal(q.itemAt(i), item) {
			return true
		}
	}
	return false
}

// grow doubles the ring, copying out in logical order and resetting the
// head to zero.
func (q *CircularQueue[T]) grow() {
	buf := make([]T, len(q.buf)*2)
	for i := 0; i < q.length; i++ {
		buf[i] = q.itemAt(i)
	}
	q.buf = buf
	q.head = 0
}
