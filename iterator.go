package collections

// Iterator is a stateful, externally-driven iteration cursor, bound to a
// snapshot of the source container's version. Usage follows the
// [bufio.Scanner] shape:
//
//	for it := c.Iterator(); it.Next(); {
//		_ = it.Value()
//	}
//	if err := it.Err(); err != nil { ... }
//
// Any structural mutation of the source container between two steps is
// detected by version comparison: Next returns false, and Err reports a
// permanent [StaleError]. Items are never silently skipped or duplicated.
type Iterator[T any] struct {
	next     func() (T, bool)
	version  func() uint64
	err      error
	cur      T
	snapshot uint64
	index    int
	done     bool
}

// newIterator wraps an engine-specific cursor advance, which is only invoked
// after the snapshot has been validated.
func newIterator[T any](version func() uint64, next func() (T, bool)) *Iterator[T] {
	return &Iterator[T]{
		next:     next,
		version:  version,
		snapshot: version(),
		index:    -1,
	}
}

// newIndexIterator advances by position, for engines (and views) with an
// indexable representation.
func newIndexIterator[T any](at func(int) T, version func() uint64, start, count int, dir Direction) *Iterator[T] {
	i := 0
	return newIterator(version, func() (T, bool) {
		var zero T
		if i >= count {
			return zero, false
		}
		src := start + i
		if dir == Backward {
			src = start + count - 1 - i
		}
		i++
		return at(src), true
	})
}

// Next advances the cursor, reporting whether an item is available via
// Value. It returns false at the end of the iteration, or on staleness (see
// Err).
func (it *Iterator[T]) Next() bool {
	if it.err != nil || it.done {
		return false
	}
	if v := it.version(); v != it.snapshot {
		it.err = &StaleError{Entity: `iterator`, Snapshot: it.snapshot, Version: v}
		return false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		return false
	}
	it.cur = v
	it.index++
	return true
}

// Value returns the current item. Only valid after a true Next.
func (it *Iterator[T]) Value() T { return it.cur }

// Index returns the zero-based position of the current item within the
// iteration order, or -1 before the first Next.
func (it *Iterator[T]) Index() int { return it.index }

// Err returns the permanent [StaleError] if iteration faulted, else nil.
func (it *Iterator[T]) Err() error { return it.err }
