package collections

// Direction is the traversal order of a [View].
type Direction uint8

const (
	// Forward enumerates from the lowest source index upward.
	Forward Direction = iota
	// Backward enumerates from the highest source index downward.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return `backward`
	}
	return `forward`
}

// View is a read-only, possibly-reversed projection of a contiguous index
// range of a container, bound to a snapshot of the container's version at
// creation.
//
// Every operation, including property reads, first compares the live
// container version to the snapshot: on mismatch the view transitions
// irreversibly to stale, and that operation and all subsequent ones return a
// [StaleError]. A stale view of data known to still be wanted can simply be
// discarded and recreated from the container.
//
// A View holds no copy of the underlying items; it reads through to the
// source container.
type View[T any] struct {
	at       func(int) T
	version  func() uint64
	snapshot uint64
	start    int
	count    int
	dir      Direction
	stale    bool
}

// newView captures the source's current version. Bounds must have been
// validated by the caller.
func newView[T any](at func(int) T, version func() uint64, start, count int, dir Direction) *View[T] {
	return &View[T]{
		at:       at,
		version:  version,
		snapshot: version(),
		start:    start,
		count:    count,
		dir:      dir,
	}
}

// validate confirms the snapshot still matches the live container version.
// Staleness, once observed, is terminal.
func (v *View[T]) validate() error {
	if !v.stale && v.version() == v.snapshot {
		return nil
	}
	v.stale = true
	return &StaleError{Entity: `view`, Snapshot: v.snapshot, Version: v.version()}
}

// Count returns the number of items in the view.
func (v *View[T]) Count() (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return v.count, nil
}

// IsEmpty reports whether the view contains no items.
func (v *View[T]) IsEmpty() (bool, error) {
	if err := v.validate(); err != nil {
		return false, err
	}
	return v.count == 0, nil
}

// Direction returns the current traversal order.
func (v *View[T]) Direction() (Direction, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return v.dir, nil
}

// Backwards returns a view enumerating the same items in the opposite order,
// without copying. Reversing twice is behaviorally identical to the original
// view.
func (v *View[T]) Backwards() (*View[T], error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	dir := Backward
	if v.dir == Backward {
		dir = Forward
	}
	return &View[T]{
		at:       v.at,
		version:  v.version,
		snapshot: v.snapshot,
		start:    v.start,
		count:    v.count,
		dir:      dir,
	}, nil
}

// At returns the item at logical position i in the view's current direction.
func (v *View[T]) At(i int) (T, error) {
	var zero T
	if err := v.validate(); err != nil {
		return zero, err
	}
	if i < 0 || i >= v.count {
		return zero, errIndex(i, v.count)
	}
	return v.at(v.source(i)), nil
}

// Choose returns a deterministic representative item: the last item in the
// view's current direction. An empty view returns a [BoundsError].
func (v *View[T]) Choose() (T, error) {
	var zero T
	if err := v.validate(); err != nil {
		return zero, err
	}
	if v.count == 0 {
		return zero, errIndex(0, 0)
	}
	return v.at(v.source(v.count - 1)), nil
}

// Slice copies the view's items, in the view's current direction.
func (v *View[T]) Slice() ([]T, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	items := make([]T, v.count)
	for i := range items {
		items[i] = v.at(v.source(i))
	}
	return items, nil
}

// Iterator returns a cursor over the view, in the view's current direction.
// The cursor shares the view's snapshot, and faults the same way on
// structural mutation of the source container.
func (v *View[T]) Iterator() (*Iterator[T], error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	return newIndexIterator(v.at, v.version, v.start, v.count, v.dir), nil
}

// source maps a logical view position to a source container index.
func (v *View[T]) source(i int) int {
	if v.dir == Backward {
		return v.start + v.count - 1 - i
	}
	return v.start + i
}
