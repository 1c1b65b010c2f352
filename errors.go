package collections

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds matches any [BoundsError], via [errors.Is].
	ErrOutOfBounds = errors.New(`collections: out of bounds`)

	// ErrNilItem matches any [NilError], via [errors.Is].
	ErrNilItem = errors.New(`collections: nil item`)

	// ErrStale matches any [StaleError], via [errors.Is].
	ErrStale = errors.New(`collections: stale snapshot`)

	// ErrNoNaturalOrder matches any [CapabilityError], via [errors.Is].
	ErrNoNaturalOrder = errors.New(`collections: no natural ordering`)
)

// BoundsError indicates an index or range outside the valid bounds of a
// container, view, or slice. It is detected before any mutation occurs.
//
// Count is negative for single-index accesses, and the requested range
// length otherwise.
type BoundsError struct {
	Index  int
	Count  int
	Length int
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	if e.Count < 0 {
		return fmt.Sprintf(`collections: index %d out of bounds for length %d`, e.Index, e.Length)
	}
	return fmt.Sprintf(`collections: range [%d, %d+%d) out of bounds for length %d`, e.Index, e.Index, e.Count, e.Length)
}

// Unwrap supports matching via errors.Is(err, ErrOutOfBounds).
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// errIndex returns a BoundsError for a single-index access.
func errIndex(index, length int) error {
	return &BoundsError{Index: index, Count: -1, Length: length}
}

// checkRange validates [start, start+count) against length, returning a
// BoundsError on failure. Guarded against overflow of start+count.
func checkRange(start, count, length int) error {
	if start < 0 || count < 0 || count > length-start {
		return &BoundsError{Index: start, Count: count, Length: length}
	}
	return nil
}

// NilError indicates an attempt to store a nil item in a container that was
// not configured with [WithNilAllowed]. The container is unchanged.
type NilError struct {
	Op string
}

// Error implements the error interface.
func (e *NilError) Error() string {
	return `collections: ` + e.Op + `: nil item not permitted`
}

// Unwrap supports matching via errors.Is(err, ErrNilItem).
func (e *NilError) Unwrap() error { return ErrNilItem }

// StaleError indicates use of a [View] or [Iterator] whose captured version
// no longer matches the source container, i.e. the container was structurally
// mutated after the snapshot was taken. The condition is permanent for that
// view or iterator instance.
type StaleError struct {
	// Entity identifies the faulted snapshot holder, "view" or "iterator".
	Entity string
	// Snapshot is the version captured at creation.
	Snapshot uint64
	// Version is the live container version observed.
	Version uint64
}

// Error implements the error interface.
func (e *StaleError) Error() string {
	return fmt.Sprintf(`collections: stale %s: snapshot version %d, container version %d`, e.Entity, e.Snapshot, e.Version)
}

// Unwrap supports matching via errors.Is(err, ErrStale).
func (e *StaleError) Unwrap() error { return ErrStale }

// CapabilityError indicates that natural ordering was requested (via a nil
// [Comparator]) for an item type that provides none.
type CapabilityError struct {
	// Type is the string representation of the offending item type.
	Type string
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	return `collections: type ` + e.Type + ` has no natural ordering`
}

// Unwrap supports matching via errors.Is(err, ErrNoNaturalOrder).
func (e *CapabilityError) Unwrap() error { return ErrNoNaturalOrder }
