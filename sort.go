package collections

import (
	"math"
)

// insertionSortThreshold is the range length below which quicksort
// partitioning stops paying for itself.
const insertionSortThreshold = 14

// IntrospectiveSort sorts items[start : start+count] in place using a hybrid
// of median-of-three quicksort, insertion sort for small ranges, and heap
// sort once recursion depth exceeds floor(2.5 * log2(count)), bounding the
// worst case at O(n log n).
//
// A nil cmp means the item type's natural ordering; a [CapabilityError] is
// returned if it has none. Bounds are validated before any element moves,
// returning a [BoundsError] on failure. The sort is not stable.
func IntrospectiveSort[T any](items []T, start, count int, cmp Comparator[T]) error {
	if err := checkRange(start, count, len(items)); err != nil {
		return err
	}
	if cmp == nil {
		var err error
		if cmp, err = naturalComparator[T](); err != nil {
			return err
		}
	}
	if count > 1 {
		introsort(items[start:start+count], cmp, depthLimit(count))
	}
	return nil
}

// BinaryInsertionSort sorts items[start : start+count] in place, locating
// each insertion point by binary search over the already-sorted prefix. It
// performs O(n log n) comparisons but O(n^2) element moves in the worst
// case, making it suited to ranges where comparisons are expensive relative
// to moves. The sort is stable.
//
// Argument handling matches [IntrospectiveSort].
func BinaryInsertionSort[T any](items []T, start, count int, cmp Comparator[T]) error {
	if err := checkRange(start, count, len(items)); err != nil {
		return err
	}
	if cmp == nil {
		var err error
		if cmp, err = naturalComparator[T](); err != nil {
			return err
		}
	}
	binaryInsertionSort(items[start:start+count], cmp)
	return nil
}

// depthLimit is the recursion budget before falling back to heap sort.
func depthLimit(n int) int {
	return int(2.5 * math.Log2(float64(n)))
}

func introsort[T any](s []T, cmp Comparator[T], depth int) {
	for len(s) > insertionSortThreshold {
		if depth == 0 {
			heapSort(s, cmp)
			return
		}
		depth--
		p := partition(s, cmp)
		// recurse into the smaller side, loop on the larger
		if p < len(s)-p-1 {
			introsort(s[:p], cmp, depth)
			s = s[p+1:]
		} else {
			introsort(s[p+1:], cmp, depth)
			s = s[:p]
		}
	}
	insertionSort(s, cmp)
}

// partition picks the median of {first, middle, last} as the pivot and
// returns its final position. Requires len(s) >= 3.
func partition[T any](s []T, cmp Comparator[T]) int {
	hi := len(s) - 1
	mid := hi / 2
	if cmp(s[mid], s[0]) < 0 {
		s[mid], s[0] = s[0], s[mid]
	}
	if cmp(s[hi], s[0]) < 0 {
		s[hi], s[0] = s[0], s[hi]
	}
	if cmp(s[hi], s[mid]) < 0 {
		s[hi], s[mid] = s[mid], s[hi]
	}
	// park the median pivot next to the end; s[0] and s[hi] act as sentinels
	s[mid], s[hi-1] = s[hi-1], s[mid]
	pivot := s[hi-1]

	i, j := 0, hi-1
	for {
		for i++; cmp(s[i], pivot) < 0; i++ {
		}
		for j--; cmp(pivot, s[j]) < 0; j-- {
		}
		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}
	s[i], s[hi-1] = s[hi-1], s[i]
	return i
}

func insertionSort[T any](s []T, cmp Comparator[T]) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && cmp(v, s[j]) < 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

func binaryInsertionSort[T any](s []T, cmp Comparator[T]) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		// upper bound keeps equal items in input order (stability)
		lo, hi := 0, i
		for lo < hi {
			m := int(uint(lo+hi) >> 1)
			if cmp(v, s[m]) < 0 {
				hi = m
			} else {
				lo = m + 1
			}
		}
		copy(s[lo+1:i+1], s[lo:i])
		s[lo] = v
	}
}

func heapSort[T any](s []T, cmp Comparator[T]) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i, len(s), cmp)
	}
	for i := len(s) - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, 0, i, cmp)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// over s[:n].
func siftDown[T any](s []T, root, n int, cmp Comparator[T]) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(s[child], s[child+1]) < 0 {
			child++
		}
		if cmp(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
