package collections

// Mixing constants for the unsequenced hash. They are fixed (not randomized
// per process), trading hash-flooding resistance for deterministic,
// reproducible hash codes.
const (
	unsequencedMix1 uint64 = 1529784657
	unsequencedMix2 uint64 = 2912831877
	unsequencedMix3 uint64 = 1118771817

	// sequencedPrime folds item hashes position-sensitively.
	sequencedPrime uint64 = 31
)

// unsequencedContribution mixes a single item hash for the order-independent
// hash. Contributions are combined by wraparound addition, so any permutation
// of the same multiset of items produces the same container hash. Equal
// hashes do not imply equal containers.
func unsequencedContribution(h uint64) uint64 {
	return (h*unsequencedMix1 + unsequencedMix2) ^ (h * unsequencedMix3)
}

// sequencedFold combines the next item hash into the order-dependent
// accumulator. Equal items in equal order produce equal hashes; reordering
// likely, but not certainly, changes the hash.
func sequencedFold(acc, h uint64) uint64 {
	return acc*sequencedPrime + h
}

// hashCache memoizes a container hash for as long as the container version is
// unchanged.
type hashCache struct {
	value   uint64
	version uint64
	valid   bool
}

// get returns the cached value if still valid for version, recomputing (and
// re-caching) otherwise.
func (c *hashCache) get(version uint64, compute func() uint64) uint64 {
	if !c.valid || c.version != version {
		c.value = compute()
		c.version = version
		c.valid = true
	}
	return c.value
}

// SequencedEqual reports whether a and b hold equal items in equal order,
// under a's equality strategy. The cached sequenced hashes serve as a
// fast-path reject.
func SequencedEqual[T any](a, b Sequence[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Count() != b.Count() {
		return false
	}
	if a.SequencedHash() != b.SequencedHash() {
		return false
	}
	eq := a.Equality()
	ai, bi := a.Iterator(), b.Iterator()
	for ai.Next() {
		if !bi.Next() || !eq.Equal(ai.Value(), bi.Value()) {
			return false
		}
	}
	return true
}

// UnsequencedEqual reports whether a and b hold equal multisets of items in
// any order, under a's equality strategy. The cached unsequenced hashes serve
// as a fast-path reject; the full check buckets a's items by item hash and
// discharges them against b's.
func UnsequencedEqual[T any](a, b Sequence[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Count() != b.Count() {
		return false
	}
	if a.UnsequencedHash() != b.UnsequencedHash() {
		return false
	}
	eq := a.Equality()
	buckets := make(map[uint64][]T, a.Count())
	for it := a.Iterator(); it.Next(); {
		h := eq.Hash(it.Value())
		buckets[h] = append(buckets[h], it.Value())
	}
	for it := b.Iterator(); it.Next(); {
		v := it.Value()
		h := eq.Hash(v)
		items := buckets[h]
		found := -1
		for i := range items {
			if eq.Equal(items[i], v) {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		items[found] = items[len(items)-1]
		buckets[h] = items[:len(items)-1]
	}
	return true
}
